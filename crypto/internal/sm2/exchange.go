package sm2

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/gmsuite/gmcrypto/crypto/internal/sm2curve"
	"github.com/gmsuite/gmcrypto/hash/sm3"
)

// exchangeW is w = ceil(ceil(log2 n)/2) - 1 for the SM2-P-256 group
// order n, which has a 256-bit bit length.
const exchangeW = 127

// xBar computes 2^w + (x mod 2^w), the truncation SM2 key exchange uses
// to fold a peer's ephemeral x-coordinate into its own scalar.
func xBar(x *big.Int) *big.Int {
	mod := new(big.Int).Lsh(big.NewInt(1), exchangeW)
	xm := new(big.Int).Mod(x, mod)
	return xm.Add(xm, mod)
}

// ExchangeInit is Init-I: given the caller-supplied random rA, it computes
// RA = rA*G for the initiator to send.
func ExchangeInit(rA *big.Int) (rAx, rAy *big.Int, err error) {
	c, err := sm2curve.Curve()
	if err != nil {
		return nil, nil, err
	}
	rAx, rAy = c.ScalarBaseMult(rA.Bytes())
	return rAx, rAy, nil
}

// exchangeHash computes SM3(tag || y || SM3(xV || ZA || ZB || xRA || yRA || xRB || yRB)).
func exchangeHash(tag byte, y *big.Int, xV *big.Int, za, zb []byte, rAx, rAy, rBx, rBy *big.Int) []byte {
	inner := sm3.New()
	inner.Write(padLeft(xV.Bytes(), coordLen))
	inner.Write(za)
	inner.Write(zb)
	inner.Write(padLeft(rAx.Bytes(), coordLen))
	inner.Write(padLeft(rAy.Bytes(), coordLen))
	inner.Write(padLeft(rBx.Bytes(), coordLen))
	inner.Write(padLeft(rBy.Bytes(), coordLen))
	innerSum := inner.Sum(nil)

	outer := sm3.New()
	outer.Write([]byte{tag})
	outer.Write(padLeft(y.Bytes(), coordLen))
	outer.Write(innerSum)
	return outer.Sum(nil)
}

// ExchangeRespond is Resp-I: given the caller-supplied random rB, the
// responder B computes RB, the shared point V, the derived key KB and the
// confirmation tag SB.
func ExchangeRespond(dB *big.Int, pubA *ecdsa.PublicKey, pubB *ecdsa.PublicKey, za, zb []byte, rB *big.Int, rAx, rAy *big.Int, klen int) (rBx, rBy, vx, vy *big.Int, kB, sB []byte, err error) {
	c, err := sm2curve.Curve()
	if err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	n := c.Params().N

	if !TestPoint(rAx, rAy) {
		return nil, nil, nil, nil, nil, nil, ErrNotValidPoint
	}

	rBx, rBy = c.ScalarBaseMult(rB.Bytes())

	xBarB := xBar(rBx)
	tB := new(big.Int).Mul(xBarB, rB)
	tB.Add(tB, dB)
	tB.Mod(tB, n)

	xBarA := xBar(rAx)
	ux, uy := c.ScalarMult(rAx, rAy, xBarA.Bytes())
	ux, uy = c.Add(ux, uy, pubA.X, pubA.Y)
	vx, vy = c.ScalarMult(ux, uy, tB.Bytes())
	if vx == nil || vy == nil {
		return nil, nil, nil, nil, nil, nil, ErrInfinityPoint
	}

	kB, err = sm3.KDF(klen, padLeft(vx.Bytes(), coordLen), padLeft(vy.Bytes(), coordLen), za, zb)
	if err != nil {
		return nil, nil, nil, nil, nil, nil, kdfError(err)
	}

	sB = exchangeHash(0x02, vy, vx, za, zb, rAx, rAy, rBx, rBy)
	return rBx, rBy, vx, vy, kB, sB, nil
}

// ExchangeConfirmInit is Init-II: the initiator A recomputes the shared
// point U, derives KA, checks B's confirmation SB, and emits its own
// confirmation SA.
func ExchangeConfirmInit(dA *big.Int, pubA *ecdsa.PublicKey, pubB *ecdsa.PublicKey, za, zb []byte, rA *big.Int, rAx, rAy, rBx, rBy *big.Int, sB []byte, klen int) (kA, sA []byte, err error) {
	c, err := sm2curve.Curve()
	if err != nil {
		return nil, nil, err
	}
	n := c.Params().N

	if !TestPoint(rBx, rBy) {
		return nil, nil, ErrNotValidPoint
	}

	xBarA := xBar(rAx)
	tA := new(big.Int).Mul(xBarA, rA)
	tA.Add(tA, dA)
	tA.Mod(tA, n)

	xBarB := xBar(rBx)
	ux, uy := c.ScalarMult(rBx, rBy, xBarB.Bytes())
	ux, uy = c.Add(ux, uy, pubB.X, pubB.Y)
	vx, vy := c.ScalarMult(ux, uy, tA.Bytes())
	if vx == nil || vy == nil {
		return nil, nil, ErrInfinityPoint
	}

	kA, err = sm3.KDF(klen, padLeft(vx.Bytes(), coordLen), padLeft(vy.Bytes(), coordLen), za, zb)
	if err != nil {
		return nil, nil, kdfError(err)
	}

	s1 := exchangeHash(0x02, vy, vx, za, zb, rAx, rAy, rBx, rBy)
	if !bytesEqual(s1, sB) {
		return nil, nil, ErrDataMemcmp
	}

	sA = exchangeHash(0x03, vy, vx, za, zb, rAx, rAy, rBx, rBy)
	return kA, sA, nil
}

// ExchangeConfirmRespond is Resp-II: B checks A's confirmation SA against
// its own recomputation.
func ExchangeConfirmRespond(vx, vy *big.Int, za, zb []byte, rAx, rAy, rBx, rBy *big.Int, sA []byte) error {
	expected := exchangeHash(0x03, vy, vx, za, zb, rAx, rAy, rBx, rBy)
	if !bytesEqual(expected, sA) {
		return ErrDataMemcmp
	}
	return nil
}
