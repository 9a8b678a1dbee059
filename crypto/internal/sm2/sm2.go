// Package sm2 implements the algorithmic core of SM2: curve harness
// helpers, signature generation/verification, public-key encryption and
// decryption, and the key-exchange protocol, all as pure functions of
// their explicit inputs plus the process-wide curve parameters.
//
// Randomness is never sampled here. Every scalar the protocols need (k,
// r_A, r_B) is a caller-supplied argument; callers that want a ready-made
// convenience layer should use package sm2 at github.com/gmsuite/gmcrypto/crypto/sm2.
package sm2

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/gmsuite/gmcrypto/crypto/internal/sm2curve"
	"github.com/gmsuite/gmcrypto/hash/sm3"
)

// defaultUID is the default user identifier from GM/T 0009-2012 used when
// a caller does not supply one.
var defaultUID = []byte("1234567812345678")

// TestPoint reports whether (x, y) lies on the curve.
func TestPoint(x, y *big.Int) bool {
	c, err := sm2curve.Curve()
	if err != nil {
		return false
	}
	if x == nil || y == nil {
		return false
	}
	return c.IsOnCurve(x, y)
}

// TestPubKey reports whether P = (x, y) is a valid SM2 public key: not
// the point at infinity, coordinates within [0, p), on the curve, and of
// order n (since the SM2 cofactor h is 1, n*P = O together with P != O
// is sufficient).
func TestPubKey(x, y *big.Int) bool {
	c, err := sm2curve.Curve()
	if err != nil {
		return false
	}
	if x == nil || y == nil {
		return false
	}
	p := c.Params().P
	if x.Sign() < 0 || x.Cmp(p) >= 0 || y.Sign() < 0 || y.Cmp(p) >= 0 {
		return false
	}
	if !c.IsOnCurve(x, y) {
		return false
	}
	nx, ny := c.ScalarMult(x, y, c.Params().N.Bytes())
	return nx == nil && ny == nil
}

// TestRange reports whether 1 <= x <= n-1.
func TestRange(x *big.Int) bool {
	c, err := sm2curve.Curve()
	if err != nil {
		return false
	}
	n := c.Params().N
	return x != nil && x.Sign() > 0 && x.Cmp(n) < 0
}

// TestZero reports whether x is the zero value.
func TestZero(x *big.Int) bool {
	return x == nil || x.Sign() == 0
}

// TestEqualN reports whether a == b as integers mod n.
func TestEqualN(a, b *big.Int) bool {
	c, err := sm2curve.Curve()
	if err != nil {
		return false
	}
	n := c.Params().N
	am := new(big.Int).Mod(a, n)
	bm := new(big.Int).Mod(b, n)
	return am.Cmp(bm) == 0
}

// GenerateKey returns P = d*G, failing if the resulting point is not a
// valid public key.
func GenerateKey(d *big.Int) (x, y *big.Int, err error) {
	c, err := sm2curve.Curve()
	if err != nil {
		return nil, nil, err
	}
	x, y = c.ScalarBaseMult(d.Bytes())
	if !TestPubKey(x, y) {
		return nil, nil, ErrPubkeyInit
	}
	return x, y, nil
}

// padLeft left-pads b with zeros to reach size bytes.
func padLeft(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	out := make([]byte, size)
	copy(out[size-len(b):], b)
	return out
}

// coordLen is the fixed byte width of an SM2-P-256 field element.
const coordLen = 32

// ComputeZ computes ZA = SM3(ENTLA || IDA || a || b || xG || yG || xA || yA)
// for the given public key and user identity. If uid is empty, the
// GM/T 0009-2012 default identity is used.
func ComputeZ(pub *ecdsa.PublicKey, uid []byte) ([]byte, error) {
	if len(uid) == 0 {
		uid = defaultUID
	}
	c, err := sm2curve.Curve()
	if err != nil {
		return nil, err
	}
	params := c.Params()
	a := new(big.Int).Sub(params.P, big.NewInt(3))

	buf := make([]byte, 0, 2+len(uid)+coordLen*6)
	entla := uint16(len(uid) * 8)
	buf = append(buf, byte(entla>>8), byte(entla))
	buf = append(buf, uid...)
	buf = append(buf, padLeft(a.Bytes(), coordLen)...)
	buf = append(buf, padLeft(params.B.Bytes(), coordLen)...)
	buf = append(buf, padLeft(params.Gx.Bytes(), coordLen)...)
	buf = append(buf, padLeft(params.Gy.Bytes(), coordLen)...)
	buf = append(buf, padLeft(pub.X.Bytes(), coordLen)...)
	buf = append(buf, padLeft(pub.Y.Bytes(), coordLen)...)

	h := sm3.New()
	h.Write(buf)
	return h.Sum(nil), nil
}

// Sign computes an SM2 signature over message, given the precomputed
// identity hash za and a caller-supplied random scalar k in [1, n-1].
func Sign(priv *ecdsa.PrivateKey, za, message []byte, k *big.Int) (r, s *big.Int, err error) {
	c, err := sm2curve.Curve()
	if err != nil {
		return nil, nil, err
	}
	n := c.Params().N

	if !TestRange(priv.D) {
		return nil, nil, ErrNotValidElement
	}

	h := sm3.New()
	h.Write(za)
	h.Write(message)
	e := new(big.Int).SetBytes(h.Sum(nil))

	x1, _ := c.ScalarBaseMult(k.Bytes())

	r = new(big.Int).Add(e, x1)
	r.Mod(r, n)
	if r.Sign() == 0 {
		return nil, nil, ErrGenerateR
	}
	rPlusK := new(big.Int).Add(r, k)
	if rPlusK.Cmp(n) == 0 {
		return nil, nil, ErrGenerateR
	}

	dPlus1 := new(big.Int).Add(priv.D, big.NewInt(1))
	dPlus1Inv := new(big.Int).ModInverse(dPlus1, n)
	if dPlus1Inv == nil {
		return nil, nil, ErrGenerateS
	}

	rd := new(big.Int).Mul(r, priv.D)
	rd.Mod(rd, n)
	kMinusRd := new(big.Int).Sub(k, rd)
	kMinusRd.Mod(kMinusRd, n)

	s = new(big.Int).Mul(dPlus1Inv, kMinusRd)
	s.Mod(s, n)
	if s.Sign() == 0 {
		return nil, nil, ErrGenerateS
	}
	return r, s, nil
}

// Verify checks an SM2 signature (r, s) over message given the precomputed
// identity hash za and the signer's public key.
func Verify(pub *ecdsa.PublicKey, za, message []byte, r, s *big.Int) bool {
	c, err := sm2curve.Curve()
	if err != nil {
		return false
	}
	n := c.Params().N

	if !TestRange(r) || !TestRange(s) {
		return false
	}

	h := sm3.New()
	h.Write(za)
	h.Write(message)
	e := new(big.Int).SetBytes(h.Sum(nil))

	t := new(big.Int).Add(r, s)
	t.Mod(t, n)
	if t.Sign() == 0 {
		return false
	}

	x1, y1 := c.ScalarBaseMult(s.Bytes())
	x2, y2 := c.ScalarMult(pub.X, pub.Y, t.Bytes())
	x1, y1 = c.Add(x1, y1, x2, y2)
	if x1 == nil || y1 == nil {
		return false
	}

	v := new(big.Int).Add(e, x1)
	v.Mod(v, n)
	return v.Cmp(r) == 0
}

// Encrypt implements SM2 public-key encryption given a caller-supplied
// random scalar k. It returns C1 as its raw (x, y) coordinates plus C2
// (the masked message) and C3 (the SM3 tag); callers assemble the wire
// encoding C1 || C3 || C2.
func Encrypt(pub *ecdsa.PublicKey, message []byte, k *big.Int) (c1x, c1y *big.Int, c2, c3 []byte, err error) {
	c, err := sm2curve.Curve()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	if !TestPubKey(pub.X, pub.Y) {
		return nil, nil, nil, nil, ErrInfinityPoint
	}

	c1x, c1y = c.ScalarBaseMult(k.Bytes())

	x2, y2 := c.ScalarMult(pub.X, pub.Y, k.Bytes())
	x2b := padLeft(x2.Bytes(), coordLen)
	y2b := padLeft(y2.Bytes(), coordLen)

	t, err := sm3.KDF(len(message), x2b, y2b)
	if err != nil {
		return nil, nil, nil, nil, kdfError(err)
	}

	c2 = make([]byte, len(message))
	for i := range message {
		c2[i] = message[i] ^ t[i]
	}

	h := sm3.New()
	h.Write(x2b)
	h.Write(message)
	h.Write(y2b)
	c3 = h.Sum(nil)

	return c1x, c1y, c2, c3, nil
}

// Decrypt implements SM2 public-key decryption given C1's raw (x, y)
// coordinates, C2, and C3.
func Decrypt(priv *ecdsa.PrivateKey, c1x, c1y *big.Int, c2, c3 []byte) ([]byte, error) {
	c, err := sm2curve.Curve()
	if err != nil {
		return nil, err
	}

	if !TestPoint(c1x, c1y) {
		return nil, ErrNotValidPoint
	}

	x2, y2 := c.ScalarMult(c1x, c1y, priv.D.Bytes())
	if x2 == nil || y2 == nil {
		return nil, ErrInfinityPoint
	}
	x2b := padLeft(x2.Bytes(), coordLen)
	y2b := padLeft(y2.Bytes(), coordLen)

	t, err := sm3.KDF(len(c2), x2b, y2b)
	if err != nil {
		return nil, kdfError(err)
	}

	message := make([]byte, len(c2))
	for i := range c2 {
		message[i] = c2[i] ^ t[i]
	}

	h := sm3.New()
	h.Write(x2b)
	h.Write(message)
	h.Write(y2b)
	if !bytesEqual(h.Sum(nil), c3) {
		return nil, ErrC3Mismatch
	}
	return message, nil
}

// bytesEqual compares two byte slices without leaking timing based on
// where they first differ.
func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var v byte
	for i := range a {
		v |= a[i] ^ b[i]
	}
	return v == 0
}
