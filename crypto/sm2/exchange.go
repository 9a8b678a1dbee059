package sm2

import (
	"crypto/ecdsa"
	"math/big"

	internalsm2 "github.com/gmsuite/gmcrypto/crypto/internal/sm2"
	"github.com/gmsuite/gmcrypto/crypto/keypair"
)

// encodePoint assembles the fixed-width 64-byte X||Y encoding of a point.
func encodePoint(x, y *big.Int) []byte {
	out := make([]byte, 0, coordLen*2)
	out = append(out, padLeft(x.Bytes(), coordLen)...)
	out = append(out, padLeft(y.Bytes(), coordLen)...)
	return out
}

// decodePoint parses a fixed-width 64-byte X||Y encoding into coordinates.
func decodePoint(raw []byte) (x, y *big.Int, err error) {
	if len(raw) != coordLen*2 {
		return nil, nil, internalsm2.ErrNotValidPoint
	}
	x = new(big.Int).SetBytes(raw[:coordLen])
	y = new(big.Int).SetBytes(raw[coordLen:])
	return x, y, nil
}

// parsePublicKey decodes a 64-byte raw public point.
func parsePublicKey(raw []byte) (*ecdsa.PublicKey, error) {
	kp := &keypair.Sm2KeyPair{PublicKey: raw}
	return kp.ParsePublicKey()
}

// ExchangeInitiator drives side A of the 4-step SM2 key-exchange
// protocol (GM/T 0003.3): Init-I samples rA and emits RA; Step2 (Init-II)
// consumes B's RB and confirmation SB, derives the shared key, and
// returns A's own confirmation SA.
type ExchangeInitiator struct {
	priv *ecdsa.PrivateKey
	pub  *ecdsa.PublicKey
	peer *ecdsa.PublicKey
	za   []byte
	zb   []byte
	klen int

	rA       *big.Int
	rAx, rAy *big.Int

	Error error
}

// NewExchangeInitiator binds the exchange to self's key pair and the
// peer's raw 64-byte public key and identity. klen is the byte length of
// the derived shared key.
func NewExchangeInitiator(self *keypair.Sm2KeyPair, peerPublicKey, peerUID []byte, klen int) *ExchangeInitiator {
	e := &ExchangeInitiator{klen: klen}
	priv, err := self.ParsePrivateKey()
	if err != nil {
		e.Error = ExchangeError{Err: err}
		return e
	}
	peer, err := parsePublicKey(peerPublicKey)
	if err != nil {
		e.Error = ExchangeError{Err: err}
		return e
	}
	za, err := internalsm2.ComputeZ(&priv.PublicKey, self.UID)
	if err != nil {
		e.Error = ExchangeError{Err: err}
		return e
	}
	zb, err := internalsm2.ComputeZ(peer, peerUID)
	if err != nil {
		e.Error = ExchangeError{Err: err}
		return e
	}
	e.priv = priv
	e.pub = &priv.PublicKey
	e.peer = peer
	e.za = za
	e.zb = zb
	return e
}

// Step1 is Init-I: it samples rA and returns RA = rA*G as a 64-byte
// raw point to send to the responder.
func (e *ExchangeInitiator) Step1() (rA []byte, err error) {
	if e.Error != nil {
		return nil, e.Error
	}
	k, err := randK()
	if err != nil {
		return nil, ExchangeError{Err: err}
	}
	rAx, rAy, err := internalsm2.ExchangeInit(k)
	if err != nil {
		return nil, ExchangeError{Err: err}
	}
	e.rA, e.rAx, e.rAy = k, rAx, rAy
	return encodePoint(rAx, rAy), nil
}

// Step2 is Init-II: given the responder's RB and confirmation SB, it
// derives the shared key and returns A's confirmation SA.
func (e *ExchangeInitiator) Step2(rB, sB []byte) (key, sA []byte, err error) {
	if e.Error != nil {
		return nil, nil, e.Error
	}
	rBx, rBy, err := decodePoint(rB)
	if err != nil {
		return nil, nil, ExchangeError{Err: err}
	}
	key, sA, err = internalsm2.ExchangeConfirmInit(e.priv.D, e.pub, e.peer, e.za, e.zb, e.rA, e.rAx, e.rAy, rBx, rBy, sB, e.klen)
	if err != nil {
		return nil, nil, ExchangeError{Err: err}
	}
	return key, sA, nil
}

// ExchangeResponder drives side B of the 4-step SM2 key-exchange
// protocol: Resp-I consumes A's RA, samples rB, derives the shared key
// and emits RB plus confirmation SB; Step2 (Resp-II) checks A's
// confirmation SA.
type ExchangeResponder struct {
	priv *ecdsa.PrivateKey
	pub  *ecdsa.PublicKey
	peer *ecdsa.PublicKey
	za   []byte
	zb   []byte
	klen int

	rAx, rAy *big.Int
	rBx, rBy *big.Int
	vx, vy   *big.Int

	Error error
}

// NewExchangeResponder binds the exchange to self's key pair (B) and the
// peer's (A's) raw 64-byte public key and identity.
func NewExchangeResponder(self *keypair.Sm2KeyPair, peerPublicKey, peerUID []byte, klen int) *ExchangeResponder {
	e := &ExchangeResponder{klen: klen}
	priv, err := self.ParsePrivateKey()
	if err != nil {
		e.Error = ExchangeError{Err: err}
		return e
	}
	peer, err := parsePublicKey(peerPublicKey)
	if err != nil {
		e.Error = ExchangeError{Err: err}
		return e
	}
	zb, err := internalsm2.ComputeZ(&priv.PublicKey, self.UID)
	if err != nil {
		e.Error = ExchangeError{Err: err}
		return e
	}
	za, err := internalsm2.ComputeZ(peer, peerUID)
	if err != nil {
		e.Error = ExchangeError{Err: err}
		return e
	}
	e.priv = priv
	e.pub = &priv.PublicKey
	e.peer = peer
	e.za = za
	e.zb = zb
	return e
}

// Step1 is Resp-I: given the initiator's RA, it samples rB, derives the
// shared key, and returns RB plus B's confirmation SB.
func (e *ExchangeResponder) Step1(rA []byte) (rB, key, sB []byte, err error) {
	if e.Error != nil {
		return nil, nil, nil, e.Error
	}
	rAx, rAy, err := decodePoint(rA)
	if err != nil {
		return nil, nil, nil, ExchangeError{Err: err}
	}
	k, err := randK()
	if err != nil {
		return nil, nil, nil, ExchangeError{Err: err}
	}
	rBx, rBy, vx, vy, kB, sBTag, err := internalsm2.ExchangeRespond(e.priv.D, e.peer, e.pub, e.za, e.zb, k, rAx, rAy, e.klen)
	if err != nil {
		return nil, nil, nil, ExchangeError{Err: err}
	}
	e.rAx, e.rAy = rAx, rAy
	e.rBx, e.rBy = rBx, rBy
	e.vx, e.vy = vx, vy
	return encodePoint(rBx, rBy), kB, sBTag, nil
}

// Step2 is Resp-II: it checks the initiator's confirmation SA against
// B's own recomputation.
func (e *ExchangeResponder) Step2(sA []byte) error {
	if e.Error != nil {
		return e.Error
	}
	if err := internalsm2.ExchangeConfirmRespond(e.vx, e.vy, e.za, e.zb, e.rAx, e.rAy, e.rBx, e.rBy, sA); err != nil {
		return ExchangeError{Err: err}
	}
	return nil
}
