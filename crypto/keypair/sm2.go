package keypair

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/hex"
	"io"
	"io/fs"
	"math/big"

	"github.com/gmsuite/gmcrypto/crypto/internal/sm2curve"
)

// coordLen is the fixed byte width of an SM2-P-256 field element.
const coordLen = 32

// Sm2KeyPair represents an SM2 key pair. Keys are held as raw big-endian
// bytes rather than ASN.1/PEM: PrivateKey is the 32-byte scalar d,
// PublicKey is the 64-byte uncompressed point x||y with no leading 0x04
// tag. UID is the identity string folded into ZA/ZB for sign/verify and
// key exchange; the GM/T 0009-2012 default is used when it is empty.
type Sm2KeyPair struct {
	PrivateKey []byte
	PublicKey  []byte
	UID        []byte

	// Window controls the scalar-multiplication wNAF window (2..6) used
	// for this key pair's public-key operations. 0 means use the
	// package default.
	Window int
}

// NewSm2KeyPair returns an empty Sm2KeyPair with the default window size.
func NewSm2KeyPair() *Sm2KeyPair {
	return &Sm2KeyPair{}
}

// SetUID sets the identity string used to compute ZA/ZB.
func (k *Sm2KeyPair) SetUID(uid []byte) {
	k.UID = uid
}

// SetWindow sets the scalar-multiplication window (2..6); values outside
// the range are clamped.
func (k *Sm2KeyPair) SetWindow(window int) {
	if window < 2 {
		window = 2
	}
	if window > 6 {
		window = 6
	}
	k.Window = window
}

// GenKeyPair samples a fresh private scalar and derives the matching
// public point, filling both PrivateKey and PublicKey.
func (k *Sm2KeyPair) GenKeyPair() error {
	c, err := sm2curve.Curve()
	if err != nil {
		return err
	}
	d, err := sm2curve.RandScalar(c, rand.Reader)
	if err != nil {
		return err
	}
	x, y := c.ScalarBaseMult(d.Bytes())
	k.PrivateKey = padLeft(d.Bytes(), coordLen)
	k.PublicKey = append(padLeft(x.Bytes(), coordLen), padLeft(y.Bytes(), coordLen)...)
	return nil
}

// SetPrivateKey sets the 32-byte private scalar and derives PublicKey
// from it.
func (k *Sm2KeyPair) SetPrivateKey(raw []byte) error {
	if len(raw) != coordLen {
		return InvalidPrivateKeyError{}
	}
	c, err := sm2curve.Curve()
	if err != nil {
		return err
	}
	d := new(big.Int).SetBytes(raw)
	x, y := c.ScalarBaseMult(d.Bytes())
	if x == nil || y == nil {
		return InvalidPrivateKeyError{}
	}
	k.PrivateKey = append([]byte(nil), raw...)
	k.PublicKey = append(padLeft(x.Bytes(), coordLen), padLeft(y.Bytes(), coordLen)...)
	return nil
}

// SetPublicKey sets the 64-byte uncompressed public point x||y.
func (k *Sm2KeyPair) SetPublicKey(raw []byte) error {
	if len(raw) != coordLen*2 {
		return InvalidPublicKeyError{}
	}
	c, err := sm2curve.Curve()
	if err != nil {
		return err
	}
	x := new(big.Int).SetBytes(raw[:coordLen])
	y := new(big.Int).SetBytes(raw[coordLen:])
	if !c.IsOnCurve(x, y) {
		return InvalidPublicKeyError{}
	}
	k.PublicKey = append([]byte(nil), raw...)
	return nil
}

// SetPrivateKeyHex sets the private scalar from its hex encoding.
func (k *Sm2KeyPair) SetPrivateKeyHex(s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return InvalidPrivateKeyError{Err: err}
	}
	return k.SetPrivateKey(b)
}

// SetPublicKeyHex sets the public point from its hex encoding.
func (k *Sm2KeyPair) SetPublicKeyHex(s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return InvalidPublicKeyError{Err: err}
	}
	return k.SetPublicKey(b)
}

// PrivateKeyHex returns the private scalar as hex.
func (k *Sm2KeyPair) PrivateKeyHex() string {
	return hex.EncodeToString(k.PrivateKey)
}

// PublicKeyHex returns the public point as hex.
func (k *Sm2KeyPair) PublicKeyHex() string {
	return hex.EncodeToString(k.PublicKey)
}

// LoadPrivateKey reads a raw 32-byte private scalar from f.
func (k *Sm2KeyPair) LoadPrivateKey(f fs.File) error {
	raw, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	return k.SetPrivateKey(raw)
}

// LoadPublicKey reads a raw 64-byte public point from f.
func (k *Sm2KeyPair) LoadPublicKey(f fs.File) error {
	raw, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	return k.SetPublicKey(raw)
}

// ParsePrivateKey returns the key pair's private key as an *ecdsa.PrivateKey.
func (k *Sm2KeyPair) ParsePrivateKey() (*ecdsa.PrivateKey, error) {
	if len(k.PrivateKey) == 0 {
		return nil, EmptyPrivateKeyError{}
	}
	c, err := sm2curve.Curve()
	if err != nil {
		return nil, err
	}
	d := new(big.Int).SetBytes(k.PrivateKey)
	x, y := c.ScalarBaseMult(d.Bytes())
	if x == nil || y == nil {
		return nil, InvalidPrivateKeyError{}
	}
	return &ecdsa.PrivateKey{PublicKey: ecdsa.PublicKey{Curve: c, X: x, Y: y}, D: d}, nil
}

// ParsePublicKey returns the key pair's public key as an *ecdsa.PublicKey.
func (k *Sm2KeyPair) ParsePublicKey() (*ecdsa.PublicKey, error) {
	if len(k.PublicKey) == 0 {
		return nil, EmptyPublicKeyError{}
	}
	if len(k.PublicKey) != coordLen*2 {
		return nil, InvalidPublicKeyError{}
	}
	c, err := sm2curve.Curve()
	if err != nil {
		return nil, err
	}
	x := new(big.Int).SetBytes(k.PublicKey[:coordLen])
	y := new(big.Int).SetBytes(k.PublicKey[coordLen:])
	if !c.IsOnCurve(x, y) {
		return nil, InvalidPublicKeyError{}
	}
	return &ecdsa.PublicKey{Curve: c, X: x, Y: y}, nil
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
