// Package sm2 is the convenience layer over crypto/internal/sm2: it owns
// randomness (sampling k, r_A, r_B from crypto/rand), binds operations to
// a keypair.Sm2KeyPair, and assembles/parses the raw wire encodings
// (signature R(32)||S(32); ciphertext C1(64)||C3(32)||C2(len(M))).
package sm2

import (
	"crypto/ecdsa"
	"crypto/rand"
	"math/big"

	internalsm2 "github.com/gmsuite/gmcrypto/crypto/internal/sm2"
	"github.com/gmsuite/gmcrypto/crypto/internal/sm2curve"
	"github.com/gmsuite/gmcrypto/crypto/keypair"
)

// coordLen is the fixed byte width of an SM2-P-256 field element, and
// hence of a signature component or a ciphertext's C1 half-coordinate.
const coordLen = 32

// cache holds a key pair's parsed key material and precomputed identity
// hash so repeated Sign/Verify/Encrypt/Decrypt calls on the same
// StdSigner/StdVerifier/StdEncrypter/StdDecrypter don't re-parse or
// re-hash on every call.
type cache struct {
	priKey *ecdsa.PrivateKey
	pubKey *ecdsa.PublicKey
	za     []byte
}

// applyWindow sets the process-wide curve's scalar-multiplication window
// for this key pair's operations, when the key pair requests a non-default
// one.
func applyWindow(kp *keypair.Sm2KeyPair) error {
	if kp.Window == 0 {
		return nil
	}
	c, err := sm2curve.Curve()
	if err != nil {
		return err
	}
	sm2curve.SetWindow(c, kp.Window)
	return nil
}

// randK samples a fresh scalar in [1, n-1] for use as a signature or
// encryption nonce.
func randK() (*big.Int, error) {
	c, err := sm2curve.Curve()
	if err != nil {
		return nil, err
	}
	return sm2curve.RandScalar(c, rand.Reader)
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

// encodeSignature assembles the fixed-width R(32)||S(32) wire encoding.
func encodeSignature(r, s *big.Int) []byte {
	out := make([]byte, 0, coordLen*2)
	out = append(out, padLeft(r.Bytes(), coordLen)...)
	out = append(out, padLeft(s.Bytes(), coordLen)...)
	return out
}

// decodeSignature parses the fixed-width R(32)||S(32) wire encoding.
func decodeSignature(sign []byte) (r, s *big.Int, err error) {
	if len(sign) != coordLen*2 {
		return nil, nil, keypair.EmptySignatureError{}
	}
	r = new(big.Int).SetBytes(sign[:coordLen])
	s = new(big.Int).SetBytes(sign[coordLen:])
	return r, s, nil
}

// encodeCiphertext assembles the fixed-width C1(64)||C3(32)||C2(len(M))
// wire encoding, with C1 as the bare X||Y point (no 0x04 prefix).
func encodeCiphertext(c1x, c1y *big.Int, c2, c3 []byte) []byte {
	out := make([]byte, 0, coordLen*2+len(c3)+len(c2))
	out = append(out, padLeft(c1x.Bytes(), coordLen)...)
	out = append(out, padLeft(c1y.Bytes(), coordLen)...)
	out = append(out, c3...)
	out = append(out, c2...)
	return out
}

// decodeCiphertext parses the fixed-width C1(64)||C3(32)||C2 wire encoding.
func decodeCiphertext(src []byte) (c1x, c1y *big.Int, c2, c3 []byte, err error) {
	const minLen = coordLen*2 + 32
	if len(src) < minLen {
		return nil, nil, nil, nil, internalsm2.ErrNotValidPoint
	}
	c1x = new(big.Int).SetBytes(src[:coordLen])
	c1y = new(big.Int).SetBytes(src[coordLen : coordLen*2])
	c3 = src[coordLen*2 : coordLen*2+32]
	c2 = src[coordLen*2+32:]
	return c1x, c1y, c2, c3, nil
}
