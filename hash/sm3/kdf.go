package sm3

import (
	"encoding/binary"
	"errors"
)

// ErrZeroKDF is returned by KDF when the derived key stream is all zero.
// The caller must discard the output and retry with different inputs
// (new ephemeral key for SM2 encryption, new key exchange scalars, etc).
var ErrZeroKDF = errors.New("sm3: derived key stream is all zero")

// KDF derives klen bytes from the concatenation of parts, as specified by
// GM/T 0003.3: the output is SM3(Z || ct) for ct = 1, 2, ... encoded as a
// 32-bit big-endian counter, truncated to klen bytes.
func KDF(klen int, parts ...[]byte) ([]byte, error) {
	out := make([]byte, klen)
	var ctBuf [4]byte
	h := New()

	blocks := (klen + Size - 1) / Size
	zero := true
	for i := 0; i < blocks; i++ {
		h.Reset()
		for _, p := range parts {
			h.Write(p)
		}
		binary.BigEndian.PutUint32(ctBuf[:], uint32(i+1))
		h.Write(ctBuf[:])
		sum := h.Sum(nil)

		start := i * Size
		end := start + Size
		if end > klen {
			end = klen
		}
		n := copy(out[start:end], sum)
		if zero {
			for _, b := range sum[:n] {
				if b != 0 {
					zero = false
					break
				}
			}
		}
	}

	if zero && klen > 0 {
		return out, ErrZeroKDF
	}
	return out, nil
}
