package zuc

import "encoding/binary"

// buildConfidentialityIV builds the 16-byte IV for 128-EEA3 from the
// COUNT, BEARER and DIRECTION parameters.
func buildConfidentialityIV(count uint32, bearer byte, direction byte) [IVSize]byte {
	var iv [IVSize]byte
	binary.BigEndian.PutUint32(iv[0:4], count)
	iv[4] = ((bearer << 3) | (direction << 2)) & 0xfc
	iv[5], iv[6], iv[7] = 0, 0, 0
	copy(iv[8:16], iv[0:8])
	return iv
}

// EEA3 implements the 128-EEA3 confidentiality algorithm: it XORs a
// LENGTH-bit message against ZUC keystream derived from key, COUNT,
// BEARER and DIRECTION, returning a byte slice of the same bit length
// (the final byte's unused low bits are zeroed). EEA3 is its own
// inverse: applying it twice with identical parameters recovers the
// original message.
func EEA3(key []byte, count uint32, bearer, direction byte, input []byte, length int) ([]byte, error) {
	if length < 0 || length > len(input)*8 {
		return nil, LengthError(length)
	}
	iv := buildConfidentialityIV(count, bearer, direction)
	c, err := New(key, iv[:])
	if err != nil {
		return nil, err
	}

	nWords := (length + 31) / 32
	ks := c.GenerateWords(nWords)

	nBytes := (length + 7) / 8
	out := make([]byte, nBytes)
	for i := 0; i < nBytes; i++ {
		var kb byte
		word := ks[i/4]
		switch i % 4 {
		case 0:
			kb = byte(word >> 24)
		case 1:
			kb = byte(word >> 16)
		case 2:
			kb = byte(word >> 8)
		case 3:
			kb = byte(word)
		}
		out[i] = input[i] ^ kb
	}

	if rem := length % 8; rem != 0 {
		mask := byte(0xff) << (8 - rem)
		out[nBytes-1] &= mask
	}
	return out, nil
}
