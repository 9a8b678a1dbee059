package zuc

import "encoding/binary"

// buildIntegrityIV builds the 16-byte IV for 128-EIA3 from COUNT, BEARER
// and DIRECTION. It differs from the confidentiality IV in iv4 and in the
// DIRECTION perturbation applied to bytes 8 and 14.
func buildIntegrityIV(count uint32, bearer byte, direction byte) [IVSize]byte {
	var iv [IVSize]byte
	binary.BigEndian.PutUint32(iv[0:4], count)
	iv[4] = bearer << 3
	iv[5], iv[6], iv[7] = 0, 0, 0
	copy(iv[8:16], iv[0:8])
	iv[8] ^= direction << 7
	iv[14] ^= direction << 7
	return iv
}

// wordAt extracts the 32-bit word starting at bit position pos (0 being
// the most significant bit of ks[0]) out of the word stream ks.
func wordAt(ks []uint32, pos int) uint32 {
	idx := pos / 32
	off := uint(pos % 32)
	if off == 0 {
		return ks[idx]
	}
	hi := ks[idx] << off
	lo := ks[idx+1] >> (32 - off)
	return hi | lo
}

// getBit returns bit i (0 = MSB of data's first byte) of the byte slice
// data, treated as a big-endian bit string of length len(data)*8.
func getBit(data []byte, i int) int {
	b := data[i/8]
	shift := uint(7 - i%8)
	return int((b >> shift) & 1)
}

// EIA3 implements the 128-EIA3 integrity (MAC) algorithm over a
// LENGTH-bit message, returning the 4-byte authentication tag.
func EIA3(key []byte, count uint32, bearer, direction byte, input []byte, length int) ([4]byte, error) {
	var mac [4]byte
	if length < 0 || length > len(input)*8 {
		return mac, LengthError(length)
	}
	iv := buildIntegrityIV(count, bearer, direction)
	c, err := New(key, iv[:])
	if err != nil {
		return mac, err
	}

	l := (length+31)/32 + 2
	ks := c.GenerateWords(l)

	var t uint32
	for i := 0; i < length; i++ {
		if getBit(input, i) == 1 {
			t ^= wordAt(ks, i)
		}
	}
	t ^= wordAt(ks, length)
	t ^= wordAt(ks, 32*(l-1))

	binary.BigEndian.PutUint32(mac[:], t)
	return mac, nil
}
