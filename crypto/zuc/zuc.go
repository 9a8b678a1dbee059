// Package zuc implements the ZUC stream cipher defined by GM/T 0001-2012 /
// GB/T 38635, together with its derived 128-EEA3 confidentiality and
// 128-EIA3 integrity algorithms.
package zuc

const (
	// KeySize is the size in bytes of a ZUC key.
	KeySize = 16
	// IVSize is the size in bytes of a ZUC initialization vector.
	IVSize = 16
)

// m31 is the modulus 2^31 - 1 the LFSR cells live in.
const m31 = 0x7fffffff

// d is the set of 15-bit additive constants used to seed the LFSR cells
// during initialization, one per cell.
var d = [16]uint32{
	0x44D7, 0x26BC, 0x626B, 0x135E,
	0x5789, 0x35E2, 0x7135, 0x09AF,
	0x4D78, 0x2F13, 0x6BC4, 0x1AF1,
	0x5E26, 0x3C4D, 0x789A, 0x47AC,
}

// s0 and s1 are the two 8-bit permutation S-boxes used by the nonlinear
// function F.
var s0 = [256]byte{
	0x3e, 0x72, 0x5b, 0x47, 0xca, 0xe0, 0x00, 0x33, 0x04, 0xd1, 0x54, 0x98, 0x09, 0xb9, 0x6d, 0xcb,
	0x7b, 0x1b, 0xf9, 0x32, 0xaf, 0x9d, 0x6a, 0xa5, 0xb8, 0x2d, 0xfc, 0x1d, 0x08, 0x53, 0x03, 0x90,
	0x4d, 0x4e, 0x84, 0x99, 0xe4, 0xce, 0xd9, 0x91, 0xdd, 0xb6, 0x85, 0x48, 0x8b, 0x29, 0x6e, 0xac,
	0xcd, 0xc1, 0xf8, 0x1e, 0x73, 0x43, 0x69, 0xc6, 0xb5, 0xbd, 0xfd, 0x39, 0x63, 0x20, 0xd4, 0x38,
	0x76, 0x7d, 0xb2, 0xa7, 0xcf, 0xed, 0x57, 0xc5, 0xf3, 0x2c, 0xbb, 0x14, 0x21, 0x06, 0x55, 0x9b,
	0xe3, 0xef, 0x5e, 0x31, 0x4f, 0x7f, 0x5a, 0xa4, 0x0d, 0x82, 0x51, 0x49, 0x5f, 0xba, 0x58, 0x1c,
	0x4a, 0x16, 0xd5, 0x17, 0xa8, 0x92, 0x24, 0x1f, 0x8c, 0xff, 0xd8, 0xae, 0x2e, 0x01, 0xd3, 0xad,
	0x3b, 0x4b, 0xda, 0x46, 0xeb, 0xc9, 0xde, 0x9a, 0x8f, 0x87, 0xd7, 0x3a, 0x80, 0x6f, 0x2f, 0xc8,
	0xb1, 0xb4, 0x37, 0xf7, 0x0a, 0x22, 0x13, 0x28, 0x7c, 0xcc, 0x3c, 0x89, 0xc7, 0xc3, 0x96, 0x56,
	0x07, 0xbf, 0x7e, 0xf0, 0x0b, 0x2b, 0x97, 0x52, 0x35, 0x41, 0x79, 0x61, 0xa6, 0x4c, 0x10, 0xfe,
	0xbc, 0x26, 0x95, 0x88, 0x8a, 0xb0, 0xa3, 0xfb, 0xc0, 0x18, 0x94, 0xf2, 0xe1, 0xe5, 0xe9, 0x5d,
	0xd0, 0xdc, 0x11, 0x66, 0x64, 0x5c, 0xec, 0x59, 0x42, 0x75, 0x12, 0xf5, 0x74, 0x9c, 0xaa, 0x23,
	0x0e, 0x86, 0xab, 0xbe, 0x2a, 0x02, 0xe7, 0x67, 0xe6, 0x44, 0xa2, 0x6c, 0xc2, 0x93, 0x9f, 0xf1,
	0xf6, 0xfa, 0x36, 0xd2, 0x50, 0x68, 0x9e, 0x62, 0x71, 0x15, 0x3d, 0xd6, 0x40, 0xc4, 0xe2, 0x0f,
	0x8e, 0x83, 0x77, 0x6b, 0x25, 0x05, 0x3f, 0x0c, 0x30, 0xea, 0x70, 0xb7, 0xa1, 0xe8, 0xa9, 0x65,
	0x8d, 0x27, 0x1a, 0xdb, 0x81, 0xb3, 0xa0, 0xf4, 0x45, 0x7a, 0x19, 0xdf, 0xee, 0x78, 0x34, 0x60,
}

var s1 = [256]byte{
	0x55, 0xc2, 0x63, 0x71, 0x3b, 0xc8, 0x47, 0x86, 0x9f, 0x3c, 0xda, 0x5b, 0x29, 0xaa, 0xfd, 0x77,
	0x8c, 0xc5, 0x94, 0x0c, 0xa6, 0x1a, 0x13, 0x00, 0xe3, 0xa8, 0x16, 0x72, 0x40, 0xf9, 0xf8, 0x42,
	0x44, 0x26, 0x68, 0x96, 0x81, 0xd9, 0x45, 0x3e, 0x10, 0x76, 0xc6, 0xa7, 0x8b, 0x39, 0x43, 0xe1,
	0x3a, 0xb5, 0x56, 0x2a, 0xc0, 0x6d, 0xb3, 0x05, 0x22, 0x66, 0xbf, 0xdc, 0x0b, 0xfa, 0x62, 0x48,
	0xdd, 0x20, 0x11, 0x06, 0x36, 0xc9, 0xc1, 0xcf, 0xf6, 0x27, 0x52, 0xbb, 0x69, 0xf5, 0xd4, 0x87,
	0x7f, 0x84, 0x4c, 0xd2, 0x9c, 0x57, 0xa4, 0xbc, 0x4f, 0x9a, 0xdf, 0xfe, 0xd6, 0x8d, 0x7a, 0xeb,
	0x2b, 0x53, 0xd8, 0x5c, 0xa1, 0x14, 0x17, 0xfb, 0x23, 0xd5, 0x7d, 0x30, 0x67, 0x73, 0x08, 0x09,
	0xee, 0xb7, 0x70, 0x3f, 0x61, 0xb2, 0x19, 0x8e, 0x4e, 0xe5, 0x4b, 0x93, 0x8f, 0x5d, 0xdb, 0xa9,
	0xad, 0xf1, 0xae, 0x2e, 0xcb, 0x0d, 0xfc, 0xf4, 0x2d, 0x46, 0x6e, 0x1d, 0x97, 0xe8, 0xd1, 0xe9,
	0x4d, 0x37, 0xa5, 0x75, 0x5e, 0x83, 0x9e, 0xab, 0x82, 0x9d, 0xb9, 0x1c, 0xe0, 0xcd, 0x49, 0x89,
	0x01, 0xb6, 0xbd, 0x58, 0x24, 0xa2, 0x5f, 0x38, 0x78, 0x99, 0x15, 0x90, 0x50, 0xb8, 0x95, 0xe4,
	0xd0, 0x91, 0xc7, 0xce, 0xed, 0x0f, 0xb4, 0x6f, 0xa0, 0xcc, 0xf0, 0x02, 0x4a, 0x79, 0xc3, 0xde,
	0xa3, 0xef, 0xea, 0x51, 0xe6, 0x6b, 0x18, 0xec, 0x1b, 0x2c, 0x80, 0xf7, 0x74, 0xe7, 0xff, 0x21,
	0x5a, 0x6a, 0x54, 0x1e, 0x41, 0x31, 0x92, 0x35, 0xc4, 0x33, 0x07, 0x0a, 0xba, 0x7e, 0x0e, 0x34,
	0x88, 0xb1, 0x98, 0x7c, 0xf3, 0x3d, 0x60, 0x6c, 0x7b, 0xca, 0xd3, 0x1f, 0x32, 0x65, 0x04, 0x28,
	0x64, 0xbe, 0x85, 0x9b, 0x2f, 0x59, 0x8a, 0xd7, 0xb0, 0x25, 0xac, 0xaf, 0x12, 0x03, 0xe2, 0xf2,
}

// Cipher holds the full ZUC engine state: the sixteen 31-bit LFSR cells
// and the two 32-bit nonlinear-function memory registers.
type Cipher struct {
	s    [16]uint32
	r1   uint32
	r2   uint32
}

// rotl31 rotates the low 31 bits of x left by n bits.
func rotl31(x uint32, n uint) uint32 {
	x &= m31
	return ((x << n) | (x >> (31 - n))) & m31
}

// addm adds a and b modulo 2^31 - 1.
func addm(a, b uint32) uint32 {
	c := a + b
	if c > m31 {
		c -= m31
	}
	return c
}

// lfsrStep advances the LFSR by one cycle. init selects initialization mode
// (injecting u into the new cell) versus working mode.
func (c *Cipher) lfsrStep(u uint32, init bool) {
	v := addm(rotl31(c.s[0], 8), c.s[0])
	v = addm(v, rotl31(c.s[4], 20))
	v = addm(v, rotl31(c.s[10], 21))
	v = addm(v, rotl31(c.s[13], 17))
	v = addm(v, rotl31(c.s[15], 15))

	copy(c.s[0:15], c.s[1:16])
	if init {
		v = addm(v, u)
	}
	if v == 0 {
		v = m31
	}
	c.s[15] = v
}

// br performs bit reconstruction, producing the four 32-bit words the
// nonlinear function F consumes from the current LFSR state.
func (c *Cipher) br() (x0, x1, x2, x3 uint32) {
	x0 = ((c.s[15] & 0x7fff8000) << 1) | (c.s[14] & 0xffff)
	x1 = ((c.s[11] & 0xffff) << 16) | (c.s[9] >> 15)
	x2 = ((c.s[7] & 0xffff) << 16) | (c.s[5] >> 15)
	x3 = ((c.s[2] & 0xffff) << 16) | (c.s[0] >> 15)
	return
}

func l1(x uint32) uint32 {
	return x ^ rol32(x, 2) ^ rol32(x, 10) ^ rol32(x, 18) ^ rol32(x, 24)
}

func l2(x uint32) uint32 {
	return x ^ rol32(x, 8) ^ rol32(x, 14) ^ rol32(x, 22) ^ rol32(x, 30)
}

func rol32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

// sbox applies S0, S1, S0, S1 to the four bytes of x from high to low.
func sbox(x uint32) uint32 {
	b0 := s0[byte(x>>24)]
	b1 := s1[byte(x>>16)]
	b2 := s0[byte(x>>8)]
	b3 := s1[byte(x)]
	return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
}

// f is ZUC's nonlinear function: it consumes the bit-reconstruction words
// and the memory registers, updates R1/R2, and returns W.
func (c *Cipher) f(x0, x1, x2 uint32) uint32 {
	w := (x0 ^ c.r1) + c.r2
	w1 := c.r1 + x1
	w2 := c.r2 ^ x2
	c.r1 = sbox(l1((w1 << 16) | (w2 >> 16)))
	c.r2 = sbox(l2((w2 << 16) | (w1 >> 16)))
	return w
}

// New builds a ZUC engine from a 16-byte key and a 16-byte IV, running the
// standard 32-round initialization and the mandatory discard round, ready
// to emit keystream words via GenerateWords.
func New(key, iv []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	if len(iv) != IVSize {
		return nil, IVSizeError(len(iv))
	}

	c := &Cipher{}
	for i := 0; i < 16; i++ {
		c.s[i] = uint32(key[i])<<23 | d[i]<<8 | uint32(iv[i])
	}
	c.r1, c.r2 = 0, 0

	for i := 0; i < 32; i++ {
		x0, x1, x2, _ := c.br()
		w := c.f(x0, x1, x2)
		c.lfsrStep(w>>1, true)
	}

	x0, x1, x2, _ := c.br()
	c.f(x0, x1, x2)
	c.lfsrStep(0, false)

	return c, nil
}

// GenerateWords produces n 32-bit keystream words.
func (c *Cipher) GenerateWords(n int) []uint32 {
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		x0, x1, x2, x3 := c.br()
		z := c.f(x0, x1, x2) ^ x3
		c.lfsrStep(0, false)
		out[i] = z
	}
	return out
}
