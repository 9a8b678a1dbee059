// Package keypair manages SM2 key pairs: generate, parse and format keys.
// Keys are raw big-endian scalars/points (no ASN.1/PEM); ciphertext is
// always assembled as C1 || C3 || C2.
package keypair
