package zuc

import "fmt"

// KeySizeError represents an error when the ZUC key size is invalid.
// ZUC keys must be exactly 16 bytes (128 bits).
type KeySizeError int

// Error returns the error message for KeySizeError.
func (k KeySizeError) Error() string {
	return fmt.Sprintf("crypto/zuc: invalid key size %d, key must be 16 bytes", int(k))
}

// IVSizeError represents an error when the ZUC IV size is invalid.
// ZUC IVs must be exactly 16 bytes (128 bits).
type IVSizeError int

// Error returns the error message for IVSizeError.
func (i IVSizeError) Error() string {
	return fmt.Sprintf("crypto/zuc: invalid iv size %d, iv must be 16 bytes", int(i))
}

// LengthError represents an error when a bit length argument is invalid,
// e.g. negative or larger than the supplied buffer can hold.
type LengthError int

// Error returns the error message for LengthError.
func (l LengthError) Error() string {
	return fmt.Sprintf("crypto/zuc: invalid length %d bits", int(l))
}
