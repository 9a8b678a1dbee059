package sm2

import (
	"errors"
	"fmt"

	"github.com/gmsuite/gmcrypto/hash/sm3"
)

// Numeric error codes preserved for on-the-wire / boundary compatibility
// with the reference implementation. Two pairs collide on purpose: 5
// means both "field element out of range" and "KDF output all zero", 6
// means both "degenerate r" and "C3 tag mismatch". Callers that need to
// distinguish these cases should match on the Go error value, not the
// code.
const (
	CodeCurveInit       = 1
	CodeInfinityPoint   = 2
	CodeNotValidPoint   = 3
	CodeOrder           = 4
	CodeNotValidElement = 5
	CodeGenerateR       = 6
	CodeGenerateS       = 7
	CodeOutRangeR       = 8
	CodeOutRangeS       = 9
	CodeGenerateT       = 10
	CodePubkeyInit      = 11
	CodeDataMemcmp      = 12
)

// Error is the internal SM2 core's error type: a short message plus the
// numeric code from the reference implementation's error table.
type Error struct {
	code int
	msg  string
}

// Error returns a human-readable description of the failure.
func (e *Error) Error() string {
	return fmt.Sprintf("sm2: %s", e.msg)
}

// Code returns the reference implementation's numeric error code.
func (e *Error) Code() int { return e.code }

var (
	ErrCurveInit       = &Error{CodeCurveInit, "curve initialization failed"}
	ErrInfinityPoint   = &Error{CodeInfinityPoint, "point at infinity"}
	ErrNotValidPoint   = &Error{CodeNotValidPoint, "point is not on the curve"}
	ErrOrder           = &Error{CodeOrder, "point does not have order n"}
	ErrNotValidElement = &Error{CodeNotValidElement, "field element out of range"}
	ErrZeroKDF         = &Error{CodeNotValidElement, "derived key stream is all zero"}
	ErrGenerateR       = &Error{CodeGenerateR, "degenerate signature r"}
	ErrC3Mismatch      = &Error{CodeGenerateR, "C3 tag does not match"}
	ErrGenerateS       = &Error{CodeGenerateS, "degenerate signature s"}
	ErrOutRangeR       = &Error{CodeOutRangeR, "signature r out of range"}
	ErrOutRangeS       = &Error{CodeOutRangeS, "signature s out of range"}
	ErrGenerateT       = &Error{CodeGenerateT, "degenerate verification t"}
	ErrPubkeyInit      = &Error{CodePubkeyInit, "public key is invalid"}
	ErrDataMemcmp      = &Error{CodeDataMemcmp, "confirmation value mismatch"}
)

// kdfError maps sm3.KDF's all-zero-output failure onto this package's own
// ErrZeroKDF (code 5, the same collision spec.md section 9 documents for
// "field element out of range"), so callers matching on this package's
// Error values see one consistent error namespace instead of reaching
// into hash/sm3 directly. Any other error (there currently are none) is
// passed through unchanged.
func kdfError(err error) error {
	if errors.Is(err, sm3.ErrZeroKDF) {
		return ErrZeroKDF
	}
	return err
}
