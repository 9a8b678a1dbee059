package keypair

import "fmt"

type EmptyPublicKeyError struct {
}

func (e EmptyPublicKeyError) Error() string {
	return "public key cannot be empty"
}

type EmptyPrivateKeyError struct {
}

func (e EmptyPrivateKeyError) Error() string {
	return "private key cannot be empty"
}

type InvalidPublicKeyError struct {
	Err error
}

func (e InvalidPublicKeyError) Error() string {
	if e.Err == nil {
		return "invalid public key"
	}
	return fmt.Sprintf("invalid public key: %v", e.Err)
}

type InvalidPrivateKeyError struct {
	Err error
}

func (e InvalidPrivateKeyError) Error() string {
	if e.Err == nil {
		return "invalid private key"
	}
	return fmt.Sprintf(" invalid private key: %v", e.Err)
}

// EmptySignatureError reports that Verify was called with no signature
// to check.
type EmptySignatureError struct{}

func (e EmptySignatureError) Error() string {
	return "no signature provided for verification"
}
