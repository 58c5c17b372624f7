package keycloak

import (
	"errors"
	"fmt"
)

// EncryptionConfigurationError indicates that a signed token response
// required verification but the algorithm/key configuration is incomplete.
// This is a configuration defect: it is fatal to the call and never
// retried.
type EncryptionConfigurationError struct {
	Message string
}

// Error implements the error interface.
func (e *EncryptionConfigurationError) Error() string {
	return "keycloak: " + e.Message
}

// errUndeterminedEncryption is returned when an encoded response arrives
// without a configured verification algorithm and key.
func errUndeterminedEncryption() *EncryptionConfigurationError {
	return &EncryptionConfigurationError{Message: "undetermined encryption"}
}

// IsEncryptionConfigurationError reports whether the error chain contains
// an *EncryptionConfigurationError.
func IsEncryptionConfigurationError(err error) bool {
	var e *EncryptionConfigurationError
	return errors.As(err, &e)
}

// SignatureVerificationError indicates that cryptographic verification of
// a signed token response failed: bad signature, disallowed algorithm, or
// time-based claims outside the leeway window.
type SignatureVerificationError struct {
	Cause error
}

// Error implements the error interface.
func (e *SignatureVerificationError) Error() string {
	return fmt.Sprintf("keycloak: signature verification failed: %v", e.Cause)
}

// Unwrap returns the underlying verification failure.
func (e *SignatureVerificationError) Unwrap() error {
	return e.Cause
}

// IsSignatureVerificationError reports whether the error chain contains a
// *SignatureVerificationError.
func IsSignatureVerificationError(err error) bool {
	var e *SignatureVerificationError
	return errors.As(err, &e)
}
