// Package common defines shared constants and sentinel errors used across
// the client and server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Lookup errors (unknown user name or challenge token).
	ErrorNotFound = errors.New("not found")

	// ErrorVerificationFailed means the lookup succeeded but the
	// cryptographic check did not. This is an expected negative protocol
	// outcome, not a system fault.
	ErrorVerificationFailed = errors.New("verification failed")

	// Catch-all for anything else; fatal to the single call only.
	ErrorInternal = errors.New("internal error")
)
