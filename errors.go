package sigma

import "errors"

var (
	// ErrArityMismatch is returned by Compile when f and psi produce a
	// different number of outputs.
	ErrArityMismatch = errors.New("sigma: f and psi output arity mismatch")

	// ErrInvalidField is returned by Compile when the field declarations
	// are inconsistent (duplicate identifiers, non-scalar witness field).
	ErrInvalidField = errors.New("sigma: invalid field declaration")

	// ErrUndeclaredVariable is returned by Compile when f or psi
	// references a variable that is not a declared field of the matching
	// role. Catching this at compile time is what makes Prove total.
	ErrUndeclaredVariable = errors.New("sigma: expression references an undeclared field")

	// ErrMalformedProof is returned when proof bytes fail the length or
	// canonical-decoding checks. It is recoverable by the caller and is
	// the only error the decode path produces.
	ErrMalformedProof = errors.New("sigma: malformed proof")

	// ErrVerificationFailed is returned when a well-formed proof does not
	// satisfy the verification equation. Distinct from ErrMalformedProof:
	// the bytes decoded, the statement is simply not proven.
	ErrVerificationFailed = errors.New("sigma: proof verification failed")
)
