package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := engine.Verify(digest, password)
//	if errors.Is(err, hashing.ErrMalformedDigest) {
//	    // the stored digest is corrupt, not a wrong password
//	}
var (
	// ErrEmptyCredential is returned by Generate when the credential has zero
	// length. Empty secrets are rejected outright rather than hashed.
	ErrEmptyCredential = errors.New("hashing: credential must be non-empty")

	// ErrInvalidInputType is returned by [Normalize] when a value is neither
	// text nor a byte sequence.
	ErrInvalidInputType = errors.New("hashing: input must be a string or byte slice")

	// ErrMalformedDigest is returned by Verify when the supplied digest cannot
	// be parsed by bcrypt (bad prefix, cost, length or salt encoding). It is
	// never used to signal a wrong password.
	ErrMalformedDigest = errors.New("hashing: malformed bcrypt digest")

	// ErrUnsupportedPrefixOrCost is returned when the resolved version prefix
	// is not one of 2a, 2b, 2y, or the cost lies outside
	// [bcrypt.MinCost (4), bcrypt.MaxCost (31)].
	ErrUnsupportedPrefixOrCost = errors.New("hashing: unsupported bcrypt prefix or cost")

	// ErrCredentialTooLong is returned by Generate when long-password handling
	// is disabled and the credential exceeds bcrypt's 72-byte input limit.
	ErrCredentialTooLong = errors.New("hashing: credential exceeds 72 bytes; enable long-password handling")
)
