package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"reflect"
)

// Credential is the set of types accepted as a plaintext secret or a digest
// by the generic helpers. Text is hashed as its UTF-8 bytes, so a string and
// the equivalent []byte are interchangeable.
type Credential interface {
	~string | ~[]byte
}

// HashInfo carries metadata parsed from a bcrypt digest.
type HashInfo struct {
	// Prefix is the version tag, e.g. "2b".
	Prefix Prefix

	// Cost is the work factor the digest was produced with.
	Cost int
}

// Normalize converts v to the byte sequence that is fed to bcrypt.
//
// Strings are encoded as UTF-8 (Go strings already are, so this is a copy);
// byte slices pass through unchanged. Named types whose underlying kind is
// string or []byte are accepted as well. Any other value yields
// [ErrInvalidInputType].
//
// Normalize exists for values whose static type is unknown, such as those
// read from a configuration store. Typed code should prefer the
// [Credential]-constrained helpers.
func Normalize(v any) ([]byte, error) {
	switch t := v.(type) {
	case string:
		return []byte(t), nil
	case []byte:
		return t, nil
	case nil:
		return nil, fmt.Errorf("%w: got nil", ErrInvalidInputType)
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return []byte(rv.String()), nil
	case rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8:
		return rv.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInputType, v)
	}
}

func toBytes[T Credential](v T) []byte {
	return []byte(v)
}

// preHash returns the lowercase hex SHA-256 of password. The hex text (not
// the raw 32 bytes) is what gets hashed, which keeps NUL bytes out of bcrypt
// and matches digests already stored by other implementations.
func preHash(password []byte) []byte {
	sum := sha256.Sum256(password)
	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum[:])
	return out
}

// ParsePrefix returns the version prefix of a bcrypt digest ("$2b$12$...").
// It only inspects the header and does not validate the rest of the digest.
//
// The second return value is false when the header is not recognised.
func ParsePrefix(digest []byte) (Prefix, bool) {
	if len(digest) < 4 || digest[0] != '$' || digest[3] != '$' {
		return "", false
	}
	p := Prefix(digest[1:3])
	return p, p.Valid()
}
