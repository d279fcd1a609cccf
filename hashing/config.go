package hashing

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Prefix is a bcrypt version tag such as "2b". It is embedded in every digest
// between the first two '$' separators.
type Prefix string

const (
	// Prefix2a is the original OpenBSD revision with UTF-8 and NUL handling fixed.
	Prefix2a Prefix = "2a"
	// Prefix2b is the current OpenBSD revision (wrap-around fix for long keys).
	Prefix2b Prefix = "2b"
	// Prefix2y is the crypt_blowfish (PHP) spelling of 2b.
	Prefix2y Prefix = "2y"
)

const (
	// DefaultCost is the work factor used when none is configured.
	// At cost 12, hashing takes approximately 250 ms on a modern server CPU,
	// which satisfies OWASP ASVS Level 2.
	DefaultCost = 12

	// DefaultPrefix is the version prefix used when none is configured.
	DefaultPrefix = Prefix2b
)

// Valid reports whether p is one of the accepted version prefixes.
func (p Prefix) Valid() bool {
	switch p {
	case Prefix2a, Prefix2b, Prefix2y:
		return true
	default:
		return false
	}
}

// Config holds the effective hashing policy of an [Engine].
//
// A Config is a plain value: an Engine keeps its own copy and per-call
// [HashOption]s produce a new value instead of mutating it.
type Config struct {
	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [bcrypt.MinCost (4), bcrypt.MaxCost (31)]. Default: 12.
	Cost int

	// Prefix is the version tag written into new digests. Default: "2b".
	Prefix Prefix

	// HandleLongPasswords replaces every credential by the lowercase hex
	// SHA-256 digest of its bytes before it reaches bcrypt, so input beyond
	// 72 bytes is no longer truncated.
	//
	// WARNING: this is a one-way switch. Digests produced with the flag
	// enabled only verify with the flag enabled, and vice versa. Toggling it
	// on an existing deployment breaks every stored digest.
	HandleLongPasswords bool
}

// DefaultConfig returns {Cost: 12, Prefix: "2b", HandleLongPasswords: false}.
func DefaultConfig() Config {
	return Config{
		Cost:   DefaultCost,
		Prefix: DefaultPrefix,
	}
}

// Validate returns [ErrUnsupportedPrefixOrCost] if the cost or prefix would
// be rejected (or silently rewritten) by bcrypt.
func (c Config) Validate() error {
	if c.Cost < bcrypt.MinCost || c.Cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: cost %d must be in [%d, %d]",
			ErrUnsupportedPrefixOrCost, c.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if !c.Prefix.Valid() {
		return fmt.Errorf("%w: prefix %q must be one of 2a, 2b, 2y",
			ErrUnsupportedPrefixOrCost, string(c.Prefix))
	}
	return nil
}

// HashOption overrides a stored [Config] value for a single Generate call.
type HashOption func(*Config)

// WithCost overrides the work factor for one call.
func WithCost(cost int) HashOption {
	return func(c *Config) { c.Cost = cost }
}

// WithPrefix overrides the version prefix for one call.
func WithPrefix(p Prefix) HashOption {
	return func(c *Config) { c.Prefix = p }
}

// resolve layers opts over c. c is received by value so the caller's copy is
// never touched.
func (c Config) resolve(opts []HashOption) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
