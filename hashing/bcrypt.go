package hashing

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

const (
	opGenerate = "generate"
	opVerify   = "verify"
)

// EngineOption configures an [Engine] at construction.
type EngineOption func(*Engine)

// WithPool makes the engine run its context variants on p instead of a
// private pool. Engines sharing a pool share its capacity.
func WithPool(p *Pool) EngineOption {
	return func(e *Engine) {
		if p != nil {
			e.pool = p
		}
	}
}

// Engine hashes and verifies passwords with bcrypt under a fixed [Config].
//
// bcrypt generates and stores a 128-bit random salt per digest, so callers
// never manage salts. Digests are self-describing: verification reads the
// prefix, cost and salt from the digest and needs no configuration apart
// from HandleLongPasswords.
//
// # Thread safety
//
// Engine is immutable after construction and safe for concurrent use.
// Build engines with [NewEngine]. A zero Engine can verify digests, but its
// zero Config makes Generate fail validation, and its context variants share
// a process-wide pool.
type Engine struct {
	cfg  Config
	pool *Pool
}

// NewEngine constructs an Engine with cfg as its stored defaults.
// Returns [ErrUnsupportedPrefixOrCost] if cfg does not validate.
func NewEngine(cfg Config, opts ...EngineOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.pool == nil {
		e.pool = NewPool(0)
	}
	return e, nil
}

// Config returns a copy of the engine's stored configuration.
func (e *Engine) Config() Config { return e.cfg }

// WithConfig returns a new Engine using cfg and the same worker pool.
// This is the explicit re-initialization path when host configuration
// changes; e itself is left untouched.
func (e *Engine) WithConfig(cfg Config) (*Engine, error) {
	return NewEngine(cfg, WithPool(e.pool))
}

// Generate hashes password and returns the bcrypt digest, e.g.
// "$2b$12$<22-char salt><31-char hash>". A fresh salt is drawn for every
// call, so two calls with the same password produce different digests.
//
// opts override the stored cost and prefix for this call only.
func (e *Engine) Generate(password []byte, opts ...HashOption) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyCredential
	}
	cfg := e.cfg.resolve(opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.HandleLongPasswords {
		password = preHash(password)
	}

	digest, err := bcrypt.GenerateFromPassword(password, cfg.Cost)
	if err != nil {
		var costErr bcrypt.InvalidCostError
		switch {
		case errors.Is(err, bcrypt.ErrPasswordTooLong):
			return nil, fmt.Errorf("%w (%d bytes)", ErrCredentialTooLong, len(password))
		case errors.As(err, &costErr):
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedPrefixOrCost, err)
		default:
			return nil, fmt.Errorf("hashing: bcrypt: failed to hash password: %w", err)
		}
	}
	return stampPrefix(digest, cfg.Prefix), nil
}

// Verify reports whether password matches digest.
//
// bcrypt re-derives the hash with the salt and cost embedded in digest and
// compares the two in constant time. A wrong password yields (false, nil);
// an unparseable digest yields [ErrMalformedDigest].
func (e *Engine) Verify(digest, password []byte) (bool, error) {
	if e.cfg.HandleLongPasswords {
		password = preHash(password)
	}
	err := bcrypt.CompareHashAndPassword(digest, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
	}
}

// GenerateContext is [Engine.Generate] run on the engine's worker pool.
// The calling goroutine blocks until the digest is ready or ctx is done;
// see [Pool] for the cancellation caveat. password is copied before it is
// handed to the worker, so the caller may wipe it as soon as this returns.
func (e *Engine) GenerateContext(ctx context.Context, password []byte, opts ...HashOption) ([]byte, error) {
	password = bytes.Clone(password)
	return submit(ctx, e.workers(), opGenerate, func() ([]byte, error) {
		return e.Generate(password, opts...)
	})
}

// VerifyContext is [Engine.Verify] run on the engine's worker pool.
// Like [Engine.GenerateContext], it does not retain digest or password.
func (e *Engine) VerifyContext(ctx context.Context, digest, password []byte) (bool, error) {
	digest, password = bytes.Clone(digest), bytes.Clone(password)
	return submit(ctx, e.workers(), opVerify, func() (bool, error) {
		return e.Verify(digest, password)
	})
}

// fallbackPool serves engines that were not built by NewEngine.
var fallbackPool = sync.OnceValue(func() *Pool { return NewPool(0) })

func (e *Engine) workers() *Pool {
	if e.pool == nil {
		return fallbackPool()
	}
	return e.pool
}

// NeedsRehash returns true if digest was produced with a cost or prefix
// different from the engine's stored configuration. Callers should re-hash
// the password on the next successful login when this returns true.
func (e *Engine) NeedsRehash(digest []byte) (bool, error) {
	info, err := e.Info(digest)
	if err != nil {
		return false, err
	}
	return info.Cost != e.cfg.Cost || info.Prefix != e.cfg.Prefix, nil
}

// Info extracts the prefix and work factor from a digest without verifying it.
func (e *Engine) Info(digest []byte) (HashInfo, error) {
	prefix, ok := ParsePrefix(digest)
	if !ok {
		return HashInfo{}, fmt.Errorf("%w: unrecognised version prefix", ErrMalformedDigest)
	}
	cost, err := bcrypt.Cost(digest)
	if err != nil {
		return HashInfo{}, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
	}
	return HashInfo{Prefix: prefix, Cost: cost}, nil
}

// stampPrefix rewrites the minor version of a "$2a$..." digest produced by
// x/crypto/bcrypt. 2a, 2b and 2y derive identical hashes; only the tag differs.
func stampPrefix(digest []byte, p Prefix) []byte {
	digest[2] = p[1]
	return digest
}
