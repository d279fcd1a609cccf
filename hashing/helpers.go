package hashing

import (
	"context"
	"sync"
)

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := NewEngine(DefaultConfig())
	if err != nil {
		panic(err) // DefaultConfig always validates
	}
	return e
})

// Default returns a shared Engine configured with [DefaultConfig].
// It never reads host configuration; build an Engine with [NewEngine] for that.
func Default() *Engine { return defaultEngine() }

// GenerateHash hashes password with the default engine.
//
//	digest, err := hashing.GenerateHash("hunter2", hashing.WithCost(10))
func GenerateHash[T Credential](password T, opts ...HashOption) ([]byte, error) {
	return Default().Generate(toBytes(password), opts...)
}

// VerifyHash checks password against digest with the default engine.
// A string digest and its []byte form are interchangeable.
func VerifyHash[D, P Credential](digest D, password P) (bool, error) {
	return Default().Verify(toBytes(digest), toBytes(password))
}

// GenerateHashContext is [GenerateHash] run on the default engine's pool.
func GenerateHashContext[T Credential](ctx context.Context, password T, opts ...HashOption) ([]byte, error) {
	return Default().GenerateContext(ctx, toBytes(password), opts...)
}

// VerifyHashContext is [VerifyHash] run on the default engine's pool.
func VerifyHashContext[D, P Credential](ctx context.Context, digest D, password P) (bool, error) {
	return Default().VerifyContext(ctx, toBytes(digest), toBytes(password))
}
