// Package hashing provides bcrypt password hashing with a small, explicit
// policy layer on top of golang.org/x/crypto/bcrypt.
//
// # Architecture
//
// A [Config] holds the policy: cost factor, version prefix and the
// long-password flag. An [Engine] is built once from a Config and is
// immutable afterwards; per-call [HashOption]s ([WithCost], [WithPrefix])
// layer over the stored values without changing them.
//
// Every Engine operation has a blocking form ([Engine.Generate],
// [Engine.Verify]) and a context form ([Engine.GenerateContext],
// [Engine.VerifyContext]) that runs the CPU-bound bcrypt call on a bounded
// worker [Pool].
//
// # Quick start
//
//	e, err := hashing.NewEngine(hashing.DefaultConfig()) // cost 12, prefix 2b
//	if err != nil { log.Fatal(err) }
//
//	digest, _ := e.Generate([]byte("my-secret-password"))
//	ok, _     := e.Verify(digest, []byte("my-secret-password")) // true
//
// The generic helpers [GenerateHash] and [VerifyHash] accept strings or
// byte slices and use [Default].
//
// # Errors
//
// A wrong password is reported as (false, nil). Errors mean malformed input:
// [ErrEmptyCredential], [ErrInvalidInputType], [ErrMalformedDigest],
// [ErrUnsupportedPrefixOrCost] or [ErrCredentialTooLong]. Nothing is retried
// and nothing is logged.
//
// # Long passwords
//
// bcrypt only uses the first 72 bytes of its input. x/crypto/bcrypt refuses
// to hash longer input ([ErrCredentialTooLong]) and ignores the excess when
// verifying. Setting [Config.HandleLongPasswords] replaces the credential by
// the lowercase hex SHA-256 of its bytes before bcrypt sees it, so the whole
// input counts.
//
// Deployments migrating from implementations that silently truncate long
// input (older bcrypt bindings) keep verifying existing digests: the excess
// is still ignored on verify. New credentials over 72 bytes must be
// shortened by the caller, or the deployment must be new enough to enable
// HandleLongPasswords from the start.
//
// WARNING: the flag must never change on a deployment with stored digests.
// Enabling it breaks verification of every digest produced without it, and
// disabling it breaks every digest produced with it.
package hashing
