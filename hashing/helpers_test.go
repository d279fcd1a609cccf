package hashing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

func TestDefault_UsesDefaultConfig(t *testing.T) {
	t.Parallel()
	assert.Equal(t, hashing.DefaultConfig(), hashing.Default().Config())
	assert.Same(t, hashing.Default(), hashing.Default())
}

func TestGenerateHash_TextAndBytesAreInterchangeable(t *testing.T) {
	t.Parallel()
	digest, err := hashing.GenerateHash("東京", hashing.WithCost(testCost))
	require.NoError(t, err)

	ok, err := hashing.VerifyHash(digest, []byte("東京"))
	require.NoError(t, err)
	assert.True(t, ok)

	// digest passed as text, as it would come back from a database column
	ok, err = hashing.VerifyHash(string(digest), "東京")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hashing.VerifyHash(digest, "hunter2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGenerateHash_EmptyCredential(t *testing.T) {
	t.Parallel()
	_, err := hashing.GenerateHash("")
	assert.ErrorIs(t, err, hashing.ErrEmptyCredential)

	_, err = hashing.GenerateHash([]byte{})
	assert.ErrorIs(t, err, hashing.ErrEmptyCredential)
}

func TestGenerateHashContext_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	digest, err := hashing.GenerateHashContext(ctx, "secret", hashing.WithCost(testCost))
	require.NoError(t, err)

	ok, err := hashing.VerifyHashContext(ctx, digest, "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hashing.VerifyHashContext(ctx, digest, []byte("hunter2"))
	require.NoError(t, err)
	assert.False(t, ok)
}
