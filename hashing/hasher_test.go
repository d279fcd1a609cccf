package hashing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

type secretText string

type secretBytes []byte

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("string is utf-8 encoded", func(t *testing.T) {
		t.Parallel()
		b, err := hashing.Normalize("☃")
		require.NoError(t, err)
		assert.Equal(t, []byte{0xe2, 0x98, 0x83}, b)
	})

	t.Run("bytes pass through", func(t *testing.T) {
		t.Parallel()
		in := []byte{0x00, 0xff, 'a'}
		b, err := hashing.Normalize(in)
		require.NoError(t, err)
		assert.Equal(t, in, b)
	})

	t.Run("named types", func(t *testing.T) {
		t.Parallel()
		b, err := hashing.Normalize(secretText("pw"))
		require.NoError(t, err)
		assert.Equal(t, []byte("pw"), b)

		b, err = hashing.Normalize(secretBytes("pw"))
		require.NoError(t, err)
		assert.Equal(t, []byte("pw"), b)

		b, err = hashing.Normalize(hashing.Prefix2y)
		require.NoError(t, err)
		assert.Equal(t, []byte("2y"), b)
	})

	t.Run("other types are rejected", func(t *testing.T) {
		t.Parallel()
		for _, v := range []any{nil, 42, 3.14, true, []int{1}, []rune("pw"), struct{}{}} {
			_, err := hashing.Normalize(v)
			assert.ErrorIs(t, err, hashing.ErrInvalidInputType, "value %#v", v)
		}
	})
}

func TestParsePrefix(t *testing.T) {
	t.Parallel()
	cases := []struct {
		digest string
		want   hashing.Prefix
		ok     bool
	}{
		{"$2a$10$abc", hashing.Prefix2a, true},
		{"$2b$12$abc", hashing.Prefix2b, true},
		{"$2y$04$abc", hashing.Prefix2y, true},
		{"$2x$04$abc", "", false},
		{"$argon2id$v=19", "", false},
		{"2b$12$", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := hashing.ParsePrefix([]byte(tc.digest))
		assert.Equal(t, tc.ok, ok, "digest %q", tc.digest)
		if tc.ok {
			assert.Equal(t, tc.want, got, "digest %q", tc.digest)
		}
	}
}
