package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-bcrypt/config"
	"github.com/hasbyte1/go-bcrypt/hashing"
)

func TestInit_EmptyStoreTakesDefaults(t *testing.T) {
	t.Parallel()
	store := config.MapStore{}
	cfg, err := config.Init(store, hashing.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, hashing.DefaultConfig(), cfg)

	// defaults are written back
	assert.Equal(t, 12, store[config.KeyLogRounds])
	assert.Equal(t, "2b", store[config.KeyHashPrefix])
	assert.Equal(t, false, store[config.KeyHandleLongPasswords])
}

func TestInit_StoredValuesWin(t *testing.T) {
	t.Parallel()
	store := config.MapStore{
		config.KeyLogRounds:           6,
		config.KeyHashPrefix:          []byte("2a"),
		config.KeyHandleLongPasswords: true,
	}
	cfg, err := config.Init(store, hashing.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, hashing.Config{Cost: 6, Prefix: hashing.Prefix2a, HandleLongPasswords: true}, cfg)
}

func TestInit_StringValuesAreCoerced(t *testing.T) {
	t.Parallel()
	store := config.MapStore{
		config.KeyLogRounds:           " 10 ",
		config.KeyHashPrefix:          "2y",
		config.KeyHandleLongPasswords: "true",
	}
	cfg, err := config.Init(store, hashing.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, hashing.Config{Cost: 10, Prefix: hashing.Prefix2y, HandleLongPasswords: true}, cfg)
}

func TestInit_InvalidValues(t *testing.T) {
	t.Parallel()
	cases := []config.MapStore{
		{config.KeyLogRounds: "twelve"},
		{config.KeyLogRounds: 6.5},
		{config.KeyLogRounds: []int{6}},
		{config.KeyLogRounds: int64(math.MaxInt32) + 1},
		{config.KeyLogRounds: int64(math.MinInt32) - 1},
		{config.KeyLogRounds: uint64(math.MaxInt32) + 1},
		{config.KeyHashPrefix: 2},
		{config.KeyHandleLongPasswords: "maybe"},
		{config.KeyHandleLongPasswords: 1},
	}
	for _, store := range cases {
		_, err := config.Init(store, hashing.DefaultConfig())
		assert.ErrorIs(t, err, config.ErrInvalidValue, "store %v", store)
	}

	_, err := config.Init(config.MapStore{config.KeyHashPrefix: 2}, hashing.DefaultConfig())
	assert.ErrorIs(t, err, hashing.ErrInvalidInputType)
}

func TestInit_IntegerWidths(t *testing.T) {
	t.Parallel()
	for _, v := range []any{6, int64(6), uint64(6), float64(6), "6"} {
		cfg, err := config.Init(config.MapStore{config.KeyLogRounds: v}, hashing.DefaultConfig())
		require.NoError(t, err, "value %#v", v)
		assert.Equal(t, 6, cfg.Cost, "value %#v", v)
	}
}

func TestInit_DoesNotValidateRanges(t *testing.T) {
	t.Parallel()
	cfg, err := config.Init(config.MapStore{config.KeyLogRounds: 99}, hashing.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 99, cfg.Cost)

	_, err = hashing.NewEngine(cfg)
	assert.ErrorIs(t, err, hashing.ErrUnsupportedPrefixOrCost)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bcrypt.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"BCRYPT_LOG_ROUNDS: 6\nBCRYPT_HASH_PREFIX: 2b\nBCRYPT_HANDLE_LONG_PASSWORDS: true\n"), 0o600))

	store, err := config.LoadFile(path)
	require.NoError(t, err)

	cfg, err := config.Init(store, hashing.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, hashing.Config{Cost: 6, Prefix: hashing.Prefix2b, HandleLongPasswords: true}, cfg)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	_, err := config.LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- not\n- a mapping\n"), 0o600))
	_, err = config.LoadFile(bad)
	assert.Error(t, err)
}

func TestEnvStore(t *testing.T) {
	t.Setenv(config.KeyLogRounds, "7")
	t.Setenv(config.KeyHashPrefix, "")

	env := config.NewEnvStore()
	v, ok := env.Lookup(config.KeyLogRounds)
	require.True(t, ok)
	assert.Equal(t, "7", v)

	_, ok = env.Lookup(config.KeyHashPrefix)
	assert.False(t, ok, "empty variables count as unset")

	assert.Equal(t, "2b", env.SetDefault(config.KeyHashPrefix, "2b"))
	_, ok = env.Lookup(config.KeyHashPrefix)
	assert.False(t, ok, "env store is read-only")
}

func TestChain_Precedence(t *testing.T) {
	t.Setenv(config.KeyLogRounds, "8")

	file := config.MapStore{
		config.KeyLogRounds:  5,
		config.KeyHashPrefix: "2a",
	}
	cfg, err := config.Init(config.Chain{config.NewEnvStore(), file}, hashing.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, hashing.Config{Cost: 8, Prefix: hashing.Prefix2a}, cfg)

	// the missing key landed in the last store
	assert.Equal(t, false, file[config.KeyHandleLongPasswords])
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()
	cfg, err := config.Init(config.Chain{}, hashing.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, hashing.DefaultConfig(), cfg)
}
