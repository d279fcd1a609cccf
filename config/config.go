// Package config resolves a [hashing.Config] from a host configuration store.
//
// The store is read once, eagerly, by [Init]. Later changes to the store are
// not observed; call Init again and rebuild the engine to pick them up.
package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

// Keys read from the store.
const (
	KeyLogRounds           = "BCRYPT_LOG_ROUNDS"
	KeyHashPrefix          = "BCRYPT_HASH_PREFIX"
	KeyHandleLongPasswords = "BCRYPT_HANDLE_LONG_PASSWORDS"
)

// ErrInvalidValue is returned by [Init] when a stored value cannot be
// converted to the type its key requires.
var ErrInvalidValue = errors.New("config: invalid value")

// Init resolves the effective hashing configuration from store.
//
// Each key is read with get-or-set-default semantics: an existing value wins,
// otherwise the matching field of defaults is written to the store and used.
// Cost and prefix ranges are not checked here; [hashing.NewEngine] does that.
func Init(store Store, defaults hashing.Config) (hashing.Config, error) {
	var cfg hashing.Config
	var err error

	if cfg.Cost, err = toInt(store.SetDefault(KeyLogRounds, defaults.Cost)); err != nil {
		return hashing.Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, KeyLogRounds, err)
	}
	prefix, err := hashing.Normalize(store.SetDefault(KeyHashPrefix, string(defaults.Prefix)))
	if err != nil {
		return hashing.Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, KeyHashPrefix, err)
	}
	cfg.Prefix = hashing.Prefix(prefix)
	if cfg.HandleLongPasswords, err = toBool(store.SetDefault(KeyHandleLongPasswords, defaults.HandleLongPasswords)); err != nil {
		return hashing.Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, KeyHandleLongPasswords, err)
	}
	return cfg, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("%d out of range", n)
		}
		return int(n), nil
	case uint64:
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("%d out of range", n)
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(n))
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(b))
	default:
		return false, fmt.Errorf("unexpected type %T", v)
	}
}
