package logger

import (
	"os"

	"github.com/pkg/errors"

	"github.com/philipp01105/flaglog/core"
)

// Environment variables read by FromEnv
const (
	EnvLevel  = "LOG_LEVEL"
	EnvFlags  = "LOG_FLAGS"
	EnvPrefix = "LOG_PREFIX"
)

// FromEnv returns a Builder preset from LOG_LEVEL, LOG_FLAGS and
// LOG_PREFIX. Unset variables keep the NewBuilder defaults.
//
//	LOG_LEVEL=warn LOG_FLAGS=std|shortfile LOG_PREFIX="api: " ./server
func FromEnv() (*Builder, error) {
	b := NewBuilder()

	if v, ok := os.LookupEnv(EnvLevel); ok && v != "" {
		level, valid := core.ParseLevel(v)
		if !valid {
			return nil, errors.Errorf("%s: unknown level %q", EnvLevel, v)
		}
		b.WithLevel(level)
	}

	if v, ok := os.LookupEnv(EnvFlags); ok {
		flags, err := core.ParseFlags(v)
		if err != nil {
			return nil, errors.Wrap(err, EnvFlags)
		}
		b.WithFlags(flags)
	}

	if v, ok := os.LookupEnv(EnvPrefix); ok {
		b.WithPrefix(v)
	}

	return b, nil
}
