// Package config loads assembler settings from a Starlark file.
//
// The file is executed with the constants MEMORY_START and MEMORY_END
// predeclared, and may assign these globals:
//
//	reserved = MEMORY_START  # lowest address operand permitted, 0 disables
//	verbose = True           # log every translated line
package config

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/chip8asm/isa"
	"github.com/ezrec/chip8asm/translate"
)

var f = translate.From

var (
	ErrConfigType  = errors.New(f("wrong type"))
	ErrConfigRange = errors.New(f("out of range"))
)

// ErrConfig is an invalid configuration value.
type ErrConfig struct {
	Path string
	Key  string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v: %v", err.Path, err.Key, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Config is the assembler configuration.
type Config struct {
	Reserved uint16 // Lowest address operand permitted, if non-zero.
	Verbose  bool   // If set, verbosely logs the assembler actions.
}

// predeclared are the names visible to a configuration file.
var predeclared = starlark.StringDict{
	"MEMORY_START": starlark.MakeInt(isa.MEMORY_START),
	"MEMORY_END":   starlark.MakeInt(isa.MEMORY_END),
}

// Load executes the configuration file at path.
func Load(path string) (cfg *Config, err error) {
	return LoadSource(path, nil)
}

// LoadSource executes a configuration from src, which may be a string,
// []byte or io.Reader. If src is nil, the file at path is read.
func LoadSource(path string, src any) (cfg *Config, err error) {
	thread := &starlark.Thread{Name: path}
	opts := &syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(opts, thread, path, src, predeclared)
	if err != nil {
		return
	}

	cfg = &Config{}

	if value, ok := globals["reserved"]; ok {
		st_int, ok := value.(starlark.Int)
		if !ok {
			return nil, &ErrConfig{Path: path, Key: "reserved", Err: ErrConfigType}
		}
		st_int64, ok := st_int.Int64()
		if !ok || st_int64 < 0 || st_int64 > isa.MEMORY_END {
			return nil, &ErrConfig{Path: path, Key: "reserved", Err: ErrConfigRange}
		}
		cfg.Reserved = uint16(st_int64)
	}

	if value, ok := globals["verbose"]; ok {
		st_bool, ok := value.(starlark.Bool)
		if !ok {
			return nil, &ErrConfig{Path: path, Key: "verbose", Err: ErrConfigType}
		}
		cfg.Verbose = bool(st_bool)
	}

	return
}
