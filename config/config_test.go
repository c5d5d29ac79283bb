package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8asm/isa"
)

func TestLoadSource(t *testing.T) {
	assert := assert.New(t)

	cfg, err := LoadSource("test.star", "")
	assert.NoError(err)
	assert.Equal(&Config{}, cfg)

	cfg, err = LoadSource("test.star", "reserved = MEMORY_START\nverbose = True\n")
	assert.NoError(err)
	assert.Equal(&Config{Reserved: isa.MEMORY_START, Verbose: true}, cfg)

	cfg, err = LoadSource("test.star", "base = 0x100\nreserved = base * 2\n")
	assert.NoError(err)
	assert.Equal(uint16(0x200), cfg.Reserved)
	assert.False(cfg.Verbose)
}

func TestLoadSource_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		src string
		key string
		err error
	}{
		{`reserved = "0x200"`, "reserved", ErrConfigType},
		{`reserved = -1`, "reserved", ErrConfigRange},
		{`reserved = MEMORY_END + 1`, "reserved", ErrConfigRange},
		{`verbose = 1`, "verbose", ErrConfigType},
	}

	for _, entry := range table {
		cfg, err := LoadSource("test.star", entry.src)
		assert.Nil(cfg, entry.src)
		assert.ErrorIs(err, entry.err, entry.src)

		var config *ErrConfig
		if assert.ErrorAs(err, &config, entry.src) {
			assert.Equal(entry.key, config.Key)
			assert.Equal("test.star", config.Path)
		}
	}

	_, err := LoadSource("test.star", "reserved = ")
	assert.Error(err)

	_, err = LoadSource("test.star", "reserved = UNDEFINED")
	assert.Error(err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "chip8asm.star")
	err := os.WriteFile(path, []byte("reserved = 0x200\n"), 0o644)
	assert.NoError(err)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(uint16(0x200), cfg.Reserved)

	_, err = Load(filepath.Join(t.TempDir(), "missing.star"))
	assert.Error(err)
}
