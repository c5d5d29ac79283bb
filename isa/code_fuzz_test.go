package isa

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzParseRaw(f *testing.F) {
	for _, seed := range []string{"00EE", "1200", "fa65", " 6105", "0x12", "ret", ""} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		high, low, ok := ParseRaw(line)
		if !ok {
			return
		}

		text := strings.TrimSpace(line)
		assert.Equal(4, len(text))

		value, err := strconv.ParseUint(text, 16, 16)
		assert.NoError(err)
		assert.Equal(value, uint64(high)*256+uint64(low))
	})
}

func FuzzCodeString(f *testing.F) {
	f.Add(uint16(0))
	f.Add(uint16(0x00ee))
	f.Add(uint16(0xffff))

	f.Fuzz(func(t *testing.T, word uint16) {
		assert := assert.New(t)

		code, ok := ParseCode(Code(word).String())
		assert.True(ok)
		assert.Equal(Code(word), code)
	})
}
