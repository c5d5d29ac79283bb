package internal

import (
	"bufio"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)
}

func TestIterLines(t *testing.T) {
	assert := assert.New(t)

	scanner := bufio.NewScanner(strings.NewReader("goto 0x200\n\n00EE\n"))

	var linenos []int
	var lines []string
	for lineno, line := range IterLines(scanner) {
		linenos = append(linenos, lineno)
		lines = append(lines, line)
	}

	assert.NoError(scanner.Err())
	assert.Equal([]int{1, 2, 3}, linenos)
	assert.Equal([]string{"goto 0x200", "", "00EE"}, lines)
}
