package internal

import (
	"bufio"
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterLines yields each line of the scanner, numbered from 1.
// The caller must check scanner.Err() once the sequence is exhausted.
func IterLines(scanner *bufio.Scanner) iter.Seq2[int, string] {
	return func(yield func(lineno int, line string) bool) {
		lineno := 0
		for scanner.Scan() {
			lineno++
			if !yield(lineno, scanner.Text()) {
				return
			}
		}
	}
}
