// Package internal holds iterator helpers shared by the iridium packages.
package internal

import (
	"iter"
)

// SeqConcat concatenates multiple iterators into a single iterator sequence.
func SeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// SeqOptional yields the pointed-to value, or nothing for a nil pointer.
func SeqOptional[T any](value *T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if value != nil {
			yield(*value)
		}
	}
}

// SeqCount returns the number of values in a sequence.
func SeqCount[T any](seq iter.Seq[T]) (count int) {
	for range seq {
		count++
	}
	return
}
