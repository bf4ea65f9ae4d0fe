// Package sumsq computes the sum of squares of the integers 1..N.
//
// All arithmetic is int64. Sum wraps on overflow like any Go int64
// expression; SumChecked reports ErrOverflow instead.
package sumsq
