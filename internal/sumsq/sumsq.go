package sumsq

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a total leaves the int64 range.
var ErrOverflow = errors.New("int64 overflow")

const (
	// maxSquareRoot is the largest x for which x*x fits in an int64.
	maxSquareRoot = 3037000499

	// MaxBound is the largest n for which Sum(n) fits in an int64.
	MaxBound int64 = 3024616
)

// Square returns x*x.
func Square(x int64) int64 {
	return x * x
}

// Sum returns the sum of Square(i) for i in 1..n, ascending. A bound of zero
// or less yields an empty range and a total of 0.
func Sum(n int64) int64 {
	var total int64
	fold(1, n, func(_, sq int64) { total += sq })
	return total
}

// Partials returns the running totals of Sum(n): element k-1 holds Sum(k).
// Bounds above MaxBound return ErrOverflow before anything is allocated.
func Partials(n int64) ([]int64, error) {
	if n > MaxBound {
		return nil, fmt.Errorf("partials up to %d exceed bound %d: %w", n, MaxBound, ErrOverflow)
	}
	if n <= 0 {
		return []int64{}, nil
	}
	out := make([]int64, 0, n)
	var total int64
	fold(1, n, func(_, sq int64) {
		total += sq
		out = append(out, total)
	})
	return out, nil
}

// SumChecked is Sum with overflow detection. The returned error wraps
// ErrOverflow and names the first term that did not fit.
func SumChecked(n int64) (int64, error) {
	var total int64
	for i := int64(1); i <= n; i++ {
		if i > maxSquareRoot {
			return 0, fmt.Errorf("squaring term %d: %w", i, ErrOverflow)
		}
		sq := Square(i)
		if total > math.MaxInt64-sq {
			return 0, fmt.Errorf("adding term %d: %w", i, ErrOverflow)
		}
		total += sq
	}
	return total, nil
}

// fold calls visit with each i in lo..hi and its square, ascending. It stops
// on i == hi so a bound of math.MaxInt64 cannot wrap the counter.
func fold(lo, hi int64, visit func(i, sq int64)) {
	if lo > hi {
		return
	}
	for i := lo; ; i++ {
		visit(i, Square(i))
		if i == hi {
			return
		}
	}
}
