// Package capacity implements the amortized growth and shrink policy shared by
// the growable containers.
//
// All arithmetic is checked against an explicit upper bound before it is
// performed, so a result that would not fit is reported as [ErrOverflow]
// instead of silently wrapping.
package capacity

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// Floor is the initial capacity of every container and the lower bound
	// that shrinking never goes below.
	Floor = 8
	// GrowthFactor is the multiplier applied to the capacity on growth.
	GrowthFactor = 2
	// Increment is the fallback growth step used when multiplying by
	// GrowthFactor would overflow.
	Increment = 1 << 5
)

// ErrOverflow is returned if a result would have exceeded its bound.
var ErrOverflow = errors.New("overflow")

// MulBounded returns a*b if the product does not exceed limit, otherwise
// ErrOverflow. Operands must be non-negative.
func MulBounded[T constraints.Integer](a, b, limit T) (T, error) {
	if b != 0 && a > limit/b {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// AddBounded returns a+b if the sum does not exceed limit, otherwise
// ErrOverflow. Operands must be non-negative.
func AddBounded[T constraints.Integer](a, b, limit T) (T, error) {
	if b > limit || a > limit-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Policy decides the next capacity of a container.
type Policy struct {
	// Floor is the smallest capacity the container ever has.
	Floor int
	// Max is the largest representable capacity. Growth past it overflows.
	Max int
}

// Default returns the policy with the standard floor and the full int range.
func Default() Policy {
	return Policy{Floor: Floor, Max: math.MaxInt}
}

// WithMax returns a copy of p bounded by limit. A limit below the floor is
// raised to the floor.
func (p Policy) WithMax(limit int) Policy {
	if limit < p.Floor {
		limit = p.Floor
	}
	p.Max = limit

	return p
}

// Grow returns the capacity that should replace cur.
//
// It doubles cur, falls back to cur+Increment if doubling overflows, and
// returns ErrOverflow if that overflows too.
func (p Policy) Grow(cur int) (int, error) {
	if next, err := MulBounded(cur, GrowthFactor, p.Max); err == nil {
		return next, nil
	}

	next, err := AddBounded(cur, Increment, p.Max)
	if err != nil {
		return 0, err
	}

	return next, nil
}

// Shrink reports whether a container of capacity cur holding size elements
// should shrink, and to what capacity. Half the capacity must stay at or
// above the floor and size must be below that half.
func (p Policy) Shrink(cur, size int) (int, bool) {
	half := cur / GrowthFactor
	if half < p.Floor || size >= half {
		return cur, false
	}

	return half, true
}
