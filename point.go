package npoint

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Point is an immutable, ordered N-dimensional vector of T. Its dimension is
// fixed when it is built and every arithmetic method returns a new Point.
// The zero value is a 0-dimensional point.
type Point[T Number] struct {
	coords []T
}

// New creates a Point from the given coordinates. The coordinates are copied,
// so the caller may reuse the backing slice.
func New[T Number](coords ...T) Point[T] {
	return Point[T]{coords: slices.Clone(coords)}
}

// Of is New for a slice held by the caller.
func Of[T Number](coords []T) Point[T] {
	return New(coords...)
}

// Dim returns the number of coordinates.
func (p Point[T]) Dim() int {
	return len(p.coords)
}

// Dist returns the Euclidean norm of p, computed in float64.
func (p Point[T]) Dist() float64 {
	var sum float64
	for _, c := range p.coords {
		f := float64(c)
		sum += f * f
	}
	return math.Sqrt(sum)
}

// Apply calls f with a copy of the coordinates and returns its result.
func (p Point[T]) Apply(f func(coords []T) float64) float64 {
	return f(p.Coords())
}

// Coords returns a copy of the coordinates.
func (p Point[T]) Coords() []T {
	return slices.Clone(p.coords)
}

// At returns coordinate i. It panics if i is out of range.
func (p Point[T]) At(i int) T {
	return p.coords[i]
}

// Equal reports whether p and q have the same dimension and coordinates.
func (p Point[T]) Equal(q Point[T]) bool {
	return slices.Equal(p.coords, q.coords)
}

func (p Point[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, c)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Add returns p + q elementwise. It fails with a *DimensionError when the
// dimensions differ.
func (p Point[T]) Add(q Point[T]) (Point[T], error) {
	return p.zip(q, func(a, b T) T { return a + b })
}

// Sub returns p - q elementwise.
func (p Point[T]) Sub(q Point[T]) (Point[T], error) {
	return p.zip(q, func(a, b T) T { return a - b })
}

// Mul returns the elementwise product of p and q.
func (p Point[T]) Mul(q Point[T]) (Point[T], error) {
	return p.zip(q, func(a, b T) T { return a * b })
}

// MustAdd is like Add but panics on a dimension mismatch.
func (p Point[T]) MustAdd(q Point[T]) Point[T] {
	return must(p.Add(q))
}

// MustSub is like Sub but panics on a dimension mismatch.
func (p Point[T]) MustSub(q Point[T]) Point[T] {
	return must(p.Sub(q))
}

// MustMul is like Mul but panics on a dimension mismatch.
func (p Point[T]) MustMul(q Point[T]) Point[T] {
	return must(p.Mul(q))
}

// AddScalar adds s to every coordinate.
func (p Point[T]) AddScalar(s T) Point[T] {
	return p.each(func(a T) T { return a + s })
}

// SubScalar subtracts s from every coordinate.
func (p Point[T]) SubScalar(s T) Point[T] {
	return p.each(func(a T) T { return a - s })
}

// MulScalar multiplies every coordinate by s.
func (p Point[T]) MulScalar(s T) Point[T] {
	return p.each(func(a T) T { return a * s })
}

// DivScalar divides every coordinate by s using T's division, so integer
// points truncate and an integer s of 0 panics.
func (p Point[T]) DivScalar(s T) Point[T] {
	return p.each(func(a T) T { return a / s })
}

func (p Point[T]) zip(q Point[T], op func(a, b T) T) (Point[T], error) {
	if err := checkDim(p.Dim(), q.Dim()); err != nil {
		return Point[T]{}, err
	}
	out := make([]T, len(p.coords))
	for i := range p.coords {
		out[i] = op(p.coords[i], q.coords[i])
	}
	return Point[T]{coords: out}, nil
}

func (p Point[T]) each(op func(a T) T) Point[T] {
	out := make([]T, len(p.coords))
	for i, c := range p.coords {
		out[i] = op(c)
	}
	return Point[T]{coords: out}
}

func must[T Number](p Point[T], err error) Point[T] {
	if err != nil {
		panic(err)
	}
	return p
}
