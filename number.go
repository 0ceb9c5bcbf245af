package npoint

import "golang.org/x/exp/constraints"

// Number is the set of scalar types a Point can hold. Every member converts
// to float64 and supports the four arithmetic operators.
type Number interface {
	constraints.Integer | constraints.Float
}
