// Package npoint provides an immutable N-dimensional point type generic over
// its scalar, and NTrees built on it.
//
// NTrees are an N-dimensional subdividing spacial representation.
// Common dimension-specific types are the 2-dimensional (quadtree) and
// 3-dimensional (octree) variants. This library supports an arbitrary number of
// dimensions, implemented in the same manner as those specific cases.
package npoint

import (
	"fmt"
	"math"
	"sync"

	"github.com/cznic/mathutil"
)

// Maximum number of dimensions handled by an NTree. Each subdivision allocates
// 2^N children, which is impractical well before Go's int runs out of bits.
const MaxN = 16

// Entry is a Point stored in an NTree leaf node.
type Entry struct {
	Point Point[float64]
	// Arbitrary data attached to this Entry.
	Data any
}

// NTree is a bounding box in N-dimensional space, along with an optional
// entry and children.
type NTree struct {
	// The bounding n-dimensional box for this ntree, set once on creation.
	// min and max are the exact edges; children take theirs from the
	// parent's min, center and max so no point falls between siblings.
	center, bounds Point[float64]
	min, max       Point[float64]
	// Only leaf nodes hold an entry.
	entry *Entry
	// 2^n children once subdivided.
	children []*NTree
	mutex    sync.RWMutex
	// Number of entries under this node.
	count uint64
	depth int
	cfg   *config
}

// NewTree creates an ntree root node, using N dimensional points for the
// center coordinates and relative bounds of the tree space. Bounds values
// must be positive, as they define a range of center[i] +- bounds[i] for
// each dimension.
//
// Returns an error if center and bounds don't have the same dimension, or a
// bounds dimension is <= 0 or infinite.
func NewTree(center, bounds Point[float64], opts ...Option) (*NTree, error) {
	if center.Dim() > MaxN {
		return nil, ErrTooManyDimensions
	}
	if err := checkDim(center.Dim(), bounds.Dim()); err != nil {
		return nil, fmt.Errorf("center and bounds: %w", err)
	}
	if center.Dim() == 0 {
		return nil, ErrNoDimensions
	}
	for i := 0; i < bounds.Dim(); i++ {
		// NaN fails this too.
		if b := bounds.At(i); !(b > 0) || math.IsInf(b, 1) {
			return nil, fmt.Errorf("dimension %d: %w", i, ErrInvalidBounds)
		}
	}
	return &NTree{
		center: center,
		bounds: bounds,
		min:    center.MustSub(bounds),
		max:    center.MustAdd(bounds),
		cfg:    newConfig(opts),
	}, nil
}

// newChild builds the node covering [lo, hi]. The split center is clamped
// into the box.
func newChild(lo, hi []float64, depth int, cfg *config) *NTree {
	center := make([]float64, len(lo))
	for j := range center {
		c := lo[j] + (hi[j]-lo[j])/2
		center[j] = math.Max(lo[j], math.Min(c, hi[j]))
	}
	min, max := Of(lo), Of(hi)
	return &NTree{
		center: Of(center),
		bounds: max.MustSub(min).DivScalar(2),
		min:    min,
		max:    max,
		depth:  depth,
		cfg:    cfg,
	}
}

// N returns the number of dimensions (N) for this NTree.
func (nt *NTree) N() int {
	return nt.center.Dim()
}

// Center returns the center coordinates for this NTree node.
func (nt *NTree) Center() Point[float64] {
	return nt.center
}

// Bounds returns the positive bounding dimensions from center for this NTree
// node. This node covers the entire space of Center() +- Bounds().
func (nt *NTree) Bounds() Point[float64] {
	return nt.bounds
}

// BoundPoints returns the min and max points for this NTree node.
func (nt *NTree) BoundPoints() (min, max Point[float64]) {
	return nt.min, nt.max
}

// Depth returns how many levels below the root this node sits.
func (nt *NTree) Depth() int {
	return nt.depth
}

// Entry returns the entry held by this node, or nil. Only leaf nodes hold
// one.
func (nt *NTree) Entry() *Entry {
	nt.mutex.RLock()
	defer nt.mutex.RUnlock()
	return nt.entry
}

// Count returns how many entries lie within this node.
func (nt *NTree) Count() uint64 {
	nt.mutex.RLock()
	defer nt.mutex.RUnlock()
	return nt.count
}

// Contains checks if point p is within the bounds of the ntree, edges
// included. Returns a *DimensionError if p.Dim() != nt.N().
func (nt *NTree) Contains(p Point[float64]) (bool, error) {
	if err := checkDim(nt.N(), p.Dim()); err != nil {
		return false, err
	}
	for i := 0; i < p.Dim(); i++ {
		if nt.min.At(i) > p.At(i) || nt.max.At(i) < p.At(i) {
			return false, nil
		}
	}
	return true, nil
}

// Bitwise operations on array indices are used to keep track of what subset of
// space each child occupies, as described here:
// http://www.brandonpelfrey.com/blog/coding-a-simple-octree/
func hasBit(n int, pos uint) bool {
	return n&(1<<pos) != 0
}

func setBit(n int, pos uint) int {
	return n | (1 << pos)
}

// Add inserts a new Entry into the NTree. Returns an error on any failure,
// or nil.
func (nt *NTree) Add(e *Entry) error {
	if e == nil {
		return ErrNilEntry
	}
	in, err := nt.Contains(e.Point)
	if err != nil {
		return err
	}
	if !in {
		nt.cfg.logger.Debug("ntree insert rejected",
			"point", e.Point.String(), "depth", nt.depth)
		return ErrOutOfBounds
	}
	return nt.add(e)
}

// add inserts an entry already known to lie within nt.
func (nt *NTree) add(e *Entry) error {
	nt.mutex.Lock()
	defer nt.mutex.Unlock()
	return nt.insert(e)
}

// insert must be called with nt.mutex held for writing.
func (nt *NTree) insert(e *Entry) error {
	switch {
	case nt.children != nil:
		if err := nt.children[nt.childIndex(e.Point)].add(e); err != nil {
			return err
		}
	case nt.entry == nil:
		// simplest case, add to current node
		nt.entry = e
	default:
		prev := nt.entry
		if err := nt.subdivide(); err != nil {
			return err
		}
		if err := nt.insert(e); err != nil {
			// drop the split made for e, prev goes back to this node.
			nt.children, nt.entry = nil, prev
			return err
		}
		return nil
	}
	nt.count++
	return nil
}

// childIndex generates the child bounding bitmask for p. Coordinates equal to
// the center go to the negative side.
func (nt *NTree) childIndex(p Point[float64]) int {
	var target int
	for j := 0; j < nt.N(); j++ {
		if p.At(j) > nt.center.At(j) {
			target = setBit(target, uint(j))
		}
	}
	return target
}

// subdivide creates the children of a leaf and pushes its entry down into
// them. Must be called with nt.mutex held for writing.
func (nt *NTree) subdivide() error {
	if nt.depth >= nt.cfg.maxDepth {
		nt.cfg.logger.Debug("ntree max depth reached",
			"depth", nt.depth, "point", nt.entry.Point.String())
		return fmt.Errorf("depth %d: %w", nt.depth, ErrMaxDepth)
	}
	// N <= MaxN keeps 2^N well below the modulus.
	size := mathutil.ModPowUint64(2, uint64(nt.N()), mathutil.MaxInt)
	children := make([]*NTree, size)
	for i := range children {
		// use bitmask of child index to determine dimension range for child.
		// positive bit means [center, max], otherwise [min, center].
		lo := nt.min.Coords()
		hi := nt.max.Coords()
		for j := range lo {
			if hasBit(i, uint(j)) {
				lo[j] = nt.center.At(j)
			} else {
				hi[j] = nt.center.At(j)
			}
		}
		children[i] = newChild(lo, hi, nt.depth+1, nt.cfg)
	}
	if err := children[nt.childIndex(nt.entry.Point)].add(nt.entry); err != nil {
		return err
	}
	nt.children = children
	nt.entry = nil
	nt.cfg.logger.Debug("ntree subdivided",
		"depth", nt.depth, "children", size, "center", nt.center.String())
	return nil
}
