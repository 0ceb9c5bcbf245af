package npoint

import "fmt"

// Iter runs function f on every node in the tree, parents before their
// children. No node is locked while f runs.
func (nt *NTree) Iter(f func(n *NTree)) {
	for _, n := range nt.nodes(nil) {
		f(n)
	}
}

func (nt *NTree) nodes(acc []*NTree) []*NTree {
	acc = append(acc, nt)
	nt.mutex.RLock()
	children := nt.children
	nt.mutex.RUnlock()
	for _, child := range children {
		acc = child.nodes(acc)
	}
	return acc
}

// Search finds all Entries falling within the bounding box between min and
// max. It is assumed for every dimension i, min[i] <= max[i].
// This is an inclusive search, so Entries whose coordinates are equal to
// the supplied bounds in a given dimension will match.
//
// Returns nil, error if the dimension of min or max doesn't match nt.N().
func (nt *NTree) Search(min, max Point[float64]) ([]*Entry, error) {
	if err := checkDim(nt.N(), min.Dim()); err != nil {
		return nil, fmt.Errorf("search min: %w", err)
	}
	if err := checkDim(nt.N(), max.Dim()); err != nil {
		return nil, fmt.Errorf("search max: %w", err)
	}
	return nt.search(min, max), nil
}

func (nt *NTree) search(min, max Point[float64]) []*Entry {
	nt.mutex.RLock()
	defer nt.mutex.RUnlock()
	if nt.children == nil {
		if nt.entry != nil && within(nt.entry.Point, min, max) {
			return []*Entry{nt.entry}
		}
		return nil
	}
	var entries []*Entry
	for _, child := range nt.children {
		if !child.overlaps(min, max) {
			continue
		}
		entries = append(entries, child.search(min, max)...)
	}
	return entries
}

// overlaps reports whether this node's box intersects [min, max].
func (nt *NTree) overlaps(min, max Point[float64]) bool {
	for i := 0; i < nt.N(); i++ {
		if nt.max.At(i) < min.At(i) || nt.min.At(i) > max.At(i) {
			return false
		}
	}
	return true
}

func within(p, min, max Point[float64]) bool {
	for i := 0; i < p.Dim(); i++ {
		if p.At(i) < min.At(i) || p.At(i) > max.At(i) {
			return false
		}
	}
	return true
}
