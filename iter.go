package encode

import (
	"iter"
	"slices"
)

// Iter encodes every item of a sequence back to back, with no separator.
// It stops at the first failure. Items must be re-iterable, since SizeOf
// and the real encode each walk it once.
type Iter[D Destination, E Encodable[D]] struct {
	Items iter.Seq[E]
}

// NewIter returns an Iter over items.
func NewIter[D Destination, E Encodable[D]](items iter.Seq[E]) Iter[D, E] {
	return Iter[D, E]{Items: items}
}

// IterSlice returns an Iter over the elements of s.
func IterSlice[D Destination, E Encodable[D]](s []E) Iter[D, E] {
	return Iter[D, E]{Items: slices.Values(s)}
}

func (it Iter[D, E]) Encode(dst D) error {
	if it.Items == nil {
		return nil
	}
	for item := range it.Items {
		if err := item.Encode(dst); err != nil {
			return err
		}
	}
	return nil
}
