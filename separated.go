package encode

import (
	"iter"
	"slices"
)

// Separated encodes the items of a sequence with Sep between each pair:
// nothing for zero items, no separator for one item. The first failure
// from an item or a separator stops the encode.
type Separated[D Destination, E Encodable[D], S Encodable[D]] struct {
	Items iter.Seq[E]
	Sep   S
}

// NewSeparated returns a Separated over items.
func NewSeparated[D Destination, E Encodable[D], S Encodable[D]](items iter.Seq[E], sep S) Separated[D, E, S] {
	return Separated[D, E, S]{Items: items, Sep: sep}
}

// SeparatedSlice joins the elements of s with sep.
//
//	encode.SeparatedSlice[encode.StringDestination](words, encode.Str[encode.StringDestination](", "))
func SeparatedSlice[D Destination, E Encodable[D], S Encodable[D]](s []E, sep S) Separated[D, E, S] {
	return Separated[D, E, S]{Items: slices.Values(s), Sep: sep}
}

func (s Separated[D, E, S]) Encode(dst D) error {
	if s.Items == nil {
		return nil
	}
	first := true
	for item := range s.Items {
		if !first {
			if err := s.Sep.Encode(dst); err != nil {
				return err
			}
		}
		first = false
		if err := item.Encode(dst); err != nil {
			return err
		}
	}
	return nil
}
