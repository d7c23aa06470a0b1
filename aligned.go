package encode

import "fmt"

// Aligned encodes Inner followed by zero padding up to the next multiple of
// Align bytes. Align must be a power of two; 0 and 1 disable padding. Any
// other value fails with ErrAlignment before anything is written.
type Aligned struct {
	Inner Encodable[ByteDestination]
	Align int
}

func checkAlign(align int) error {
	if align < 0 || align&(align-1) != 0 {
		return fmt.Errorf("%w: %d", ErrAlignment, align)
	}
	return nil
}

func (a Aligned) Encode(dst ByteDestination) error {
	if err := checkAlign(a.Align); err != nil {
		return err
	}
	if a.Align <= 1 {
		return a.Inner.Encode(dst)
	}
	t := tally{dst: dst}
	if err := a.Inner.Encode(&t); err != nil {
		return err
	}
	return Zeros(Roundup(t.n, a.Align) - t.n).Encode(dst)
}

// tally forwards to dst and counts what dst accepted.
type tally struct {
	dst ByteDestination
	n   int
}

func (t *tally) AppendBytes(p []byte) error {
	if err := t.dst.AppendBytes(p); err != nil {
		return err
	}
	t.n += len(p)
	return nil
}

func (t *tally) AppendByte(c byte) error {
	if err := t.dst.AppendByte(c); err != nil {
		return err
	}
	t.n += 1
	return nil
}

func (t *tally) AppendString(s string) error {
	if err := t.dst.AppendString(s); err != nil {
		return err
	}
	t.n += len(s)
	return nil
}

// List encodes a slice of items where every item but the last is padded to
// Alignment bytes, the layout of arrays of variable-size records in many
// binary formats.
type List[E Encodable[ByteDestination]] struct {
	Items     []E
	Alignment int
}

// NewList returns an unaligned List.
func NewList[E Encodable[ByteDestination]](items []E) List[E] {
	return List[E]{Items: items}
}

// NewList4 returns a List whose items are aligned to 4 bytes.
func NewList4[E Encodable[ByteDestination]](items []E) List[E] {
	return List[E]{Items: items, Alignment: 4}
}

// NewList8 returns a List whose items are aligned to 8 bytes.
func NewList8[E Encodable[ByteDestination]](items []E) List[E] {
	return List[E]{Items: items, Alignment: 8}
}

// Len returns the number of items.
func (l List[E]) Len() int { return len(l.Items) }

func (l List[E]) Encode(dst ByteDestination) error {
	if err := checkAlign(l.Alignment); err != nil {
		return err
	}
	last := len(l.Items) - 1
	for i, item := range l.Items {
		var err error
		if i < last && l.Alignment > 1 {
			err = Aligned{Inner: item, Align: l.Alignment}.Encode(dst)
		} else {
			err = item.Encode(dst)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
