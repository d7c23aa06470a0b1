package digest

import "github.com/Altair-Bueno/encode"

// Tee is a destination that forwards every append to each of its
// destinations in order and stops at the first failure. A failure in a
// later destination does not undo what earlier ones accepted.
type Tee []encode.ByteDestination

var _ encode.ByteDestination = Tee(nil)

// NewTee returns a Tee over dsts.
func NewTee(dsts ...encode.ByteDestination) Tee { return dsts }

func (t Tee) AppendBytes(p []byte) error {
	for _, dst := range t {
		if err := dst.AppendBytes(p); err != nil {
			return err
		}
	}
	return nil
}

func (t Tee) AppendByte(c byte) error {
	for _, dst := range t {
		if err := dst.AppendByte(c); err != nil {
			return err
		}
	}
	return nil
}

func (t Tee) AppendString(s string) error {
	for _, dst := range t {
		if err := dst.AppendString(s); err != nil {
			return err
		}
	}
	return nil
}
