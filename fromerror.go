package encode

// FromError runs Inner and passes any failure through Convert, so that a
// whole encode reports one caller-defined error type K. Success returns a
// nil error, never a typed nil K.
//
//	encode.NewFromError[encode.ByteDestination](doc, bson.NewError)
type FromError[D Destination, K error] struct {
	Inner   Encodable[D]
	Convert func(error) K
}

// NewFromError returns a FromError wrapping inner.
func NewFromError[D Destination, K error](inner Encodable[D], convert func(error) K) FromError[D, K] {
	return FromError[D, K]{Inner: inner, Convert: convert}
}

func (f FromError[D, K]) Encode(dst D) error {
	if err := f.Inner.Encode(dst); err != nil {
		return f.Convert(err)
	}
	return nil
}
