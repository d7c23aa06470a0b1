package encode

// Option is an optional value: absent encodes nothing, present encodes Value.
type Option[D Destination, E Encodable[D]] struct {
	Value   E
	Present bool
}

// Some returns a present Option.
func Some[D Destination, E Encodable[D]](v E) Option[D, E] {
	return Option[D, E]{Value: v, Present: true}
}

// None returns an absent Option.
func None[D Destination, E Encodable[D]]() Option[D, E] {
	return Option[D, E]{}
}

func (o Option[D, E]) Encode(dst D) error {
	if !o.Present {
		return nil
	}
	return o.Value.Encode(dst)
}

// Result is a value that may already have failed. A stored Err is returned
// unchanged without writing anything. Otherwise Value is encoded.
type Result[D Destination, E Encodable[D]] struct {
	Value E
	Err   error
}

// Ok returns a successful Result.
func Ok[D Destination, E Encodable[D]](v E) Result[D, E] {
	return Result[D, E]{Value: v}
}

// Fail returns a Result that fails with err when encoded.
func Fail[D Destination, E Encodable[D]](err error) Result[D, E] {
	return Result[D, E]{Err: err}
}

func (r Result[D, E]) Encode(dst D) error {
	if r.Err != nil {
		return r.Err
	}
	return r.Value.Encode(dst)
}
