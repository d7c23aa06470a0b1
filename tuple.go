package encode

// Sequence encodes its members in order and stops at the first failure.
// It is the tuple of any arity whose members are all boxed as Encodable[D].
// The fixed-arity Tuple2 to Tuple8 keep the member types instead.
type Sequence[D Destination] []Encodable[D]

// Seq returns a Sequence of items.
//
//	encode.Seq[encode.ByteDestination](encode.Str[encode.ByteDestination]("hello"), encode.U8(0))
func Seq[D Destination](items ...Encodable[D]) Sequence[D] {
	return items
}

func (s Sequence[D]) Encode(dst D) error {
	for _, item := range s {
		if err := item.Encode(dst); err != nil {
			return err
		}
	}
	return nil
}

// Tuple2 through Tuple8 encode their fields V1, V2, ... in order and stop at
// the first failure. Unlike Sequence they keep the static type of every
// member, so nothing is boxed.

type Tuple2[D Destination, E1 Encodable[D], E2 Encodable[D]] struct {
	V1 E1
	V2 E2
}

func NewTuple2[D Destination, E1 Encodable[D], E2 Encodable[D]](v1 E1, v2 E2) Tuple2[D, E1, E2] {
	return Tuple2[D, E1, E2]{V1: v1, V2: v2}
}

func (t Tuple2[D, E1, E2]) Encode(dst D) error {
	if err := t.V1.Encode(dst); err != nil {
		return err
	}
	return t.V2.Encode(dst)
}

type Tuple3[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D]] struct {
	V1 E1
	V2 E2
	V3 E3
}

func NewTuple3[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D]](v1 E1, v2 E2, v3 E3) Tuple3[D, E1, E2, E3] {
	return Tuple3[D, E1, E2, E3]{V1: v1, V2: v2, V3: v3}
}

func (t Tuple3[D, E1, E2, E3]) Encode(dst D) error {
	if err := t.V1.Encode(dst); err != nil {
		return err
	}
	if err := t.V2.Encode(dst); err != nil {
		return err
	}
	return t.V3.Encode(dst)
}

type Tuple4[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D], E4 Encodable[D]] struct {
	V1 E1
	V2 E2
	V3 E3
	V4 E4
}

func NewTuple4[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D], E4 Encodable[D]](v1 E1, v2 E2, v3 E3, v4 E4) Tuple4[D, E1, E2, E3, E4] {
	return Tuple4[D, E1, E2, E3, E4]{V1: v1, V2: v2, V3: v3, V4: v4}
}

func (t Tuple4[D, E1, E2, E3, E4]) Encode(dst D) error {
	if err := t.V1.Encode(dst); err != nil {
		return err
	}
	if err := t.V2.Encode(dst); err != nil {
		return err
	}
	if err := t.V3.Encode(dst); err != nil {
		return err
	}
	return t.V4.Encode(dst)
}

type Tuple5[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D], E4 Encodable[D], E5 Encodable[D]] struct {
	V1 E1
	V2 E2
	V3 E3
	V4 E4
	V5 E5
}

func NewTuple5[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D], E4 Encodable[D], E5 Encodable[D]](v1 E1, v2 E2, v3 E3, v4 E4, v5 E5) Tuple5[D, E1, E2, E3, E4, E5] {
	return Tuple5[D, E1, E2, E3, E4, E5]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5}
}

func (t Tuple5[D, E1, E2, E3, E4, E5]) Encode(dst D) error {
	if err := t.V1.Encode(dst); err != nil {
		return err
	}
	if err := t.V2.Encode(dst); err != nil {
		return err
	}
	if err := t.V3.Encode(dst); err != nil {
		return err
	}
	if err := t.V4.Encode(dst); err != nil {
		return err
	}
	return t.V5.Encode(dst)
}

type Tuple6[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D], E4 Encodable[D], E5 Encodable[D], E6 Encodable[D]] struct {
	V1 E1
	V2 E2
	V3 E3
	V4 E4
	V5 E5
	V6 E6
}

func NewTuple6[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D], E4 Encodable[D], E5 Encodable[D], E6 Encodable[D]](v1 E1, v2 E2, v3 E3, v4 E4, v5 E5, v6 E6) Tuple6[D, E1, E2, E3, E4, E5, E6] {
	return Tuple6[D, E1, E2, E3, E4, E5, E6]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6}
}

func (t Tuple6[D, E1, E2, E3, E4, E5, E6]) Encode(dst D) error {
	if err := t.V1.Encode(dst); err != nil {
		return err
	}
	if err := t.V2.Encode(dst); err != nil {
		return err
	}
	if err := t.V3.Encode(dst); err != nil {
		return err
	}
	if err := t.V4.Encode(dst); err != nil {
		return err
	}
	if err := t.V5.Encode(dst); err != nil {
		return err
	}
	return t.V6.Encode(dst)
}

type Tuple7[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D], E4 Encodable[D], E5 Encodable[D], E6 Encodable[D], E7 Encodable[D]] struct {
	V1 E1
	V2 E2
	V3 E3
	V4 E4
	V5 E5
	V6 E6
	V7 E7
}

func NewTuple7[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D], E4 Encodable[D], E5 Encodable[D], E6 Encodable[D], E7 Encodable[D]](v1 E1, v2 E2, v3 E3, v4 E4, v5 E5, v6 E6, v7 E7) Tuple7[D, E1, E2, E3, E4, E5, E6, E7] {
	return Tuple7[D, E1, E2, E3, E4, E5, E6, E7]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7}
}

func (t Tuple7[D, E1, E2, E3, E4, E5, E6, E7]) Encode(dst D) error {
	if err := t.V1.Encode(dst); err != nil {
		return err
	}
	if err := t.V2.Encode(dst); err != nil {
		return err
	}
	if err := t.V3.Encode(dst); err != nil {
		return err
	}
	if err := t.V4.Encode(dst); err != nil {
		return err
	}
	if err := t.V5.Encode(dst); err != nil {
		return err
	}
	if err := t.V6.Encode(dst); err != nil {
		return err
	}
	return t.V7.Encode(dst)
}

type Tuple8[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D], E4 Encodable[D], E5 Encodable[D], E6 Encodable[D], E7 Encodable[D], E8 Encodable[D]] struct {
	V1 E1
	V2 E2
	V3 E3
	V4 E4
	V5 E5
	V6 E6
	V7 E7
	V8 E8
}

func NewTuple8[D Destination, E1 Encodable[D], E2 Encodable[D], E3 Encodable[D], E4 Encodable[D], E5 Encodable[D], E6 Encodable[D], E7 Encodable[D], E8 Encodable[D]](v1 E1, v2 E2, v3 E3, v4 E4, v5 E5, v6 E6, v7 E7, v8 E8) Tuple8[D, E1, E2, E3, E4, E5, E6, E7, E8] {
	return Tuple8[D, E1, E2, E3, E4, E5, E6, E7, E8]{V1: v1, V2: v2, V3: v3, V4: v4, V5: v5, V6: v6, V7: v7, V8: v8}
}

func (t Tuple8[D, E1, E2, E3, E4, E5, E6, E7, E8]) Encode(dst D) error {
	if err := t.V1.Encode(dst); err != nil {
		return err
	}
	if err := t.V2.Encode(dst); err != nil {
		return err
	}
	if err := t.V3.Encode(dst); err != nil {
		return err
	}
	if err := t.V4.Encode(dst); err != nil {
		return err
	}
	if err := t.V5.Encode(dst); err != nil {
		return err
	}
	if err := t.V6.Encode(dst); err != nil {
		return err
	}
	if err := t.V7.Encode(dst); err != nil {
		return err
	}
	return t.V8.Encode(dst)
}
