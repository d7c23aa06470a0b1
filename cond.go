package encode

// Cond encodes Value only if Pred(Value) holds when Encode is called.
// Otherwise it writes nothing and succeeds.
type Cond[D Destination, E Encodable[D]] struct {
	Value E
	Pred  func(E) bool
}

// NewCond returns a Cond over v.
//
//	encode.NewCond[encode.ByteDestination](encode.CStr(name), func(s encode.CStr) bool { return s != "" })
func NewCond[D Destination, E Encodable[D]](v E, pred func(E) bool) Cond[D, E] {
	return Cond[D, E]{Value: v, Pred: pred}
}

func (c Cond[D, E]) Encode(dst D) error {
	if !c.Pred(c.Value) {
		return nil
	}
	return c.Value.Encode(dst)
}
