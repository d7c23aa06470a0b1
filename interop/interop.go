// Package interop wraps arbitrary Go values as Encodables using the
// general-purpose CBOR and MessagePack codecs. Both are configured for
// deterministic output, so the size duality holds: sizing a value and
// writing it produce the same bytes.
package interop

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Altair-Bueno/encode"
)

// ErrUnknownFormat is returned by New for a format name it does not know.
var ErrUnknownFormat = errors.New("interop: unknown format")

var cborMode cbor.EncMode

func init() {
	// Core deterministic encoding: sorted map keys, smallest integer
	// and length encodings, no indefinite-length items.
	encOptions := cbor.CoreDetEncOptions()
	encOptions.Time = cbor.TimeRFC3339Nano
	encOptions.TextMarshaler = cbor.TextMarshalerTextString

	var err error
	cborMode, err = encOptions.EncMode()
	if err != nil {
		panic("interop: CBOR encoder initialization failed: " + err.Error())
	}
}

// CBOR encodes V as deterministic CBOR (RFC 8949 §4.2.1).
type CBOR struct{ V any }

func (c CBOR) Encode(dst encode.ByteDestination) error {
	return cborMode.NewEncoder(encode.IOWriter(dst)).Encode(c.V)
}

// MsgPack encodes V as MessagePack with the keys of every map sorted.
// Map types that define their own msgpack, binary or text encoding are
// left to it and must be deterministic themselves.
type MsgPack struct{ V any }

func (m MsgPack) Encode(dst encode.ByteDestination) error {
	registerMaps(reflect.ValueOf(m.V))

	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)

	enc.Reset(encode.IOWriter(dst))
	return enc.Encode(m.V)
}

// New returns v wrapped in the codec named by format: "cbor" or "msgpack".
func New(format string, v any) (encode.Encodable[encode.ByteDestination], error) {
	switch format {
	case "cbor":
		return CBOR{V: v}, nil
	case "msgpack":
		return MsgPack{V: v}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
