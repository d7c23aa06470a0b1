package interop

import (
	"cmp"
	"encoding"
	"fmt"
	"reflect"
	"slices"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// sortedMapTypes records the map types whose msgpack encoder has been
// replaced by encodeSortedMap. msgpack's own key sorting covers only
// map[string]string, map[string]bool and map[string]any.
var sortedMapTypes = xsync.NewMap[reflect.Type, struct{}]()

var ownEncoders = []reflect.Type{
	reflect.TypeFor[msgpack.CustomEncoder](),
	reflect.TypeFor[msgpack.Marshaler](),
	reflect.TypeFor[encoding.BinaryMarshaler](),
	reflect.TypeFor[encoding.TextMarshaler](),
}

// hasOwnEncoder reports whether msgpack would encode t through a method
// rather than as a plain map.
func hasOwnEncoder(t reflect.Type) bool {
	for _, iface := range ownEncoders {
		if t.Implements(iface) || reflect.PointerTo(t).Implements(iface) {
			return true
		}
	}
	return false
}

// registerMaps walks v and installs encodeSortedMap for every map type it
// reaches. Interface values are followed to their dynamic type, which is
// why the walk is over values and not types.
func registerMaps(v reflect.Value) {
	seen := make(map[uintptr]struct{})
	var walk func(v reflect.Value)
	walk = func(v reflect.Value) {
		switch v.Kind() {
		case reflect.Interface:
			if !v.IsNil() {
				walk(v.Elem())
			}
		case reflect.Pointer:
			if v.IsNil() {
				return
			}
			if _, ok := seen[v.Pointer()]; ok {
				return
			}
			seen[v.Pointer()] = struct{}{}
			walk(v.Elem())
		case reflect.Slice, reflect.Array:
			if v.Type().Elem().Kind() == reflect.Uint8 {
				return
			}
			for i := range v.Len() {
				walk(v.Index(i))
			}
		case reflect.Struct:
			for i := range v.NumField() {
				walk(v.Field(i))
			}
		case reflect.Map:
			register(v.Type())
			iter := v.MapRange()
			for iter.Next() {
				walk(iter.Key())
				walk(iter.Value())
			}
		}
	}
	walk(v)
}

func register(t reflect.Type) {
	if hasOwnEncoder(t) {
		return
	}
	if _, loaded := sortedMapTypes.LoadOrStore(t, struct{}{}); loaded {
		return
	}
	msgpack.Register(reflect.Zero(t).Interface(), encodeSortedMap, nil)
}

func encodeSortedMap(e *msgpack.Encoder, v reflect.Value) error {
	if v.IsNil() {
		return e.EncodeNil()
	}
	keys := v.MapKeys()
	slices.SortFunc(keys, compareKeys)

	if err := e.EncodeMapLen(len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		if err := e.EncodeValue(k); err != nil {
			return err
		}
		if err := e.EncodeValue(v.MapIndex(k)); err != nil {
			return err
		}
	}
	return nil
}

// compareKeys orders map keys by kind, then by value, then by type name.
func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	var c int
	switch a.Kind() {
	case reflect.Invalid:
		return 0
	case reflect.String:
		c = cmp.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		c = cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		c = cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		c = cmp.Compare(a.Float(), b.Float())
	case reflect.Bool:
		c = cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	default:
		c = cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
	if c != 0 {
		return c
	}
	return cmp.Compare(a.Type().String(), b.Type().String())
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
