package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/Altair-Bueno/encode/examples/bson"
	ejson "github.com/Altair-Bueno/encode/examples/json"
)

// parse decodes the input into plain Go values: maps, slices, strings,
// numbers, booleans, nil and time.Time.
func parse(data []byte, format string) (any, error) {
	var v any
	switch format {
	case "yaml":
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
	case "jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
	return normalize(v), nil
}

// normalize rewrites decoder-specific values into a small set of types:
// map[string]any, []any, string, int64, uint64, float64, bool, time.Time
// and nil.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalize(e)
		}
		return out
	case int:
		return int64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	}
	return v
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

// toDocument converts a decoded mapping into a BSON document.
func toDocument(v any) (bson.Document, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("bson: top-level value must be a mapping, got %T", v)
	}
	doc := make(bson.Document, 0, len(m))
	for _, k := range sortedKeys(m) {
		value, err := toBSON(m[k])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		doc = append(doc, bson.Element{Name: k, Value: value})
	}
	return doc, nil
}

func toBSON(v any) (bson.Value, error) {
	switch v := v.(type) {
	case nil:
		return bson.Null{}, nil
	case bool:
		return bson.Boolean(v), nil
	case int64:
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			return bson.Int32(v), nil
		}
		return bson.Int64(v), nil
	case uint64:
		if v <= math.MaxInt64 {
			return bson.Int64(v), nil
		}
		return bson.Double(v), nil
	case float64:
		return bson.Double(v), nil
	case string:
		return bson.String(v), nil
	case time.Time:
		return bson.NewDateTime(v), nil
	case []byte:
		return bson.Binary{Data: v}, nil
	case []any:
		arr := make(bson.Array, len(v))
		for i, e := range v {
			value, err := toBSON(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr[i] = value
		}
		return arr, nil
	case map[string]any:
		return toDocument(v)
	}
	return nil, fmt.Errorf("unsupported value of type %T", v)
}

func toJSON(v any) (ejson.Value, error) {
	switch v := v.(type) {
	case nil:
		return ejson.Null{}, nil
	case bool:
		return ejson.Bool(v), nil
	case int64:
		return ejson.Int(v), nil
	case uint64:
		if v <= math.MaxInt64 {
			return ejson.Int(v), nil
		}
		return ejson.Number(v), nil
	case float64:
		return ejson.Number(v), nil
	case string:
		return ejson.String(v), nil
	case time.Time:
		return ejson.String(v.Format(time.RFC3339Nano)), nil
	case []any:
		arr := make(ejson.Array, len(v))
		for i, e := range v {
			value, err := toJSON(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr[i] = value
		}
		return arr, nil
	case map[string]any:
		obj := make(ejson.Object, 0, len(v))
		for _, k := range sortedKeys(v) {
			value, err := toJSON(v[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			obj = append(obj, ejson.Member{Key: k, Value: value})
		}
		return obj, nil
	}
	return nil, fmt.Errorf("unsupported value of type %T", v)
}
