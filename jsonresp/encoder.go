package jsonresp

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Collection is implemented by result-set types that should encode as a
// plain JSON array, such as pglookup.Rows.
type Collection interface {
	Items() []any
}

// Marshal encodes v like encoding/json, with three extra conversions
// applied recursively through maps, slices, pointers and struct fields:
//
//   - time.Time renders as its ISO-8601 (RFC3339) string
//   - decimal.Decimal renders as a JSON number instead of a quoted string
//   - Collection values render as plain arrays of their items
//
// Values encoding/json cannot represent (channels, funcs) become null.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(normalize(v))
}

func normalize(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return t.Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.Format(time.RFC3339)
	case decimal.Decimal:
		return t.InexactFloat64()
	case *decimal.Decimal:
		if t == nil {
			return nil
		}
		return t.InexactFloat64()
	case Collection:
		items := t.Items()
		out := make([]any, len(items))
		for i := range items {
			out[i] = normalize(items[i])
		}
		return out
	case json.Marshaler:
		return t
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface())

	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = normalize(iter.Value().Interface())
		}
		return out

	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		fallthrough
	case reflect.Array:
		// []byte keeps encoding/json's base64 behavior.
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out

	case reflect.Struct:
		return normalizeStruct(rv)

	case reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Complex64, reflect.Complex128:
		return nil

	default:
		return v
	}
}

// normalizeStruct renders a struct as a map honoring `json` tags: renamed
// fields, "-" exclusions, omitempty, and flattening of untagged embedded
// structs.
func normalizeStruct(rv reflect.Value) any {
	rt := rv.Type()
	out := make(map[string]any, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}

		name := f.Name
		omitempty := false
		tag, tagged := f.Tag.Lookup("json")
		if tagged {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" && len(parts) == 1 {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, opt := range parts[1:] {
				if opt == "omitempty" {
					omitempty = true
				}
			}
		}

		fv := rv.Field(i)
		if f.Anonymous && !tagged && f.Type.Kind() == reflect.Struct {
			if m, ok := normalize(fv.Interface()).(map[string]any); ok {
				for k, v := range m {
					if _, exists := out[k]; !exists {
						out[k] = v
					}
				}
				continue
			}
		}

		if omitempty && fv.IsZero() {
			continue
		}
		out[name] = normalize(fv.Interface())
	}
	return out
}
