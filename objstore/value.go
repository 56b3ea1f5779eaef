package objstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

type valueKind int

const (
	kindInvalid valueKind = iota
	kindBytes
	kindText
	kindJSON
)

func (k valueKind) String() string {
	switch k {
	case kindBytes:
		return "bytes"
	case kindText:
		return "text"
	case kindJSON:
		return "json"
	}
	return "invalid"
}

// Value is the payload accepted by Write. It is a tagged variant: the caller
// picks the shape at the call site with Bytes, Text or JSON instead of the
// store inspecting runtime types. The zero Value is invalid and is rejected
// by Write with ErrUnsupportedType.
type Value struct {
	kind       valueKind
	raw        []byte
	text       string
	structured interface{}
	typeName   string // rejected Go type, set by ValueOf
}

// Bytes wraps a raw byte payload. Written verbatim.
func Bytes(b []byte) Value {
	return Value{kind: kindBytes, raw: b}
}

// Text wraps a text payload. Written as UTF-8.
func Text(s string) Value {
	return Value{kind: kindText, text: s}
}

// JSON wraps structured data. Serialized to JSON text with non-ASCII
// characters preserved unescaped. Values the encoder cannot represent
// (channels, functions, NaN) are stored as their string form rather than
// failing the write.
func JSON(v interface{}) Value {
	return Value{kind: kindJSON, structured: v}
}

// ValueOf dispatches on the runtime type of v the way a caller holding an
// untyped payload would: []byte, string, and map/slice/array values map to
// the Bytes, Text and JSON variants; anything else yields an invalid Value
// that Write rejects with ErrUnsupportedType naming the offending type.
func ValueOf(v interface{}) Value {
	switch t := v.(type) {
	case Value:
		return t
	case []byte:
		return Bytes(t)
	case string:
		return Text(t)
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return JSON(v)
	}

	return Value{kind: kindInvalid, typeName: fmt.Sprintf("%T", v)}
}

// encode renders the payload to the bytes that land on disk.
func (v Value) encode() ([]byte, error) {
	switch v.kind {
	case kindBytes:
		return v.raw, nil
	case kindText:
		return []byte(v.text), nil
	case kindJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		err := enc.Encode(v.structured)
		if err != nil {
			var typeErr *json.UnsupportedTypeError
			var valueErr *json.UnsupportedValueError
			if !errors.As(err, &typeErr) && !errors.As(err, &valueErr) {
				return nil, WithContext(ErrUnsupportedType, map[string]interface{}{
					"type":   fmt.Sprintf("%T", v.structured),
					"reason": err.Error(),
				})
			}
			buf.Reset()
			err = enc.Encode(stringifyUnsupported(v.structured))
		}
		if err != nil {
			return nil, WithContext(ErrUnsupportedType, map[string]interface{}{
				"type":   fmt.Sprintf("%T", v.structured),
				"reason": err.Error(),
			})
		}
		// Encode appends a trailing newline that json.Marshal would not
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	}

	typeName := v.typeName
	if typeName == "" {
		typeName = "objstore.Value (zero value)"
	}
	return nil, WithContext(ErrUnsupportedType, map[string]interface{}{
		"type": typeName,
	})
}

// stringifyUnsupported walks structured data and replaces anything the JSON
// encoder cannot represent with its fmt string form. Map keys become
// strings the same way.
func stringifyUnsupported(v interface{}) interface{} {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = stringifyUnsupported(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		// []byte already has a JSON representation (base64)
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]interface{}, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = stringifyUnsupported(rv.Index(i).Interface())
		}
		return out
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return stringifyUnsupported(rv.Elem().Interface())
	default:
		if _, err := json.Marshal(v); err != nil {
			return fmt.Sprint(v)
		}
		return v
	}
}
