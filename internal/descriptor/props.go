package descriptor

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// GetStr gets a string property; empty if missing or not a string.
func GetStr(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// GetMap gets a nested mapping; nil if missing or not a mapping.
func GetMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	mm, _ := m[key].(map[string]any)
	return mm
}

// Has reports whether key is present with a non-null value.
func Has(m map[string]any, key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

// Normalize converts YAML mappings with non-string keys into
// map[string]any so the value can be encoded as JSON.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, item := range t {
			t[k] = Normalize(item)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = Normalize(item)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = Normalize(item)
		}
		return t
	default:
		return v
	}
}

// Decode decodes a loosely typed descriptor value into out (a pointer to a
// struct with mapstructure tags). Scalars are converted weakly, so "3" fills
// an int field. Fields that cannot be converted are left unset and their
// errors are returned; decoding never stops early.
func Decode(raw any, out any) []string {
	if raw == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(wholeNumbers),
		Result:           out,
	})
	if err != nil {
		return []string{err.Error()}
	}
	if err := dec.Decode(raw); err != nil {
		if merr, ok := err.(*mapstructure.Error); ok {
			return merr.Errors
		}
		return []string{err.Error()}
	}
	return nil
}

// wholeNumbers rejects fractional floats bound for integer fields, which
// mapstructure would otherwise truncate.
func wholeNumbers(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	var f float64
	switch v := data.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	default:
		return data, nil
	}
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%v is not a whole number", f)
	}
	return data, nil
}
