package utils

import (
	"fmt"
	"github.com/ryanmorr/base-object/pkg/contracts"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf16"
)

// PropertyGetter is implemented by entities which expose their properties as a keyed structure.
type PropertyGetter interface {
	GetProperties() map[string]any
}

// HashCode computes a structural 32-bit hash code of v:
//
//   - nil yields 0.
//   - Slices and arrays yield the sum of hash(i + hash(v[i])) over all indices i.
//   - Maps, structs and PropertyGetters yield the sum of hash(k + hash(v[k])) over all keys k,
//     where k is concatenated with the decimal hash of its value.
//   - contracts.HashCoder implementations yield their own HashCode().
//   - Anything else yields the polynomial rolling hash (h*31 + c) over the UTF-16 code units
//     of its string representation.
//
// Sums wrap around, so the result is independent of iteration order.
// The hash is not collision-resistant.
//
// A map, slice or pointer that is reached again while it is still being hashed,
// i.e. a cyclic reference, hashes like nil instead of recursing endlessly.
func HashCode(v any) int32 {
	return (&hasher{path: map[reference]struct{}{}}).hash(v)
}

// reference identifies a map, slice or pointer on the current traversal path.
type reference struct {
	kind reflect.Kind
	ptr  uintptr
	len  int
}

type hasher struct {
	path map[reference]struct{}
}

func (h *hasher) hash(v any) int32 {
	if v == nil {
		return 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return 0
		}

		ref := reference{kind: rv.Kind(), ptr: rv.Pointer()}
		if rv.Kind() == reflect.Slice {
			ref.len = rv.Len()
		}

		if _, ok := h.path[ref]; ok {
			return 0
		}

		h.path[ref] = struct{}{}
		defer delete(h.path, ref)
	}

	switch v := v.(type) {
	case PropertyGetter:
		return h.hashKeyed(v.GetProperties())
	case contracts.HashCoder:
		return v.HashCode()
	case map[string]any:
		return h.hashKeyed(v)
	case []any:
		var sum int32
		for i, e := range v {
			sum += h.hashIndexed(i, e)
		}

		return sum
	}

	switch rv.Kind() {
	case reflect.Pointer:
		return h.hash(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		var sum int32
		for i := 0; i < rv.Len(); i++ {
			sum += h.hashIndexed(i, rv.Index(i).Interface())
		}

		return sum
	case reflect.Map:
		var sum int32
		iter := rv.MapRange()
		for iter.Next() {
			sum += h.hashEntry(stringify(iter.Key().Interface()), iter.Value().Interface())
		}

		return sum
	case reflect.Struct:
		if _, ok := v.(fmt.Stringer); ok {
			break
		}

		var sum int32
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				sum += h.hashEntry(f.Name, rv.Field(i).Interface())
			}
		}

		return sum
	}

	return hashString(stringify(v))
}

func (h *hasher) hashKeyed(m map[string]any) int32 {
	var sum int32
	for k, v := range m {
		sum += h.hashEntry(k, v)
	}

	return sum
}

// hashEntry hashes key concatenated with the decimal hash of value.
func (h *hasher) hashEntry(key string, value any) int32 {
	return hashString(key + strconv.FormatInt(int64(h.hash(value)), 10))
}

// hashIndexed hashes the numeric sum of index and the hash of value.
func (h *hasher) hashIndexed(index int, value any) int32 {
	return hashString(strconv.FormatInt(int64(index)+int64(h.hash(value)), 10))
}

// hashString computes h = h*31 + c over the UTF-16 code units of s, wrapping at 32 bits.
func hashString(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}

	return h
}

// stringify returns the string representation of a scalar value.
func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return formatFloat(rv.Float(), rv.Type().Bits())
	}

	return fmt.Sprint(v)
}

// formatFloat formats f the shortest way, e.g. 1 as "1" and 1.5 as "1.5".
// Magnitudes of at least 1e21 or below 1e-6 use exponent notation without padding, e.g. "1e+21" or "1.5e-7".
func formatFloat(f float64, bitSize int) string {
	switch abs := math.Abs(f); {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// Also -0.
		return "0"
	case abs >= 1e21 || abs < 1e-6:
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, bitSize), "e")

		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}

	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
