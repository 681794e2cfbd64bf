// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonvalue defines the dynamic JSON value model used throughout
// the jsonschema module. It is the one place dynamic typing crosses into
// the engine: instances and schemas are both represented as [Value].
//
// Numbers are kept as decimal text ([Number]) rather than float64, so that
// the distinction between "1" and "1.0" and exact decimal magnitudes (for
// example 0.1) survive the trip from JSON text to validation. Objects keep
// their insertion order, since keyword functions must iterate in document
// order to produce a deterministic error stream.
package jsonvalue

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Value is a JSON value: nil, bool, Number, string, Array, or *Object.
// This is a closed set by convention, not by the Go type system; code that
// type-switches on a Value should treat any other dynamic type as a bug.
type Value any

// Number is a JSON number, stored as its original (or synthesized) decimal
// text. Keeping the text, rather than a float64, lets [Number.Rat] recover
// the exact value for keywords like multipleOf that must avoid binary
// floating-point rounding.
type Number string

// IntNumber returns the Number with decimal text for the integer n.
func IntNumber(n int64) Number {
	return Number(strconv.FormatInt(n, 10))
}

// FloatNumber returns the Number with decimal text for the float64 f.
// Use this only for values that did not arrive as JSON text; prefer
// preserving the original literal wherever one exists.
func FloatNumber(f float64) Number {
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// Rat returns n as an exact rational, and reports whether n parses as a
// JSON number at all.
func (n Number) Rat() (*big.Rat, bool) {
	r, ok := new(big.Rat).SetString(string(n))
	return r, ok
}

// Float64 returns n approximated as a float64, and reports whether n
// parses as a JSON number at all.
func (n Number) Float64() (float64, bool) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// IsInteger reports whether n's mathematical value is an integer. A
// trailing ".0" or an exponent that cancels out the fraction still counts.
func (n Number) IsInteger() bool {
	r, ok := n.Rat()
	if !ok {
		return false
	}
	return r.IsInt()
}

// NumbersEqual reports whether a and b denote the same mathematical value,
// so that 1 and 1.0 compare equal as required by enum/const/uniqueItems.
func NumbersEqual(a, b Number) bool {
	ra, ok1 := a.Rat()
	rb, ok2 := b.Rat()
	if !ok1 || !ok2 {
		return string(a) == string(b)
	}
	return ra.Cmp(rb) == 0
}

// Array is a JSON array.
type Array []Value

// Object is a JSON object. It preserves insertion order for deterministic
// iteration while still offering map-shaped lookup.
//
// The zero value is not ready for use; construct with [NewObject].
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{vals: make(map[string]Value)}
}

// Set sets the value for key, appending key to the iteration order if it
// is new, or leaving the order unchanged if key is already present.
func (o *Object) Set(key string, v Value) *Object {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
	return o
}

// Get returns the value for key and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.vals[key]
	return ok
}

// Keys returns the object's keys in insertion order. The caller must not
// modify the returned slice.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return o.keys
}

// Len returns the number of properties in o.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Kind returns the JSON type name of v, one of "null", "boolean", "number",
// "string", "array", "object". It does not distinguish "integer"; callers
// that need that finer distinction should use [Number.IsInteger].
func Kind(v Value) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case Number:
		return "number"
	case string:
		return "string"
	case Array:
		return "array"
	case *Object:
		return "object"
	default:
		panic(fmt.Sprintf("jsonvalue: value of unexpected type %T", x))
	}
}

// DeepEqual reports whether a and b are the same JSON value: same type,
// same contents recursively, with numbers compared by mathematical value
// rather than by decimal text (so 1 and 1.0 are equal).
func DeepEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ka, kb := Kind(a), Kind(b)
	if ka != kb {
		return false
	}
	switch ka {
	case "boolean":
		return a.(bool) == b.(bool)
	case "number":
		return NumbersEqual(a.(Number), b.(Number))
	case "string":
		return a.(string) == b.(string)
	case "array":
		aa, bb := a.(Array), b.(Array)
		if len(aa) != len(bb) {
			return false
		}
		for i := range aa {
			if !DeepEqual(aa[i], bb[i]) {
				return false
			}
		}
		return true
	case "object":
		oa, ob := a.(*Object), b.(*Object)
		if oa.Len() != ob.Len() {
			return false
		}
		for _, k := range oa.Keys() {
			bv, ok := ob.Get(k)
			if !ok {
				return false
			}
			av, _ := oa.Get(k)
			if !DeepEqual(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// EscapeToken escapes a JSON Pointer reference token per RFC 6901: "~"
// becomes "~0" and "/" becomes "~1".
func EscapeToken(tok string) string {
	if !strings.ContainsAny(tok, "~/") {
		return tok
	}
	var b strings.Builder
	for _, r := range tok {
		switch r {
		case '~':
			b.WriteString("~0")
		case '/':
			b.WriteString("~1")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UnescapeToken reverses [EscapeToken].
func UnescapeToken(tok string) string {
	if !strings.Contains(tok, "~") {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~1", "/")
	return strings.ReplaceAll(tok, "~0", "~")
}
