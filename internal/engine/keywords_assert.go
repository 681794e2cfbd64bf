// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"math/big"
	"regexp"
	"unicode/utf8"

	"github.com/nestmed/jsonschema/pkg/jsonvalue"
	"github.com/nestmed/jsonschema/pkg/validerr"
)

// kwType implements the "type" keyword: a single type name or an array of
// type names, matched against the instance's JSON type, with "integer"
// additionally requiring the number have no fractional part.
func kwType(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	switch t := kv.(type) {
	case string:
		if instanceMatchesType(instance, t) {
			return nil
		}
		return []*validerr.ValidationError{ctx.errorf("value is %s, want %s", jsonvalue.Kind(instance), t)}
	case jsonvalue.Array:
		for _, v := range t {
			if name, ok := v.(string); ok && instanceMatchesType(instance, name) {
				return nil
			}
		}
		return []*validerr.ValidationError{ctx.errorf("value is %s, want one of %v", jsonvalue.Kind(instance), t)}
	default:
		return nil
	}
}

func instanceMatchesType(instance jsonvalue.Value, name string) bool {
	if name == "integer" {
		n, ok := instance.(jsonvalue.Number)
		return ok && n.IsInteger()
	}
	return jsonvalue.Kind(instance) == name
}

// kwTypeLenient is the lenient overlay's replacement for "type": null
// additionally satisfies any declared type, per spec.md §4.3.
func kwTypeLenient(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError {
	if instance == nil {
		return nil
	}
	return kwType(ctx, kv, instance, schema)
}

// kwEnum implements "enum": the instance must deep-equal one of the listed
// values.
func kwEnum(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	arr, ok := kv.(jsonvalue.Array)
	if !ok {
		return nil
	}
	for _, v := range arr {
		if jsonvalue.DeepEqual(instance, v) {
			return nil
		}
	}
	return []*validerr.ValidationError{ctx.errorf("value is not one of the enumerated values")}
}

// kwEnumLenient is the lenient overlay's replacement for "enum": null
// satisfies it regardless of whether null itself is listed.
func kwEnumLenient(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError {
	if instance == nil {
		return nil
	}
	return kwEnum(ctx, kv, instance, schema)
}

// kwConst implements "const", Draft 6's shorthand for a one-element enum.
func kwConst(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	if jsonvalue.DeepEqual(instance, kv) {
		return nil
	}
	return []*validerr.ValidationError{ctx.errorf("value does not equal the constant")}
}

// kwConstLenient is the lenient overlay's replacement for "const": null
// passes unconditionally, and a boolean const:true accepts any boolean
// instance (including false), per spec.md §4.3.
func kwConstLenient(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError {
	if instance == nil {
		return nil
	}
	if kvBool, ok := kv.(bool); ok && kvBool {
		if _, isBool := instance.(bool); isBool {
			return nil
		}
	}
	return kwConst(ctx, kv, instance, schema)
}

func asNumber(instance jsonvalue.Value) (jsonvalue.Number, bool) {
	n, ok := instance.(jsonvalue.Number)
	return n, ok
}

// kwMultipleOf implements "multipleOf" using exact rational arithmetic, so
// that decimal magnitudes like 0.1 do not accumulate binary
// floating-point rounding error.
func kwMultipleOf(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	n, ok := asNumber(instance)
	if !ok {
		return nil
	}
	divisor, ok := asNumber(kv)
	if !ok {
		return nil
	}
	nr, ok1 := n.Rat()
	dr, ok2 := divisor.Rat()
	if !ok1 || !ok2 || dr.Sign() == 0 {
		return nil
	}
	quotient := new(big.Rat).Quo(nr, dr)
	if quotient.IsInt() {
		return nil
	}
	return []*validerr.ValidationError{ctx.errorf("%s is not a multiple of %s", n, divisor)}
}

// kwMaximum implements "maximum". Draft 4's boolean exclusiveMaximum
// companion is read directly by kwExclusiveMaximumBool, which runs as a
// sibling keyword function, not here.
func kwMaximum(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	return numericBound(ctx, kv, instance, "maximum", false, func(cmp int) bool { return cmp <= 0 })
}

func kwMinimum(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	return numericBound(ctx, kv, instance, "minimum", false, func(cmp int) bool { return cmp >= 0 })
}

// kwExclusiveMaximumNumeric implements Draft 6+'s numeric exclusiveMaximum.
func kwExclusiveMaximumNumeric(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	return numericBound(ctx, kv, instance, "exclusiveMaximum", true, func(cmp int) bool { return cmp < 0 })
}

func kwExclusiveMinimumNumeric(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	return numericBound(ctx, kv, instance, "exclusiveMinimum", true, func(cmp int) bool { return cmp > 0 })
}

// kwExclusiveMaximumBool implements Draft 4's boolean exclusiveMaximum,
// which modifies the "maximum" keyword's own comparison rather than
// carrying a bound of its own.
func kwExclusiveMaximumBool(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError {
	excl, _ := kv.(bool)
	if !excl {
		return nil
	}
	max, ok := schema.Get("maximum")
	if !ok {
		return nil
	}
	return numericBound(ctx, max, instance, "maximum", true, func(cmp int) bool { return cmp < 0 })
}

func kwExclusiveMinimumBool(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError {
	excl, _ := kv.(bool)
	if !excl {
		return nil
	}
	min, ok := schema.Get("minimum")
	if !ok {
		return nil
	}
	return numericBound(ctx, min, instance, "minimum", true, func(cmp int) bool { return cmp > 0 })
}

func numericBound(ctx *Context, bound jsonvalue.Value, instance jsonvalue.Value, name string, exclusive bool, ok func(cmp int) bool) []*validerr.ValidationError {
	n, isNum := asNumber(instance)
	if !isNum {
		return nil
	}
	b, isNum := asNumber(bound)
	if !isNum {
		return nil
	}
	nr, ok1 := n.Rat()
	br, ok2 := b.Rat()
	if !ok1 || !ok2 {
		return nil
	}
	if ok(nr.Cmp(br)) {
		return nil
	}
	word := "at most"
	if name == "minimum" {
		word = "at least"
	}
	if exclusive {
		if name == "minimum" || name == "exclusiveMinimum" {
			word = "strictly greater than"
		} else {
			word = "strictly less than"
		}
	}
	return []*validerr.ValidationError{ctx.errorf("value must be %s %s", word, b)}
}

// kwMaxLength and kwMinLength implement "maxLength"/"minLength", counting
// Unicode code points per spec.md §4.1, not UTF-16 code units or bytes.
func kwMaxLength(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	return stringLengthBound(ctx, kv, instance, "maxLength", func(n, bound int) bool { return n <= bound })
}

func kwMinLength(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	return stringLengthBound(ctx, kv, instance, "minLength", func(n, bound int) bool { return n >= bound })
}

func stringLengthBound(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, name string, ok func(n, bound int) bool) []*validerr.ValidationError {
	s, isStr := instance.(string)
	if !isStr {
		return nil
	}
	bound, err := boundInt(kv)
	if err != nil {
		return nil
	}
	n := utf8.RuneCountInString(s)
	if ok(n, bound) {
		return nil
	}
	return []*validerr.ValidationError{ctx.errorf("string length %d violates %s %d", n, name, bound)}
}

func boundInt(kv jsonvalue.Value) (int, error) {
	n, ok := kv.(jsonvalue.Number)
	if !ok {
		return 0, errNotNumber
	}
	f, ok := n.Float64()
	if !ok {
		return 0, errNotNumber
	}
	return int(f), nil
}

// kwPattern implements "pattern" using Go's regexp package against ECMA-262
// patterns on a best-effort basis, as the teacher's pkg/format does for
// format regex validation. An invalid pattern is a structural fault: it is
// reported as a validation error at the pattern's own location rather than
// causing a panic, per spec.md §7.
func kwPattern(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	s, isStr := instance.(string)
	if !isStr {
		return nil
	}
	pat, ok := kv.(string)
	if !ok {
		return nil
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return []*validerr.ValidationError{ctx.errorf("pattern %q does not compile: %v", pat, err)}
	}
	if re.MatchString(s) {
		return nil
	}
	return []*validerr.ValidationError{ctx.errorf("string does not match pattern %q", pat)}
}

func kwMaxItems(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	return arrayLengthBound(ctx, kv, instance, "maxItems", func(n, bound int) bool { return n <= bound })
}

func kwMinItems(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	return arrayLengthBound(ctx, kv, instance, "minItems", func(n, bound int) bool { return n >= bound })
}

func arrayLengthBound(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, name string, ok func(n, bound int) bool) []*validerr.ValidationError {
	arr, isArr := instance.(jsonvalue.Array)
	if !isArr {
		return nil
	}
	bound, err := boundInt(kv)
	if err != nil {
		return nil
	}
	if ok(len(arr), bound) {
		return nil
	}
	return []*validerr.ValidationError{ctx.errorf("array length %d violates %s %d", len(arr), name, bound)}
}

// kwUniqueItems implements "uniqueItems" with pairwise deep-equality,
// matching the spec's numeric and key-set-based equality rules.
func kwUniqueItems(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	want, _ := kv.(bool)
	if !want {
		return nil
	}
	arr, isArr := instance.(jsonvalue.Array)
	if !isArr {
		return nil
	}
	for i := 1; i < len(arr); i++ {
		for j := 0; j < i; j++ {
			if jsonvalue.DeepEqual(arr[i], arr[j]) {
				return []*validerr.ValidationError{ctx.errorf("array elements at index %d and %d are equal", j, i)}
			}
		}
	}
	return nil
}

func kwMaxProperties(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	return objectSizeBound(ctx, kv, instance, "maxProperties", func(n, bound int) bool { return n <= bound })
}

func kwMinProperties(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	return objectSizeBound(ctx, kv, instance, "minProperties", func(n, bound int) bool { return n >= bound })
}

func objectSizeBound(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, name string, ok func(n, bound int) bool) []*validerr.ValidationError {
	obj, isObj := instance.(*jsonvalue.Object)
	if !isObj {
		return nil
	}
	bound, err := boundInt(kv)
	if err != nil {
		return nil
	}
	if ok(obj.Len(), bound) {
		return nil
	}
	return []*validerr.ValidationError{ctx.errorf("object has %d properties, violates %s %d", obj.Len(), name, bound)}
}

// kwRequired implements "required": every named property must be present.
func kwRequired(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	obj, isObj := instance.(*jsonvalue.Object)
	if !isObj {
		return nil
	}
	names, ok := kv.(jsonvalue.Array)
	if !ok {
		return nil
	}
	var errs []*validerr.ValidationError
	for _, v := range names {
		name, ok := v.(string)
		if !ok {
			continue
		}
		if !obj.Has(name) {
			errs = append(errs, ctx.errorf("missing required property %q", name))
		}
	}
	return errs
}

// kwDependentRequired implements Draft 2019-09's split-out
// dependentRequired keyword.
func kwDependentRequired(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	obj, isObj := instance.(*jsonvalue.Object)
	if !isObj {
		return nil
	}
	deps, ok := kv.(*jsonvalue.Object)
	if !ok {
		return nil
	}
	var errs []*validerr.ValidationError
	for _, trigger := range deps.Keys() {
		if !obj.Has(trigger) {
			continue
		}
		namesVal, _ := deps.Get(trigger)
		names, ok := namesVal.(jsonvalue.Array)
		if !ok {
			continue
		}
		for _, v := range names {
			name, ok := v.(string)
			if !ok {
				continue
			}
			if !obj.Has(name) {
				errs = append(errs, ctx.errorf("property %q requires property %q, which is missing", trigger, name))
			}
		}
	}
	return errs
}

// kwUnsupported reports a structural fault for a keyword this module
// recognizes by name but does not evaluate (unevaluatedProperties,
// unevaluatedItems), so that a schema using it fails loudly at the
// offending location instead of being silently ignored, per spec.md §7 and
// §9's open question about evaluation-tracking keywords.
func kwUnsupported(ctx *Context, _ jsonvalue.Value, _ jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	return []*validerr.ValidationError{ctx.errorf("keyword is recognized but not evaluated by this module")}
}

// noopApplicator is used for keywords that are meaningful only as
// companions to another keyword already handled elsewhere ("then"/"else",
// evaluated from within kwIf) and must not be independently applied by the
// driver's own key-order walk.
func noopApplicator(*Context, jsonvalue.Value, jsonvalue.Value, *jsonvalue.Object) []*validerr.ValidationError {
	return nil
}

var errNotNumber = notANumberError{}

type notANumberError struct{}

func (notANumberError) Error() string { return "value is not a JSON number" }
