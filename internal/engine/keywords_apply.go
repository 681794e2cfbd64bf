// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"regexp"

	"github.com/nestmed/jsonschema/pkg/jsonvalue"
	"github.com/nestmed/jsonschema/pkg/validerr"
)

// kwProperties implements "properties": each named property, if present on
// the instance, is validated against its own subschema.
func kwProperties(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	obj, isObj := instance.(*jsonvalue.Object)
	if !isObj {
		return nil
	}
	propSchemas, ok := kv.(*jsonvalue.Object)
	if !ok {
		return nil
	}
	var errs []*validerr.ValidationError
	for _, name := range propSchemas.Keys() {
		val, present := obj.Get(name)
		if !present {
			continue
		}
		sub, _ := propSchemas.Get(name)
		ctx.InstanceLoc.Push(name)
		errs = append(errs, descend(ctx, sub, val)...)
		ctx.InstanceLoc.Pop()
	}
	return errs
}

// kwPropertiesLenient is the lenient overlay's replacement for
// "properties": a null-valued property is treated as absent rather than
// validated, per spec.md §4.3.
func kwPropertiesLenient(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	obj, isObj := instance.(*jsonvalue.Object)
	if !isObj {
		return nil
	}
	propSchemas, ok := kv.(*jsonvalue.Object)
	if !ok {
		return nil
	}
	var errs []*validerr.ValidationError
	for _, name := range propSchemas.Keys() {
		val, present := obj.Get(name)
		if !present || val == nil {
			continue
		}
		sub, _ := propSchemas.Get(name)
		ctx.InstanceLoc.Push(name)
		errs = append(errs, descend(ctx, sub, val)...)
		ctx.InstanceLoc.Pop()
	}
	return errs
}

// kwPatternProperties implements "patternProperties": every property whose
// name matches a pattern is validated against that pattern's subschema,
// and a property may be checked against more than one pattern.
func kwPatternProperties(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	obj, isObj := instance.(*jsonvalue.Object)
	if !isObj {
		return nil
	}
	patterns, ok := kv.(*jsonvalue.Object)
	if !ok {
		return nil
	}
	var errs []*validerr.ValidationError
	for _, pat := range patterns.Keys() {
		re, err := regexp.Compile(pat)
		if err != nil {
			errs = append(errs, ctx.errorf("patternProperties pattern %q does not compile: %v", pat, err))
			continue
		}
		sub, _ := patterns.Get(pat)
		for _, name := range obj.Keys() {
			if !re.MatchString(name) {
				continue
			}
			val, _ := obj.Get(name)
			ctx.InstanceLoc.Push(name)
			errs = append(errs, descend(ctx, sub, val)...)
			ctx.InstanceLoc.Pop()
		}
	}
	return errs
}

// matchedProperties returns the set of instance property names already
// accounted for by this schema's "properties" and "patternProperties"
// siblings, for additionalProperties/propertyNames to consult. This
// generalizes the role the teacher's pkg/notes.Notes bundle plays between
// sibling keyword functions, but computes the set directly from the
// enclosing schema object instead of threading a side channel through the
// driver, since jsonvalue.Object already makes sibling lookups cheap.
func matchedProperties(obj *jsonvalue.Object, schema *jsonvalue.Object) map[string]bool {
	matched := make(map[string]bool)
	if propSchemas, ok := schemaObjectField(schema, "properties"); ok {
		for _, name := range propSchemas.Keys() {
			if obj.Has(name) {
				matched[name] = true
			}
		}
	}
	if patterns, ok := schemaObjectField(schema, "patternProperties"); ok {
		for _, pat := range patterns.Keys() {
			re, err := regexp.Compile(pat)
			if err != nil {
				continue
			}
			for _, name := range obj.Keys() {
				if re.MatchString(name) {
					matched[name] = true
				}
			}
		}
	}
	return matched
}

func schemaObjectField(schema *jsonvalue.Object, name string) (*jsonvalue.Object, bool) {
	v, ok := schema.Get(name)
	if !ok {
		return nil, false
	}
	obj, ok := v.(*jsonvalue.Object)
	return obj, ok
}

// kwAdditionalProperties implements "additionalProperties": properties not
// matched by "properties" or "patternProperties" are validated against
// (or excluded by) this subschema.
func kwAdditionalProperties(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError {
	obj, isObj := instance.(*jsonvalue.Object)
	if !isObj {
		return nil
	}
	matched := matchedProperties(obj, schema)
	var errs []*validerr.ValidationError
	for _, name := range obj.Keys() {
		if matched[name] {
			continue
		}
		val, _ := obj.Get(name)
		ctx.InstanceLoc.Push(name)
		errs = append(errs, descend(ctx, kv, val)...)
		ctx.InstanceLoc.Pop()
	}
	return errs
}

// kwAdditionalPropertiesLenient is the lenient overlay's replacement for
// "additionalProperties": an additional property holding null is treated
// as absent.
func kwAdditionalPropertiesLenient(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError {
	obj, isObj := instance.(*jsonvalue.Object)
	if !isObj {
		return nil
	}
	matched := matchedProperties(obj, schema)
	var errs []*validerr.ValidationError
	for _, name := range obj.Keys() {
		if matched[name] {
			continue
		}
		val, _ := obj.Get(name)
		if val == nil {
			continue
		}
		ctx.InstanceLoc.Push(name)
		errs = append(errs, descend(ctx, kv, val)...)
		ctx.InstanceLoc.Pop()
	}
	return errs
}

// kwPropertyNames implements Draft 6's "propertyNames": each property name
// is itself validated as a string instance against the given subschema.
func kwPropertyNames(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	obj, isObj := instance.(*jsonvalue.Object)
	if !isObj {
		return nil
	}
	var errs []*validerr.ValidationError
	for _, name := range obj.Keys() {
		ctx.InstanceLoc.Push(name)
		errs = append(errs, descend(ctx, kv, name)...)
		ctx.InstanceLoc.Pop()
	}
	return errs
}

// kwItemsArrayStyle implements the tuple form of "items" (Draft 4 through
// 2019-09, and 2020-12's "prefixItems"): an array of subschemas, each
// applied positionally to the instance element at the same index.
func kwItemsArrayStyle(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	arr, isArr := instance.(jsonvalue.Array)
	if !isArr {
		return nil
	}
	switch schemas := kv.(type) {
	case jsonvalue.Array:
		var errs []*validerr.ValidationError
		n := len(schemas)
		if n > len(arr) {
			n = len(arr)
		}
		for i := 0; i < n; i++ {
			ctx.InstanceLoc.PushIndex(i)
			errs = append(errs, descend(ctx, schemas[i], arr[i])...)
			ctx.InstanceLoc.Pop()
		}
		return errs
	default:
		// A single schema in "items" position is Draft 4 through
		// 2019-09's other valid form: it applies to every element.
		var errs []*validerr.ValidationError
		for i, elem := range arr {
			ctx.InstanceLoc.PushIndex(i)
			errs = append(errs, descend(ctx, kv, elem)...)
			ctx.InstanceLoc.Pop()
		}
		return errs
	}
}

// kwItemsSingleSchemaStyle implements 2020-12's "items", which always
// applies to every element past whatever "prefixItems" already covered.
func kwItemsSingleSchemaStyle(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError {
	arr, isArr := instance.(jsonvalue.Array)
	if !isArr {
		return nil
	}
	start := 0
	if prefix, ok := schema.Get("prefixItems"); ok {
		if schemas, ok := prefix.(jsonvalue.Array); ok {
			start = len(schemas)
		}
	}
	var errs []*validerr.ValidationError
	for i := start; i < len(arr); i++ {
		ctx.InstanceLoc.PushIndex(i)
		errs = append(errs, descend(ctx, kv, arr[i])...)
		ctx.InstanceLoc.Pop()
	}
	return errs
}

// kwAdditionalItems implements "additionalItems", the tuple-form
// counterpart of additionalProperties: array elements past the end of a
// tuple "items" are validated against this subschema. It is a no-op when
// "items" is absent or is itself a single schema, matching the other
// examples' treatment of additionalItems as meaningless outside the tuple
// form.
func kwAdditionalItems(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError {
	arr, isArr := instance.(jsonvalue.Array)
	if !isArr {
		return nil
	}
	itemsVal, ok := schema.Get("items")
	if !ok {
		return nil
	}
	tuple, ok := itemsVal.(jsonvalue.Array)
	if !ok {
		return nil
	}
	var errs []*validerr.ValidationError
	for i := len(tuple); i < len(arr); i++ {
		ctx.InstanceLoc.PushIndex(i)
		errs = append(errs, descend(ctx, kv, arr[i])...)
		ctx.InstanceLoc.Pop()
	}
	return errs
}

// kwContains implements Draft 6's "contains": at least one element must
// validate against the subschema. minContains/maxContains (2019-09) are not
// table entries of their own: kwContains reads them from the enclosing
// schema object and checks them against the same count.
func kwContains(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError {
	arr, isArr := instance.(jsonvalue.Array)
	if !isArr {
		return nil
	}
	count := 0
	for _, elem := range arr {
		sub := newScratchContext(ctx)
		if len(descend(sub, kv, elem)) == 0 {
			count++
		}
	}
	min, max := containsBounds(schema)
	if count < min {
		return []*validerr.ValidationError{ctx.errorf("array must contain at least %d matching element(s), found %d", min, count)}
	}
	if max >= 0 && count > max {
		return []*validerr.ValidationError{ctx.errorf("array must contain at most %d matching element(s), found %d", max, count)}
	}
	return nil
}

func containsBounds(schema *jsonvalue.Object) (min, max int) {
	min, max = 1, -1
	if v, ok := schema.Get("minContains"); ok {
		if n, err := boundInt(v); err == nil {
			min = n
		}
	}
	if v, ok := schema.Get("maxContains"); ok {
		if n, err := boundInt(v); err == nil {
			max = n
		}
	}
	return min, max
}

// newScratchContext returns a Context sharing ctx's root, ref index and
// table but with fresh location stacks and cycle-guard state, for
// speculative evaluation (contains' per-element probing, if/then/else's
// condition check) whose errors must not be reported and must not pollute
// the enclosing cycle guard.
func newScratchContext(ctx *Context) *Context {
	return &Context{Root: ctx.Root, RefIndex: ctx.RefIndex, Table: ctx.Table}
}

// kwAllOf implements "allOf": the instance must validate against every
// listed subschema.
func kwAllOf(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	schemas, ok := kv.(jsonvalue.Array)
	if !ok {
		return nil
	}
	var errs []*validerr.ValidationError
	for i, sub := range schemas {
		ctx.KeywordLoc.PushIndex(i)
		errs = append(errs, descend(ctx, sub, instance)...)
		ctx.KeywordLoc.Pop()
	}
	return errs
}

// kwAllOfLenient is the lenient overlay's replacement for "allOf": a
// listed subschema is skipped entirely when any of its own "properties"
// entries asserts a boolean const:true on any key, per spec.md §4.3 and
// §9's open-questions note codifying the observed (broader-than-minimal)
// scope of this relaxation.
func kwAllOfLenient(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	schemas, ok := kv.(jsonvalue.Array)
	if !ok {
		return nil
	}
	var errs []*validerr.ValidationError
	for i, sub := range schemas {
		if subschemaAssertsBooleanConstTrue(sub) {
			continue
		}
		ctx.KeywordLoc.PushIndex(i)
		errs = append(errs, descend(ctx, sub, instance)...)
		ctx.KeywordLoc.Pop()
	}
	return errs
}

// subschemaAssertsBooleanConstTrue reports whether sub is a schema object
// whose "properties" contains at least one entry with const:true.
func subschemaAssertsBooleanConstTrue(sub jsonvalue.Value) bool {
	obj, ok := sub.(*jsonvalue.Object)
	if !ok {
		return false
	}
	propsObj, ok := schemaObjectField(obj, "properties")
	if !ok {
		return false
	}
	for _, name := range propsObj.Keys() {
		propSchema, _ := propsObj.Get(name)
		propObj, ok := propSchema.(*jsonvalue.Object)
		if !ok {
			continue
		}
		if c, ok := propObj.Get("const"); ok {
			if b, ok := c.(bool); ok && b {
				return true
			}
		}
	}
	return false
}

// kwAnyOf implements "anyOf": the instance must validate against at least
// one listed subschema. When none match, every branch's errors are
// reported, so a caller sees why each alternative failed.
func kwAnyOf(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	schemas, ok := kv.(jsonvalue.Array)
	if !ok {
		return nil
	}
	var branchErrs []*validerr.ValidationError
	for i, sub := range schemas {
		ctx.KeywordLoc.PushIndex(i)
		errs := descend(ctx, sub, instance)
		ctx.KeywordLoc.Pop()
		if len(errs) == 0 {
			return nil
		}
		branchErrs = append(branchErrs, errs...)
	}
	return append([]*validerr.ValidationError{ctx.errorf("value does not match any subschema in anyOf")}, branchErrs...)
}

// kwOneOf implements "oneOf": the instance must validate against exactly
// one listed subschema.
func kwOneOf(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	schemas, ok := kv.(jsonvalue.Array)
	if !ok {
		return nil
	}
	matches := 0
	var branchErrs []*validerr.ValidationError
	for i, sub := range schemas {
		ctx.KeywordLoc.PushIndex(i)
		errs := descend(ctx, sub, instance)
		ctx.KeywordLoc.Pop()
		if len(errs) == 0 {
			matches++
		} else {
			branchErrs = append(branchErrs, errs...)
		}
	}
	switch matches {
	case 1:
		return nil
	case 0:
		return append([]*validerr.ValidationError{ctx.errorf("value does not match any subschema in oneOf")}, branchErrs...)
	default:
		return []*validerr.ValidationError{ctx.errorf("value matches %d subschemas in oneOf, want exactly 1", matches)}
	}
}

// kwNot implements "not": the instance must fail to validate against the
// given subschema.
func kwNot(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	sub := newScratchContext(ctx)
	if len(descend(sub, kv, instance)) > 0 {
		return nil
	}
	return []*validerr.ValidationError{ctx.errorf("value must not match the subschema given by not")}
}

// kwIf implements Draft 7's "if"/"then"/"else" trio. "then" and "else" are
// registered in the table as no-ops so the driver's own key-order walk
// does not double-apply them; kwIf drives both from here.
func kwIf(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError {
	probe := newScratchContext(ctx)
	matched := len(descend(probe, kv, instance)) == 0

	branchName := "else"
	if matched {
		branchName = "then"
	}
	branch, present := schema.Get(branchName)
	if !present {
		return nil
	}
	ctx.KeywordLoc.Push(branchName)
	errs := descend(ctx, branch, instance)
	ctx.KeywordLoc.Pop()
	return errs
}

// kwDependencies implements the combined Draft 4 through 7
// "dependencies" keyword: each entry is either an array of required
// property names (dependentRequired's form) or a subschema (
// dependentSchemas' form), selected by the entry's own JSON type.
func kwDependencies(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
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
		depVal, _ := deps.Get(trigger)
		switch d := depVal.(type) {
		case jsonvalue.Array:
			for _, v := range d {
				name, ok := v.(string)
				if !ok {
					continue
				}
				if !obj.Has(name) {
					errs = append(errs, ctx.errorf("property %q requires property %q, which is missing", trigger, name))
				}
			}
		default:
			errs = append(errs, descend(ctx, depVal, instance)...)
		}
	}
	return errs
}

// kwDependentSchemas implements Draft 2019-09's split-out
// dependentSchemas keyword.
func kwDependentSchemas(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
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
		sub, _ := deps.Get(trigger)
		errs = append(errs, descend(ctx, sub, instance)...)
	}
	return errs
}

// kwRef implements "$ref". A $ref that does not resolve — an unindexed
// base URI, a dangling fragment, or a plain-name anchor this module does
// not support — is a structural fault reported at $ref's own location,
// per spec.md §7.
func kwRef(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	ref, ok := kv.(string)
	if !ok {
		return nil
	}
	target, ok := resolveRef(ctx, ref)
	if !ok {
		return []*validerr.ValidationError{ctx.errorf("$ref %q does not resolve", ref)}
	}
	return descend(ctx, target, instance)
}

// kwFormat implements the "format" keyword via the process-wide checker
// registry in pkg/format, generalizing the teacher's pkg/format package
// (which the same registry design is grounded on) to this module's
// jsonvalue-based instances. An unregistered format name is annotative
// only, per spec.md's format non-goal beyond the checkers this module
// ships. Unlike the teacher's string-in/error-out validators, a
// FormatChecker here has the same shape as every other keyword Func: it
// receives the full instance and ctx, and builds its own located
// ValidationError, so a registered checker is a keyword function in
// miniature rather than a bare string predicate behind an adapter.
func kwFormat(ctx *Context, kv jsonvalue.Value, instance jsonvalue.Value, _ *jsonvalue.Object) []*validerr.ValidationError {
	name, ok := kv.(string)
	if !ok {
		return nil
	}
	check, ok := formatCheckers[name]
	if !ok {
		return nil
	}
	if err := check(ctx, instance); err != nil {
		return []*validerr.ValidationError{err}
	}
	return nil
}

// FormatChecker validates instance against one named "format" value. It
// returns a located ValidationError built from ctx when instance fails to
// satisfy the format, or nil when instance is satisfied or is not a
// string (format only constrains string instances, per spec.md §4.2).
type FormatChecker func(ctx *Context, instance jsonvalue.Value) *validerr.ValidationError

// formatCheckers is populated by pkg/format's init via RegisterFormat, and
// is consulted directly rather than through an import cycle: pkg/format
// imports internal/engine to call RegisterFormat, not the other way
// around.
var formatCheckers = map[string]FormatChecker{}

// RegisterFormat adds a named format checker to the process-wide registry
// consulted by the "format" keyword, mirroring the teacher's
// pkg/format.RegisterFormatValidator.
func RegisterFormat(name string, check FormatChecker) {
	formatCheckers[name] = check
}
