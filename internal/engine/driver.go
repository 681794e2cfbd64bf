// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/nestmed/jsonschema/pkg/jsonvalue"
	"github.com/nestmed/jsonschema/pkg/validerr"
)

// Validate is the engine's single entry point: it evaluates instance
// against schema using ctx's dispatch table, returning every accumulated
// validation error in document order. ctx.Root and ctx.RefIndex must
// already be populated (see BuildRefIndex) before calling Validate.
func Validate(ctx *Context, schema jsonvalue.Value, instance jsonvalue.Value) []*validerr.ValidationError {
	if ctx.Table == nil {
		ctx.Table = selectTable(schema)
	}
	return descend(ctx, schema, instance)
}

// descend evaluates instance against one schema node: a boolean schema
// short-circuits per spec.md §4.1, and an object schema evaluates each of
// its own keywords present in ctx.Table, in the object's own key order.
// Under a dialect where $ref suppresses sibling keywords (Draft 4-7, per
// spec.md §4.2), a schema object carrying $ref evaluates only $ref and
// ignores every other keyword, resolved or not.
func descend(ctx *Context, schema jsonvalue.Value, instance jsonvalue.Value) []*validerr.ValidationError {
	ctx.depth++
	defer func() { ctx.depth-- }()
	if ctx.depth > maxDepth {
		return []*validerr.ValidationError{ctx.errorf("schema exceeds maximum nesting depth")}
	}

	switch s := schema.(type) {
	case bool:
		if s {
			return nil
		}
		return []*validerr.ValidationError{ctx.errorf("instance does not match a false schema")}

	case *jsonvalue.Object:
		cycle, leave := ctx.enter(s, instance)
		if cycle {
			return nil
		}
		defer leave()

		keys := s.Keys()
		if _, hasRef := s.Get("$ref"); hasRef && refSuppressesSiblings(ctx.Table) {
			keys = []string{"$ref"}
		}

		var errs []*validerr.ValidationError
		for _, kw := range keys {
			fn, ok := ctx.Table[kw]
			if !ok {
				continue
			}
			kv, _ := s.Get(kw)
			ctx.KeywordLoc.Push(kw)
			errs = append(errs, fn(ctx, kv, instance, s)...)
			ctx.KeywordLoc.Pop()
		}
		return errs

	case nil:
		// A schema position holding JSON null (for example a $ref whose
		// JSON Pointer lands on a null value) is a structural fault,
		// reported as an ordinary validation error per spec.md §7.
		return []*validerr.ValidationError{ctx.errorf("schema reference does not resolve to a schema")}

	default:
		return []*validerr.ValidationError{ctx.errorf("schema node is not a boolean or an object")}
	}
}
