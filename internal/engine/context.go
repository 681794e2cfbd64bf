// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package engine implements the keyword evaluation engine: the recursive,
// location-tracking interpreter that walks a JSON instance against a JSON
// Schema and produces a deterministic stream of validation errors.
//
// This generalizes the teacher repo's internal/validator package (which
// dispatches through a types.Keyword table built from a reflective,
// struct-or-map instance model) to the jsonvalue.Value tree mandated by
// the spec, and adds the location-tracking Context the teacher's
// ValidationState only half-exposes (it tracks InstancePath but not a
// matching keyword path).
package engine

import (
	"fmt"
	"reflect"

	"github.com/nestmed/jsonschema/pkg/jsonvalue"
	"github.com/nestmed/jsonschema/pkg/pointer"
	"github.com/nestmed/jsonschema/pkg/validerr"
)

// maxDepth bounds recursion depth as a backstop against pathological
// schemas that are not caught by cycle detection (for example a $ref chain
// that grows the keyword location without ever revisiting the same
// (schema, instance) pair).
const maxDepth = 1000

// Context is the transient, per-validation bundle described by spec.md §3.
// A Context is created fresh for each call to Validator.Validate and is
// not safe for concurrent use; a Validator may be shared across goroutines
// as long as each call gets its own Context.
type Context struct {
	InstanceLoc pointer.Stack
	KeywordLoc  pointer.Stack

	// Root is the top-level schema, used to resolve JSON Pointer $ref
	// fragments.
	Root jsonvalue.Value

	// RefIndex maps an identifier (an $id/id value, possibly composed with
	// its enclosing scope) to the subschema it names.
	RefIndex map[string]jsonvalue.Value

	// Table is the active dispatch table: keyword name to keyword
	// function, selected by dialect or replaced by the lenient overlay.
	Table Table

	depth    int
	visiting map[visitKey]bool
}

// visitKey identifies a (schema node, instance node) pair for cycle
// detection, per spec.md §5 and §9. Scalars are keyed by their own value,
// since a $ref cycle revisits the very same instance value unchanged on
// every iteration; objects and arrays are keyed by identity, since value
// equality would be too expensive to recompute at every recursion.
type visitKey struct {
	schema any
	inst   any
}

func instanceKey(instance jsonvalue.Value) any {
	switch v := instance.(type) {
	case nil:
		return "null"
	case bool:
		return v
	case jsonvalue.Number:
		return v
	case string:
		return v
	case jsonvalue.Array:
		if len(v) == 0 {
			return "[]"
		}
		return reflect.ValueOf(v).Pointer()
	case *jsonvalue.Object:
		return v
	default:
		return nil
	}
}

// enter records that ctx is about to descend into (schemaObj, instance).
// It reports whether that pair is already on the stack (a cycle) and, if
// not, returns a function the caller must invoke on the way back out.
func (ctx *Context) enter(schemaObj *jsonvalue.Object, instance jsonvalue.Value) (cycle bool, leave func()) {
	key := visitKey{schema: schemaObj, inst: instanceKey(instance)}
	if ctx.visiting == nil {
		ctx.visiting = make(map[visitKey]bool)
	}
	if ctx.visiting[key] {
		return true, func() {}
	}
	ctx.visiting[key] = true
	return false, func() { delete(ctx.visiting, key) }
}

// errorf builds a ValidationError at the current instance and keyword
// locations.
func (ctx *Context) errorf(format string, args ...any) *validerr.ValidationError {
	return &validerr.ValidationError{
		Message:          fmt.Sprintf(format, args...),
		InstanceLocation: ctx.InstanceLoc.String(),
		KeywordLocation:  ctx.KeywordLoc.String(),
	}
}

// Errorf is errorf exported for format checkers registered from pkg/format,
// which lives outside this package but still needs to build a ValidationError
// anchored at the "format" keyword's own location.
func (ctx *Context) Errorf(format string, args ...any) *validerr.ValidationError {
	return ctx.errorf(format, args...)
}
