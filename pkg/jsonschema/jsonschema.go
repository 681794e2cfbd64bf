// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonschema is the module's public entry point: construct a
// [Validator] from a decoded schema with [New] (following whatever dialect
// the schema's own $schema keyword names, Draft 4 by default) or
// [NewCustom] (an explicit dispatch table, most commonly the lenient
// overlay), then call [Validator.Validate] once per instance.
//
// [Validate] and [CustomValidate] are one-shot convenience wrappers for
// callers who have no use for a reusable Validator, mirroring the
// teacher's top-level jsonschema.New entry point.
package jsonschema

import (
	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/nestmed/jsonschema/internal/engine"
	"github.com/nestmed/jsonschema/pkg/jsonvalue"
	"github.com/nestmed/jsonschema/pkg/validerr"
)

// ValidationResult is the outcome of one call to Validator.Validate: a
// summary flag plus the ordered error list, in the "basic" output shape
// spec.md §4.5 and §6 describe.
type ValidationResult struct {
	Valid  bool
	Errors []*validerr.ValidationError
}

func newResult(errs []*validerr.ValidationError) *ValidationResult {
	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// Validator holds a schema already indexed for $ref resolution, and the
// dispatch table selected for it, so that Validate can be called
// repeatedly against many instances without repeating that setup work.
type Validator struct {
	schema   jsonvalue.Value
	refIndex map[string]jsonvalue.Value
	table    engine.Table
}

// New constructs a Validator for schema, selecting a dispatch table from
// the schema's own $schema keyword (Draft 4 when absent or unrecognized,
// per spec.md §4.3).
func New(schema jsonvalue.Value) (*Validator, error) {
	return newValidator(schema, nil)
}

// NewCustom constructs a Validator that always uses table, ignoring the
// schema's own $schema keyword. [LenientTable] is the most common choice;
// callers building their own variant can start from a dialect table and
// call its With method to adjust a handful of keywords without writing a
// whole new dialect.
func NewCustom(schema jsonvalue.Value, table engine.Table) (*Validator, error) {
	return newValidator(schema, table)
}

func newValidator(schema jsonvalue.Value, table engine.Table) (*Validator, error) {
	if _, ok := schema.(bool); !ok {
		if _, ok := schema.(*jsonvalue.Object); !ok {
			return nil, motmedelErrors.NewWithTrace(errNotASchema)
		}
	}
	return &Validator{
		schema:   schema,
		refIndex: engine.BuildRefIndex(schema),
		table:    table,
	}, nil
}

// Validate checks instance against v's schema, returning every violation
// found. A failing instance is reported only through the result's Valid
// flag and Errors list; Validate has no Go error return.
func (v *Validator) Validate(instance jsonvalue.Value) *ValidationResult {
	ctx := &engine.Context{Root: v.schema, RefIndex: v.refIndex, Table: v.table}
	return newResult(engine.Validate(ctx, v.schema, instance))
}

// LenientTable is the null-permissive overlay described by spec.md §4.3,
// for use with NewCustom.
var LenientTable = engine.Lenient

// Validate is a one-shot convenience wrapper: it builds a Draft-selected
// Validator for schema and immediately validates instance.
func Validate(instance, schema jsonvalue.Value) (*ValidationResult, error) {
	v, err := New(schema)
	if err != nil {
		return nil, err
	}
	return v.Validate(instance), nil
}

// CustomValidate is Validate's counterpart using the lenient overlay,
// matching spec.md §6's two-argument customValidate(instance, schema)
// exactly. A caller who needs some other table built by NewCustom should
// construct a Validator directly and call its Validate method instead.
func CustomValidate(instance, schema jsonvalue.Value) (*ValidationResult, error) {
	v, err := NewCustom(schema, LenientTable)
	if err != nil {
		return nil, err
	}
	return v.Validate(instance), nil
}

type notASchemaError struct{}

func (notASchemaError) Error() string { return "jsonschema: schema value is not a boolean or an object" }

var errNotASchema = notASchemaError{}
