// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"strings"

	"github.com/nestmed/jsonschema/pkg/jsonvalue"
	"github.com/nestmed/jsonschema/pkg/validerr"
)

// Func is a keyword function: given the keyword's own value, the instance
// currently under consideration, and the enclosing schema object (so a
// keyword can consult its siblings, the way additionalProperties consults
// properties and patternProperties), it returns zero or more validation
// errors.
//
// This generalizes the teacher repo's types.Keyword.Func, which carries
// the same four-argument shape but threads a *schema.ValidationState and a
// reflect-backed instance instead of a Context and a jsonvalue.Value.
type Func func(ctx *Context, keywordValue jsonvalue.Value, instance jsonvalue.Value, schema *jsonvalue.Object) []*validerr.ValidationError

// Table maps a keyword name to the function that evaluates it. Keywords
// absent from the table (most commonly $schema, $id, title, description,
// default, examples, and other purely-annotative keywords) are ignored by
// the driver.
type Table map[string]Func

// Clone returns a shallow copy of t, safe to mutate without affecting t.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// With returns a copy of t with every entry in overrides replacing (or
// adding to) t's own entry of the same name.
func (t Table) With(overrides Table) Table {
	c := t.Clone()
	for k, v := range overrides {
		c[k] = v
	}
	return c
}

// Schema dialect identifiers, as they appear (with or without a trailing
// "#") in a schema's $schema keyword. Draft 4 is the module's default
// dialect per spec.md §4.3, used whenever $schema is absent or unknown.
const (
	Draft4    = "http://json-schema.org/draft-04/schema"
	Draft6    = "http://json-schema.org/draft-06/schema"
	Draft7    = "http://json-schema.org/draft-07/schema"
	Draft2019 = "https://json-schema.org/draft/2019-09/schema"
	Draft2020 = "https://json-schema.org/draft/2020-12/schema"
)

// baseTable holds keyword functions shared by every dialect, i.e. those
// already present in Draft 4. const, contains, and propertyNames are
// Draft 6 additions (spec.md §4.3) and so are added in draft6Table, not
// here; a Draft 4 schema using any of them leaves the keyword unregistered
// and therefore ignored, per spec.md §3's "unknown keywords are ignored."
func baseTable() Table {
	return Table{
		"type":                 kwType,
		"enum":                 kwEnum,
		"multipleOf":           kwMultipleOf,
		"maximum":              kwMaximum,
		"minimum":              kwMinimum,
		"maxLength":            kwMaxLength,
		"minLength":            kwMinLength,
		"pattern":              kwPattern,
		"maxItems":             kwMaxItems,
		"minItems":             kwMinItems,
		"uniqueItems":          kwUniqueItems,
		"maxProperties":        kwMaxProperties,
		"minProperties":        kwMinProperties,
		"required":             kwRequired,
		"properties":           kwProperties,
		"patternProperties":    kwPatternProperties,
		"additionalProperties": kwAdditionalProperties,
		"items":                kwItemsArrayStyle,
		"additionalItems":      kwAdditionalItems,
		"allOf":                kwAllOf,
		"anyOf":                kwAnyOf,
		"oneOf":                kwOneOf,
		"not":                  kwNot,
		"$ref":                 kwRef,
		"format":               kwFormat,
		"dependencies":         kwDependencies,
	}
}

// draft4Table is the base table with Draft 4's boolean exclusiveMinimum /
// exclusiveMaximum companions.
func draft4Table() Table {
	return baseTable().With(Table{
		"exclusiveMinimum": kwExclusiveMinimumBool,
		"exclusiveMaximum": kwExclusiveMaximumBool,
	})
}

// draft6Table upgrades exclusiveMinimum/exclusiveMaximum to the numeric
// form introduced in Draft 6, and adds Draft 6's const, contains, and
// propertyNames; if/then/else is not present until Draft 7.
func draft6Table() Table {
	return baseTable().With(Table{
		"exclusiveMinimum": kwExclusiveMinimumNumeric,
		"exclusiveMaximum": kwExclusiveMaximumNumeric,
		"const":            kwConst,
		"contains":         kwContains,
		"propertyNames":    kwPropertyNames,
	})
}

// draft7Table adds if/then/else and the dependentRequired/dependentSchemas
// split is still expressed as the combined "dependencies" keyword; Draft 7
// is this module's reference dialect, per spec.md §1.
func draft7Table() Table {
	return draft6Table().With(Table{
		"if":   kwIf,
		"then": noopApplicator,
		"else": noopApplicator,
	})
}

// draft201909Table replaces the combined "dependencies" keyword with the
// split dependentRequired/dependentSchemas pair, and adds contentSchema-
// adjacent $defs (an inert container, handled by leaving it out of the
// table entirely so the driver skips it).
func draft201909Table() Table {
	t := draft7Table()
	delete(t, "dependencies")
	t["dependentRequired"] = kwDependentRequired
	t["dependentSchemas"] = kwDependentSchemas
	t["unevaluatedProperties"] = kwUnsupported
	t["unevaluatedItems"] = kwUnsupported
	return t
}

// draft202012Table is Draft 2019-09's table with only the 2020-12 array
// keywords changed; full 2020-12 vocabulary negotiation and $dynamicRef are
// out of scope per spec.md's non-goals. prefixItems is accepted as a
// synonym for the array-style "items" keyword, "items" itself gains the
// single-schema (rather than tuple) form used from 2020-12 onward, and
// additionalItems is dropped.
func draft202012Table() Table {
	t := draft201909Table()
	t["prefixItems"] = kwItemsArrayStyle
	t["items"] = kwItemsSingleSchemaStyle
	delete(t, "additionalItems")
	return t
}

var dialectTables = map[string]Table{
	Draft4:    draft4Table(),
	Draft6:    draft6Table(),
	Draft7:    draft7Table(),
	Draft2019: draft201909Table(),
	Draft2020: draft202012Table(),
}

// Lenient is the Draft 7 dialect with the null-permissive overlay
// applied, per spec.md §4.3.
var Lenient = draft7Table().With(Table{
	"properties":           kwPropertiesLenient,
	"type":                 kwTypeLenient,
	"enum":                 kwEnumLenient,
	"additionalProperties": kwAdditionalPropertiesLenient,
	"const":                kwConstLenient,
	"allOf":                kwAllOfLenient,
})

// refSuppressesSiblings reports whether a schema object's sibling keywords
// are ignored when it also carries a $ref, per spec.md §4.2: "$ref in
// Draft 4-7 suppresses sibling keywords; in 2019-09+ it does not."
//
// The module never needs to classify an arbitrary table, only the small,
// fixed set it builds itself, so the check is keyed on a keyword
// introduced exactly at the 2019-09 boundary rather than on table
// identity: unevaluatedProperties is present from draft201909Table
// onward and absent from every earlier table (including Lenient, which is
// built on draft7Table).
func refSuppressesSiblings(t Table) bool {
	_, is201909OrLater := t["unevaluatedProperties"]
	return !is201909OrLater
}

// selectTable chooses a dispatch table for schemaValue by inspecting its
// $schema keyword, defaulting to Draft 4 when $schema is absent or names a
// dialect this module does not recognize.
func selectTable(schemaValue jsonvalue.Value) Table {
	obj, ok := schemaValue.(*jsonvalue.Object)
	if ok {
		if v, ok := obj.Get("$schema"); ok {
			if s, ok := v.(string); ok {
				if t, ok := dialectTables[strings.TrimSuffix(s, "#")]; ok {
					return t
				}
			}
		}
	}
	return dialectTables[Draft4]
}
