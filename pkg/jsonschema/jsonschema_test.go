// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonschema

import (
	"testing"

	"github.com/nestmed/jsonschema/pkg/jsonvalue"
)

func decode(t *testing.T, text string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Decode([]byte(text))
	if err != nil {
		t.Fatalf("Decode(%q): %v", text, err)
	}
	return v
}

func validate(t *testing.T, schemaText, instanceText string) *ValidationResult {
	t.Helper()
	res, err := Validate(decode(t, instanceText), decode(t, schemaText))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return res
}

func customValidate(t *testing.T, schemaText, instanceText string) *ValidationResult {
	t.Helper()
	res, err := CustomValidate(decode(t, instanceText), decode(t, schemaText))
	if err != nil {
		t.Fatalf("CustomValidate: %v", err)
	}
	return res
}

// S1: a well-formed grocery-item instance satisfies a simple required
// object schema.
func TestScenarioS1(t *testing.T) {
	schema := `{"type":"object","properties":{"name":{"type":"string"},"price":{"type":"number"}},"required":["name"]}`
	res := validate(t, schema, `{"name":"Eggs","price":34.99}`)
	if !res.Valid || len(res.Errors) != 0 {
		t.Errorf("S1: Valid=%v, Errors=%v, want valid with no errors", res.Valid, res.Errors)
	}
}

// S2: the same schema rejects an instance missing the required "name".
func TestScenarioS2(t *testing.T) {
	schema := `{"type":"object","properties":{"name":{"type":"string"},"price":{"type":"number"}},"required":["name"]}`
	res := validate(t, schema, `{"price":34.99}`)
	if res.Valid {
		t.Fatal("S2: Valid=true, want false")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("S2: got %d errors, want exactly 1: %v", len(res.Errors), res.Errors)
	}
	if got := res.Errors[0].KeywordLocation; got != "/required" {
		t.Errorf("S2: KeywordLocation = %q, want %q", got, "/required")
	}
}

// S3: strict validate rejects a null field that fails type and enum;
// the lenient overlay treats the null field as absent and accepts it.
func TestScenarioS3(t *testing.T) {
	schema := `{"type":"object","properties":{"Sodium":{"type":"integer"},"Carbohydrate":{"type":"string","enum":["Low","High"]}},"required":["Sodium"],"additionalProperties":false}`
	instance := `{"Sodium":140,"Carbohydrate":null}`

	strict := validate(t, schema, instance)
	if strict.Valid {
		t.Error("S3 validate: Valid=true, want false")
	}

	lenient := customValidate(t, schema, instance)
	if !lenient.Valid || len(lenient.Errors) != 0 {
		t.Errorf("S3 customValidate: Valid=%v, Errors=%v, want valid with no errors", lenient.Valid, lenient.Errors)
	}
}

// S4: an unlisted property is rejected under both dispatch tables.
func TestScenarioS4(t *testing.T) {
	schema := `{"type":"object","properties":{"Sodium":{"type":"integer"},"Carbohydrate":{"type":"string","enum":["Low","High"]}},"required":["Sodium"],"additionalProperties":false}`
	instance := `{"Sodium":140,"ExtraField":"x"}`

	for _, res := range []*ValidationResult{validate(t, schema, instance), customValidate(t, schema, instance)} {
		if res.Valid {
			t.Error("S4: Valid=true, want false")
			continue
		}
		found := false
		for _, e := range res.Errors {
			if e.KeywordLocation == "/additionalProperties" {
				found = true
			}
		}
		if !found {
			t.Errorf("S4: no error at /additionalProperties among %v", res.Errors)
		}
	}
}

// S5: a boolean const:true is strict under validate but, under the
// lenient overlay, an allOf branch asserting it is skipped entirely. The
// schema names Draft 7, the dialect the lenient overlay is built on, since
// the default Draft 4 table does not recognize const.
func TestScenarioS5(t *testing.T) {
	schema := `{"$schema":"http://json-schema.org/draft-07/schema#","properties":{"a":{"const":true}},"allOf":[{"properties":{"a":{"const":true}}}]}`
	instance := `{"a":false}`

	strict := validate(t, schema, instance)
	if strict.Valid {
		t.Error("S5 validate: Valid=true, want false")
	}

	lenient := customValidate(t, schema, instance)
	if !lenient.Valid || len(lenient.Errors) != 0 {
		t.Errorf("S5 customValidate: Valid=%v, Errors=%v, want valid with no errors", lenient.Valid, lenient.Errors)
	}
}

// S6: uniqueItems treats 1 and 1.0 as the same value.
func TestScenarioS6(t *testing.T) {
	res := validate(t, `{"type":"array","uniqueItems":true}`, `[1,1.0]`)
	if res.Valid {
		t.Error("S6: Valid=true, want false")
	}
}

// S7: a resolved $ref carries its target's keyword location along with it.
func TestScenarioS7(t *testing.T) {
	schema := `{"$ref":"#/$defs/x","$defs":{"x":{"type":"integer"}}}`
	res := validate(t, schema, `"hello"`)
	if res.Valid {
		t.Fatal("S7: Valid=true, want false")
	}
	if got := res.Errors[0].KeywordLocation; got != "/$ref/type" {
		t.Errorf("S7: KeywordLocation = %q, want %q", got, "/$ref/type")
	}
}

func TestValidatorReusableAcrossInstances(t *testing.T) {
	v, err := New(decode(t, `{"type":"string"}`))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if res := v.Validate(decode(t, `"a"`)); !res.Valid {
		t.Error("first Validate call: Valid=false, want true")
	}
	if res := v.Validate(decode(t, `1`)); res.Valid {
		t.Error("second Validate call: Valid=true, want false")
	}
}

func TestNewRejectsNonSchemaValue(t *testing.T) {
	if _, err := New(decode(t, `1`)); err == nil {
		t.Error("New(1): err = nil, want an error")
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	schema := `{"type":"object","required":["a","b"],"properties":{"a":{"type":"string"},"b":{"type":"number"}}}`
	instance := `{"a":1,"b":"x"}`
	first := validate(t, schema, instance)
	second := validate(t, schema, instance)
	if len(first.Errors) != len(second.Errors) {
		t.Fatalf("non-deterministic error count: %d vs %d", len(first.Errors), len(second.Errors))
	}
	for i := range first.Errors {
		if first.Errors[i].KeywordLocation != second.Errors[i].KeywordLocation ||
			first.Errors[i].InstanceLocation != second.Errors[i].InstanceLocation {
			t.Errorf("non-deterministic error at index %d: %v vs %v", i, first.Errors[i], second.Errors[i])
		}
	}
}
