// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import "testing"

func TestDecodeOrderAndNumbers(t *testing.T) {
	v, err := Decode([]byte(`{"z": 1, "a": 1.0, "m": [1, 2, 3]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	obj, ok := v.(*Object)
	if !ok {
		t.Fatalf("Decode returned %T, want *Object", v)
	}
	want := []string{"z", "a", "m"}
	if got := obj.Keys(); len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	a, _ := obj.Get("a")
	n, ok := a.(Number)
	if !ok {
		t.Fatalf("obj[\"a\"] = %T, want Number", a)
	}
	if string(n) != "1.0" {
		t.Errorf("obj[\"a\"] = %q, want exact decimal text %q", n, "1.0")
	}

	m, _ := obj.Get("m")
	arr, ok := m.(Array)
	if !ok || len(arr) != 3 {
		t.Fatalf("obj[\"m\"] = %#v, want a 3-element Array", m)
	}
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	if _, err := Decode([]byte(`1 2`)); err == nil {
		t.Error("Decode(\"1 2\") succeeded, want an error for trailing data")
	}
}

func TestDecodeScalarsAndNull(t *testing.T) {
	cases := []struct {
		in   string
		want Value
	}{
		{"null", nil},
		{"true", true},
		{"false", false},
		{`"hi"`, "hi"},
		{"3.5", Number("3.5")},
	}
	for _, c := range cases {
		got, err := Decode([]byte(c.in))
		if err != nil {
			t.Fatalf("Decode(%q): %v", c.in, err)
		}
		if !DeepEqual(got, c.want) {
			t.Errorf("Decode(%q) = %#v, want %#v", c.in, got, c.want)
		}
	}
}

func TestDecodeEmptyArrayAndObject(t *testing.T) {
	v, err := Decode([]byte(`[]`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	arr, ok := v.(Array)
	if !ok || arr == nil {
		t.Fatalf("Decode(\"[]\") = %#v, want a non-nil empty Array", v)
	}

	v, err = Decode([]byte(`{}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	obj, ok := v.(*Object)
	if !ok || obj.Len() != 0 {
		t.Fatalf("Decode(\"{}\") = %#v, want an empty *Object", v)
	}
}
