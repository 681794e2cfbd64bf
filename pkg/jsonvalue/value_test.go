// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import "testing"

func TestNumbersEqual(t *testing.T) {
	cases := []struct {
		a, b Number
		want bool
	}{
		{"1", "1.0", true},
		{"1", "1", true},
		{"0.1", "0.10", true},
		{"1", "2", false},
		{"3", "3.0000000000000001", false},
	}
	for _, c := range cases {
		if got := NumbersEqual(c.a, c.b); got != c.want {
			t.Errorf("NumbersEqual(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestNumberIsInteger(t *testing.T) {
	cases := []struct {
		n    Number
		want bool
	}{
		{"1", true},
		{"1.0", true},
		{"1.5", false},
		{"-3", true},
		{"1e2", true},
		{"1.5e1", true},
	}
	for _, c := range cases {
		if got := c.n.IsInteger(); got != c.want {
			t.Errorf("Number(%q).IsInteger() = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestDeepEqual(t *testing.T) {
	obj1 := NewObject().Set("a", Number("1")).Set("b", "x")
	obj2 := NewObject().Set("b", "x").Set("a", Number("1.0"))
	if !DeepEqual(obj1, obj2) {
		t.Error("DeepEqual(obj1, obj2) = false, want true (key order and decimal form shouldn't matter)")
	}

	obj3 := NewObject().Set("a", Number("1")).Set("b", "y")
	if DeepEqual(obj1, obj3) {
		t.Error("DeepEqual(obj1, obj3) = true, want false")
	}

	if !DeepEqual(Array{Number("1"), "x"}, Array{Number("1.0"), "x"}) {
		t.Error("DeepEqual on arrays = false, want true")
	}

	if DeepEqual(Number("1"), true) {
		t.Error("DeepEqual(1, true) = true, want false: uniqueItems must distinguish numbers from booleans")
	}

	if !DeepEqual(nil, nil) {
		t.Error("DeepEqual(nil, nil) = false, want true")
	}
}

func TestKind(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{nil, "null"},
		{true, "boolean"},
		{Number("1"), "number"},
		{"s", "string"},
		{Array{}, "array"},
		{NewObject(), "object"},
	}
	for _, c := range cases {
		if got := Kind(c.v); got != c.want {
			t.Errorf("Kind(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestEscapeUnescapeToken(t *testing.T) {
	cases := []struct{ raw, escaped string }{
		{"a/b", "a~1b"},
		{"m~n", "m~0n"},
		{"plain", "plain"},
		{"~/", "~0~1"},
	}
	for _, c := range cases {
		if got := EscapeToken(c.raw); got != c.escaped {
			t.Errorf("EscapeToken(%q) = %q, want %q", c.raw, got, c.escaped)
		}
		if got := UnescapeToken(c.escaped); got != c.raw {
			t.Errorf("UnescapeToken(%q) = %q, want %q", c.escaped, got, c.raw)
		}
	}
}

func TestObjectOrderPreserved(t *testing.T) {
	obj := NewObject().Set("z", 1).Set("a", 2).Set("m", 3)
	want := []string{"z", "a", "m"}
	got := obj.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	obj.Set("a", 99)
	got = obj.Keys()
	if len(got) != 3 {
		t.Fatalf("re-setting an existing key should not append: Keys() = %v", got)
	}
}
