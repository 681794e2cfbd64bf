// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package validerr

import "testing"

func TestValidationErrorRendering(t *testing.T) {
	e := New("value is not a string", "/name", "/properties/name/type")
	if got, want := e.Error(), "/properties/name/type: value is not a string"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	root := New("instance does not match a false schema", "", "")
	if got, want := root.Error(), "(root): instance does not match a false schema"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrorsJoin(t *testing.T) {
	es := ValidationErrors{
		New("a", "", "/type"),
		New("b", "/x", "/properties/x/type"),
	}
	want := "/type: a; /properties/x/type: b"
	if got := es.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
