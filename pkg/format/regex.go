// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"regexp/syntax"

	"github.com/nestmed/jsonschema/internal/engine"
	"github.com/nestmed/jsonschema/pkg/jsonvalue"
	"github.com/nestmed/jsonschema/pkg/validerr"
)

// regexFormat requires a valid regex.
func regexFormat(ctx *engine.Context, instance jsonvalue.Value) *validerr.ValidationError {
	s, ok := instance.(string)
	if !ok {
		return nil
	}
	if _, err := syntax.Parse(s, syntax.Perl); err != nil {
		return ctx.Errorf("%q is not a valid regexp (note that only Go style regexps are supported)", s)
	}
	return nil
}
