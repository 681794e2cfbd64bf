// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// This file documents the lenient overlay; the Lenient table itself is built in
// dispatch.go next to the dialect tables it is layered on top of, since
// both are Table values assembled the same way.
//
// The overlay replaces exactly six keywords relative to Draft 7 --
// properties, type, enum, additionalProperties, const, and allOf -- per
// spec.md §4.3. Five of the six make a null value at any position behave
// as if that position were absent. allOf's replacement is broader: a
// const:true boolean constraint anywhere in a listed subschema's own
// properties skips that whole subschema, not just the null-valued
// properties within it (spec.md §9's open-questions note codifies this as
// the observed, wider-than-minimal scope of the relaxation).
