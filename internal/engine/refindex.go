// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/nestmed/jsonschema/pkg/jsonvalue"
)

// BuildRefIndex walks root depth-first and records every subschema that
// declares an identifier, keyed by that identifier resolved against its
// enclosing scope. This generalizes the teacher repo's draft202012 scope
// walk (which threads a base URI through Part construction) to a single
// pass over the already-decoded jsonvalue.Value tree, scoped to the local,
// same-document resolution spec.md §4.4 calls for: $id/id composition and
// JSON Pointer fragments, with an unindexed remote base reported as a
// validation error rather than fetched.
func BuildRefIndex(root jsonvalue.Value) map[string]jsonvalue.Value {
	index := make(map[string]jsonvalue.Value)
	walkRefIndex(root, "", index)
	return index
}

func walkRefIndex(node jsonvalue.Value, base string, index map[string]jsonvalue.Value) {
	switch v := node.(type) {
	case jsonvalue.Array:
		for _, elem := range v {
			walkRefIndex(elem, base, index)
		}
	case *jsonvalue.Object:
		newBase := base
		if id := identifierOf(v); id != "" {
			newBase = resolveURI(base, id)
			index[newBase] = v
		}
		for _, k := range v.Keys() {
			child, _ := v.Get(k)
			walkRefIndex(child, newBase, index)
		}
	}
}

// identifierOf returns a schema object's own $id (Draft 6+) or id (Draft
// 4), preferring $id when, implausibly, both are present.
func identifierOf(obj *jsonvalue.Object) string {
	if v, ok := obj.Get("$id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if v, ok := obj.Get("id"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func resolveURI(base, ref string) string {
	if base == "" {
		return ref
	}
	bu, err := url.Parse(base)
	if err != nil {
		return ref
	}
	ru, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return bu.ResolveReference(ru).String()
}

// resolveRef resolves a $ref string against ctx.Root and ctx.RefIndex. It
// never performs network or filesystem access: a ref naming a base URI
// that was not found while indexing the document is a structural fault,
// surfaced as a validation error at the $ref's own location rather than as
// a Go error, per spec.md §7.
func resolveRef(ctx *Context, ref string) (jsonvalue.Value, bool) {
	base, frag, hasFrag := strings.Cut(ref, "#")

	var target jsonvalue.Value
	if base == "" {
		target = ctx.Root
	} else {
		t, ok := ctx.RefIndex[base]
		if !ok {
			return nil, false
		}
		target = t
	}

	if !hasFrag || frag == "" {
		return target, true
	}
	if !strings.HasPrefix(frag, "/") {
		// A plain-name fragment names a $anchor/$dynamicAnchor, which is
		// out of this module's scope; report as unresolved.
		return nil, false
	}
	return navigatePointer(target, frag)
}

// navigatePointer resolves a JSON Pointer (its leading "/" already
// confirmed by the caller) against root.
func navigatePointer(root jsonvalue.Value, pointer string) (jsonvalue.Value, bool) {
	cur := root
	for _, tok := range strings.Split(pointer, "/")[1:] {
		tok = jsonvalue.UnescapeToken(tok)
		switch v := cur.(type) {
		case *jsonvalue.Object:
			val, ok := v.Get(tok)
			if !ok {
				return nil, false
			}
			cur = val
		case jsonvalue.Array:
			i, err := strconv.Atoi(tok)
			if err != nil || i < 0 || i >= len(v) {
				return nil, false
			}
			cur = v[i]
		default:
			return nil, false
		}
	}
	return cur, true
}
