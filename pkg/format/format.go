// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format defines format checkers for the format keyword.
// By default the format keyword is always accepted.
// If this package is imported, the format keyword will be verified
// as described by the JSON schema docs.
package format

import (
	"github.com/nestmed/jsonschema/internal/engine"
	"github.com/nestmed/jsonschema/pkg/jsonvalue"
	"github.com/nestmed/jsonschema/pkg/validerr"
)

// init registers the defined formats.
func init() {
	engine.RegisterFormat("date", dateFormat)
	engine.RegisterFormat("date-time", dateTimeFormat)
	engine.RegisterFormat("duration", durationFormat)
	engine.RegisterFormat("email", emailFormat)
	engine.RegisterFormat("hostname", hostnameFormat)
	engine.RegisterFormat("idn-email", idnEmailFormat)
	engine.RegisterFormat("idn-hostname", idnHostnameFormat)
	engine.RegisterFormat("ipv4", ipv4Format)
	engine.RegisterFormat("ipv6", ipv6Format)
	engine.RegisterFormat("iri", iriFormat)
	engine.RegisterFormat("iri-reference", iriReferenceFormat)
	engine.RegisterFormat("json-pointer", jsonPointerFormat)
	engine.RegisterFormat("regex", regexFormat)
	engine.RegisterFormat("relative-json-pointer", relativeJSONPointerFormat)
	engine.RegisterFormat("time", timeFormat)
	engine.RegisterFormat("uri", uriFormat)
	engine.RegisterFormat("uri-reference", uriReferenceFormat)
	engine.RegisterFormat("uuid", uuidFormat)
}

// RegisterFormatValidator registers a custom format validator from a plain
// string predicate, the simplest form for callers who have no need to
// build a located error themselves. The predicate only runs against
// string instances; a non-string instance is left unchecked, matching
// every built-in checker in this package.
func RegisterFormatValidator(format string, fv func(string) error) {
	engine.RegisterFormat(format, stringChecker(fv))
}

// stringChecker adapts a plain string-in/error-out predicate to the
// instance/ctx shape an engine.FormatChecker uses.
func stringChecker(fv func(string) error) engine.FormatChecker {
	return func(ctx *engine.Context, instance jsonvalue.Value) *validerr.ValidationError {
		s, ok := instance.(string)
		if !ok {
			return nil
		}
		if err := fv(s); err != nil {
			return ctx.Errorf("%v", err)
		}
		return nil
	}
}
