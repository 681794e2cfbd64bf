// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"testing"

	"github.com/nestmed/jsonschema/internal/engine"
)

func TestEmailFormat(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"a@example.com", true},
		{"not-an-email", false},
		{"a@b@c", false},
	}
	for _, c := range cases {
		if got := emailFormat(&engine.Context{}, c.s) == nil; got != c.want {
			t.Errorf("emailFormat(%q) valid = %v, want %v", c.s, got, c.want)
		}
	}
}

func TestHostnameFormat(t *testing.T) {
	cases := []struct {
		s    string
		want bool
	}{
		{"example.com", true},
		{"-bad-.com", false},
		{"a..b", false},
	}
	for _, c := range cases {
		if got := hostnameFormat(&engine.Context{}, c.s) == nil; got != c.want {
			t.Errorf("hostnameFormat(%q) valid = %v, want %v", c.s, got, c.want)
		}
	}
}

func TestIPFormats(t *testing.T) {
	ctx := &engine.Context{}
	if ipv4Format(ctx, "192.168.1.1") != nil {
		t.Error("ipv4Format(192.168.1.1) rejected a valid IPv4 address")
	}
	if ipv4Format(ctx, "::1") == nil {
		t.Error("ipv4Format(::1) accepted an IPv6 address")
	}
	if ipv6Format(ctx, "::1") != nil {
		t.Error("ipv6Format(::1) rejected a valid IPv6 address")
	}
	if ipv6Format(ctx, "192.168.1.1") == nil {
		t.Error("ipv6Format(192.168.1.1) accepted an IPv4 address")
	}
	if ipv4Format(ctx, 42) != nil {
		t.Error("ipv4Format(42) should ignore a non-string instance")
	}
}

func TestURIFormat(t *testing.T) {
	ctx := &engine.Context{}
	if uriFormat(ctx, "https://example.com/path") != nil {
		t.Error("uriFormat rejected an absolute URI")
	}
	if uriFormat(ctx, "not a uri") == nil {
		t.Error("uriFormat accepted a string with a raw space")
	}
	if uriReferenceFormat(ctx, "/relative/path") != nil {
		t.Error("uriReferenceFormat rejected a relative reference")
	}
}

func TestUUIDFormat(t *testing.T) {
	ctx := &engine.Context{}
	if uuidFormat(ctx, "123e4567-e89b-12d3-a456-426614174000") != nil {
		t.Error("uuidFormat rejected a well-formed UUID")
	}
	if uuidFormat(ctx, "not-a-uuid") == nil {
		t.Error("uuidFormat accepted a malformed string")
	}
}

func TestDateTimeFormat(t *testing.T) {
	ctx := &engine.Context{}
	if dateTimeFormat(ctx, "2024-01-02T15:04:05Z") != nil {
		t.Error("dateTimeFormat rejected a well-formed RFC 3339 timestamp")
	}
	if dateTimeFormat(ctx, "2024-01-02") == nil {
		t.Error("dateTimeFormat accepted a bare date")
	}
	if dateFormat(ctx, "2024-01-02") != nil {
		t.Error("dateFormat rejected a well-formed date")
	}
	if timeFormat(ctx, "15:04:05Z") != nil {
		t.Error("timeFormat rejected a well-formed time")
	}
}

func TestJSONPointerFormat(t *testing.T) {
	ctx := &engine.Context{}
	if jsonPointerFormat(ctx, "/a/b") != nil {
		t.Error("jsonPointerFormat rejected a well-formed pointer")
	}
	if jsonPointerFormat(ctx, "a/b") == nil {
		t.Error("jsonPointerFormat accepted a pointer missing its leading slash")
	}
	if jsonPointerFormat(ctx, "/a~2b") == nil {
		t.Error("jsonPointerFormat accepted an invalid ~ escape")
	}
}

func TestRegexFormat(t *testing.T) {
	ctx := &engine.Context{}
	if regexFormat(ctx, "^[a-z]+$") != nil {
		t.Error("regexFormat rejected a valid pattern")
	}
	if regexFormat(ctx, "[") == nil {
		t.Error("regexFormat accepted an unterminated character class")
	}
}

func TestRegisterFormatValidatorAdaptsStringPredicate(t *testing.T) {
	RegisterFormatValidator("test-nonempty", func(s string) error {
		if s == "" {
			return errEmpty
		}
		return nil
	})
	check := stringChecker(func(s string) error {
		if s == "" {
			return errEmpty
		}
		return nil
	})
	ctx := &engine.Context{}
	if check(ctx, "") == nil {
		t.Error("stringChecker(...)(ctx, \"\") = nil, want an error")
	}
	if check(ctx, "x") != nil {
		t.Error("stringChecker(...)(ctx, \"x\") returned an error for a non-empty string")
	}
	if check(ctx, 5) != nil {
		t.Error("stringChecker(...)(ctx, 5) should ignore a non-string instance")
	}
}

type emptyError struct{}

func (emptyError) Error() string { return "empty" }

var errEmpty = emptyError{}
