// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"net/netip"

	"github.com/nestmed/jsonschema/internal/engine"
	"github.com/nestmed/jsonschema/pkg/jsonvalue"
	"github.com/nestmed/jsonschema/pkg/validerr"
)

// ipv4Format requires a valid IPv4 address.
func ipv4Format(ctx *engine.Context, instance jsonvalue.Value) *validerr.ValidationError {
	s, ok := instance.(string)
	if !ok {
		return nil
	}
	if addr, err := netip.ParseAddr(s); err == nil && addr.Is4() {
		return nil
	}
	return ctx.Errorf("%q is not a valid IPv4 address", s)
}

// ipv6Format requires a valid IPv6 address.
func ipv6Format(ctx *engine.Context, instance jsonvalue.Value) *validerr.ValidationError {
	s, ok := instance.(string)
	if !ok {
		return nil
	}
	if addr, err := netip.ParseAddr(s); err == nil && addr.Is6() && addr.Zone() == "" {
		return nil
	}
	return ctx.Errorf("%q is not a valid IPv6 address", s)
}
