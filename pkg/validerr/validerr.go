// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package validerr defines the error value returned by a failed
// validation, generalizing the teacher repo's internal/validerr package
// into a public type shared by every dialect and by the lenient overlay.
package validerr

import (
	"fmt"
	"strings"
)

// ValidationError describes one way an instance failed to conform to a
// schema. Field names follow the JSON Schema "basic" output format
// (error/keywordLocation/instanceLocation), matching the teacher's
// ValidationError struct tags.
//
// Both locations are rendered as JSON Pointers with the root location as
// the empty string, not "#", per spec.md §4.5.
type ValidationError struct {
	Message          string `json:"error"`
	KeywordLocation  string `json:"keywordLocation"`
	InstanceLocation string `json:"instanceLocation"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	kl := e.KeywordLocation
	if kl == "" {
		kl = "(root)"
	}
	return fmt.Sprintf("%s: %s", kl, e.Message)
}

// ValidationErrors is an ordered collection of ValidationError values,
// produced when more than one error applies to a single validation call.
type ValidationErrors []*ValidationError

// Error implements the error interface.
func (es ValidationErrors) Error() string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// New returns a ValidationError for message at the current instance and
// keyword locations.
func New(message, instanceLocation, keywordLocation string) *ValidationError {
	return &ValidationError{
		Message:          message,
		InstanceLocation: instanceLocation,
		KeywordLocation:  keywordLocation,
	}
}
