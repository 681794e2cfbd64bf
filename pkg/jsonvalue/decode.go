// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Decode parses data as JSON and returns it as a [Value], preserving
// object key order and exact number text.
//
// The engine itself treats the value tree as an externally-decoded
// artifact (see spec.md §1's "host JSON parsing layer" non-goal); Decode
// exists only as a convenience for callers who have raw JSON bytes rather
// than an already-built [Value] tree, the same role the teacher repo's
// top-level Unmarshal path fills.
func Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("jsonvalue: trailing data after JSON value")
	}
	return v, nil
}

// decodeValue decodes a single JSON value from dec.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("jsonvalue: object key is %T, want string", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil

		case '[':
			var arr Array
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			if arr == nil {
				arr = Array{}
			}
			return arr, nil

		default:
			return nil, fmt.Errorf("jsonvalue: unexpected delimiter %q", t)
		}

	case json.Number:
		return Number(t.String()), nil
	case string:
		return t, nil
	case bool:
		return t, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("jsonvalue: unexpected token type %T", t)
	}
}
