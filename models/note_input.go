// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// NoteInput is the decoded body of a create or update request.
//
// Both fields keep track of whether the caller sent them, so the service can
// tell "absent" apart from "empty".
type NoteInput struct {
	Title   OptionalText `json:"title"`
	Content OptionalText `json:"content"`
}

// OptionalText is a loosely typed JSON text field.
//
// An absent key or a JSON null leaves Set false. Any other JSON value is
// accepted and coerced to text: strings as-is, numbers in their shortest
// decimal form, booleans as "true"/"false", arrays and objects as compact
// JSON. IsString records whether the original value was a JSON string.
type OptionalText struct {
	Value    string
	Set      bool
	IsString bool

	// falsy is true for "", 0 and false.
	falsy bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *OptionalText) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*t = OptionalText{}
	case string:
		*t = OptionalText{Value: v, Set: true, IsString: true, falsy: v == ""}
	case bool:
		*t = OptionalText{Value: strconv.FormatBool(v), Set: true, falsy: !v}
	case float64:
		*t = OptionalText{Value: strconv.FormatFloat(v, 'f', -1, 64), Set: true, falsy: v == 0}
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*t = OptionalText{Value: buf.String(), Set: true}
	}

	return nil
}

// Text returns the value as note text: falsy values ("", 0, false) and
// unset fields become the empty string.
func (t OptionalText) Text() string {
	if !t.Set || t.falsy {
		return ""
	}
	return t.Value
}
