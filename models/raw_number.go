// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// RawNumber is user-supplied numeric text that has not been parsed yet.
//
// When decoded from JSON it accepts both a string ("12.5") and a bare number
// literal (12.5), keeping the literal text verbatim so no precision is lost
// before the accounting engine parses it.
type RawNumber string

// UnmarshalJSON implements [json.Unmarshaler].
func (n *RawNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = RawNumber(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = RawNumber(num)
	return nil
}

// String returns the raw text.
func (n RawNumber) String() string {
	return string(n)
}
