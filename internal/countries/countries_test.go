// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package countries

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"sweden", "SE", "SE", true},
		{"lowercase accepted", "se", "SE", true},
		{"whitespace trimmed", " no ", "NO", true},
		{"user-assigned range rejected", "ZZ", "", false},
		{"unassigned", "XQ", "", false},
		{"too long", "SWE", "", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Normalize(tc.input)
			if got != tc.want || ok != tc.ok {
				t.Errorf("Normalize(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestIsNordic(t *testing.T) {
	for _, code := range Nordic() {
		if !IsNordic(code) {
			t.Errorf("%s should be Nordic", code)
		}
		if !Valid(code) {
			t.Errorf("%s should be a valid alpha-2 code", code)
		}
	}
	for _, code := range []string{"DE", "GB", "US", ""} {
		if IsNordic(code) {
			t.Errorf("%s should not be Nordic", code)
		}
	}
}
