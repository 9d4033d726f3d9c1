// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"testing"

	"github.com/kr/pretty"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		in   string
		want map[byte]uint64
	}{
		{"", map[byte]uint64{}},
		{"aaaaaa", map[byte]uint64{'a': 6}},
		{"aaabbc", map[byte]uint64{'a': 3, 'b': 2, 'c': 1}},
		{"cbacba\n", map[byte]uint64{'a': 2, 'b': 2, 'c': 2, '\n': 1}},
	}
	for _, tc := range tests {
		ft := Analyze([]byte(tc.in))
		if diff := pretty.Diff(ft.Map(), tc.want); len(diff) > 0 {
			t.Errorf("Analyze(%q) differs: %v", tc.in, diff)
		}
		if ft.Len() != len(tc.want) {
			t.Errorf("Analyze(%q).Len() returned %d; want %d",
				tc.in, ft.Len(), len(tc.want))
		}
		if n := ft.Total(); n != uint64(len(tc.in)) {
			t.Errorf("Analyze(%q).Total() returned %d; want %d",
				tc.in, n, len(tc.in))
		}
	}
}

func TestNewFrequencyTable(t *testing.T) {
	ft := NewFrequencyTable(map[byte]uint64{'x': 0, 'b': 2, 'a': 5})
	if ft.Len() != 2 {
		t.Fatalf("Len() returned %d; want %d", ft.Len(), 2)
	}
	if s := string(ft.Symbols()); s != "ab" {
		t.Fatalf("Symbols() returned %q; want %q", s, "ab")
	}
	if s := ft.String(); s != "{'a':5 'b':2}" {
		t.Fatalf("String() returned %s; want %s", s, "{'a':5 'b':2}")
	}
}
