// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package huffman implements the building blocks of a static Huffman
// codec for byte streams: frequency analysis, construction of the prefix
// tree, derivation of the code table and the packing of code bits into
// bytes preceded by a padding header.
//
// The functions are designed to be composed:
//
//	ft := Analyze(p)
//	tree, err := Build(ft)
//	t := Derive(tree)
//	b, err := Encode(p, t)
//	packed, err := ToBytes(Pad(b, PadMinimal))
//
// and the reverse:
//
//	b, err := Unpad(FromBytes(packed))
//	p, err := Decode(b, t)
package huffman

import (
	"fmt"
	"strings"
)

// FrequencyTable maps each symbol observed in an input to the number of
// its occurrences. A table is not modified after creation.
type FrequencyTable struct {
	counts [256]uint64
	n      int
}

// Analyze counts the occurrences of all bytes in p. An empty slice
// results in an empty table.
func Analyze(p []byte) *FrequencyTable {
	ft := new(FrequencyTable)
	for _, c := range p {
		ft.counts[c]++
	}
	ft.count()
	return ft
}

// NewFrequencyTable creates a frequency table from explicit counts.
// Symbols with a zero count are not part of the table.
func NewFrequencyTable(counts map[byte]uint64) *FrequencyTable {
	ft := new(FrequencyTable)
	for c, k := range counts {
		ft.counts[c] = k
	}
	ft.count()
	return ft
}

// count computes the number of distinct symbols.
func (ft *FrequencyTable) count() {
	ft.n = 0
	for _, k := range ft.counts {
		if k > 0 {
			ft.n++
		}
	}
}

// Count returns the number of occurrences of symbol c.
func (ft *FrequencyTable) Count(c byte) uint64 { return ft.counts[c] }

// Len returns the number of distinct symbols in the table.
func (ft *FrequencyTable) Len() int { return ft.n }

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() uint64 {
	var s uint64
	for _, k := range ft.counts {
		s += k
	}
	return s
}

// Symbols returns the symbols of the table in ascending order.
func (ft *FrequencyTable) Symbols() []byte {
	syms := make([]byte, 0, ft.n)
	for c, k := range ft.counts {
		if k > 0 {
			syms = append(syms, byte(c))
		}
	}
	return syms
}

// Map returns the table as a map from symbol to count.
func (ft *FrequencyTable) Map() map[byte]uint64 {
	m := make(map[byte]uint64, ft.n)
	for c, k := range ft.counts {
		if k > 0 {
			m[byte(c)] = k
		}
	}
	return m
}

// String lists the entries in symbol order, e.g. {'a':3 'b':2}.
func (ft *FrequencyTable) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, c := range ft.Symbols() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%q:%d", c, ft.counts[c])
	}
	sb.WriteByte('}')
	return sb.String()
}
