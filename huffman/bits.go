// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"fmt"
	"strings"
)

// Bits is a bit-string. The bits are packed most significant bit first
// into bytes; bits beyond the length are always zero.
type Bits struct {
	p []byte
	n int
}

// ParseBits converts a string of '0' and '1' characters into a
// bit-string.
func ParseBits(s string) (b Bits, err error) {
	b.p = make([]byte, (len(s)+7)/8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			b.p[i/8] |= 0x80 >> uint(i%8)
		default:
			return Bits{}, fmt.Errorf(
				"huffman: invalid character %q in bit-string", s[i])
		}
	}
	b.n = len(s)
	return b, nil
}

// Len returns the number of bits.
func (b Bits) Len() int { return b.n }

// Bit returns the bit at position i as 0 or 1.
func (b Bits) Bit(i int) int {
	if i < 0 || i >= b.n {
		panic("huffman: bit index out of range")
	}
	return int(b.p[i/8]>>(7-uint(i%8))) & 1
}

// String returns the bits as string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + byte(b.Bit(i)))
	}
	return sb.String()
}
