// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"fmt"
	"strings"
)

// Code is a prefix code of Len bits. The bits are stored in the lowest
// Len bits of Bits; the first bit of the code is the most significant
// one. Code values are comparable and can be used as map keys.
type Code struct {
	Bits uint64
	Len  uint8
}

// ParseCode converts a string of '0' and '1' characters into a code.
func ParseCode(s string) (c Code, err error) {
	if len(s) > MaxCodeLen {
		return Code{}, ErrCodeTooLong
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			c = c.append(0)
		case '1':
			c = c.append(1)
		default:
			return Code{}, fmt.Errorf(
				"huffman: invalid character %q in code", s[i])
		}
	}
	return c, nil
}

// append returns the code extended by the given bit.
func (c Code) append(bit uint64) Code {
	return Code{Bits: c.Bits<<1 | bit, Len: c.Len + 1}
}

// HasPrefix reports whether p is a prefix of c.
func (c Code) HasPrefix(p Code) bool {
	if p.Len > c.Len {
		return false
	}
	return c.Bits>>(c.Len-p.Len) == p.Bits
}

// String returns the code as string of '0' and '1' characters.
func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(int(c.Len))
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Table provides the code for each symbol and the reverse mapping from
// code to symbol. A table is not modified after it has been derived.
type Table struct {
	codes   map[byte]Code
	reverse map[Code]byte
	maxLen  uint8
}

// Derive walks the tree depth first and assigns each leaf the path from
// the root as code. A step to the left child appends a 0 bit, a step to
// the right child a 1 bit. A tree consisting of a single leaf gets the
// code "0", since an empty code cannot be decoded. A nil tree gives an
// empty table.
func Derive(tree *Tree) *Table {
	t := &Table{
		codes:   make(map[byte]Code),
		reverse: make(map[Code]byte),
	}
	if tree == nil {
		return t
	}
	type entry struct {
		i    int
		code Code
	}
	stack := []entry{{i: tree.root}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &tree.nodes[e.i]
		if !n.IsLeaf() {
			// right is pushed first so the left subtree is visited
			// first
			stack = append(stack,
				entry{n.Right, e.code.append(1)},
				entry{n.Left, e.code.append(0)})
			continue
		}
		code := e.code
		if code.Len == 0 {
			code = Code{Bits: 0, Len: 1}
		}
		t.codes[n.Symbol] = code
		t.reverse[code] = n.Symbol
		if code.Len > t.maxLen {
			t.maxLen = code.Len
		}
	}
	return t
}

// Code returns the code for symbol c.
func (t *Table) Code(c byte) (code Code, ok bool) {
	code, ok = t.codes[c]
	return code, ok
}

// Symbol returns the symbol for the given code.
func (t *Table) Symbol(code Code) (c byte, ok bool) {
	c, ok = t.reverse[code]
	return c, ok
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int { return len(t.codes) }

// MaxLen returns the length of the longest code.
func (t *Table) MaxLen() int { return int(t.maxLen) }

// Symbols returns the symbols in the table in ascending order.
func (t *Table) Symbols() []byte {
	syms := make([]byte, 0, len(t.codes))
	for c := 0; c < 256; c++ {
		if _, ok := t.codes[byte(c)]; ok {
			syms = append(syms, byte(c))
		}
	}
	return syms
}

// Codes returns the code strings of all symbols.
func (t *Table) Codes() map[byte]string {
	m := make(map[byte]string, len(t.codes))
	for c, code := range t.codes {
		m[c] = code.String()
	}
	return m
}

// EncodedLen returns the number of code bits required for the symbols
// counted in the frequency table.
func (t *Table) EncodedLen(ft *FrequencyTable) (n uint64, err error) {
	for _, c := range ft.Symbols() {
		code, ok := t.codes[c]
		if !ok {
			return 0, &MissingCodeError{Symbol: c}
		}
		n += ft.Count(c) * uint64(code.Len)
	}
	return n, nil
}
