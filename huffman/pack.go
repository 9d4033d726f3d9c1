// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"bytes"

	"github.com/icza/bitio"
)

// PadMode selects how many zero bits Pad appends to a bit-string that is
// already aligned to a byte boundary.
type PadMode int

const (
	// PadMinimal appends no bits to an aligned bit-string; the padding
	// header is then 0.
	PadMinimal PadMode = iota
	// PadFullByte appends a complete zero byte to an aligned
	// bit-string; the padding header is then 8. Other lengths are
	// padded as with PadMinimal.
	PadFullByte
)

// String returns the name of the mode.
func (m PadMode) String() string {
	switch m {
	case PadMinimal:
		return "minimal"
	case PadFullByte:
		return "full-byte"
	default:
		return "invalid"
	}
}

// Encode replaces every byte of p by its code and returns the
// concatenation of the codes.
func Encode(p []byte, t *Table) (b Bits, err error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	n := 0
	for _, c := range p {
		code, ok := t.codes[c]
		if !ok {
			return Bits{}, &MissingCodeError{Symbol: c}
		}
		if err = w.WriteBits(code.Bits, code.Len); err != nil {
			return Bits{}, err
		}
		n += int(code.Len)
	}
	// Close writes the cached bits filled up with zeros.
	if err = w.Close(); err != nil {
		return Bits{}, err
	}
	return Bits{p: buf.Bytes(), n: n}, nil
}

// padding computes the number of zero bits that must be appended to a
// bit-string of length n.
func padding(n int, mode PadMode) int {
	extra := 8 - n%8
	if extra == 8 && mode != PadFullByte {
		return 0
	}
	return extra
}

// Pad appends zero bits to b until its length is a multiple of 8 and
// prepends the number of appended bits as an 8-bit header. The length of
// the result is always a multiple of 8 and at least 8.
func Pad(b Bits, mode PadMode) Bits {
	extra := padding(b.n, mode)
	size := 1 + (b.n+extra)/8
	p := make([]byte, size)
	p[0] = byte(extra)
	copy(p[1:], b.p[:(b.n+7)/8])
	return Bits{p: p, n: 8 * size}
}

// ToBytes converts a padded bit-string into bytes. Every group of 8 bits
// becomes one byte, the first bit being the most significant one.
func ToBytes(b Bits) ([]byte, error) {
	if b.n%8 != 0 {
		return nil, errFormatf(
			"bit-string length %d is not a multiple of 8", b.n)
	}
	p := make([]byte, b.n/8)
	copy(p, b.p)
	return p, nil
}

// FromBytes converts bytes into a bit-string of length 8*len(p).
func FromBytes(p []byte) Bits {
	q := make([]byte, len(p))
	copy(q, p)
	return Bits{p: q, n: 8 * len(q)}
}

// Unpad reads the 8-bit padding header, removes it and removes the
// number of trailing bits given by the header. The removed trailing bits
// must be zero.
func Unpad(b Bits) (Bits, error) {
	if b.n < 8 {
		return Bits{}, errFormatf("padding header missing")
	}
	if b.n%8 != 0 {
		return Bits{}, errFormatf(
			"bit-string length %d is not a multiple of 8", b.n)
	}
	extra := int(b.p[0])
	if extra > 8 {
		return Bits{}, errFormatf("padding %d out of range", extra)
	}
	rest := b.n - 8
	if extra > rest {
		return Bits{}, errFormatf(
			"padding %d exceeds %d available bits", extra, rest)
	}
	n := rest - extra
	p := make([]byte, (n+7)/8)
	copy(p, b.p[1:])
	if k := n % 8; k > 0 {
		last := b.p[1+n/8]
		if last&(0xff>>uint(k)) != 0 {
			return Bits{}, errFormatf("non-zero padding bits")
		}
	}
	for _, c := range b.p[1+(n+7)/8 : b.n/8] {
		if c != 0 {
			return Bits{}, errFormatf("non-zero padding bits")
		}
	}
	return Bits{p: p, n: n}, nil
}

// Decode reads b bit by bit. The bits read are collected until they form
// a code of the table; then the symbol for the code is emitted and the
// collection restarts. Bits that remain unmatched at the end of the input
// or that grow longer than the longest code of the table indicate
// corrupted input.
func Decode(b Bits, t *Table) ([]byte, error) {
	r := bitio.NewReader(bytes.NewReader(b.p))
	out := make([]byte, 0, b.n/2)
	var code Code
	for i := 0; i < b.n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return out, err
		}
		if bit {
			code = code.append(1)
		} else {
			code = code.append(0)
		}
		if c, ok := t.reverse[code]; ok {
			out = append(out, c)
			code = Code{}
			continue
		}
		if code.Len >= t.maxLen {
			return out, errFormatf(
				"bits %s at offset %d match no code",
				code, i+1-int(code.Len))
		}
	}
	if code.Len > 0 {
		return out, errFormatf("unmatched trailing bits %s", code)
	}
	return out, nil
}
