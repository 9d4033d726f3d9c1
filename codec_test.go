// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"bytes"
	"errors"
	"io"
	"log"
	"math/rand"
	"strings"
	"testing"

	"github.com/ulikunitz/huff/huffman"
	"github.com/ulikunitz/huff/internal/randtxt"
)

func randomText(t testing.TB, seed int64, n int) []byte {
	p := make([]byte, n)
	r := randtxt.NewLineReader(randtxt.NewReader(rand.NewSource(seed)))
	if _, err := io.ReadFull(r, p); err != nil {
		t.Fatalf("io.ReadFull error %s", err)
	}
	return p
}

func TestCompressExample(t *testing.T) {
	c := NewCodec()
	if c.State() != Idle {
		t.Fatalf("initial state %s; want %s", c.State(), Idle)
	}
	packed, err := c.Compress([]byte("aaabbc\n"))
	if err != nil {
		t.Fatalf("Compress error %s", err)
	}
	want := []byte{0x07, 0x1f, 0x00}
	if !bytes.Equal(packed, want) {
		t.Fatalf("Compress returned % x; want % x", packed, want)
	}
	if c.State() != Packed {
		t.Fatalf("state %s; want %s", c.State(), Packed)
	}
	if s := c.Frequencies().String(); s != "{'a':3 'b':2 'c':1}" {
		t.Fatalf("frequencies %s", s)
	}
	p, err := c.Decompress(packed)
	if err != nil {
		t.Fatalf("Decompress error %s", err)
	}
	if string(p) != "aaabbc" {
		t.Fatalf("Decompress returned %q; want %q", p, "aaabbc")
	}
	if c.State() != Unpacked {
		t.Fatalf("state %s; want %s", c.State(), Unpacked)
	}
}

func TestCompressEmpty(t *testing.T) {
	for _, s := range []string{"", " \t\n\n"} {
		c := NewCodec()
		packed, err := c.Compress([]byte(s))
		if err != nil {
			t.Fatalf("Compress(%q) error %s", s, err)
		}
		if !bytes.Equal(packed, []byte{0}) {
			t.Fatalf("Compress(%q) returned % x; want 00", s, packed)
		}
		if c.Tree() != nil {
			t.Fatalf("Compress(%q) created a tree", s)
		}
		p, err := c.Decompress(packed)
		if err != nil {
			t.Fatalf("Decompress error %s", err)
		}
		if len(p) != 0 {
			t.Fatalf("Decompress returned %q; want empty", p)
		}
	}
}

func TestCompressSingleSymbol(t *testing.T) {
	c := NewCodec()
	packed, err := c.Compress([]byte("aaaaaa"))
	if err != nil {
		t.Fatalf("Compress error %s", err)
	}
	want := []byte{0x02, 0x00}
	if !bytes.Equal(packed, want) {
		t.Fatalf("Compress returned % x; want % x", packed, want)
	}
	p, err := c.Decompress(packed)
	if err != nil {
		t.Fatalf("Decompress error %s", err)
	}
	if string(p) != "aaaaaa" {
		t.Fatalf("Decompress returned %q; want %q", p, "aaaaaa")
	}
}

func TestDecompressNoTable(t *testing.T) {
	_, err := NewCodec().Decompress([]byte{0})
	if err != ErrNoTable {
		t.Fatalf("Decompress returned error %v; want %v", err,
			ErrNoTable)
	}
}

func TestDecompressCorrupted(t *testing.T) {
	c := NewCodec()
	if _, err := c.Compress([]byte("aaabbc")); err != nil {
		t.Fatalf("Compress error %s", err)
	}
	tests := [][]byte{
		nil,
		{0x07, 0x1f, 0x80},
		{0x09, 0x1f, 0x00},
		{0x07, 0x1f, 0x01},
	}
	for _, packed := range tests {
		_, err := c.Decompress(packed)
		if !errors.Is(err, huffman.ErrFormat) {
			t.Errorf("Decompress(% x) returned error %v;"+
				" want format error", packed, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"ab",
		"hello, world",
		"The quick brown fox jumps over the lazy dog.",
		string(randomText(t, 1, 50000)),
	}
	for _, s := range inputs {
		for _, mode := range []huffman.PadMode{
			huffman.PadMinimal, huffman.PadFullByte} {
			c, err := NewCodecConfig(CodecConfig{Padding: mode})
			if err != nil {
				t.Fatalf("NewCodecConfig error %s", err)
			}
			packed, err := c.Compress([]byte(s))
			if err != nil {
				t.Fatalf("Compress error %s", err)
			}
			p, err := c.Decompress(packed)
			if err != nil {
				t.Fatalf("Decompress error %s", err)
			}
			want := strings.TrimRight(s, " \t\n")
			if string(p) != want {
				t.Fatalf("%s: round trip failed for %.20q",
					mode, s)
			}
		}
	}
}

func TestPaddingInvariant(t *testing.T) {
	for n := 1; n < 40; n++ {
		p := randomText(t, int64(n), n)
		c, err := NewCodecConfig(CodecConfig{KeepTrailingSpace: true})
		if err != nil {
			t.Fatalf("NewCodecConfig error %s", err)
		}
		packed, err := c.Compress(p)
		if err != nil {
			t.Fatalf("Compress error %s", err)
		}
		bits, err := c.Table().EncodedLen(c.Frequencies())
		if err != nil {
			t.Fatalf("EncodedLen error %s", err)
		}
		extra := (8 - bits%8) % 8
		if uint64(packed[0]) != extra {
			t.Fatalf("n=%d: header %d; want %d", n, packed[0], extra)
		}
		if got := uint64(len(packed)-1) * 8; got != bits+extra {
			t.Fatalf("n=%d: %d payload bits; want %d", n, got,
				bits+extra)
		}
	}
}

func TestDeterminism(t *testing.T) {
	p := randomText(t, 99, 20000)
	a, err := NewCodec().Compress(p)
	if err != nil {
		t.Fatalf("Compress error %s", err)
	}
	b, err := NewCodec().Compress(p)
	if err != nil {
		t.Fatalf("Compress error %s", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("fresh codecs produced different output")
	}
}

func TestKeepTrailingSpace(t *testing.T) {
	c, err := NewCodecConfig(CodecConfig{KeepTrailingSpace: true})
	if err != nil {
		t.Fatalf("NewCodecConfig error %s", err)
	}
	const s = "line 1\nline 2\n\n"
	packed, err := c.Compress([]byte(s))
	if err != nil {
		t.Fatalf("Compress error %s", err)
	}
	p, err := c.Decompress(packed)
	if err != nil {
		t.Fatalf("Decompress error %s", err)
	}
	if string(p) != s {
		t.Fatalf("Decompress returned %q; want %q", p, s)
	}
}

func TestTrimSeparators(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a\x1c", "a"},
		{"a\x1d\x1e\x1f \n", "a"},
		{"a\x1fb\t", "a\x1fb"},
		{"a\u00a0\u2028", "a"},
	}
	for _, tc := range tests {
		c := NewCodec()
		packed, err := c.Compress([]byte(tc.in))
		if err != nil {
			t.Fatalf("Compress(%q) error %s", tc.in, err)
		}
		p, err := c.Decompress(packed)
		if err != nil {
			t.Fatalf("Decompress error %s", err)
		}
		if string(p) != tc.want {
			t.Errorf("round trip of %q returned %q; want %q",
				tc.in, p, tc.want)
		}
	}
}

func TestCompressPadMode(t *testing.T) {
	tests := []struct {
		mode huffman.PadMode
		want []byte
	}{
		{huffman.PadMinimal, []byte{0x00, 0x55}},
		{huffman.PadFullByte, []byte{0x08, 0x55, 0x00}},
	}
	for _, tc := range tests {
		c, err := NewCodecConfig(CodecConfig{Padding: tc.mode})
		if err != nil {
			t.Fatalf("NewCodecConfig error %s", err)
		}
		packed, err := c.Compress([]byte("abababab"))
		if err != nil {
			t.Fatalf("Compress error %s", err)
		}
		if !bytes.Equal(packed, tc.want) {
			t.Errorf("%s: Compress returned % x; want % x",
				tc.mode, packed, tc.want)
		}
		p, err := c.Decompress(packed)
		if err != nil {
			t.Fatalf("%s: Decompress error %s", tc.mode, err)
		}
		if string(p) != "abababab" {
			t.Errorf("%s: Decompress returned %q", tc.mode, p)
		}
	}
}

func TestCodecLoggerEmpty(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewCodecConfig(CodecConfig{Logger: log.New(&buf, "", 0)})
	if err != nil {
		t.Fatalf("NewCodecConfig error %s", err)
	}
	if _, err = c.Compress(nil); err != nil {
		t.Fatalf("Compress error %s", err)
	}
	if !strings.Contains(buf.String(), "huff: empty input\n") {
		t.Fatalf("log output %q doesn't report empty input",
			buf.String())
	}
}

func TestCodecLogger(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewCodecConfig(CodecConfig{Logger: log.New(&buf, "", 0)})
	if err != nil {
		t.Fatalf("NewCodecConfig error %s", err)
	}
	if _, err = c.Compress([]byte("aaabbc")); err != nil {
		t.Fatalf("Compress error %s", err)
	}
	s := buf.String()
	for _, want := range []string{
		"6 bytes, 3 distinct symbols",
		"tree with 5 nodes, depth 2",
		"9 code bits, 7 padding bits",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("log output %q doesn't contain %q", s, want)
		}
	}
}

func TestCodecConfigVerify(t *testing.T) {
	if _, err := NewCodecConfig(CodecConfig{Padding: 7}); err == nil {
		t.Fatalf("NewCodecConfig accepted padding mode 7")
	}
	var cfg *CodecConfig
	if err := cfg.Verify(); err == nil {
		t.Fatalf("nil configuration verified")
	}
}

func TestStateString(t *testing.T) {
	if s := TableReady.String(); s != "table ready" {
		t.Fatalf("TableReady.String() returned %q", s)
	}
	if s := State(42).String(); s != "State(42)" {
		t.Fatalf("State(42).String() returned %q", s)
	}
}
