// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/ulikunitz/huff/huffman"
	"github.com/ulikunitz/huff/xlog"
)

// State describes the progress of a codec.
type State int

// States of a codec. Compression passes through Analyzed, TreeBuilt and
// TableReady to Packed. Decompression requires a code table and ends in
// Unpacked.
const (
	Idle State = iota
	Analyzed
	TreeBuilt
	TableReady
	Packed
	Unpacked
)

var stateNames = [...]string{
	Idle:       "idle",
	Analyzed:   "analyzed",
	TreeBuilt:  "tree built",
	TableReady: "table ready",
	Packed:     "packed",
	Unpacked:   "unpacked",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Codec compresses and decompresses data. The code table of the last
// compression is kept and used for decompression. A Codec must not be
// used concurrently.
type Codec struct {
	cfg   CodecConfig
	state State
	freqs *huffman.FrequencyTable
	tree  *huffman.Tree
	table *huffman.Table
}

// NewCodec creates a codec with the default configuration.
func NewCodec() *Codec {
	return &Codec{}
}

// NewCodecConfig creates a codec with the given configuration.
func NewCodecConfig(cfg CodecConfig) (*Codec, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return &Codec{cfg: cfg}, nil
}

// State returns the current state of the codec.
func (c *Codec) State() State { return c.state }

// Frequencies returns the frequency table of the last compression.
func (c *Codec) Frequencies() *huffman.FrequencyTable { return c.freqs }

// Tree returns the Huffman tree of the last compression. It is nil if
// the compressed data was empty.
func (c *Codec) Tree() *huffman.Tree { return c.tree }

// Table returns the code table of the last compression.
func (c *Codec) Table() *huffman.Table { return c.table }

// isSpace reports white space. In addition to unicode.IsSpace it accepts
// the information separators U+001C to U+001F, which text tools treat as
// line breaks.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || ('\x1c' <= r && r <= '\x1f')
}

// normalize removes trailing white space unless the configuration
// requests to keep it.
func (c *Codec) normalize(raw []byte) []byte {
	if c.cfg.KeepTrailingSpace {
		return raw
	}
	return bytes.TrimRightFunc(raw, isSpace)
}

// compress runs the compression pipeline and returns the normalized
// input together with the packed buffer.
func (c *Codec) compress(raw []byte) (p, packed []byte, err error) {
	c.state = Idle
	c.freqs, c.tree, c.table = nil, nil, nil

	p = c.normalize(raw)
	c.freqs = huffman.Analyze(p)
	c.state = Analyzed
	xlog.Printf(c.cfg.Logger, "huff: %d bytes, %d distinct symbols",
		len(p), c.freqs.Len())

	if c.tree, err = huffman.Build(c.freqs); err != nil {
		return nil, nil, fmt.Errorf("huff: build tree: %w", err)
	}
	c.state = TreeBuilt
	if c.tree != nil {
		xlog.Printf(c.cfg.Logger, "huff: tree with %d nodes, depth %d",
			c.tree.Len(), c.tree.Depth())
	}

	c.table = huffman.Derive(c.tree)
	c.state = TableReady

	if len(p) == 0 {
		xlog.Println(c.cfg.Logger, "huff: empty input")
		c.state = Packed
		return p, []byte{0}, nil
	}
	b, err := huffman.Encode(p, c.table)
	if err != nil {
		return nil, nil, fmt.Errorf("huff: encode: %w", err)
	}
	padded := huffman.Pad(b, c.cfg.Padding)
	if packed, err = huffman.ToBytes(padded); err != nil {
		return nil, nil, fmt.Errorf("huff: pack: %w", err)
	}
	xlog.Printf(c.cfg.Logger, "huff: %d code bits, %d padding bits",
		b.Len(), padded.Len()-8-b.Len())
	c.state = Packed
	return p, packed, nil
}

// Compress removes trailing white space from raw, unless
// KeepTrailingSpace is set, and returns the packed code bits. The first
// byte of the result gives the number of zero bits appended to the code
// bits. Empty input results in the single byte 0.
func (c *Codec) Compress(raw []byte) ([]byte, error) {
	_, packed, err := c.compress(raw)
	return packed, err
}

// Decompress decodes a packed buffer produced by the last call of
// Compress on the same codec. It returns ErrNoTable if there has been
// no compression yet.
func (c *Codec) Decompress(packed []byte) ([]byte, error) {
	if c.table == nil {
		return nil, ErrNoTable
	}
	b, err := huffman.Unpad(huffman.FromBytes(packed))
	if err != nil {
		return nil, fmt.Errorf("huff: unpack: %w", err)
	}
	p, err := huffman.Decode(b, c.table)
	if err != nil {
		return nil, fmt.Errorf("huff: decode: %w", err)
	}
	xlog.Printf(c.cfg.Logger, "huff: decoded %d bits into %d bytes",
		b.Len(), len(p))
	c.state = Unpacked
	return p, nil
}
