// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ulikunitz/huff/huffman"
	"github.com/ulikunitz/huff/xlog"
)

// Decoder decompresses frames. The code tables rebuilt from the frame
// headers are kept in a cache, so frames sharing the same symbol
// frequencies don't require to rebuild the tree. A Decoder may be used
// concurrently.
type Decoder struct {
	cfg   DecoderConfig
	cache *lru.Cache[uint64, *huffman.Table]
}

// NewDecoder creates a new frame decoder.
func NewDecoder(cfg DecoderConfig) (*Decoder, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	d := &Decoder{cfg: cfg}
	if cfg.CacheSize > 0 {
		var err error
		if d.cache, err = lru.New[uint64, *huffman.Table](
			cfg.CacheSize); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// table returns the code table for the frame header.
func (d *Decoder) table(h *frameHeader) (*huffman.Table, error) {
	if d.cache != nil {
		if t, ok := d.cache.Get(h.key); ok {
			xlog.Printf(d.cfg.Logger, "huff: table %016x cached", h.key)
			return t, nil
		}
	}
	tree, err := huffman.Build(h.freqs)
	if err != nil {
		return nil, fmt.Errorf("huff: build tree: %w", err)
	}
	t := huffman.Derive(tree)
	if d.cache != nil {
		d.cache.Add(h.key, t)
	}
	return t, nil
}

// DecompressFrame decompresses a frame created by Codec.CompressFrame or
// Writer. The length and checksum of the result are verified.
func (d *Decoder) DecompressFrame(frame []byte) ([]byte, error) {
	h, n, err := parseFrameHeader(frame)
	if err != nil {
		return nil, err
	}
	t, err := d.table(h)
	if err != nil {
		return nil, err
	}
	b, err := huffman.Unpad(huffman.FromBytes(frame[n:]))
	if err != nil {
		return nil, fmt.Errorf("huff: unpack: %w", err)
	}
	p, err := huffman.Decode(b, t)
	if err != nil {
		return nil, fmt.Errorf("huff: decode: %w", err)
	}
	if uint64(len(p)) != h.size {
		return nil, fmt.Errorf("%w: decoded %d bytes; want %d",
			ErrChecksum, len(p), h.size)
	}
	if xxhash.Sum64(p) != h.sum {
		return nil, ErrChecksum
	}
	xlog.Printf(d.cfg.Logger, "huff: frame with %d symbols, %d bytes",
		h.freqs.Len(), len(p))
	return p, nil
}
