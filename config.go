// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"errors"

	"github.com/ulikunitz/huff/huffman"
	"github.com/ulikunitz/huff/xlog"
)

// defaultMaxSize limits the data buffered by Writer and Reader.
const defaultMaxSize = 1 << 30

// defaultCacheSize is the number of code tables cached by a Decoder.
const defaultCacheSize = 64

// CodecConfig defines the parameters of a codec. The zero value selects
// the defaults.
type CodecConfig struct {
	// Padding selects the padding for code bits that are already
	// aligned to a byte boundary. (default: huffman.PadMinimal)
	Padding huffman.PadMode

	// KeepTrailingSpace disables the removal of trailing white space
	// from the input. (default: false)
	KeepTrailingSpace bool

	// Logger receives debug output of the individual compression
	// stages. (default: nil, no output)
	Logger xlog.Logger
}

// Verify checks the configuration for errors.
func (c *CodecConfig) Verify() error {
	if c == nil {
		return errors.New("huff: codec configuration is nil")
	}
	switch c.Padding {
	case huffman.PadMinimal, huffman.PadFullByte:
	default:
		return errors.New("huff: unsupported padding mode")
	}
	return nil
}

// DecoderConfig defines the parameters of a frame decoder.
type DecoderConfig struct {
	// CacheSize is the number of code tables kept for reuse. A
	// negative value disables the cache. (default: 64)
	CacheSize int

	// Logger receives debug output. (default: nil, no output)
	Logger xlog.Logger
}

// ApplyDefaults replaces zero values by the defaults.
func (c *DecoderConfig) ApplyDefaults() {
	if c.CacheSize == 0 {
		c.CacheSize = defaultCacheSize
	}
}

// Verify checks the configuration for errors. Zero values will be
// replaced by default values.
func (c *DecoderConfig) Verify() error {
	if c == nil {
		return errors.New("huff: decoder configuration is nil")
	}
	c.ApplyDefaults()
	return nil
}

// WriterConfig defines the parameters of a frame writer.
type WriterConfig struct {
	Codec CodecConfig

	// MaxSize limits the number of bytes that can be written.
	// (default: 1 GiB)
	MaxSize int64
}

// ApplyDefaults replaces zero values by the defaults.
func (c *WriterConfig) ApplyDefaults() {
	if c.MaxSize == 0 {
		c.MaxSize = defaultMaxSize
	}
}

// Verify checks the configuration for errors. Zero values will be
// replaced by default values.
func (c *WriterConfig) Verify() error {
	if c == nil {
		return errors.New("huff: writer configuration is nil")
	}
	c.ApplyDefaults()
	if c.MaxSize < 0 {
		return errors.New("huff: MaxSize must be positive")
	}
	return c.Codec.Verify()
}

// ReaderConfig defines the parameters of a frame reader.
type ReaderConfig struct {
	// Decoder decodes the frame. It may be shared between readers to
	// share its table cache. (default: a new decoder)
	Decoder *Decoder

	// MaxSize limits the size of the frame read. (default: 1 GiB)
	MaxSize int64
}

// ApplyDefaults replaces zero values by the defaults.
func (c *ReaderConfig) ApplyDefaults() {
	if c.MaxSize == 0 {
		c.MaxSize = defaultMaxSize
	}
}

// Verify checks the configuration for errors. Zero values will be
// replaced by default values.
func (c *ReaderConfig) Verify() error {
	if c == nil {
		return errors.New("huff: reader configuration is nil")
	}
	c.ApplyDefaults()
	if c.MaxSize < 0 {
		return errors.New("huff: MaxSize must be positive")
	}
	return nil
}
