// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"bytes"
	"errors"
	"io"
	"math"
)

// Reader decompresses a frame. The whole frame is read and decoded when
// the reader is created.
type Reader struct {
	data *bytes.Reader
}

// NewReader creates a frame reader with the default configuration.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, ReaderConfig{})
}

// NewReaderConfig reads and decompresses the frame provided by r. It
// returns ErrTooLarge if the frame exceeds MaxSize.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (*Reader, error) {
	if r == nil {
		return nil, errors.New("huff: reader must not be nil")
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	d := cfg.Decoder
	if d == nil {
		var err error
		if d, err = NewDecoder(DecoderConfig{CacheSize: -1}); err != nil {
			return nil, err
		}
	}
	limit := cfg.MaxSize
	if limit < math.MaxInt64 {
		limit++
	}
	frame, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return nil, err
	}
	if int64(len(frame)) > cfg.MaxSize {
		return nil, ErrTooLarge
	}
	p, err := d.DecompressFrame(frame)
	if err != nil {
		return nil, err
	}
	return &Reader{data: bytes.NewReader(p)}, nil
}

// Read reads decompressed data.
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.data.Read(p)
}

// Len returns the number of unread decompressed bytes.
func (r *Reader) Len() int { return r.data.Len() }
