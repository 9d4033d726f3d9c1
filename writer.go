// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"bytes"
	"errors"
	"io"
)

// errClosed indicates a write to a closed writer.
var errClosed = errors.New("huff: writer already closed")

// Writer compresses the data written to it into a single frame. Since
// the code table depends on all data, the data is buffered and the frame
// is written to the underlying writer by Close.
type Writer struct {
	w      io.Writer
	cfg    WriterConfig
	codec  *Codec
	buf    bytes.Buffer
	err    error
	closed bool
}

// NewWriter creates a frame writer with the default configuration.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterConfig(w, WriterConfig{})
}

// NewWriterConfig creates a frame writer with the given configuration.
func NewWriterConfig(w io.Writer, cfg WriterConfig) (*Writer, error) {
	if w == nil {
		return nil, errors.New("huff: writer must not be nil")
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	codec, err := NewCodecConfig(cfg.Codec)
	if err != nil {
		return nil, err
	}
	return &Writer{w: w, cfg: cfg, codec: codec}, nil
}

// Write buffers the data. It returns ErrTooLarge if the total data
// exceeds MaxSize.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.closed {
		return 0, errClosed
	}
	if int64(w.buf.Len())+int64(len(p)) > w.cfg.MaxSize {
		w.err = ErrTooLarge
		return 0, w.err
	}
	return w.buf.Write(p)
}

// Close compresses the buffered data and writes the frame. It doesn't
// close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return errClosed
	}
	w.closed = true
	frame, err := w.codec.CompressFrame(w.buf.Bytes())
	if err != nil {
		w.err = err
		return err
	}
	w.buf = bytes.Buffer{}
	if _, err = w.w.Write(frame); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Codec returns the codec used by the writer. After Close it provides
// the frequencies and the code table of the frame.
func (w *Writer) Codec() *Codec { return w.codec }
