// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xio provides small I/O helpers: the [WriteCloserStack] closing
// a chain of writers in the right order, [FlushCloser] turning a buffered
// writer into an [io.WriteCloser] and the byte counting [CountWriter].
package xio

import (
	"errors"
	"io"
)

// WriteCloserStack combines a chain of WriteClosers, each one writing
// into the one below it, into a single WriteCloser. Writes go to the top
// of the stack.
type WriteCloserStack struct {
	Stack []io.WriteCloser
}

// Write writes data to the top WriteCloser in the stack. If the stack is
// empty the data is discarded.
func (w *WriteCloserStack) Write(p []byte) (n int, err error) {
	k := len(w.Stack)
	if k == 0 {
		return len(p), nil
	}
	return w.Stack[k-1].Write(p)
}

// Close closes the WriteClosers from top to bottom, so every writer can
// flush its data into the writer below before that one is closed. All
// errors are combined. The stack is empty afterwards.
func (w *WriteCloserStack) Close() error {
	var errs []error
	for k := len(w.Stack) - 1; k >= 0; k-- {
		errs = append(errs, w.Stack[k].Close())
	}
	w.Stack = nil
	return errors.Join(errs...)
}

// Push puts wc on top of the stack. It panics if wc is nil.
func (w *WriteCloserStack) Push(wc io.WriteCloser) {
	if wc == nil {
		panic("xio: cannot push nil WriteCloser")
	}
	w.Stack = append(w.Stack, wc)
}

// Flusher is a writer with buffered data, e.g. a *bufio.Writer.
type Flusher interface {
	io.Writer
	Flush() error
}

type flushCloser struct {
	Flusher
}

func (f flushCloser) Close() error { return f.Flush() }

// FlushCloser returns a WriteCloser whose Close method flushes f.
func FlushCloser(f Flusher) io.WriteCloser { return flushCloser{f} }

// CountWriter counts the bytes written to it. If W is not nil the data
// is passed on to W.
type CountWriter struct {
	W io.Writer
	N int64
}

// Write counts the bytes written through.
func (w *CountWriter) Write(p []byte) (n int, err error) {
	if w.W == nil {
		n = len(p)
	} else {
		n, err = w.W.Write(p)
	}
	w.N += int64(n)
	return n, err
}
