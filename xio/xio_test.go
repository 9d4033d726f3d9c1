// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xio

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"testing"
)

type recorder struct {
	name   string
	w      io.Writer
	closed *[]string
	err    error
}

func (r *recorder) Write(p []byte) (int, error) { return r.w.Write(p) }

func (r *recorder) Close() error {
	*r.closed = append(*r.closed, r.name)
	return r.err
}

func TestWriteCloserStack(t *testing.T) {
	var buf bytes.Buffer
	var closed []string
	errBottom := errors.New("bottom")
	var s WriteCloserStack
	s.Push(&recorder{name: "bottom", w: &buf, closed: &closed,
		err: errBottom})
	s.Push(&recorder{name: "top", w: &buf, closed: &closed})
	if _, err := io.WriteString(&s, "data"); err != nil {
		t.Fatalf("WriteString error %s", err)
	}
	err := s.Close()
	if !errors.Is(err, errBottom) {
		t.Fatalf("Close returned %v; want %v", err, errBottom)
	}
	if len(closed) != 2 || closed[0] != "top" || closed[1] != "bottom" {
		t.Fatalf("close order %v; want [top bottom]", closed)
	}
	if len(s.Stack) != 0 {
		t.Fatalf("stack has %d entries after Close", len(s.Stack))
	}
	if buf.String() != "data" {
		t.Fatalf("buffer contains %q; want %q", buf.String(), "data")
	}
}

func TestFlushCloser(t *testing.T) {
	var buf bytes.Buffer
	wc := FlushCloser(bufio.NewWriter(&buf))
	io.WriteString(wc, "abc")
	if buf.Len() != 0 {
		t.Fatalf("data written before Close")
	}
	if err := wc.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}
	if buf.String() != "abc" {
		t.Fatalf("buffer contains %q; want %q", buf.String(), "abc")
	}
}

func TestCountWriter(t *testing.T) {
	var buf bytes.Buffer
	cw := &CountWriter{W: &buf}
	io.WriteString(cw, "hello")
	io.WriteString(cw, ", world")
	if cw.N != 12 || buf.Len() != 12 {
		t.Fatalf("N=%d, buf.Len()=%d; want 12", cw.N, buf.Len())
	}
	discard := &CountWriter{}
	io.WriteString(discard, "xyz")
	if discard.N != 3 {
		t.Fatalf("N=%d; want 3", discard.N)
	}
}
