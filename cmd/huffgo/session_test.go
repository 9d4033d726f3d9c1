// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestSessionPaths(t *testing.T) {
	bin, txt := sessionPaths("dir/sample.txt")
	if bin != "dir/sample.bin" || txt != "dir/sample_decompress.txt" {
		t.Fatalf("sessionPaths returned %q, %q", bin, txt)
	}
}

func TestRunSession(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	if err := os.WriteFile(path, []byte("aaabbc\n  xy  \n\n"), 0644); err != nil {
		t.Fatalf("WriteFile error %s", err)
	}
	var out bytes.Buffer
	if err := runSession(&out, path, &options{}); err != nil {
		t.Fatalf("runSession error %s", err)
	}
	const want = "Compressed\nDecompressed\nLine1: aaabbc\nLine2: xy\n"
	if s := out.String(); s != want {
		t.Fatalf("runSession output %q; want %q", s, want)
	}
	p, err := os.ReadFile(filepath.Join(dir, "sample_decompress.txt"))
	if err != nil {
		t.Fatalf("ReadFile error %s", err)
	}
	if string(p) != "aaabbc\n  xy" {
		t.Fatalf("decompressed %q; want %q", p, "aaabbc\n  xy")
	}
}

func TestRunSessionArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "abc.txt")
	if err := os.WriteFile(path, []byte("aaabbc"), 0644); err != nil {
		t.Fatalf("WriteFile error %s", err)
	}
	var out bytes.Buffer
	if err := runSession(&out, path, &options{}); err != nil {
		t.Fatalf("runSession error %s", err)
	}
	p, err := os.ReadFile(filepath.Join(dir, "abc.bin"))
	if err != nil {
		t.Fatalf("ReadFile error %s", err)
	}
	want := []byte{0x07, 0x1f, 0x00}
	if !bytes.Equal(p, want) {
		t.Fatalf("artifact % x; want % x", p, want)
	}
}

func TestRunSessionMissing(t *testing.T) {
	var out bytes.Buffer
	err := runSession(&out, filepath.Join(t.TempDir(), "none.txt"),
		&options{})
	if err == nil {
		t.Fatalf("runSession of missing file returned no error")
	}
	if out.Len() != 0 {
		t.Fatalf("runSession wrote %q", out.String())
	}
}
