// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ulikunitz/huff"
)

// sessionPaths returns the names of the raw artifact and the
// decompressed file for path. The extension of path is replaced.
func sessionPaths(path string) (bin, txt string) {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + ".bin", base + "_decompress.txt"
}

// runSession compresses the file at path into the raw artifact and
// decompresses the artifact with the same codec. The raw artifact
// doesn't contain the code table, so both steps must use one codec.
// Progress and the decompressed lines are written to out.
func runSession(out io.Writer, path string, opts *options) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	codec, err := huff.NewCodecConfig(opts.codecConfig())
	if err != nil {
		return err
	}
	binPath, txtPath := sessionPaths(path)

	packed, err := codec.Compress(raw)
	if err != nil {
		return &userPathError{Path: path, Err: err}
	}
	if err = os.WriteFile(binPath, packed, 0666); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"file":  binPath,
		"size":  len(raw),
		"bytes": len(packed),
	}).Debug("raw artifact written")
	fmt.Fprintln(out, "Compressed")

	packed, err = os.ReadFile(binPath)
	if err != nil {
		return err
	}
	p, err := codec.Decompress(packed)
	if err != nil {
		return &userPathError{Path: binPath, Err: err}
	}
	if err = os.WriteFile(txtPath, p, 0666); err != nil {
		return err
	}
	fmt.Fprintln(out, "Decompressed")

	return printLines(out, txtPath)
}

// printLines writes the lines of the file numbered from 1 with leading
// and trailing white space removed.
func printLines(out io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for count := 1; s.Scan(); count++ {
		fmt.Fprintf(out, "Line%d: %s\n", count,
			strings.TrimSpace(s.Text()))
	}
	return s.Err()
}
