// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package randtxt

import "io"

// LineReader breaks the text of the underlying reader into lines by
// replacing every WordsPerLine-th space with a newline.
type LineReader struct {
	R            io.Reader
	WordsPerLine int
	spaces       int
}

// NewLineReader creates a line reader with 12 words per line.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{R: r, WordsPerLine: 12}
}

func (r *LineReader) Read(p []byte) (n int, err error) {
	if r.WordsPerLine < 1 {
		r.WordsPerLine = 12
	}
	n, err = r.R.Read(p)
	for i, c := range p[:n] {
		if c != ' ' {
			continue
		}
		r.spaces++
		if r.spaces%r.WordsPerLine == 0 {
			p[i] = '\n'
		}
	}
	return n, err
}
