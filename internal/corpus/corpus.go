// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corpus loads test corpora and computes compression statistics
// for them.
package corpus

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/ulikunitz/huff"
	"github.com/ulikunitz/huff/xio"
)

// File is a file of a corpus held in memory.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total size of all files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// FileStats describes the compression of a single file.
type FileStats struct {
	Name       string
	Size       int64
	Compressed int64
	Symbols    int
	MaxCodeLen int
}

// Stats describes the compression of a set of files.
type Stats struct {
	Padding    string
	Size       int64
	Compressed int64
	Ratio      float64
	Files      []FileStats
}

// Compress compresses every file into a frame and collects the sizes.
// Trailing white space is always kept, since the corpus files are not
// necessarily text.
func Compress(files []File, cfg huff.CodecConfig) (stats Stats, err error) {
	cfg.KeepTrailingSpace = true
	stats.Padding = cfg.Padding.String()
	for _, f := range files {
		cw := &xio.CountWriter{}
		w, err := huff.NewWriterConfig(cw, huff.WriterConfig{Codec: cfg})
		if err != nil {
			return stats, err
		}
		if _, err = io.Copy(w, bytes.NewReader(f.Data)); err != nil {
			return stats, fmt.Errorf("%s: %w", f.Name, err)
		}
		if err = w.Close(); err != nil {
			return stats, fmt.Errorf("%s: %w", f.Name, err)
		}
		table := w.Codec().Table()
		stats.Files = append(stats.Files, FileStats{
			Name:       f.Name,
			Size:       int64(len(f.Data)),
			Compressed: cw.N,
			Symbols:    table.Len(),
			MaxCodeLen: table.MaxLen(),
		})
		stats.Size += int64(len(f.Data))
		stats.Compressed += cw.N
	}
	if stats.Size > 0 {
		stats.Ratio = float64(stats.Compressed) / float64(stats.Size)
	}
	return stats, nil
}
