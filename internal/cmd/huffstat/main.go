// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command huffstat prints compression statistics for the Silesia corpus
// for both padding modes.
package main

import (
	"fmt"
	"log"

	"github.com/kr/pretty"
	"github.com/ulikunitz/zdata"

	"github.com/ulikunitz/huff"
	"github.com/ulikunitz/huff/huffman"
	"github.com/ulikunitz/huff/internal/corpus"
)

func main() {
	log.SetPrefix("huffstat: ")
	log.SetFlags(0)

	files, err := corpus.Files(zdata.Silesia)
	if err != nil {
		log.Fatalf("corpus.Files error %s", err)
	}
	fmt.Printf("%d files, %d bytes\n", len(files), corpus.Size(files))

	for _, mode := range []huffman.PadMode{
		huffman.PadMinimal, huffman.PadFullByte} {
		stats, err := corpus.Compress(files,
			huff.CodecConfig{Padding: mode})
		if err != nil {
			log.Fatalf("corpus.Compress error %s", err)
		}
		fmt.Printf("\n### padding %s - %.3f c/u ###\n\n", mode,
			stats.Ratio)
		pretty.Println(stats)
	}
}
