// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ulikunitz/huff"
)

func ExampleCodec() {
	c := huff.NewCodec()
	packed, err := c.Compress([]byte("aaabbc\n"))
	if err != nil {
		log.Fatalf("Compress error %s", err)
	}
	fmt.Printf("% x\n", packed)
	fmt.Println(c.Table().Codes()['a'], c.Table().Codes()['b'],
		c.Table().Codes()['c'])
	p, err := c.Decompress(packed)
	if err != nil {
		log.Fatalf("Decompress error %s", err)
	}
	fmt.Printf("%s\n", p)
	// Output:
	// 07 1f 00
	// 0 11 10
	// aaabbc
}

func ExampleWriter() {
	var buf bytes.Buffer
	w, err := huff.NewWriter(&buf)
	if err != nil {
		log.Fatalf("NewWriter error %s", err)
	}
	if _, err = fmt.Fprintln(w, "The quick brown fox jumps over the lazy dog."); err != nil {
		log.Fatalf("Fprintln error %s", err)
	}
	if err = w.Close(); err != nil {
		log.Fatalf("w.Close() error %s", err)
	}
	r, err := huff.NewReader(&buf)
	if err != nil {
		log.Fatalf("NewReader error %s", err)
	}
	if _, err = io.Copy(os.Stdout, r); err != nil {
		log.Fatalf("io.Copy error %s", err)
	}
	fmt.Println()
	// Output:
	// The quick brown fox jumps over the lazy dog.
}
