// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package huff compresses text with a static Huffman code.
//
// A [Codec] compresses a byte slice into a packed buffer consisting of a
// single padding byte followed by the code bits. The packed buffer
// doesn't contain the code table; it can only be decompressed by the
// Codec that produced it, which keeps the table of its last compression.
//
// The frame format makes compressed data self-describing: it stores the
// symbol frequencies, the length and a checksum of the data in front of
// the packed buffer. Frames are created by [Codec.CompressFrame] and
// [Writer] and read by [Decoder] and [Reader].
//
// The building blocks of the codec are provided by the package
// github.com/ulikunitz/huff/huffman.
package huff
