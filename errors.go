// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import "errors"

var (
	// ErrNoTable is returned by Decompress if the codec has not
	// compressed any data.
	ErrNoTable = errors.New("huff: no code table; compress first")
	// ErrFrameHeader indicates an invalid frame header.
	ErrFrameHeader = errors.New("huff: invalid frame header")
	// ErrChecksum indicates that the decompressed data doesn't match
	// the length or checksum stored in the frame.
	ErrChecksum = errors.New("huff: checksum mismatch")
	// ErrTooLarge is returned if data exceeds the configured MaxSize.
	ErrTooLarge = errors.New("huff: data too large")
)
