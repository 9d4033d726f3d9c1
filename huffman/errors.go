// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"errors"
	"fmt"
)

// Errors that can be tested with errors.Is.
var (
	// ErrFormat is matched by every *FormatError.
	ErrFormat = errors.New("huffman: format error")
	// ErrMissingCode is matched by every *MissingCodeError.
	ErrMissingCode = errors.New("huffman: missing code")
	// ErrCodeTooLong indicates a tree deeper than MaxCodeLen.
	ErrCodeTooLong = errors.New("huffman: code length exceeds 64 bits")
)

// FormatError reports a packed buffer or bit-string that cannot be
// unpacked or decoded. Such input is corrupted or truncated.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return "huffman: " + e.Msg }

// Is supports errors.Is(err, ErrFormat).
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// errFormatf creates a *FormatError with a formatted message.
func errFormatf(format string, a ...interface{}) error {
	return &FormatError{Msg: fmt.Sprintf(format, a...)}
}

// MissingCodeError is returned by Encode if a symbol has no code in the
// table. It indicates that the table has not been derived from the
// encoded input.
type MissingCodeError struct {
	Symbol byte
}

func (e *MissingCodeError) Error() string {
	return fmt.Sprintf("huffman: no code for symbol %#02x", e.Symbol)
}

// Is supports errors.Is(err, ErrMissingCode).
func (e *MissingCodeError) Is(target error) bool {
	return target == ErrMissingCode
}
