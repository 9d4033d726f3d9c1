// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides a Logger interface and functions that write to a
Logger only if it is not nil.

The codec packages accept a Logger in their configuration to report the
intermediate results of compression and decompression. A nil Logger
disables the output without any formatting cost, which is not possible
with a *log.Logger writing to io.Discard.

The *log.Logger type supports the interface. Any other logging library can
be connected with the Func adapter.
*/
package xlog

import "fmt"

// Logger is the interface required for logging. The *log.Logger type
// supports it.
type Logger interface {
	Output(calldepth int, s string) error
}

// Printf prints the arguments using the format string. If the logger
// argument is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments separated by spaces. If the logger
// argument is nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// Func converts a function into a Logger. The call depth is ignored.
type Func func(s string)

// Output calls f with s.
func (f Func) Output(calldepth int, s string) error {
	f(s)
	return nil
}
