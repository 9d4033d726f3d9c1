// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/ulikunitz/huff"
	"github.com/ulikunitz/huff/xio"
)

// signalHandler removes the temporary file of the writer if the program
// is interrupted. The returned quit channel must be closed to terminate
// the signal handler go routine.
func signalHandler(w *writer) chan<- struct{} {
	tmp := w.tmpFile()
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			if tmp != "" {
				os.Remove(tmp)
			}
			os.Exit(7)
		}
	}()
	return quit
}

// targetName computes the name of the output file.
func targetName(path string, opts *options) (target string, err error) {
	if path == "-" {
		panic("path name - not supported")
	}
	if len(path) == 0 {
		return "", errors.New("empty file name not supported")
	}
	if !opts.decompress {
		if strings.HasSuffix(path, hufExt) {
			return "", &userPathError{Path: path,
				Err: fmt.Errorf("already has %s suffix", hufExt)}
		}
		return path + hufExt, nil
	}
	if !strings.HasSuffix(path, hufExt) {
		return "", &userPathError{Path: path,
			Err: errors.New("unknown suffix")}
	}
	target = path[:len(path)-len(hufExt)]
	if len(target) == 0 {
		return "", fmt.Errorf("file name %s has no base part", path)
	}
	return target, nil
}

// tmpName converts the path string into a temporary name by appending
// .decompress or .compress to the file path.
func tmpName(path string, decompress bool) string {
	var ext string
	if decompress {
		ext = ".decompress"
	} else {
		ext = ".compress"
	}
	return path + ext
}

// writer is the output file. For compression the frame writer sits on
// top of the buffered file.
type writer struct {
	f       *os.File
	name    string
	stack   xio.WriteCloserStack
	hw      *huff.Writer
	success bool
}

// newWriter creates the output file for path. The data is written into
// a temporary file that is renamed to the target name on success.
func newWriter(path string, perm os.FileMode, opts *options,
) (w *writer, err error) {
	w = &writer{name: path}
	if opts.stdout {
		w.f = os.Stdout
		w.name = "-"
	} else {
		name, err := targetName(path, opts)
		if err != nil {
			return nil, err
		}
		if _, err = os.Stat(name); !os.IsNotExist(err) {
			if !opts.force {
				return nil, &userPathError{
					Path: name,
					Err:  errors.New("file exists")}
			}
			if err = os.Remove(name); err != nil {
				return nil, err
			}
		}
		tmp := tmpName(path, opts.decompress)
		if w.f, err = os.OpenFile(tmp,
			os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm); err != nil {
			return nil, err
		}
		w.name = name
	}
	bw := xio.FlushCloser(bufio.NewWriter(w.f))
	w.stack.Push(bw)
	if opts.decompress {
		return w, nil
	}
	w.hw, err = huff.NewWriterConfig(bw, huff.WriterConfig{
		Codec: opts.codecConfig(),
	})
	if err != nil {
		return nil, err
	}
	w.stack.Push(w.hw)
	return w, nil
}

// Write writes to the top of the writer stack.
func (w *writer) Write(p []byte) (n int, err error) {
	return w.stack.Write(p)
}

// isStdout checks whether the parameter refers to stdout.
func isStdout(f *os.File) bool {
	return f.Fd() == uintptr(syscall.Stdout)
}

var errInval = errors.New("invalid value")

// Close closes the writer. Without success the temporary file is
// removed, otherwise the frame is written and the temporary file renamed.
func (w *writer) Close() error {
	var err error

	if w.f == nil {
		return errInval
	}
	defer func() { w.f = nil }()

	if !w.success {
		if isStdout(w.f) {
			return nil
		}
		if err = w.f.Close(); err != nil {
			return err
		}
		return os.Remove(w.f.Name())
	}
	if err = w.stack.Close(); err != nil {
		return err
	}
	if w.hw != nil {
		t := w.hw.Codec().Table()
		logrus.WithFields(logrus.Fields{
			"file":    w.name,
			"symbols": t.Len(),
			"maxlen":  t.MaxLen(),
		}).Debug("compressed")
	}
	if isStdout(w.f) {
		return nil
	}
	if err = w.f.Close(); err != nil {
		return err
	}
	return os.Rename(w.f.Name(), w.name)
}

// tmpFile returns the name of the temporary file of the writer. It
// returns the empty string if the writer has no temporary file, which is
// the case for standard output and after Close.
func (w *writer) tmpFile() string {
	if w.f == nil || isStdout(w.f) {
		return ""
	}
	return w.f.Name()
}

// SetSuccess sets the success variable to true.
func (w *writer) SetSuccess() { w.success = true }

// reader is the input file. For decompression it serves the decoded
// frame.
type reader struct {
	f *os.File
	io.Reader
	success bool
	keep    bool
}

// errNoRegular indicates that a file is not regular.
var errNoRegular = errors.New("no regular file")

// specialBits contain the special bits, which are not supported by
// huffgo.
const specialBits = os.ModeSetuid | os.ModeSetgid | os.ModeSticky

// openFile opens the given path with the given options.
func openFile(path string, opts *options) (f *os.File, err error) {
	if path == "-" {
		return os.Stdin, nil
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	fm := fi.Mode()
	if !fm.IsRegular() {
		if !opts.force || fm&os.ModeSymlink == 0 {
			return nil, &userPathError{Path: path,
				Err: errNoRegular}
		}
	}
	if f, err = os.Open(path); err != nil {
		return nil, err
	}
	if fi, err = f.Stat(); err != nil {
		f.Close()
		return nil, err
	}
	fm = fi.Mode()
	if !fm.IsRegular() {
		f.Close()
		return nil, &userPathError{Path: path, Err: errNoRegular}
	}
	if fm&specialBits != 0 && !opts.force {
		f.Close()
		return nil, &userPathError{Path: path,
			Err: errors.New("setuid, setgid and/or sticky bit set")}
	}
	return f, nil
}

// newReader creates a new reader for files.
func newReader(path string, opts *options) (r *reader, err error) {
	f, err := openFile(path, opts)
	if err != nil {
		return nil, err
	}
	r = &reader{f: f, keep: opts.keep || opts.stdout}
	br := bufio.NewReader(f)
	if !opts.decompress {
		r.Reader = br
		return r, nil
	}
	if path != "-" && !strings.HasSuffix(path, hufExt) {
		f.Close()
		return nil, &userPathError{Path: path,
			Err: errors.New("unknown suffix")}
	}
	hr, err := huff.NewReaderConfig(br, huff.ReaderConfig{
		Decoder: opts.decoder,
	})
	if err != nil {
		if !isStdin(f) {
			f.Close()
		}
		return nil, &userPathError{Path: path, Err: err}
	}
	r.Reader = hr
	return r, nil
}

// isStdin checks whether the given file reference is stdin.
func isStdin(f *os.File) bool {
	return f.Fd() == uintptr(syscall.Stdin)
}

// Close closes the reader. The input file is removed only after success
// and if it should not be kept.
func (r *reader) Close() error {
	if r.f == nil {
		return errInval
	}
	defer func() { r.f = nil }()
	if isStdin(r.f) {
		return nil
	}
	if err := r.f.Close(); err != nil {
		return err
	}
	if r.keep || !r.success {
		return nil
	}
	return os.Remove(r.f.Name())
}

// SetSuccess marks the reader as successfully processed.
func (r *reader) SetSuccess() { r.success = true }

// Perm returns the permission bits of the input file.
func (r *reader) Perm() os.FileMode {
	const defaultPerm os.FileMode = 0666

	fi, err := r.f.Stat()
	if err != nil {
		return defaultPerm
	}
	return fi.Mode() & defaultPerm
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *userPathError) Unwrap() error { return e.Err }

// userError removes the operation from a *os.PathError. Users don't need
// to know that lstat found a file missing.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

func printErr(err error) {
	if err != nil {
		logrus.Warn(userError(err))
	}
}

// processFile compresses or decompresses the file with the given path.
func processFile(path string, opts *options) (err error) {
	r, err := newReader(path, opts)
	if err != nil {
		printErr(err)
		return err
	}
	defer r.Close()
	w, err := newWriter(path, r.Perm(), opts)
	if err != nil {
		printErr(err)
		return err
	}
	defer w.Close()
	quitSignalHandler := signalHandler(w)
	if _, err = io.Copy(w, r); err != nil {
		close(quitSignalHandler)
		printErr(err)
		return err
	}
	close(quitSignalHandler)
	w.SetSuccess()
	if err = w.Close(); err != nil {
		printErr(err)
		return err
	}
	r.SetSuccess()
	if err = r.Close(); err != nil {
		printErr(err)
		return err
	}
	return nil
}
