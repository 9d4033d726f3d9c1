// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command huffgo compresses and decompresses files with static Huffman
// coding.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogier/pflag"
	"github.com/sirupsen/logrus"

	"github.com/ulikunitz/huff"
	"github.com/ulikunitz/huff/huffman"
	"github.com/ulikunitz/huff/xlog"
)

const (
	hufExt   = ".huf"
	usageStr = `Usage: huffgo [OPTION]... [FILE]...
Compress or uncompress FILEs in the .huf format (by default, compress FILES
in place).

  -c, --stdout      write to standard output and don't delete input files
  -d, --decompress  force decompression
  -f, --force       force overwrite of output file and compress links
  -h, --help        give this help
  -k, --keep        keep (don't delete) input files
  -q, --quiet       suppress all warnings
  -v, --verbose     verbose mode
      --full-byte   add a full padding byte to byte-aligned code bits
      --raw-space   don't remove trailing white space before compression
  -s, --session     compress FILE to FILE.bin and decompress it again to
                    FILE_decompress.txt using the same code table

With no file, or when FILE is -, read standard input.
`
)

// options contains the command line options of huffgo.
type options struct {
	decompress bool
	stdout     bool
	force      bool
	keep       bool
	rawSpace   bool
	fullByte   bool
	decoder    *huff.Decoder
}

// codecConfig returns the codec configuration for the options.
func (opts *options) codecConfig() huff.CodecConfig {
	cfg := huff.CodecConfig{
		KeepTrailingSpace: opts.rawSpace,
		Logger: xlog.Func(func(s string) {
			logrus.Debug(strings.TrimRight(s, "\n"))
		}),
	}
	if opts.fullByte {
		cfg.Padding = huffman.PadFullByte
	}
	return cfg
}

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

func main() {
	cmdName := filepath.Base(os.Args[0])
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	logrus.SetOutput(os.Stderr)
	log := logrus.WithField("cmd", cmdName)

	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help       = pflag.BoolP("help", "h", false, "")
		stdout     = pflag.BoolP("stdout", "c", false, "")
		decompress = pflag.BoolP("decompress", "d", false, "")
		force      = pflag.BoolP("force", "f", false, "")
		keep       = pflag.BoolP("keep", "k", false, "")
		quiet      = pflag.BoolP("quiet", "q", false, "")
		verbose    = pflag.BoolP("verbose", "v", false, "")
		session    = pflag.BoolP("session", "s", false, "")
		rawSpace   = pflag.Bool("raw-space", false, "")
		fullByte   = pflag.Bool("full-byte", false, "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	switch {
	case *verbose:
		logrus.SetLevel(logrus.DebugLevel)
	case *quiet:
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.WarnLevel)
	}

	opts := &options{
		decompress: *decompress,
		stdout:     *stdout,
		force:      *force,
		keep:       *keep,
		rawSpace:   *rawSpace,
		fullByte:   *fullByte,
	}
	var err error
	if opts.decoder, err = huff.NewDecoder(huff.DecoderConfig{}); err != nil {
		log.Fatal(err)
	}

	args := pflag.Args()
	if *session {
		if len(args) != 1 {
			log.Fatal("session mode requires exactly one file")
		}
		if err = runSession(os.Stdout, args[0], opts); err != nil {
			log.Fatal(userError(err))
		}
		return
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	exit := 0
	for _, path := range args {
		o := *opts
		if path == "-" {
			o.stdout = true
		}
		if err = processFile(path, &o); err != nil {
			exit = 1
		}
	}
	os.Exit(exit)
}
