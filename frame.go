// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/ulikunitz/huff/huffman"
)

/*** Frame header ***/

// frameMagic starts every frame.
var frameMagic = []byte{0xa5, 'H', 'U', 'F'}

// frameVersion is the only supported version of the frame format.
const frameVersion = 1

// flags of the frame header
const (
	flagFullByte byte = 1 << iota
	flagTrimmed

	flagMask = flagFullByte | flagTrimmed
)

// field numbers of the header body
const (
	fieldSymbol protowire.Number = 1
	fieldSum    protowire.Number = 2
	fieldSize   protowire.Number = 3

	fieldSymbolValue protowire.Number = 1
	fieldSymbolCount protowire.Number = 2
)

// frameHeader describes the data of a frame. The header body is encoded
// in the protocol buffer wire format: a repeated message field for the
// symbol frequencies in ascending symbol order, a fixed64 field for the
// xxhash of the data and a varint field for the length of the data.
type frameHeader struct {
	flags byte
	freqs *huffman.FrequencyTable
	sum   uint64
	size  uint64
	// key identifies the frequency table; it is the xxhash of the
	// encoded symbol fields.
	key uint64
}

// appendSymbols appends the symbol fields for the frequency table.
func appendSymbols(b []byte, ft *huffman.FrequencyTable) []byte {
	for _, c := range ft.Symbols() {
		var e []byte
		e = protowire.AppendTag(e, fieldSymbolValue, protowire.VarintType)
		e = protowire.AppendVarint(e, uint64(c))
		e = protowire.AppendTag(e, fieldSymbolCount, protowire.VarintType)
		e = protowire.AppendVarint(e, ft.Count(c))
		b = protowire.AppendTag(b, fieldSymbol, protowire.BytesType)
		b = protowire.AppendBytes(b, e)
	}
	return b
}

// appendBinary appends the encoded header to p.
func (h *frameHeader) appendBinary(p []byte) []byte {
	body := appendSymbols(nil, h.freqs)
	body = protowire.AppendTag(body, fieldSum, protowire.Fixed64Type)
	body = protowire.AppendFixed64(body, h.sum)
	body = protowire.AppendTag(body, fieldSize, protowire.VarintType)
	body = protowire.AppendVarint(body, h.size)

	p = append(p, frameMagic...)
	p = append(p, frameVersion, h.flags)
	p = protowire.AppendVarint(p, uint64(len(body)))
	return append(p, body...)
}

// errHeaderf wraps ErrFrameHeader with a detailed message.
func errHeaderf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrFrameHeader, fmt.Sprintf(format, a...))
}

// parseSymbol parses a single symbol entry.
func parseSymbol(b []byte) (c byte, count uint64, err error) {
	var hasValue bool
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return 0, 0, errHeaderf("symbol: %v", protowire.ParseError(n))
		}
		b = b[n:]
		if typ != protowire.VarintType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return 0, 0, errHeaderf("symbol: %v",
					protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, 0, errHeaderf("symbol: %v", protowire.ParseError(n))
		}
		b = b[n:]
		switch num {
		case fieldSymbolValue:
			if v > 255 {
				return 0, 0, errHeaderf("symbol %d out of range", v)
			}
			c, hasValue = byte(v), true
		case fieldSymbolCount:
			count = v
		}
	}
	if !hasValue {
		return 0, 0, errHeaderf("symbol value missing")
	}
	if count == 0 {
		return 0, 0, errHeaderf("symbol %#02x has count zero", c)
	}
	return c, count, nil
}

// parseFrameHeader parses the frame header at the start of p and returns
// the number of bytes consumed.
func parseFrameHeader(p []byte) (h *frameHeader, n int, err error) {
	if len(p) < len(frameMagic)+2 {
		return nil, 0, errHeaderf("frame too short")
	}
	if !bytes.Equal(p[:len(frameMagic)], frameMagic) {
		return nil, 0, errHeaderf("invalid magic")
	}
	n = len(frameMagic)
	if p[n] != frameVersion {
		return nil, 0, errHeaderf("unsupported version %d", p[n])
	}
	h = &frameHeader{flags: p[n+1]}
	n += 2
	if h.flags&^flagMask != 0 {
		return nil, 0, errHeaderf("invalid flags %#02x", h.flags)
	}
	size, k := protowire.ConsumeVarint(p[n:])
	if k < 0 {
		return nil, 0, errHeaderf("length: %v", protowire.ParseError(k))
	}
	n += k
	if size > uint64(len(p)-n) {
		return nil, 0, errHeaderf("body length %d exceeds frame", size)
	}
	body := p[n : n+int(size)]
	n += int(size)

	counts := make(map[byte]uint64)
	digest := xxhash.New()
	var total uint64
	var hasSum, hasSize bool
	for len(body) > 0 {
		num, typ, k := protowire.ConsumeTag(body)
		if k < 0 {
			return nil, 0, errHeaderf("%v", protowire.ParseError(k))
		}
		field := body[:k]
		body = body[k:]
		switch {
		case num == fieldSymbol && typ == protowire.BytesType:
			e, k := protowire.ConsumeBytes(body)
			if k < 0 {
				return nil, 0, errHeaderf("%v",
					protowire.ParseError(k))
			}
			digest.Write(field)
			digest.Write(body[:k])
			body = body[k:]
			c, count, err := parseSymbol(e)
			if err != nil {
				return nil, 0, err
			}
			if _, dup := counts[c]; dup {
				return nil, 0, errHeaderf(
					"duplicate symbol %#02x", c)
			}
			counts[c] = count
			total += count
			if total < count {
				return nil, 0, errHeaderf("total count overflow")
			}
		case num == fieldSum && typ == protowire.Fixed64Type:
			v, k := protowire.ConsumeFixed64(body)
			if k < 0 {
				return nil, 0, errHeaderf("%v",
					protowire.ParseError(k))
			}
			body = body[k:]
			h.sum, hasSum = v, true
		case num == fieldSize && typ == protowire.VarintType:
			v, k := protowire.ConsumeVarint(body)
			if k < 0 {
				return nil, 0, errHeaderf("%v",
					protowire.ParseError(k))
			}
			body = body[k:]
			h.size, hasSize = v, true
		default:
			k := protowire.ConsumeFieldValue(num, typ, body)
			if k < 0 {
				return nil, 0, errHeaderf("%v",
					protowire.ParseError(k))
			}
			body = body[k:]
		}
	}
	if !hasSum || !hasSize {
		return nil, 0, errHeaderf("checksum or size missing")
	}
	if total != h.size {
		return nil, 0, errHeaderf("symbol counts sum to %d; size is %d",
			total, h.size)
	}
	h.freqs = huffman.NewFrequencyTable(counts)
	h.key = digest.Sum64()
	return h, n, nil
}

// CompressFrame compresses raw like Compress and puts a frame header in
// front of the packed buffer. The frame can be decompressed by any
// Decoder.
func (c *Codec) CompressFrame(raw []byte) ([]byte, error) {
	p, packed, err := c.compress(raw)
	if err != nil {
		return nil, err
	}
	h := frameHeader{
		freqs: c.freqs,
		sum:   xxhash.Sum64(p),
		size:  uint64(len(p)),
	}
	if c.cfg.Padding == huffman.PadFullByte {
		h.flags |= flagFullByte
	}
	if !c.cfg.KeepTrailingSpace {
		h.flags |= flagTrimmed
	}
	frame := h.appendBinary(make([]byte, 0, 64+len(packed)))
	return append(frame, packed...), nil
}
