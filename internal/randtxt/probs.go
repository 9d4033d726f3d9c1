// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package randtxt generates random text with the character distribution
// of English prose. The output is deterministic for a given random
// source, which makes it suitable as test input for entropy coders.
package randtxt

import (
	"math/rand"
	"sort"
)

type prob struct {
	c byte
	p float64
}

type probs []prob

func (s probs) Len() int           { return len(s) }
func (s probs) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s probs) Less(i, j int) bool { return s[i].p < s[j].p }

func (s probs) SearchProb(p float64) int {
	return sort.Search(len(s), func(k int) bool { return s[k].p >= p })
}

// english contains relative frequencies of characters in English text.
var english = probs{
	{' ', 18.3}, {'e', 10.2}, {'t', 7.5}, {'a', 6.5}, {'o', 6.2},
	{'n', 5.7}, {'i', 5.7}, {'s', 5.3}, {'r', 5.0}, {'h', 5.0},
	{'l', 3.3}, {'d', 3.3}, {'u', 2.3}, {'c', 2.2}, {'m', 2.0},
	{'f', 1.8}, {'w', 1.7}, {'g', 1.6}, {'p', 1.5}, {'y', 1.4},
	{'b', 1.3}, {',', 1.0}, {'.', 0.9}, {'v', 0.8}, {'k', 0.6},
	{'T', 0.3}, {'I', 0.3}, {'A', 0.2}, {'x', 0.14}, {'j', 0.1},
	{'q', 0.08}, {'z', 0.07},
}

// cdf returns the cumulative distribution of the given frequencies.
func cdf(f probs) probs {
	prs := make(probs, len(f))
	sum := 0.0
	for _, pr := range f {
		sum += pr.p
	}
	q := 1.0 / sum
	x := 0.0
	for i, pr := range f {
		x += pr.p * q
		if x > 1.0 {
			x = 1.0
		}
		prs[i] = prob{pr.c, x}
	}
	prs[len(prs)-1].p = 1.0
	if !sort.IsSorted(prs) {
		panic("cdf not sorted")
	}
	return prs
}

// pcdf is the cumulative distribution of the english frequencies.
var pcdf = cdf(english)

// Reader produces an infinite stream of random text.
type Reader struct {
	rnd *rand.Rand
}

// NewReader creates a new reader using the given random source.
func NewReader(src rand.Source) *Reader {
	return &Reader{rnd: rand.New(src)}
}

// Read fills p completely with random characters. It never returns an
// error.
func (r *Reader) Read(p []byte) (n int, err error) {
	for i := range p {
		p[i] = pcdf[pcdf.SearchProb(r.rnd.Float64())].c
	}
	return len(p), nil
}
