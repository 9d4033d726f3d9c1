// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import "container/heap"

// MaxCodeLen is the maximum length of a code in bits.
const MaxCodeLen = 64

// noChild marks a leaf in the child fields of a node.
const noChild = -1

// Node is a node of the Huffman tree. Internal nodes have two children
// that are referenced by their index in the tree's node slice. Leaves
// have no children and carry a symbol.
type Node struct {
	Freq   uint64
	Symbol byte
	Left   int
	Right  int
}

// IsLeaf reports whether the node is a leaf.
func (n *Node) IsLeaf() bool { return n.Left == noChild }

// Tree is a Huffman tree. All nodes are stored in a single slice; the
// root is the last node appended.
type Tree struct {
	nodes []Node
	root  int
}

// Root returns the index of the root node.
func (t *Tree) Root() int { return t.root }

// Node returns the node at index i.
func (t *Tree) Node(i int) Node { return t.nodes[i] }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Depth computes the length of the longest path from the root to a leaf.
func (t *Tree) Depth() int {
	type entry struct{ i, d int }
	max := 0
	stack := []entry{{t.root, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[e.i]
		if n.IsLeaf() {
			if e.d > max {
				max = e.d
			}
			continue
		}
		stack = append(stack, entry{n.Left, e.d + 1},
			entry{n.Right, e.d + 1})
	}
	return max
}

// item is an entry in the priority queue. The sequence number breaks
// ties between nodes with the same frequency.
type item struct {
	freq uint64
	seq  int
	node int
}

// queue is a min-heap of items ordered by frequency and sequence
// number.
type queue []item

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].freq != q[j].freq {
		return q[i].freq < q[j].freq
	}
	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x interface{}) { *q = append(*q, x.(item)) }

func (q *queue) Pop() interface{} {
	old := *q
	n := len(old) - 1
	it := old[n]
	*q = old[:n]
	return it
}

// Build constructs the Huffman tree for the frequency table. Leaves are
// queued in ascending symbol order. The two nodes with the lowest
// frequency are merged until a single node remains; the first node
// taken from the queue becomes the left child. Nodes with equal
// frequency are taken in the order they entered the queue, so the tree
// depends only on the table.
//
// An empty table results in a nil tree. A table with a single symbol
// results in a tree consisting only of a leaf.
func Build(ft *FrequencyTable) (*Tree, error) {
	n := ft.Len()
	if n == 0 {
		return nil, nil
	}
	t := &Tree{nodes: make([]Node, 0, 2*n-1)}
	q := make(queue, 0, n)
	for _, c := range ft.Symbols() {
		i := len(t.nodes)
		t.nodes = append(t.nodes, Node{
			Freq:   ft.Count(c),
			Symbol: c,
			Left:   noChild,
			Right:  noChild,
		})
		q = append(q, item{freq: ft.Count(c), seq: i, node: i})
	}
	heap.Init(&q)
	for q.Len() > 1 {
		a := heap.Pop(&q).(item)
		b := heap.Pop(&q).(item)
		i := len(t.nodes)
		t.nodes = append(t.nodes, Node{
			Freq:  a.freq + b.freq,
			Left:  a.node,
			Right: b.node,
		})
		heap.Push(&q, item{freq: a.freq + b.freq, seq: i, node: i})
	}
	t.root = q[0].node
	if t.Depth() > MaxCodeLen {
		return nil, ErrCodeTooLong
	}
	return t, nil
}
