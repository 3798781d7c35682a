package hufftree

import (
	"errors"

	"github.com/chronos-tachyon/assert"
)

// ErrNoSymbols is returned by Build when the Queue holds no Nodes at all,
// i.e. the input text contained no symbols.  It is the only failure mode.
var ErrNoSymbols = errors.New("hufftree: cannot construct a code tree with no symbols")

// Build consumes a Queue of Nodes and assembles the Huffman code tree,
// returning its root.
//
// While more than one Node remains, the two lowest-frequency Nodes are
// extracted and merged into a new internal Node whose frequency is the sum of
// theirs, and the merged Node is reinserted.  The first Node extracted
// becomes the left child, the second the right child; together with the
// Queue's FIFO tie-break this makes the tree shape deterministic.
//
// A single-symbol alphabet collapses to a tree that is one leaf.  An empty
// Queue fails with ErrNoSymbols.  The Queue is empty after a successful
// Build.
func Build(q *Queue) (*Node, error) {
	if q.Len() == 0 {
		return nil, ErrNoSymbols
	}

	for q.Len() > 1 {
		x := q.pop()
		y := q.pop()
		q.push(newInternal(x, y))
	}

	root := q.pop()
	assert.Assertf(q.Len() == 0, "queue holds %d nodes after extracting the root", q.Len())
	return root, nil
}
