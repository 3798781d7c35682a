package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman code tree.  Each Node is one of two kinds: a
// leaf, which carries a Symbol from the input alphabet, or an internal node,
// which carries exactly two children.  Every Node carries a frequency: the
// number of input occurrences for a leaf, or the sum of both children's
// frequencies for an internal node.
//
// Nodes are immutable once created.  Each child has exactly one parent; the
// tree is never aliased after construction.
type Node struct {
	freq   uint32
	symbol Symbol
	left   *Node
	right  *Node
}

// newLeaf constructs a leaf Node for a single symbol.
func newLeaf(symbol Symbol, freq uint32) *Node {
	assert.Assertf(symbol >= 0, "symbol %d is negative", symbol)
	return &Node{freq: freq, symbol: symbol}
}

// newInternal constructs an internal Node that takes ownership of two
// subtrees.  The merged frequency uses saturating addition.
func newInternal(left *Node, right *Node) *Node {
	assert.Assertf(left != nil, "left child is nil")
	assert.Assertf(right != nil, "right child is nil")
	freqSum := left.freq + right.freq
	if freqSum < left.freq {
		freqSum = math.MaxUint32
	}
	return &Node{freq: freqSum, symbol: InvalidSymbol, left: left, right: right}
}

// IsLeaf returns true iff this Node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Freq returns the frequency associated with this Node.
func (n *Node) Freq() uint32 {
	return n.freq
}

// Sym returns the symbol carried by this Node, or InvalidSymbol if this Node
// is an internal node.
func (n *Node) Sym() Symbol {
	return n.symbol
}

// Left returns the left child, or nil if this Node is a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, or nil if this Node is a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Walk visits this Node and every Node beneath it in pre-order (node, left
// subtree, right subtree), calling visit with each Node and its depth.  The
// root has depth 0.
//
// A consumer deriving a code table would walk the tree with the convention
// "left edge = bit 0, right edge = bit 1"; this package does not assign bits
// itself.
func (n *Node) Walk(visit func(node *Node, depth int)) {
	n.walk(visit, 0)
}

func (n *Node) walk(visit func(node *Node, depth int), depth int) {
	visit(n, depth)
	if n.left != nil {
		n.left.walk(visit, depth+1)
		n.right.walk(visit, depth+1)
	}
}

// NumLeaves returns the number of leaf Nodes in the tree rooted at this Node,
// which equals the number of distinct symbols it represents.
func (n *Node) NumLeaves() int {
	var count int
	n.Walk(func(node *Node, depth int) {
		if node.IsLeaf() {
			count++
		}
	})
	return count
}

// String returns a compact single-line representation of the tree rooted at
// this Node: a leaf is rendered as 'x':freq, an internal node as
// (left right):freq.
func (n *Node) String() string {
	if n.IsLeaf() {
		return strconv.QuoteRune(rune(n.symbol)) + ":" + strconv.FormatUint(uint64(n.freq), 10)
	}
	return "(" + n.left.String() + " " + n.right.String() + "):" + strconv.FormatUint(uint64(n.freq), 10)
}

var _ fmt.Stringer = (*Node)(nil)

// Dump writes a programmer-readable debugging dump of the tree rooted at this
// Node to the given writer, one line per Node, indented by depth.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	n.Walk(func(node *Node, depth int) {
		for i := 0; i <= depth; i++ {
			buf.WriteByte('\t')
		}
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "leaf %s freq=%d\n", strconv.QuoteRune(rune(node.symbol)), node.freq)
		} else {
			fmt.Fprintf(&buf, "internal freq=%d\n", node.freq)
		}
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
