package hufftree

import (
	"container/heap"
)

// Queue is a min-priority queue of tree Nodes, ordered by frequency
// ascending.  It is a transient construction aid: CountFrequencies seeds it
// with one leaf per distinct symbol, and Build consumes it while merging.
//
// Ties between equal-frequency Nodes are broken FIFO: whichever Node entered
// the Queue first is extracted first.  Leaves are seeded in ascending symbol
// order, so the extraction order for any fixed frequency distribution is
// fully deterministic, and so is the shape of the tree Build produces.
//
// A Queue must not be shared across goroutines.
type Queue struct {
	list []queueItem
	seq  uint64
}

// Len returns the number of Nodes currently in the Queue.
func (q *Queue) Len() int {
	return len(q.list)
}

// push inserts a Node, stamping it with the next sequence number.
func (q *Queue) push(node *Node) {
	heap.Push((*queueHeap)(q), node)
}

// pop extracts the Node with the lowest frequency, FIFO among equals.
func (q *Queue) pop() *Node {
	return heap.Pop((*queueHeap)(q)).(*Node)
}

// type queueItem + type queueHeap {{{

type queueItem struct {
	node *Node
	seq  uint64
}

// queueHeap adapts Queue to heap.Interface.
type queueHeap Queue

func (h *queueHeap) Len() int {
	return len(h.list)
}

func (h *queueHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *queueHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	return a.seq < b.seq
}

func (h *queueHeap) Push(x interface{}) {
	h.list = append(h.list, queueItem{x.(*Node), h.seq})
	h.seq++
}

func (h *queueHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x.node
}

var _ heap.Interface = (*queueHeap)(nil)

// }}}
