package hufftree

import (
	"sort"
)

// Frequencies scans the input text and counts the occurrences of each
// distinct rune.  Runes are compared by exact equality, so e.g. 'a' and 'A'
// are distinct symbols.  An empty input yields an empty map.
func Frequencies(input string) map[Symbol]uint32 {
	freqs := make(map[Symbol]uint32)
	for _, r := range input {
		freqs[Symbol(r)]++
	}
	return freqs
}

// NewQueue seeds a fresh Queue with one leaf Node per symbol in the given
// frequency table, except that symbols with a frequency of 0 are omitted from
// the code entirely.  Leaves are inserted in ascending symbol order, making
// the Queue's extraction order deterministic for any fixed table.
func NewQueue(freqs map[Symbol]uint32) *Queue {
	symbols := make(bySymbol, 0, len(freqs))
	for symbol := range freqs {
		symbols = append(symbols, symbol)
	}
	symbols.Sort()

	q := &Queue{list: make([]queueItem, 0, len(freqs))}
	for _, symbol := range symbols {
		if freq := freqs[symbol]; freq != 0 {
			q.push(newLeaf(symbol, freq))
		}
	}
	return q
}

// CountFrequencies counts the rune frequencies of the input text and returns
// a Queue of leaf Nodes ready for Build.  An empty input yields an empty
// Queue.
func CountFrequencies(input string) *Queue {
	return NewQueue(Frequencies(input))
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}
