package hufftree

import (
	"errors"
	"testing"
)

func TestBuild_Empty(t *testing.T) {
	_, err := Build(CountFrequencies(""))
	if err == nil {
		t.Error("expected an error, got nil")
	}
	if !errors.Is(err, ErrNoSymbols) {
		t.Errorf("wrong error:\n\texpect: %v\n\tactual: %v", ErrNoSymbols, err)
	}
}

func TestBuild_SingleSymbol(t *testing.T) {
	root, err := Build(CountFrequencies("aaaa"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !root.IsLeaf() {
		t.Error("expected the root to be a leaf")
	}
	if root.Sym() != 'a' {
		t.Errorf("wrong symbol:\n\texpect: %q\n\tactual: %q", 'a', rune(root.Sym()))
	}
	if root.Freq() != 4 {
		t.Errorf("wrong frequency:\n\texpect: %d\n\tactual: %d", 4, root.Freq())
	}
	if root.Left() != nil || root.Right() != nil {
		t.Error("expected the root to have no children")
	}
}

func TestBuild_ReferenceShape(t *testing.T) {
	root, err := Build(CountFrequencies("aaaabbbccd"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expectLeaf := func(node *Node, sym Symbol, freq uint32) {
		t.Helper()
		if !node.IsLeaf() {
			t.Fatalf("expected a leaf node, got an internal node with frequency %d", node.Freq())
		}
		if node.Sym() != sym {
			t.Errorf("wrong symbol:\n\texpect: %q\n\tactual: %q", rune(sym), rune(node.Sym()))
		}
		if node.Freq() != freq {
			t.Errorf("wrong frequency:\n\texpect: %d\n\tactual: %d", freq, node.Freq())
		}
	}
	expectInternal := func(node *Node, freq uint32) {
		t.Helper()
		if node.IsLeaf() {
			t.Fatalf("expected an internal node, got leaf %q", rune(node.Sym()))
		}
		if node.Freq() != freq {
			t.Errorf("wrong frequency:\n\texpect: %d\n\tactual: %d", freq, node.Freq())
		}
	}

	expectInternal(root, 10)
	expectLeaf(root.Left(), 'a', 4)
	expectInternal(root.Right(), 6)
	expectLeaf(root.Right().Left(), 'b', 3)
	expectInternal(root.Right().Right(), 3)
	expectLeaf(root.Right().Right().Left(), 'd', 1)
	expectLeaf(root.Right().Right().Right(), 'c', 2)
}

func TestBuild_Determinism(t *testing.T) {
	const input = "the quick brown fox jumps over the lazy dog"

	first, err := Build(CountFrequencies(input))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for i := 0; i < 8; i++ {
		again, err := Build(CountFrequencies(input))
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		expectShape := first.String()
		actualShape := again.String()
		if expectShape != actualShape {
			t.Fatalf("wrong shape:\n\texpect: %s\n\tactual: %s", expectShape, actualShape)
		}
	}
}

func TestBuild_FrequencyConservation(t *testing.T) {
	const input = "the quick brown fox jumps over the lazy dog"

	root, err := Build(CountFrequencies(input))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var runeCount uint32
	for range input {
		runeCount++
	}
	if root.Freq() != runeCount {
		t.Errorf("wrong root frequency:\n\texpect: %d\n\tactual: %d", runeCount, root.Freq())
	}

	root.Walk(func(node *Node, depth int) {
		if node.IsLeaf() {
			return
		}
		sum := node.Left().Freq() + node.Right().Freq()
		if node.Freq() != sum {
			t.Errorf("internal node frequency %d does not equal children sum %d", node.Freq(), sum)
		}
	})
}

func TestBuild_LeafCompleteness(t *testing.T) {
	const input = "mississippi river"

	root, err := Build(CountFrequencies(input))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expect := Frequencies(input)
	actual := make(map[Symbol]uint32, len(expect))
	root.Walk(func(node *Node, depth int) {
		if !node.IsLeaf() {
			return
		}
		if _, dup := actual[node.Sym()]; dup {
			t.Errorf("symbol %q appears in more than one leaf", rune(node.Sym()))
		}
		actual[node.Sym()] = node.Freq()
	})

	if len(actual) != len(expect) {
		t.Errorf("wrong number of leaves:\n\texpect: %d\n\tactual: %d", len(expect), len(actual))
	}
	for symbol, expectFreq := range expect {
		actualFreq, found := actual[symbol]
		if !found {
			t.Errorf("symbol %q is missing from the tree", rune(symbol))
			continue
		}
		if actualFreq != expectFreq {
			t.Errorf("wrong frequency for symbol %q:\n\texpect: %d\n\tactual: %d", rune(symbol), expectFreq, actualFreq)
		}
	}
}
