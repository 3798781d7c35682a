package hufftree

// Symbol represents a symbol in the input alphabet.  Symbols are rune-valued;
// negative symbols are not valid.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned, e.g. when asking an internal node for its symbol.
const InvalidSymbol = Symbol(-1)
