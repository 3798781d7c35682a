// Package hufftree builds Huffman code trees from symbol frequency counts,
// using the classic greedy merge: repeatedly combine the two lowest-frequency
// nodes until a single root remains.  The resulting tree is optimal for
// prefix-free codes over the given frequency distribution.
//
// The tree itself is the product.  Deriving a symbol-to-bits code table,
// encoding, and decoding are left to consumers that walk the tree.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//     Codes", Proceedings of the IRE, September 1952
//
package hufftree
