// Package merkletree builds n-ary Merkle trees over ordered byte blocks and
// produces/verifies inclusion proofs against them.
package merkletree
