// Package errs holds the merkletree error taxonomy as plain sentinel errors,
// matched with errors.Is the way the rest of the maep packages do.
package errs

import "errors"

var (
	// ErrBadArgument means the caller violated an input contract: an empty
	// block, k < 2, an empty block sequence, or an out-of-range handle.
	ErrBadArgument = errors.New("merkletree: bad argument")

	// ErrIndexOutOfRange means leaf_index >= leaf_count in Prove.
	ErrIndexOutOfRange = errors.New("merkletree: leaf index out of range")

	// ErrNotFound means no leaf satisfied a predicate in ProveFirstMatching.
	ErrNotFound = errors.New("merkletree: no leaf matched predicate")

	// ErrAllocationFailed means the runtime could not allocate memory for a
	// node, a payload copy, or a proof.
	ErrAllocationFailed = errors.New("merkletree: allocation failed")

	// ErrBadProof means Verify observed a structurally inconsistent proof.
	ErrBadProof = errors.New("merkletree: malformed proof")

	// ErrTreeDestroyed means an operation was attempted on a tree that has
	// already been consumed by Destroy.
	ErrTreeDestroyed = errors.New("merkletree: tree already destroyed")
)
