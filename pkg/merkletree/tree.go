package merkletree

import (
	"sync"

	"github.com/juanpablocruz/nary-merkle/pkg/merkletree/errs"
)

// NodeHandle addresses a node within a Tree. It is only meaningful for the
// Tree that issued it and becomes invalid once that Tree is destroyed.
type NodeHandle int

// Tree wraps a completed node arena behind a reader/writer discipline: any
// number of readers (digest queries, proof generation) may run
// concurrently, but none may run concurrently with Destroy. Construction
// itself happens before any Tree value exists, so Build needs no lock —
// the builder is the sole writer and no reader can observe a Tree until
// Build returns it.
//
// Every exported method takes RLock or Lock directly rather than accepting
// a closure, the idiom this codebase uses for "many readers, one writer"
// structures.
type Tree struct {
	mu   sync.RWMutex
	data *treeData
}

// Destroy consumes the tree: after it returns, every NodeHandle issued by
// this Tree is invalid and all further operations return
// errs.ErrTreeDestroyed. A second call is a no-op (P7).
func (t *Tree) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data = nil
}

// K returns the tree's branching factor.
func (t *Tree) K() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return 0, errs.ErrTreeDestroyed
	}
	return t.data.k, nil
}

// Depth returns the number of non-leaf levels collapsed during construction.
func (t *Tree) Depth() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return 0, errs.ErrTreeDestroyed
	}
	return t.data.depth, nil
}

// LeafCount returns the number of leaves in the tree.
func (t *Tree) LeafCount() (int, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return 0, errs.ErrTreeDestroyed
	}
	return len(t.data.leaves), nil
}

// Root returns the handle of the tree's unique root node.
func (t *Tree) Root() (NodeHandle, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return 0, errs.ErrTreeDestroyed
	}
	return NodeHandle(t.data.root), nil
}

// RootDigest returns the digest of the root node.
func (t *Tree) RootDigest() (Digest, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return Digest{}, errs.ErrTreeDestroyed
	}
	return t.data.arena[t.data.root].digest, nil
}

// Leaves returns the handles of every leaf, in insertion order; leaf i
// corresponds to input block i.
func (t *Tree) Leaves() ([]NodeHandle, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return nil, errs.ErrTreeDestroyed
	}
	out := make([]NodeHandle, len(t.data.leaves))
	for i, id := range t.data.leaves {
		out[i] = NodeHandle(id)
	}
	return out, nil
}

// DigestOf returns the digest stored at handle.
func (t *Tree) DigestOf(h NodeHandle) (Digest, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return Digest{}, errs.ErrTreeDestroyed
	}
	if !t.data.validHandle(h) {
		return Digest{}, errs.ErrBadArgument
	}
	return t.data.arena[h].digest, nil
}

// ParentOf returns the handle's parent, or ok==false if h is the root.
func (t *Tree) ParentOf(h NodeHandle) (handle NodeHandle, ok bool, err error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return 0, false, errs.ErrTreeDestroyed
	}
	if !t.data.validHandle(h) {
		return 0, false, errs.ErrBadArgument
	}
	p := t.data.arena[h].parent
	if p == noNode {
		return 0, false, nil
	}
	return NodeHandle(p), true, nil
}

// IndexInParent returns the position h occupies within its parent's
// children, or ok==false if h is the root.
func (t *Tree) IndexInParent(h NodeHandle) (index int, ok bool, err error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return 0, false, errs.ErrTreeDestroyed
	}
	if !t.data.validHandle(h) {
		return 0, false, errs.ErrBadArgument
	}
	an := &t.data.arena[h]
	if an.parent == noNode {
		return 0, false, nil
	}
	return an.indexInParent, true, nil
}

// ChildrenOf returns h's children, in order; empty for a leaf.
func (t *Tree) ChildrenOf(h NodeHandle) ([]NodeHandle, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return nil, errs.ErrTreeDestroyed
	}
	if !t.data.validHandle(h) {
		return nil, errs.ErrBadArgument
	}
	children := t.data.arena[h].children
	out := make([]NodeHandle, len(children))
	for i, c := range children {
		out[i] = NodeHandle(c)
	}
	return out, nil
}

func (d *treeData) validHandle(h NodeHandle) bool {
	return h >= 0 && int(h) < len(d.arena)
}
