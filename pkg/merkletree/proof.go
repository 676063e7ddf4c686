package merkletree

import "github.com/juanpablocruz/nary-merkle/pkg/merkletree/errs"

// ProofEntry describes the level-j parent of the subject's ancestor at
// level j: the digests of that parent's other children, in their original
// left-to-right order, plus the position the ancestor occupies among all
// of the parent's children.
type ProofEntry struct {
	Siblings []Digest
	Position int
}

// Proof is the minimum data needed, alongside a leaf block, to recompute a
// tree's root. It is self-contained: verifying it requires no reference to
// the originating Tree.
type Proof struct {
	LeafIndex int
	K         int
	Path      []ProofEntry
}

// Prove walks leafIndex up to the root, recording per-level sibling
// digests and the subject's position at each level. len(proof.Path)
// always equals the tree's depth.
func (t *Tree) Prove(leafIndex int) (Proof, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return Proof{}, errs.ErrTreeDestroyed
	}
	d := t.data
	if leafIndex < 0 || leafIndex >= len(d.leaves) {
		return Proof{}, errs.ErrIndexOutOfRange
	}
	return proveAt(d, leafIndex), nil
}

// ProveFirstMatching invokes predicate on each leaf's payload in ascending
// leaf_index order and returns a proof for the first match, or
// errs.ErrNotFound if none match. predicate must be pure.
func (t *Tree) ProveFirstMatching(predicate func(payload []byte) bool) (Proof, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.data == nil {
		return Proof{}, errs.ErrTreeDestroyed
	}
	d := t.data
	for i, id := range d.leaves {
		if predicate(d.arena[id].payload) {
			return proveAt(d, i), nil
		}
	}
	return Proof{}, errs.ErrNotFound
}

func proveAt(d *treeData, leafIndex int) Proof {
	path := make([]ProofEntry, 0, d.depth)
	node := d.leaves[leafIndex]
	for {
		an := &d.arena[node]
		if an.parent == noNode {
			break
		}
		parent := &d.arena[an.parent]
		siblings := make([]Digest, 0, len(parent.children)-1)
		for i, c := range parent.children {
			if i == an.indexInParent {
				continue
			}
			siblings = append(siblings, d.arena[c].digest)
		}
		path = append(path, ProofEntry{Siblings: siblings, Position: an.indexInParent})
		node = an.parent
	}
	return Proof{LeafIndex: leafIndex, K: d.k, Path: path}
}
