package merkletree

import (
	"fmt"

	"github.com/juanpablocruz/nary-merkle/pkg/merkletree/errs"
)

// BuilderOption configures a Builder, following the WithXxx(...) closure
// pattern the rest of the corpus uses for constructor configuration
// (pkg/node.NodeOption is the direct precedent).
type BuilderOption func(*Builder)

// WithHasher selects the digest primitive the Builder uses for both leaf
// and internal-node hashing.
func WithHasher(h Hasher) BuilderOption {
	return func(b *Builder) { b.hasher = h }
}

// WithBlake3 is shorthand for WithHasher(Blake3()).
func WithBlake3() BuilderOption {
	return func(b *Builder) { b.hasher = Blake3() }
}

// Builder drives level-synchronous tree construction.
type Builder struct {
	hasher Hasher
}

// NewBuilder returns a Builder using SHA256 unless overridden by opts.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{hasher: SHA256()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build constructs a Tree from blocks with branching factor k: a leaf pass
// followed by a level loop that groups up to k siblings
// per parent (the trailing group of a non-multiple level is short, never
// padded), until one node remains and is installed as root.
//
// Preconditions: len(blocks) >= 1, k >= 2, every block non-empty. Violating
// any of them yields errs.ErrBadArgument with no partial tree observable.
func (b *Builder) Build(blocks [][]byte, k int) (tree *Tree, err error) {
	defer func() {
		if r := recover(); r != nil {
			tree = nil
			err = fmt.Errorf("%w: %v", errs.ErrAllocationFailed, r)
		}
	}()

	if len(blocks) == 0 || k < 2 {
		return nil, errs.ErrBadArgument
	}
	for _, blk := range blocks {
		if len(blk) == 0 {
			return nil, errs.ErrBadArgument
		}
	}

	d := &treeData{k: k, root: noNode}
	d.arena = make([]arenaNode, 0, 2*len(blocks))
	d.leaves = make([]nodeID, 0, len(blocks))

	q := newNodeQueue(len(blocks))
	for _, blk := range blocks {
		// The caller's buffer is not assumed to outlive the tree.
		payload := append([]byte(nil), blk...)
		id := d.allocLeaf(payload, b.hasher)
		d.leaves = append(d.leaves, id)
		q.push(id)
	}

	for q.len() > 1 {
		d.depth++
		levelLen := q.len()
		parentsThisLevel := (levelLen + k - 1) / k
		remaining := levelLen
		for i := 0; i < parentsThisLevel; i++ {
			// Never reach past this level into parents already pushed for
			// the next one: the trailing group gets only what is left.
			n := k
			if remaining < k {
				n = remaining
			}
			group := q.drain(n)
			remaining -= len(group)
			id := d.allocParent(group, b.hasher)
			q.push(id)
		}
	}

	root, ok := q.pop()
	if !ok {
		// Unreachable: len(blocks) >= 1 guarantees at least one leaf queued.
		return nil, errs.ErrBadArgument
	}
	d.root = root

	return &Tree{data: d}, nil
}

// Build is a package-level convenience using the default SHA256 Builder.
func Build(blocks [][]byte, k int) (*Tree, error) {
	return NewBuilder().Build(blocks, k)
}
