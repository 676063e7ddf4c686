package merkletree

// arenaNode is one node of the tree. Leaves own a payload and have no
// children; interior nodes own children and no payload. parent is noNode
// iff the node is the root.
type arenaNode struct {
	digest        Digest
	payload       []byte
	children      []nodeID
	parent        nodeID
	indexInParent int
}

func (n *arenaNode) isLeaf() bool {
	return len(n.children) == 0
}

// treeData is the node arena: the sole owner of every node it contains,
// addressed by dense integer ids rather than pointers so parent and child
// links never form a Go-level reference cycle.
type treeData struct {
	arena  []arenaNode
	leaves []nodeID
	root   nodeID
	k      int
	depth  int
}

func (d *treeData) allocLeaf(payload []byte, h Hasher) nodeID {
	id := nodeID(len(d.arena))
	d.arena = append(d.arena, arenaNode{
		digest:  h.HashLeaf(payload),
		payload: payload,
		parent:  noNode,
	})
	return id
}

func (d *treeData) allocParent(children []nodeID, h Hasher) nodeID {
	digests := make([]Digest, len(children))
	for i, c := range children {
		digests[i] = d.arena[c].digest
	}
	id := nodeID(len(d.arena))
	d.arena = append(d.arena, arenaNode{
		digest:   h.HashChildren(digests),
		children: children,
		parent:   noNode,
	})
	for i, c := range children {
		d.arena[c].parent = id
		d.arena[c].indexInParent = i
	}
	return id
}
