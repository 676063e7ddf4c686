package merkletree

import (
	"crypto/sha256"
	"hash"

	"lukechampine.com/blake3"
)

// DigestSize is H, the fixed digest width in bytes.
const DigestSize = 32

// Digest is a fixed-width opaque hash output. Two digests are equal iff
// their bytes are equal; digests are values, freely copyable.
type Digest [DigestSize]byte

const (
	leafPrefix     byte = 0x00
	childrenPrefix byte = 0x01
)

// Hasher supplies the two pure operations the digest primitive needs:
// hashing a leaf's payload, and hashing a parent's ordered list of child
// digests.
type Hasher interface {
	HashLeaf(payload []byte) Digest
	HashChildren(children []Digest) Digest
}

type genericHasher struct {
	newHash         func() hash.Hash
	domainSeparated bool
}

func (g genericHasher) HashLeaf(payload []byte) Digest {
	h := g.newHash()
	if g.domainSeparated {
		h.Write([]byte{leafPrefix})
	}
	h.Write(payload)
	return sum(h)
}

func (g genericHasher) HashChildren(children []Digest) Digest {
	h := g.newHash()
	if g.domainSeparated {
		h.Write([]byte{childrenPrefix})
	}
	for _, c := range children {
		h.Write(c[:])
	}
	return sum(h)
}

func sum(h hash.Hash) Digest {
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// SHA256 returns the default Hasher. It applies no domain separation
// between leaf and internal nodes.
func SHA256() Hasher {
	return genericHasher{newHash: func() hash.Hash { return sha256.New() }}
}

// Blake3 returns a Hasher backed by BLAKE3 with a 32-byte output, an
// alternative digest primitive with the same contract as SHA256.
func Blake3() Hasher {
	return genericHasher{newHash: func() hash.Hash { return blake3.New(32, nil) }}
}

// DomainSeparated wraps a hash constructor with the 0x00/0x01 leaf/internal
// prefix discipline, useful in adversarial settings where a leaf payload
// could otherwise be crafted to collide with a concatenation of child
// digests. It is not the default Hasher.
func DomainSeparated(newHash func() hash.Hash) Hasher {
	return genericHasher{newHash: newHash, domainSeparated: true}
}
