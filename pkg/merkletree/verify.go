package merkletree

import "github.com/juanpablocruz/nary-merkle/pkg/merkletree/errs"

// Verify reconstructs a root from proof and leafBytes using hasher, and
// reports whether it matches expectedRoot. It is independent of any Tree:
// only the proof, the expected root, and the leaf bytes are needed.
//
// hasher must be the same Hasher (or an equivalent one) the originating
// tree was built with — the digest primitive is a parameter of the system,
// not a constant, so Verify takes it explicitly.
//
// The (bool, error) return separates two distinct outcomes: (false, nil) is
// the negative answer "invalid" (a sound proof that just doesn't match),
// while a non-nil error means the request itself was malformed
// (ErrBadArgument/ErrBadProof), not a verdict on the proof's validity.
func Verify(proof Proof, expectedRoot Digest, leafBytes []byte, hasher Hasher) (bool, error) {
	if proof.K < 2 || len(leafBytes) == 0 {
		return false, errs.ErrBadArgument
	}

	acc := hasher.HashLeaf(leafBytes)
	for _, entry := range proof.Path {
		if entry.Position < 0 || entry.Position > len(entry.Siblings) || len(entry.Siblings) > proof.K-1 {
			return false, errs.ErrBadProof
		}
		reconstructed := make([]Digest, 0, len(entry.Siblings)+1)
		reconstructed = append(reconstructed, entry.Siblings[:entry.Position]...)
		reconstructed = append(reconstructed, acc)
		reconstructed = append(reconstructed, entry.Siblings[entry.Position:]...)
		acc = hasher.HashChildren(reconstructed)
	}

	return acc == expectedRoot, nil
}

// VerifyDefault is Verify using the default SHA256 Hasher.
func VerifyDefault(proof Proof, expectedRoot Digest, leafBytes []byte) (bool, error) {
	return Verify(proof, expectedRoot, leafBytes, SHA256())
}
