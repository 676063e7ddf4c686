package merkletree_test

import (
	"sync"
	"testing"

	"github.com/juanpablocruz/nary-merkle/pkg/merkletree"
)

// Test_ConcurrentReads_AreConsistent checks that interleaved root-digest
// and proof queries from many goroutines against one tree all agree with
// a serial run.
func Test_ConcurrentReads_AreConsistent(t *testing.T) {
	strs := make([]string, 0, 37)
	for i := 0; i < 37; i++ {
		strs = append(strs, string(rune('a'+i%26))+string(rune('0'+i%10)))
	}
	tr, err := merkletree.Build(blocks(strs...), 4)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	wantRoot, err := tr.RootDigest()
	if err != nil {
		t.Fatalf("RootDigest: %v", err)
	}
	wantProofs := make([]merkletree.Proof, len(strs))
	for i := range strs {
		p, err := tr.Prove(i)
		if err != nil {
			t.Fatalf("Prove(%d): %v", i, err)
		}
		wantProofs[i] = p
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < len(strs); i++ {
				idx := (i + g) % len(strs)

				root, err := tr.RootDigest()
				if err != nil || root != wantRoot {
					t.Errorf("goroutine %d: RootDigest = %v, %v", g, root, err)
					return
				}

				proof, err := tr.Prove(idx)
				if err != nil {
					t.Errorf("goroutine %d: Prove(%d) = %v", g, idx, err)
					return
				}
				if !proofsEqual(proof, wantProofs[idx]) {
					t.Errorf("goroutine %d: Prove(%d) differs from serial run", g, idx)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

func proofsEqual(a, b merkletree.Proof) bool {
	if a.LeafIndex != b.LeafIndex || a.K != b.K || len(a.Path) != len(b.Path) {
		return false
	}
	for i := range a.Path {
		if a.Path[i].Position != b.Path[i].Position || len(a.Path[i].Siblings) != len(b.Path[i].Siblings) {
			return false
		}
		for j := range a.Path[i].Siblings {
			if a.Path[i].Siblings[j] != b.Path[i].Siblings[j] {
				return false
			}
		}
	}
	return true
}

// Test_Destroy_AfterConcurrentReads_InvalidatesTree runs several concurrent
// readers to completion, then destroys the tree and checks that a later
// read fails.
func Test_Destroy_AfterConcurrentReads_InvalidatesTree(t *testing.T) {
	tr, err := merkletree.Build(blocks("a", "b", "c", "d"), 2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, _ = tr.Prove(i % 4)
		}(i)
	}
	close(start)
	wg.Wait()

	tr.Destroy()
	if _, err := tr.Prove(0); err == nil {
		t.Fatalf("Prove after Destroy succeeded, want an error")
	}
}
