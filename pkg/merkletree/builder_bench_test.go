package merkletree_test

import (
	"fmt"
	"testing"

	"github.com/juanpablocruz/nary-merkle/pkg/merkletree"
)

func genBlocks(n int) [][]byte {
	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		out[i] = []byte(fmt.Sprintf("block-%d", i))
	}
	return out
}

func Benchmark_Build(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		in := genBlocks(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := merkletree.Build(in, 2); err != nil {
					b.Fatalf("Build: %v", err)
				}
			}
		})
	}
}

func Benchmark_Prove(b *testing.B) {
	in := genBlocks(4096)
	tr, err := merkletree.Build(in, 2)
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tr.Prove(i % len(in)); err != nil {
			b.Fatalf("Prove: %v", err)
		}
	}
}
