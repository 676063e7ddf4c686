// Command merkle-bench times a single tree build for a given input size and
// branching factor and prints a one-line report, tagged with a UUID so
// repeated runs can be correlated in a log.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/juanpablocruz/nary-merkle/pkg/merkletree"
)

func main() {
	n := flag.Int("n", 10000, "number of leaves")
	k := flag.Int("k", 2, "branching factor")
	blockSize := flag.Int("block-size", 64, "bytes per synthetic block")
	flag.Parse()

	if *n < 1 || *k < 2 || *blockSize < 1 {
		log.Fatalf("invalid flags: n=%d k=%d block-size=%d", *n, *k, *blockSize)
	}

	runID := uuid.New().String()
	blocks := syntheticBlocks(*n, *blockSize)

	start := time.Now()
	tree, err := merkletree.Build(blocks, *k)
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalf("run %s: build failed: %v", runID, err)
	}
	defer tree.Destroy()

	depth, _ := tree.Depth()
	root, _ := tree.RootDigest()
	fmt.Printf("run=%s n=%d k=%d depth=%d elapsed=%s root=%x\n",
		runID, *n, *k, depth, elapsed, root[:8])
}

func syntheticBlocks(n, size int) [][]byte {
	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		b := make([]byte, size)
		copy(b, fmt.Sprintf("block-%d", i))
		out[i] = b
	}
	return out
}
