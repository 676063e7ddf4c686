// Command merkle-viz builds an n-ary Merkle tree over a set of files (or
// newline-delimited stdin records), prints its shape, and demonstrates
// generating and verifying an inclusion proof for one of the leaves.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	golog "github.com/ipfs/go-log/v2"

	"github.com/juanpablocruz/nary-merkle/pkg/merkletree"
)

var logger = golog.Logger("merkle-viz")

func main() {
	k := flag.Int("k", 2, "branching factor (k >= 2)")
	proveIndex := flag.Int("prove", 0, "leaf index to generate and verify a proof for")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		golog.SetAllLoggers(golog.LevelDebug)
	} else {
		golog.SetAllLoggers(golog.LevelInfo)
	}

	blocks, err := readBlocks(flag.Args())
	if err != nil {
		logger.Fatalf("reading input: %v", err)
	}

	logger.Infof("building tree over %d blocks with k=%d", len(blocks), *k)
	tree, err := merkletree.Build(blocks, *k)
	if err != nil {
		logger.Fatalf("build: %v", err)
	}
	defer tree.Destroy()

	printShape(tree)

	if *proveIndex < 0 || *proveIndex >= len(blocks) {
		return
	}
	demonstrateProof(tree, blocks, *proveIndex)
}

// readBlocks treats each command-line argument as a path to read whole,
// falling back to newline-delimited stdin records when no paths are given.
func readBlocks(paths []string) ([][]byte, error) {
	if len(paths) == 0 {
		return readStdinLines()
	}
	out := make([][]byte, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		out = append(out, data)
	}
	return out, nil
}

func readStdinLines() ([][]byte, error) {
	scanner := bufio.NewScanner(os.Stdin)
	var out [][]byte
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		out = append(out, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no input blocks (pass file paths or pipe newline-delimited records)")
	}
	return out, nil
}

func printShape(tree *merkletree.Tree) {
	root, _ := tree.RootDigest()
	depth, _ := tree.Depth()
	leafCount, _ := tree.LeafCount()
	k, _ := tree.K()

	fmt.Println("Merkle Tree")
	fmt.Println("===========")
	fmt.Printf("k:          %d\n", k)
	fmt.Printf("leaves:     %d\n", leafCount)
	fmt.Printf("depth:      %d\n", depth)
	fmt.Printf("root:       %s\n", hex.EncodeToString(root[:]))
}

func demonstrateProof(tree *merkletree.Tree, blocks [][]byte, index int) {
	proof, err := tree.Prove(index)
	if err != nil {
		logger.Fatalf("prove(%d): %v", index, err)
	}
	root, _ := tree.RootDigest()

	ok, err := merkletree.VerifyDefault(proof, root, blocks[index])
	if err != nil {
		logger.Fatalf("verify(%d): %v", index, err)
	}

	fmt.Println()
	fmt.Printf("proof for leaf %d: %d sibling level(s)\n", index, len(proof.Path))
	fmt.Printf("verify: %v\n", ok)
	logger.Debugf("proof path for leaf %d: %+v", index, proof.Path)
}
