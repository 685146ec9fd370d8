// Command radixtree-build reads a sorted list of uint32 Morton codes (one per
// line, decimal or 0x-prefixed hex) and builds a radix binary tree over them,
// printing summary statistics and, with -out, writing the built tree to a file.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/arborix/radixtree/internal/radixtree"
	"github.com/arborix/radixtree/internal/radixtree/binsink"
	"github.com/arborix/radixtree/internal/radixtreeio"
)

func main() {
	var (
		bits           = flag.Uint("bits", 30, "number of significant code bits, 1..=32")
		maxLeafSize    = flag.Uint("max-leaf-size", 4, "largest code range kept as a single leaf")
		keepSingletons = flag.Bool("keep-singletons", false, "emit explicit singleton-forwarder nodes instead of bit-skipping")
		input          = flag.String("codes", "-", "file of sorted uint32 codes, one per line ('-' for stdin)")
		output         = flag.String("out", "", "optional path to write the built tree as JSON (radixtreeio format)")
		verbose        = flag.Bool("v", false, "log one line per driver level")
	)
	flag.Parse()

	codes, err := readCodes(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "radixtree-build: %v\n", err)
		os.Exit(1)
	}

	cfg := radixtree.Config{
		Bits:           uint32(*bits),
		MaxLeafSize:    uint32(*maxLeafSize),
		KeepSingletons: *keepSingletons,
	}
	if *verbose {
		cfg.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	sink := binsink.New()
	stats, err := radixtree.Build(context.Background(), codes, cfg, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "radixtree-build: build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("codes=%d nodes=%d leaves=%d\n", len(codes), stats.TotalNodes, stats.TotalLeaves)

	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "radixtree-build: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		meta := radixtreeio.Meta{
			Bits:           cfg.Bits,
			MaxLeafSize:    cfg.MaxLeafSize,
			KeepSingletons: cfg.KeepSingletons,
			CodeCount:      len(codes),
		}
		if err := radixtreeio.Save(f, sink, stats.TotalNodes, stats.TotalLeaves, meta); err != nil {
			fmt.Fprintf(os.Stderr, "radixtree-build: save: %v\n", err)
			os.Exit(1)
		}
	}
}

func readCodes(path string) ([]uint32, error) {
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var codes []uint32
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("parse code %q: %w", line, err)
		}
		codes = append(codes, uint32(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}
