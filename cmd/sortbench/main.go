package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"nickandperla.net/sortbench"
)

var toolConfigPath = flag.String("config", "", "Optional TOML config for the benchmark. Defaults to running every algorithm")

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ltime)

	toolConfig, err := sortbench.LoadConfig(*toolConfigPath)
	if err != nil {
		log.Fatalf("Unable to load sortbench config: %v", err)
	}

	sortbench.InitRNG(toolConfig.Seed)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	bench, err := sortbench.NewBench(toolConfig, out)
	if err != nil {
		log.Fatalf("Failed to create bench: %v", err)
	}

	log.Printf("Benchmarking %d algorithms on %d element sequences", len(bench.Algorithms), sortbench.N)
	table, err := bench.Run()
	if err != nil {
		out.Flush()
		log.Fatalf("Benchmark failed: %v", err)
	}

	if err := sortbench.WriteTable(out, table); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}
