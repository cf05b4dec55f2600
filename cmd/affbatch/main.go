package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"armff/internal/batch"
	"armff/internal/config"
	"armff/internal/posture"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	inFile := flag.String("in", "", "Batch posture JSON file (required)")
	outputDir := flag.String("output", "", "Output directory (default: aff-results)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	render := flag.Bool("render", false, "Render a posture diagram per evaluation")
	testN := flag.Int("test", 0, "Evaluate only first N postures for testing")

	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -in batch file is required.")
		os.Exit(1)
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{OutputDir: *outputDir, Workers: *workers})
	if *render {
		cfg.RenderDiagrams = true
	}

	postures, err := posture.LoadBatch(*inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading postures: %v\n", err)
		os.Exit(1)
	}

	if *testN > 0 && *testN < len(postures) {
		postures = postures[:*testN]
	}

	if len(postures) == 0 {
		fmt.Println("No postures to evaluate.")
		os.Exit(0)
	}

	fmt.Printf("Arm Force Field batch evaluation\n")
	fmt.Printf("Postures: %d, Workers: %d\n", len(postures), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Model:          cfg.Model(),
		OutputDir:      cfg.OutputDir,
		RenderDiagrams: cfg.RenderDiagrams,
		DiagramSize:    cfg.DiagramSize,
		Supersample:    cfg.Supersample,
		Workers:        cfg.Workers,
	}, postures)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Evaluated: %d/%d\n", success, len(postures))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "results.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Results: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
