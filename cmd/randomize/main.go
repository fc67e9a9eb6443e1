package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/logicrando/pkg/fill"
	"github.com/dshills/logicrando/pkg/invariants"
	"github.com/dshills/logicrando/pkg/options"
	"github.com/dshills/logicrando/pkg/pfile"
	"github.com/dshills/logicrando/pkg/rando"
	"github.com/dshills/logicrando/pkg/world"
)

const appVersion = "0.1.0"

var (
	configPath = flag.String("config", "", "Path to YAML options file (required)")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: json, svg, or all")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from the options file (0 = use options seed)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("randomize version %s\n", appVersion)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// nolint:gocyclo // Complexity acceptable: CLI argument handling and output formatting
func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading options from %s\n", *configPath)
	}

	opts, err := options.LoadOptions(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load options: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", opts.Seed, *seedFlag)
		}
		opts.Seed = *seedFlag
	}

	if *verbose {
		fmt.Printf("Using seed: %d\n", opts.Seed)
		fmt.Printf("Dungeon pool: %q\n", opts.DungeonPool)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w, err := world.Build(buildFixtureCatalog())
	if err != nil {
		return fmt.Errorf("failed to build world: %w", err)
	}

	cfg := &rando.Config{
		Seed:    opts.Seed,
		World:   w,
		Options: opts,
		FillConfig: fill.Config{
			MustBePlaced: fixtureMustBePlaced(),
		},
		DemiseTarget: "Skyloft/Demise",
		Permalink:    fmt.Sprintf("randomize-%d", opts.Seed),
		Version:      appVersion,
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Generating...")
	}

	r := rando.New()
	result, err := r.Generate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	elapsed := time.Since(start)
	if *verbose {
		fmt.Printf("Generation completed in %v\n", elapsed)
		printStats(result)
	}

	baseName := fmt.Sprintf("placement_%d", opts.Seed)

	if *format == "json" || *format == "all" {
		if err := exportJSON(result, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(result, baseName); err != nil {
			return err
		}
	}

	status := "FAILED"
	if result.Invariants.Passed {
		status = "PASSED"
	}
	fmt.Printf("Successfully generated placement (seed=%d) in %v — invariants %s\n", opts.Seed, elapsed, status)
	if !result.Invariants.Passed {
		os.Exit(1)
	}
	return nil
}

func exportJSON(result *rando.Result, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	data, err := pfile.Encode(result.PlacementFile)
	if err != nil {
		return fmt.Errorf("failed to encode placement file: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	if *verbose {
		fmt.Printf("  Wrote %d bytes\n", len(data))
	}
	return nil
}

func exportSVG(result *rando.Result, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}
	svgOpts := pfile.DefaultSVGOptions()
	svgOpts.Title = fmt.Sprintf("Reachability & Placement (%s)", result.PlacementFile.Permalink)
	if err := pfile.SaveSVGToFile(result.Logic, filename, svgOpts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	if *verbose {
		info, _ := os.Stat(filename)
		fmt.Printf("  Wrote %d bytes\n", info.Size())
	}
	return nil
}

func printStats(result *rando.Result) {
	fmt.Println("\nPlacement Statistics:")
	fmt.Printf("  Items placed: %d\n", len(result.PlacementFile.ItemLocations))
	fmt.Printf("  Entrance connections: %d\n", len(result.PlacementFile.EntranceConns))
	fmt.Printf("  Trial connections: %d\n", len(result.PlacementFile.TrialConns))
	fmt.Printf("  Required dungeons: %v\n", result.PlacementFile.RequiredDungeons)
	fmt.Printf("  Spheres of the Sword: %v\n", result.SotSItems)
	fmt.Printf("  Useful items: %v\n", result.UsefulItems)
	if result.Barren != nil {
		fmt.Printf("  Barren regions: %v\n", result.Barren.Barren)
	}
	fmt.Printf("  Playthrough spheres: %d\n", len(result.Spheres))
	fmt.Println(invariants.Summary(result.Invariants))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: randomize -config <options.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'randomize -help' for detailed help")
}

func printHelp() {
	fmt.Printf("randomize version %s\n\n", appVersion)
	fmt.Println("A command-line tool for generating logic-aware randomizer placements.")
	fmt.Println("\nUsage:")
	fmt.Println("  randomize -config <options.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML options file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, svg, or all (default: json)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from the options file (0 = use options seed)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  randomize -config options.yaml")
	fmt.Println("  randomize -config options.yaml -seed 12345 -format all -output ./out")
}
