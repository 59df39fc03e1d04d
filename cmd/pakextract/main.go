// Command pakextract lists or extracts the contents of a Kyrandia PAK
// archive.
//
// Usage:
//
//	pakextract [options] <input.pak> <output-dir>
//	pakextract --list <input.pak>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kyrarebuild/kyraconv/internal/pak"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "pakextract: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("pakextract", flag.ContinueOnError)
	list := fs.Bool("list", false, "print entry names and sizes instead of extracting")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input\nUsage: pakextract [options] <input.pak> [output-dir]")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	entries, err := pak.ParseDirectory(data)
	if err != nil {
		return fmt.Errorf("parsing directory: %w", err)
	}

	if *list {
		for _, e := range entries {
			fmt.Printf("%-32s %8d\n", e.Name, e.Size)
		}
		return nil
	}

	if fs.NArg() < 2 {
		return fmt.Errorf("missing output directory\nUsage: pakextract <input.pak> <output-dir>")
	}
	outDir := fs.Arg(1)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, e := range entries {
		payload := pak.Payload(data, e)
		if err := os.WriteFile(filepath.Join(outDir, e.Name), payload, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", e.Name, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Extracted %s -> %s (%d entries)\n", fs.Arg(0), outDir, len(entries))
	return nil
}
