// Command emctext2json extracts the dialogue/menu strings packed into an
// EMC2 script's TEXT chunk as JSON.
//
// Usage:
//
//	emctext2json <input.emc> <output.json>
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kyrarebuild/kyraconv/internal/emctext"
	"github.com/kyrarebuild/kyraconv/internal/jsonio"
)

type payload struct {
	Format  string   `json:"format"`
	Source  string   `json:"source"`
	Strings []string `json:"strings"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "emctext2json: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments\nUsage: emctext2json <input.emc> <output.json>")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	strs := emctext.Extract(raw)
	p := payload{
		Format:  "kyra-emc-text",
		Source:  filepath.Base(args[0]),
		Strings: strs,
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	if err := jsonio.Write(out, p); err != nil {
		out.Close()
		os.Remove(args[1])
		return fmt.Errorf("writing json: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %s (%d strings)\n", args[1], len(strs))
	return nil
}
