// Command scenedat2json decodes a Kyrandia scene ".DAT" metadata file
// (sprite definitions and animation blocks) to JSON.
//
// Usage:
//
//	scenedat2json <input.dat> <output.json>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kyrarebuild/kyraconv/internal/jsonio"
	"github.com/kyrarebuild/kyraconv/internal/scenedat"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "scenedat2json: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments\nUsage: scenedat2json <input.dat> <output.json>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	base := filepath.Base(args[0])
	name := strings.ToUpper(strings.TrimSuffix(base, filepath.Ext(base)))

	meta, err := scenedat.Decode(data, name)
	if err != nil {
		return fmt.Errorf("decoding scene metadata: %w", err)
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	if err := jsonio.Write(out, meta); err != nil {
		out.Close()
		os.Remove(args[1])
		return fmt.Errorf("writing json: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %s (%d sprites, %d anims)\n", args[1], len(meta.SpriteDefs), len(meta.Anims))
	return nil
}
