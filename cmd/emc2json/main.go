// Command emc2json statically traces every function of an EMC2 script and
// writes every discovered draw/item-placement call as JSON.
//
// Usage:
//
//	emc2json [options] <input.emc> <output.json>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kyrarebuild/kyraconv/internal/emc"
	"github.com/kyrarebuild/kyraconv/internal/jsonio"
	"github.com/kyrarebuild/kyraconv/internal/vm"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "emc2json: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("emc2json", flag.ContinueOnError)
	stepLimit := fs.Int("step-limit", vm.DefaultStepLimit, "per-function instruction budget for the static trace")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("missing arguments\nUsage: emc2json [options] <input.emc> <output.json>")
	}

	raw, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	p, err := emc.Load(raw)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	result := emc.Extract(p, *stepLimit)

	out, err := os.Create(fs.Arg(1))
	if err != nil {
		return err
	}
	if err := jsonio.Write(out, result); err != nil {
		out.Close()
		os.Remove(fs.Arg(1))
		return fmt.Errorf("writing json: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %s (%d scene anim shapes, %d scene shapes)\n",
		fs.Arg(1), len(result.SceneAnimShapes), len(result.SceneShapes))
	return nil
}
