// Command msc2png decodes a Kyrandia MSC playfield mask into a PNG.
//
// Usage:
//
//	msc2png [options] <input.msc> <output.png>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kyrarebuild/kyraconv/internal/container"
	"github.com/kyrarebuild/kyraconv/internal/envcfg"
	"github.com/kyrarebuild/kyraconv/internal/imageio"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "msc2png: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("msc2png", flag.ContinueOnError)
	transparent := fs.Int("transparent", envcfg.TransparentIndex(-1), "palette index to render fully transparent (-1 = none)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("missing arguments\nUsage: msc2png [options] <input.msc> <output.png>")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	img, err := container.DecodeMSC(data)
	if err != nil {
		return fmt.Errorf("decoding msc: %w", err)
	}

	out, err := os.Create(fs.Arg(1))
	if err != nil {
		return err
	}
	if err := imageio.WritePNG(out, img.Width, img.Height, img.Pixels, img.Palette, *transparent); err != nil {
		out.Close()
		os.Remove(fs.Arg(1))
		return fmt.Errorf("writing png: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Decoded %s -> %s (%dx%d)\n", fs.Arg(0), fs.Arg(1), img.Width, img.Height)
	return nil
}
