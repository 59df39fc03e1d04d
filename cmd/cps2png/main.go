// Command cps2png decodes a Kyrandia CPS image into a PNG.
//
// Usage:
//
//	cps2png [options] <input.cps> <output.png>
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
		fmt.Fprintf(os.Stderr, "cps2png: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("cps2png", flag.ContinueOnError)
	width := fs.Int("w", envcfg.Width(0), "width override (0 = use header default)")
	height := fs.Int("h", envcfg.Height(0), "height override (0 = use header default)")
	override := fs.Bool("force-size", false, "use -w/-h even if they disagree with the header's declared image size")
	transparent := fs.Int("transparent", envcfg.TransparentIndex(-1), "palette index to render fully transparent (-1 = none)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("missing arguments\nUsage: cps2png [options] <input.cps> <output.png>")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	img, err := container.DecodeCPS(data, container.DecodeCPSOptions{
		Width:             *width,
		Height:            *height,
		AllowSizeOverride: *override,
	})
	if err != nil {
		return fmt.Errorf("decoding cps: %w", err)
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
