// Command wsa2png decodes every frame of a Kyrandia WSA animation into a
// sequence of numbered PNGs in an output directory.
//
// Usage:
//
//	wsa2png [options] <input.wsa> <output-dir>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kyrarebuild/kyraconv/internal/container"
	"github.com/kyrarebuild/kyraconv/internal/envcfg"
	"github.com/kyrarebuild/kyraconv/internal/imageio"
	"github.com/kyrarebuild/kyraconv/internal/palette"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "wsa2png: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("wsa2png", flag.ContinueOnError)
	transparent := fs.Int("transparent", envcfg.TransparentIndex(-1), "palette index to render fully transparent (-1 = none)")
	palettePath := fs.String("palette", envcfg.PalettePath(), "external palette file to borrow when the animation carries none of its own")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("missing arguments\nUsage: wsa2png [options] <input.wsa> <output-dir>")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	w, err := container.ParseWSA(data)
	if err != nil {
		return fmt.Errorf("parsing wsa: %w", err)
	}

	pal := w.Palette
	if len(pal) == 0 && *palettePath != "" {
		pal, err = loadExternalPalette(*palettePath)
		if err != nil {
			return fmt.Errorf("loading external palette: %w", err)
		}
	}

	outDir := fs.Arg(1)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	frames := w.Frames()
	for i, pix := range frames {
		name := filepath.Join(outDir, fmt.Sprintf("frame_%03d.png", i))
		if err := writeFrame(name, w.Width, w.Height, pix, pal, *transparent); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Decoded %s -> %s (%d frames)\n", fs.Arg(0), outDir, len(frames))
	return nil
}

func writeFrame(path string, width, height int, pixels []byte, pal []palette.RGB, transparent int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := imageio.WritePNG(out, width, height, pixels, pal, transparent); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

// loadExternalPalette reads a raw VGA palette blob (up to 256 RGB triplets),
// as found in a standalone .PAL file. The whole file is decoded as triplets
// from its first byte; no container header is skipped.
func loadExternalPalette(path string) ([]palette.RGB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return palette.Decode(data), nil
}
