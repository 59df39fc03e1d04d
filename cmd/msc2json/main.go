// Command msc2json decodes a Kyrandia MSC playfield mask to its raw
// geometry, header fields, and decoded pixel indices as JSON.
//
// Usage:
//
//	msc2json <input.msc> <output.json>
package main

import (
	"fmt"
	"os"

	"github.com/kyrarebuild/kyraconv/internal/container"
	"github.com/kyrarebuild/kyraconv/internal/jsonio"
)

type mscPayload struct {
	Format   string `json:"format"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	CompType uint8  `json:"compType"`
	ImgSize  uint32 `json:"imgSize"`
	PalSize  uint16 `json:"palSize"`
	Pixels   []int  `json:"pixels"`
}

func toIntSlice(b []byte) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "msc2json: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("missing arguments\nUsage: msc2json <input.msc> <output.json>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	img, err := container.DecodeMSC(data)
	if err != nil {
		return fmt.Errorf("decoding msc: %w", err)
	}

	payload := mscPayload{
		Format:   "kyra-msc",
		Width:    img.Width,
		Height:   img.Height,
		CompType: img.Header.CompType,
		ImgSize:  img.Header.ImgSize,
		PalSize:  img.Header.PalSize,
		Pixels:   toIntSlice(img.Pixels),
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	if err := jsonio.Write(out, payload); err != nil {
		out.Close()
		os.Remove(args[1])
		return fmt.Errorf("writing json: %w", err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Wrote %s (%dx%d)\n", args[1], payload.Width, payload.Height)
	return nil
}
