// Package scenedat parses Kyra's scene ".DAT" metadata: a draw-layer table,
// a list of sprite definitions, and a list of animation blocks, each
// carrying its own small opcode script. It is a structured read over a
// fixed and mostly-padded layout, with no codec content.
package scenedat

import (
	"encoding/binary"
	"errors"
)

// ErrTooShort is returned when data is smaller than the fixed prologue this
// format requires.
var ErrTooShort = errors.New("scenedat: file shorter than required prologue")

const (
	opBodyStart     = 0xFF81
	opBodyUnknown   = 0xFF82
	opBodyEnd       = 0xFF83
	opSpriteDefs    = 0xFF84
	opSpriteDefsEnd = 0xFF85
	opAnimStart     = 0xFF86
	opAnimEnd       = 0xFF87
)

// SpriteDef is one sprite-definition record from a 0xFF84 block.
type SpriteDef struct {
	ID   uint16 `json:"id"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
}

// Anim is one animation block from a 0xFF86 record.
type Anim struct {
	Disable  bool     `json:"disable"`
	Unknown2 uint16   `json:"unknown2"`
	DrawY    uint16   `json:"drawY"`
	DefaultX uint16   `json:"defaultX"`
	DefaultY uint16   `json:"defaultY"`
	Width    uint8    `json:"width"`
	Height   uint8    `json:"height"`
	Sprite   uint16   `json:"sprite"`
	FlipX    bool     `json:"flipX"`
	Width2   uint8    `json:"width2"`
	Height2  uint8    `json:"height2"`
	Unknown1 bool     `json:"unknown1"`
	Play     bool     `json:"play"`
	Script   []uint16 `json:"script"`
}

// SceneMeta is a fully decoded scene .DAT file.
type SceneMeta struct {
	Format         string      `json:"format"`
	Scene          string      `json:"scene"`
	DrawLayerTable [8]byte     `json:"drawLayerTable"`
	SpriteDefs     []SpriteDef `json:"spriteDefs"`
	Anims          []Anim      `json:"anims"`
}

// Decode parses a scene .DAT payload. name is used only to populate the
// Scene field (conventionally the file's base name, uppercased, matching
// the reference tool's behavior).
func Decode(data []byte, name string) (*SceneMeta, error) {
	if len(data) < 0x15 {
		return nil, ErrTooShort
	}

	m := &SceneMeta{
		Format: "kyra-scene-meta",
		Scene:  name,
	}
	copy(m.DrawLayerTable[:], data[0x0D:0x15])

	sprites, anims := parseBody(data)
	m.SpriteDefs = sprites
	m.Anims = anims
	return m, nil
}

// parseBody walks the 2-byte opcode stream starting at 0x6B, a little-
// endian u16 body length, then the opcode stream itself.
func parseBody(data []byte) ([]SpriteDef, []Anim) {
	if len(data) <= 0x6D {
		return nil, nil
	}

	length := int(binary.LittleEndian.Uint16(data[0x6B:0x6D]))
	end := 0x6B + 2 + length
	if end > len(data) {
		end = len(data)
	}

	var sprites []SpriteDef
	var anims []Anim

	pos := 0x6B + 2
	for pos+2 <= end {
		op := binary.LittleEndian.Uint16(data[pos : pos+2])
		switch op {
		case opBodyEnd:
			return sprites, anims
		case opBodyStart, opBodyUnknown:
			pos += 2
		case opSpriteDefs:
			pos += 2
			pos = parseSpriteDefs(data, pos, end, &sprites)
		case opAnimStart:
			var a Anim
			a, pos = parseAnimBlock(data, pos, end)
			anims = append(anims, a)
		default:
			pos += 2
		}
	}

	return sprites, anims
}

func parseSpriteDefs(data []byte, pos, end int, out *[]SpriteDef) int {
	for pos+2 <= end {
		id := binary.LittleEndian.Uint16(data[pos : pos+2])
		if id == opSpriteDefsEnd {
			return pos + 2
		}
		if pos+10 > end {
			return end
		}
		x := int(binary.LittleEndian.Uint16(data[pos+2:pos+4])) * 8
		y := int(binary.LittleEndian.Uint16(data[pos+4 : pos+6]))
		w := int(binary.LittleEndian.Uint16(data[pos+6:pos+8])) * 8
		h := int(binary.LittleEndian.Uint16(data[pos+8 : pos+10]))
		*out = append(*out, SpriteDef{ID: id, X: x, Y: y, W: w, H: h})
		pos += 10
	}
	return pos
}

// read16padded reads a little-endian u16 at pos and reports the cursor
// advanced by 4 bytes, matching the animation block's padded field layout.
func read16padded(data []byte, pos int) (uint16, int) {
	if pos+2 > len(data) {
		return 0, pos + 4
	}
	return binary.LittleEndian.Uint16(data[pos : pos+2]), pos + 4
}

func read8padded(data []byte, pos int) (uint8, int) {
	if pos >= len(data) {
		return 0, pos + 4
	}
	return data[pos], pos + 4
}

func parseAnimBlock(data []byte, start, end int) (Anim, int) {
	var a Anim
	pos := start + 4 // skip the opcode word itself (padded)

	var disable, flipX, unknown1, play uint16
	disable, pos = read16padded(data, pos)
	a.Unknown2, pos = read16padded(data, pos)
	a.DrawY, pos = read16padded(data, pos)
	pos += 4 // sceneUnk2, unused
	a.DefaultX, pos = read16padded(data, pos)
	a.DefaultY, pos = read16padded(data, pos)
	a.Width, pos = read8padded(data, pos)
	a.Height, pos = read8padded(data, pos)
	a.Sprite, pos = read16padded(data, pos)
	flipX, pos = read16padded(data, pos)
	a.Width2, pos = read8padded(data, pos)
	a.Height2, pos = read8padded(data, pos)
	unknown1, pos = read16padded(data, pos)

	a.Disable = disable != 0
	a.FlipX = flipX != 0
	a.Unknown1 = unknown1 != 0

	if pos+2 <= len(data) {
		play = binary.LittleEndian.Uint16(data[pos : pos+2])
	}
	a.Play = play != 0
	pos += 2

	for pos+2 <= end {
		op := binary.LittleEndian.Uint16(data[pos : pos+2])
		a.Script = append(a.Script, op)
		pos += 2
		if op == opAnimEnd {
			break
		}
	}

	return a, pos
}
