package framebuffer

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/roboticgen/display/pixel"
)

// Text draws s on a single line with the built-in 8x8 font, (x, y) being the top-left corner
// of the first character. Only the set pixels of each glyph are drawn. Characters running off
// the edges are clipped. Line breaks are drawn as '?' like other unsupported runes.
func (fb *FrameBuffer) Text(s string, x, y int, c color.Color) {
	w, h := fb.Width(), fb.Height()
	if x >= w || y >= h || y <= -8 {
		return
	}

	runes := []rune(s)
	if x < 0 {
		skip := -x / 8
		if skip >= len(runes) {
			return
		}
		runes = runes[skip:]
		x += skip * 8
	}
	if n := (w - x + 7) / 8; len(runes) > n {
		runes = runes[:n]
	}
	for i, r := range runes {
		if r == '\n' || r == '\r' {
			runes[i] = '?'
		}
	}
	fb.TextFont(Font8x8, string(runes), x, y+7, c)
}

// TextFont draws s with a tinyfont font, y being the baseline of the first line. A '\n' or '\r'
// starts a new line. Nothing is drawn when (x, y) does not fit in an int16.
func (fb *FrameBuffer) TextFont(f tinyfont.Fonter, s string, x, y int, c color.Color) {
	if x != int(int16(x)) || y != int(int16(y)) {
		return
	}
	tinyfont.WriteLine(fb.Displayer(), f, int16(x), int16(y), s, toRGBA(c))
}

// DrawString draws s with a font face, (x, y) being the start of the baseline.
func (fb *FrameBuffer) DrawString(face font.Face, s string, x, y int, c color.Color) {
	d := font.Drawer{
		Dst:  fb,
		Src:  image.NewUniform(pixel.MonoModel.Convert(c)),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// LoadFace loads a TrueType font file as a face of the given size in points (at 72 DPI, so one
// point is one pixel).
func LoadFace(name string, size float64) (font.Face, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	face, err := ParseFace(b, size)
	if err != nil {
		return nil, fmt.Errorf("framebuffer: font %s: %w", name, err)
	}
	return face, nil
}

// ParseFace parses TrueType font data as a face of the given size in points.
func ParseFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Displayer returns an adapter exposing the framebuffer as a TinyGo display, so the TinyGo
// drawing and font libraries can render into it. Display is a no-op: pushing pixels to the
// hardware is up to the controller.
func (fb *FrameBuffer) Displayer() drivers.Displayer {
	return displayer{fb}
}

type displayer struct {
	fb *FrameBuffer
}

func (d displayer) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetPixel(int(x), int(y), c)
}

func (d displayer) Display() error {
	return nil
}

func toRGBA(c color.Color) color.RGBA {
	if pixel.MonoModel.Convert(c).(pixel.Mono).On {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return color.RGBA{A: 0xff}
}
