// Package framebuffer implements the in-memory bitmap of a monochrome page addressed display.
//
// Pixels are stored one bit per pixel, in horizontal bands (pages) of 8 rows. Each byte holds
// the 8 vertically stacked pixels of one column of a page, the least significant bit being the
// top row. This is the exact memory layout of SSD1306 class controllers, so the store can be
// streamed to the device as is.
//
// All drawing operations clip silently: pixels outside of the framebuffer are ignored.
package framebuffer

import (
	"image"
	"image/color"

	"github.com/roboticgen/display/draw"
	"github.com/roboticgen/display/pixel"
)

// FrameBuffer is a 1-bit per pixel page organized bitmap.
type FrameBuffer struct {
	*pixel.MonoVerticalLSBImage
}

// New returns a cleared framebuffer of w by h pixels.
func New(w, h int) *FrameBuffer {
	return &FrameBuffer{
		MonoVerticalLSBImage: pixel.NewMonoVerticalLSBImage(w, h),
	}
}

// Width in pixels.
func (fb *FrameBuffer) Width() int { return fb.Rect.Dx() }

// Height in pixels.
func (fb *FrameBuffer) Height() int { return fb.Rect.Dy() }

// Pages is the number of 8 row bands.
func (fb *FrameBuffer) Pages() int { return (fb.Rect.Dy() + 7) / 8 }

// Bytes returns the page ordered pixel store. The slice is shared with the framebuffer.
func (fb *FrameBuffer) Bytes() []byte {
	return fb.Pix
}

// SetPixel sets the pixel at (x, y). Coordinates outside of the framebuffer are ignored.
func (fb *FrameBuffer) SetPixel(x, y int, c color.Color) {
	fb.SetMono(x, y, pixel.MonoModel.Convert(c).(pixel.Mono))
}

// Pixel returns the pixel at (x, y), or Off outside of the framebuffer.
func (fb *FrameBuffer) Pixel(x, y int) pixel.Mono {
	return fb.MonoAt(x, y)
}

// Scroll shifts the content by dx columns and dy rows. Pixels shifted out are dropped and the
// vacated area is cleared.
func (fb *FrameBuffer) Scroll(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	var (
		w   = fb.Width()
		h   = fb.Height()
		src = make([]byte, len(fb.Pix))
		old = &pixel.MonoVerticalLSBImage{Buffer: fb.Buffer}
	)
	copy(src, fb.Pix)
	old.Pix = src
	fb.Clear()
	for y := 0; y < h; y++ {
		sy := y - dy
		if sy < 0 || sy >= h {
			continue
		}
		for x := 0; x < w; x++ {
			sx := x - dx
			if sx < 0 || sx >= w {
				continue
			}
			if old.MonoAt(sx, sy).On {
				fb.SetMono(x, y, pixel.On)
			}
		}
	}
}

// Blit copies src onto the framebuffer with the top-left corner of src at (x, y). Every source
// pixel overwrites the destination (no blending), source pixels falling outside of the
// framebuffer are clipped.
func (fb *FrameBuffer) Blit(src image.Image, x, y int) {
	fb.blit(src, x, y, nil)
}

// BlitKey is like Blit, but source pixels of the key color are transparent.
func (fb *FrameBuffer) BlitKey(src image.Image, x, y int, key color.Color) {
	k := pixel.MonoModel.Convert(key).(pixel.Mono)
	fb.blit(src, x, y, &k)
}

func (fb *FrameBuffer) blit(src image.Image, x, y int, key *pixel.Mono) {
	var (
		sr = src.Bounds()
		// Destination rectangle, clipped to the framebuffer.
		dr = sr.Sub(sr.Min).Add(image.Pt(x, y)).Intersect(fb.Rect)
	)
	if dr.Empty() {
		return
	}

	at := func(sx, sy int) pixel.Mono {
		return pixel.MonoModel.Convert(src.At(sx, sy)).(pixel.Mono)
	}
	if m, ok := src.(*pixel.MonoImage); ok {
		at = m.MonoAt
	}

	for dy := dr.Min.Y; dy < dr.Max.Y; dy++ {
		sy := sr.Min.Y + dy - y
		for dx := dr.Min.X; dx < dr.Max.X; dx++ {
			c := at(sr.Min.X+dx-x, sy)
			if key != nil && c == *key {
				continue
			}
			fb.SetMono(dx, dy, c)
		}
	}
}

// HLine draws a horizontal line of w pixels starting at (x, y).
func (fb *FrameBuffer) HLine(x, y, w int, c color.Color) {
	draw.HorizontalLine(fb, x, y, w, c)
}

// VLine draws a vertical line of h pixels starting at (x, y).
func (fb *FrameBuffer) VLine(x, y, h int, c color.Color) {
	draw.VerticalLine(fb, x, y, h, c)
}

// Line draws a line from (x1, y1) to (x2, y2), both ends included.
func (fb *FrameBuffer) Line(x1, y1, x2, y2 int, c color.Color) {
	draw.Line(fb, image.Pt(x1, y1), image.Pt(x2, y2), c)
}

// DrawRect draws the outline of a w by h rectangle.
func (fb *FrameBuffer) DrawRect(x, y, w, h int, c color.Color) {
	draw.Rectangle(fb, image.Rect(x, y, x+w, y+h), c)
}

// FillRect draws a filled w by h rectangle.
func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	draw.Box(fb, image.Rect(x, y, x+w, y+h), c)
}

// RoundRect draws the outline of a rectangle with rounded corners.
func (fb *FrameBuffer) RoundRect(x, y, w, h, r int, c color.Color) {
	draw.RoundedRectangle(fb, image.Rect(x, y, x+w, y+h), r, c)
}

// FillRoundRect draws a filled rectangle with rounded corners.
func (fb *FrameBuffer) FillRoundRect(x, y, w, h, r int, c color.Color) {
	draw.RoundedBox(fb, image.Rect(x, y, x+w, y+h), r, c)
}

var _ draw.Image = (*FrameBuffer)(nil)
