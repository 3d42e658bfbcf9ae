package pixel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/roboticgen/display/draw"
)

// Image is a mutable image that can be cleared or filled in one call. It is implemented by
// all image formats in this package.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by most image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func (p *Buffer) fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

// MonoImage is a 1-bit per pixel monochrome image stored as horizontal rows, most significant
// bit first. Each row is padded to a whole number of bytes.
//
// This is the layout of most bitmap converters (MONO_HLSB), and is used for static images
// that get composed onto a display.
type MonoImage struct {
	Buffer
}

func NewMonoImage(w, h int) *MonoImage {
	stride := ((w + 7) & ^7) / 8 // round up to whole bytes
	return &MonoImage{
		Buffer: makeBuffer(w, h, stride, stride*h),
	}
}

// NewMonoImageFrom wraps existing packed pixel data, without copying.
func NewMonoImageFrom(pix []byte, w, h int) (*MonoImage, error) {
	stride := ((w + 7) & ^7) / 8
	if w < 0 || h < 0 || len(pix) < stride*h {
		return nil, fmt.Errorf("pixel: %d bytes is too short for a %dx%d mono image", len(pix), w, h)
	}
	return &MonoImage{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    pix,
			Stride: stride,
		},
	}, nil
}

func (p *MonoImage) ColorModel() color.Model {
	return MonoModel
}

func (p *MonoImage) PixOffset(x, y int) int {
	return y*p.Stride + x/8
}

func (p *MonoImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.MonoAt(x, y)
}

// MonoAt returns the pixel at (x, y), Off when out of bounds.
func (p *MonoImage) MonoAt(x, y int) Mono {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Off
	}
	return Mono{On: p.Pix[p.PixOffset(x, y)]&(0x80>>uint(x&7)) != 0}
}

func (p *MonoImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	index := p.PixOffset(x, y)
	if monoModel(c).(Mono).On {
		p.Pix[index] |= 0x80 >> uint(x&7)
	} else {
		p.Pix[index] &^= 0x80 >> uint(x&7)
	}
}

func (p *MonoImage) Fill(c color.Color) {
	p.fill(c)
}

// MonoVerticalLSBImage is a 1-bit per pixel monochrome image.
//
// The image is split in horizontal bands (pages) of 8 rows. Each byte holds one column of a
// band, the least significant bit is the top row. This is the GDDRAM layout of SSD1xxx OLED
// controllers.
type MonoVerticalLSBImage struct {
	Buffer
}

func NewMonoVerticalLSBImage(w, h int) *MonoVerticalLSBImage {
	bands := ((h + 7) & ^7) / 8 // round up to whole bytes
	return &MonoVerticalLSBImage{
		Buffer: makeBuffer(w, h, w, bands*w),
	}
}

func (p *MonoVerticalLSBImage) ColorModel() color.Model {
	return MonoModel
}

// PixOffset returns the byte index and bit mask of the pixel at (x, y).
func (p *MonoVerticalLSBImage) PixOffset(x, y int) (int, byte) {
	return y/8*p.Stride + x, byte(1) << uint(y&7)
}

func (p *MonoVerticalLSBImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return p.MonoAt(x, y)
}

// MonoAt returns the pixel at (x, y), Off when out of bounds.
func (p *MonoVerticalLSBImage) MonoAt(x, y int) Mono {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return Off
	}
	pos, bit := p.PixOffset(x, y)
	return Mono{On: p.Pix[pos]&bit != 0}
}

func (p *MonoVerticalLSBImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.SetMono(x, y, monoModel(c).(Mono))
}

// SetMono sets the pixel at (x, y) without color conversion. Out of bounds pixels are ignored.
func (p *MonoVerticalLSBImage) SetMono(x, y int, c Mono) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	pos, bit := p.PixOffset(x, y)
	if c.On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *MonoVerticalLSBImage) Fill(c color.Color) {
	p.fill(c)
}

// Interface checks.
var (
	_ Image = (*MonoImage)(nil)
	_ Image = (*MonoVerticalLSBImage)(nil)
)
