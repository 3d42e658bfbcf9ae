package framebuffer

import (
	"image"
	"math/bits"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/roboticgen/display/pixel"
)

func popCount(p []byte) (n int) {
	for _, b := range p {
		n += bits.OnesCount8(b)
	}
	return
}

func TestNew(t *testing.T) {
	tests := []struct {
		w, h, pages, size int
	}{
		{128, 64, 8, 1024},
		{128, 32, 4, 512},
		{64, 48, 6, 384},
		{96, 16, 2, 192},
	}
	for _, test := range tests {
		t.Run(image.Pt(test.w, test.h).String(), func(it *testing.T) {
			fb := New(test.w, test.h)
			if v := fb.Pages(); v != test.pages {
				it.Errorf("expected %d pages, got %d", test.pages, v)
			}
			if v := len(fb.Bytes()); v != test.size {
				it.Errorf("expected %d bytes, got %d", test.size, v)
			}
			if v := popCount(fb.Bytes()); v != 0 {
				it.Errorf("expected a cleared framebuffer, got %d pixels set", v)
			}
		})
	}
}

func TestSetPixelMapping(t *testing.T) {
	fb := New(128, 64)
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			fb.Fill(pixel.Off)
			fb.SetPixel(x, y, pixel.On)
			if n := popCount(fb.Bytes()); n != 1 {
				t.Fatalf("pixel (%d,%d) set %d bits", x, y, n)
			}
			if b := fb.Bytes()[y/8*128+x]; b != 1<<uint(y%8) {
				t.Fatalf("pixel (%d,%d) set byte %#02x at %d", x, y, b, y/8*128+x)
			}
			if !fb.Pixel(x, y).On {
				t.Fatalf("pixel (%d,%d) does not read back", x, y)
			}
		}
	}
}

func TestSetPixelIsolation(t *testing.T) {
	const w, h = 16, 16
	fb := New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fb.Fill(pixel.Off)
			fb.SetPixel(x, y, pixel.On)
			for yy := 0; yy < h; yy++ {
				for xx := 0; xx < w; xx++ {
					if want := xx == x && yy == y; fb.Pixel(xx, yy).On != want {
						t.Fatalf("after setting (%d,%d), pixel (%d,%d) is %s", x, y, xx, yy, fb.Pixel(xx, yy))
					}
				}
			}
			fb.SetPixel(x, y, pixel.Off)
			if n := popCount(fb.Bytes()); n != 0 {
				t.Fatalf("clearing (%d,%d) left %d bits set", x, y, n)
			}
		}
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	fb := New(32, 16)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {32, 0}, {0, 16}, {1000, 1000}} {
		fb.SetPixel(p.X, p.Y, pixel.On)
		if fb.Pixel(p.X, p.Y).On {
			t.Errorf("pixel %s reads On", p)
		}
	}
	if n := popCount(fb.Bytes()); n != 0 {
		t.Errorf("expected no pixels set, got %d", n)
	}
}

func TestFill(t *testing.T) {
	fb := New(128, 32)
	fb.Fill(pixel.On)
	for _, b := range fb.Bytes() {
		if b != 0xff {
			t.Fatalf("expected all bits set, got %#02x", b)
		}
	}
	fb.Fill(pixel.Off)
	for y := 0; y < 32; y++ {
		for x := 0; x < 128; x++ {
			if fb.Pixel(x, y).On {
				t.Fatalf("pixel (%d,%d) is set after Fill(Off)", x, y)
			}
		}
	}
	fb.Fill(pixel.Bit(7))
	if !fb.Pixel(5, 5).On {
		t.Error("expected a non-zero fill to set pixels")
	}
}

func TestScroll(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   []image.Point
	}{
		{"none", 0, 0, []image.Point{{2, 3}, {9, 12}}},
		{"right", 1, 0, []image.Point{{3, 3}, {10, 12}}},
		{"left", -3, 0, []image.Point{{6, 12}}},
		{"down", 0, 5, []image.Point{{2, 8}}},
		{"up", 0, -3, []image.Point{{2, 0}, {9, 9}}},
		{"diagonal", 2, 2, []image.Point{{4, 5}, {11, 14}}},
		{"out", 0, 16, nil},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			fb := New(16, 16)
			fb.SetPixel(2, 3, pixel.On)
			fb.SetPixel(9, 12, pixel.On)
			fb.Scroll(test.dx, test.dy)
			if n := popCount(fb.Bytes()); n != len(test.want) {
				it.Errorf("expected %d pixels set, got %d", len(test.want), n)
			}
			for _, p := range test.want {
				if !fb.Pixel(p.X, p.Y).On {
					it.Errorf("expected pixel %s to be set", p)
				}
			}
		})
	}
}

func testBitmap(t *testing.T) *pixel.MonoImage {
	t.Helper()
	// 10x3, a border with a hole in the middle row.
	src, err := pixel.NewMonoImageFrom([]byte{
		0xff, 0xc0,
		0x80, 0x40,
		0xff, 0xc0,
	}, 10, 3)
	if err != nil {
		t.Fatal(err)
	}
	return src
}

func TestBlit(t *testing.T) {
	src := testBitmap(t)

	t.Run("inside", func(it *testing.T) {
		fb := New(32, 16)
		fb.Fill(pixel.On)
		fb.Blit(src, 4, 7)
		for y := 0; y < 16; y++ {
			for x := 0; x < 32; x++ {
				want := true
				if x >= 4 && x < 14 && y >= 7 && y < 10 {
					want = src.MonoAt(x-4, y-7).On
				}
				if v := fb.Pixel(x, y); v.On != want {
					it.Fatalf("pixel (%d,%d) is %s, expected %t", x, y, v, want)
				}
			}
		}
	})

	t.Run("clipped", func(it *testing.T) {
		fb := New(8, 8)
		fb.Blit(src, 3, 6)
		// Rows 0 and 1 of the source are visible, columns 0-4.
		if n := popCount(fb.Bytes()); n != 5+1 {
			it.Errorf("expected 6 pixels set, got %d", n)
		}
		for x := 3; x < 8; x++ {
			if !fb.Pixel(x, 6).On {
				it.Errorf("expected pixel (%d,6) to be set", x)
			}
		}
		if !fb.Pixel(3, 7).On || fb.Pixel(4, 7).On {
			it.Error("unexpected second row")
		}
	})

	t.Run("negative", func(it *testing.T) {
		fb := New(8, 8)
		fb.Blit(src, -9, -2)
		if n := popCount(fb.Bytes()); n != 1 || !fb.Pixel(0, 0).On {
			it.Errorf("expected only pixel (0,0) set, got %d pixels", n)
		}
	})

	t.Run("outside", func(it *testing.T) {
		fb := New(8, 8)
		fb.Blit(src, 8, 0)
		fb.Blit(src, 0, -3)
		if n := popCount(fb.Bytes()); n != 0 {
			it.Errorf("expected no pixels set, got %d", n)
		}
	})

	t.Run("generic-image", func(it *testing.T) {
		img := image.NewGray(image.Rect(5, 5, 7, 7))
		img.Pix[0] = 0xff
		fb := New(8, 8)
		fb.Fill(pixel.On)
		fb.Blit(img, 1, 1)
		if !fb.Pixel(1, 1).On || fb.Pixel(2, 1).On || fb.Pixel(1, 2).On || fb.Pixel(2, 2).On {
			it.Error("expected a 2x2 opaque copy of the source")
		}
	})
}

func TestBlitKey(t *testing.T) {
	fb := New(16, 8)
	fb.Fill(pixel.On)
	fb.BlitKey(testBitmap(t), 0, 0, pixel.Off)
	if n := popCount(fb.Bytes()); n != 16*8 {
		t.Errorf("expected Off pixels to be transparent, %d pixels set", n)
	}
	fb.BlitKey(testBitmap(t), 0, 0, pixel.On)
	if !fb.Pixel(0, 0).On || fb.Pixel(1, 1).On {
		t.Error("expected On pixels to be transparent")
	}
}

func TestText(t *testing.T) {
	t.Run("glyph", func(it *testing.T) {
		fb := New(16, 16)
		fb.Text("A", 3, 4, pixel.On)
		bitmap := font8x8Glyphs['A'-0x20]
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				want := false
				if x >= 3 && x < 11 && y >= 4 && y < 12 {
					want = bitmap[y-4]&(1<<uint(x-3)) != 0
				}
				if v := fb.Pixel(x, y); v.On != want {
					it.Fatalf("pixel (%d,%d) is %s, expected %t", x, y, v, want)
				}
			}
		}
	})

	t.Run("advance", func(it *testing.T) {
		a, b := New(24, 8), New(24, 8)
		a.Text("!!", 0, 0, pixel.On)
		b.Text("!", 0, 0, pixel.On)
		b.Text("!", 8, 0, pixel.On)
		for i := range a.Pix {
			if a.Pix[i] != b.Pix[i] {
				it.Fatalf("byte %d differs: %#02x != %#02x", i, a.Pix[i], b.Pix[i])
			}
		}
	})

	t.Run("clipped", func(it *testing.T) {
		fb := New(12, 8)
		fb.Text("MMM", 0, 0, pixel.On)
		full := New(24, 8)
		full.Text("MMM", 0, 0, pixel.On)
		for y := 0; y < 8; y++ {
			for x := 0; x < 12; x++ {
				if fb.Pixel(x, y) != full.Pixel(x, y) {
					it.Fatalf("pixel (%d,%d) differs from unclipped rendering", x, y)
				}
			}
		}
	})

	t.Run("unknown", func(it *testing.T) {
		a, b := New(8, 8), New(8, 8)
		a.Text("é", 0, 0, pixel.On)
		b.Text("?", 0, 0, pixel.On)
		for i := range a.Pix {
			if a.Pix[i] != b.Pix[i] {
				it.Fatal("expected unknown runes to render as '?'")
			}
		}
	})

	t.Run("far", func(it *testing.T) {
		for _, test := range []struct {
			s    string
			x, y int
		}{
			{"A", 65536, 0},
			{"A", 0, 65536},
			{"A", -65536, 0},
			{"A", 0, -65536},
			{"A", 1 << 30, 1 << 30},
			{strings.Repeat(" ", 8192) + "A", 0, 0},
			{strings.Repeat("A", 8192), 128, 0},
		} {
			fb := New(128, 64)
			fb.Text(test.s, test.x, test.y, pixel.On)
			if n := popCount(fb.Bytes()); n != 0 {
				it.Errorf("%d runes at (%d,%d): expected nothing drawn, got %d pixels", len(test.s), test.x, test.y, n)
			}
		}
	})

	t.Run("left", func(it *testing.T) {
		fb := New(16, 8)
		fb.Text(strings.Repeat(" ", 8192)+"AB", -8192*8-3, 0, pixel.On)
		wide := New(24, 8)
		wide.Text("AB", 5, 0, pixel.On)
		for y := 0; y < 8; y++ {
			for x := 0; x < 16; x++ {
				if fb.Pixel(x, y) != wide.Pixel(x+8, y) {
					it.Fatalf("pixel (%d,%d) differs from unclipped rendering", x, y)
				}
			}
		}
	})

	t.Run("line break", func(it *testing.T) {
		a, b := New(24, 16), New(24, 16)
		a.Text("A\nB", 0, 0, pixel.On)
		b.Text("A?B", 0, 0, pixel.On)
		for i := range a.Pix {
			if a.Pix[i] != b.Pix[i] {
				it.Fatal("expected line breaks to render as '?' on the same line")
			}
		}
	})

	t.Run("off", func(it *testing.T) {
		fb := New(8, 8)
		fb.Fill(pixel.On)
		fb.Text("_", 0, 0, pixel.Off)
		for x := 0; x < 8; x++ {
			if fb.Pixel(x, 7).On {
				it.Errorf("expected pixel (%d,7) to be cleared", x)
			}
		}
		if !fb.Pixel(0, 0).On {
			it.Error("expected background pixels to be left alone")
		}
	})
}

func TestDrawString(t *testing.T) {
	fb := New(64, 16)
	fb.DrawString(basicfont.Face7x13, "Hi", 0, 11, pixel.On)
	n := popCount(fb.Bytes())
	if n == 0 {
		t.Fatal("expected the string to set pixels")
	}
	for y := 0; y < 16; y++ {
		for x := 14; x < 64; x++ {
			if fb.Pixel(x, y).On {
				t.Fatalf("pixel (%d,%d) set beyond the two glyphs", x, y)
			}
		}
	}
}

func TestLoadFace(t *testing.T) {
	name := filepath.Join(t.TempDir(), "goregular.ttf")
	if err := os.WriteFile(name, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	face, err := LoadFace(name, 16)
	if err != nil {
		t.Fatal(err)
	}
	if h := face.Metrics().Height.Ceil(); h < 14 || h > 24 {
		t.Errorf("expected a face about 16 pixels high, got %d", h)
	}

	fb := New(64, 32)
	fb.DrawString(face, "Go", 0, 20, pixel.On)
	if popCount(fb.Bytes()) == 0 {
		t.Error("expected text drawn with the TrueType face")
	}

	if _, err := LoadFace(filepath.Join(t.TempDir(), "missing.ttf"), 16); err == nil {
		t.Error("expected error loading a missing font")
	}
	if _, err := ParseFace([]byte("not a font"), 16); err == nil {
		t.Error("expected error parsing garbage")
	}
}

func TestShapes(t *testing.T) {
	fb := New(16, 16)
	fb.HLine(0, 0, 16, pixel.On)
	fb.VLine(0, 0, 16, pixel.On)
	if n := popCount(fb.Bytes()); n != 31 {
		t.Errorf("expected 31 pixels set, got %d", n)
	}
	fb.Fill(pixel.Off)
	fb.DrawRect(2, 2, 4, 3, pixel.On)
	if n := popCount(fb.Bytes()); n != 10 {
		t.Errorf("expected 10 pixels set, got %d", n)
	}
	fb.FillRect(2, 2, 4, 3, pixel.On)
	if n := popCount(fb.Bytes()); n != 12 {
		t.Errorf("expected 12 pixels set, got %d", n)
	}
	fb.Fill(pixel.Off)
	fb.Line(0, 0, 15, 15, pixel.On)
	for i := 0; i < 16; i++ {
		if !fb.Pixel(i, i).On {
			t.Errorf("expected pixel (%d,%d) on the diagonal", i, i)
		}
	}

	fb.Fill(pixel.Off)
	fb.RoundRect(0, 0, 16, 16, 4, pixel.On)
	if fb.Pixel(0, 0).On || !fb.Pixel(8, 0).On || fb.Pixel(8, 8).On {
		t.Error("expected a rounded outline")
	}
	fb.FillRoundRect(0, 0, 16, 16, 4, pixel.On)
	if fb.Pixel(0, 0).On || !fb.Pixel(8, 8).On {
		t.Error("expected a filled rounded rectangle")
	}
}

func TestDisplayer(t *testing.T) {
	fb := New(128, 32)
	d := fb.Displayer()
	if x, y := d.Size(); x != 128 || y != 32 {
		t.Errorf("expected size 128x32, got %dx%d", x, y)
	}
	d.SetPixel(5, 6, toRGBA(pixel.On))
	if !fb.Pixel(5, 6).On {
		t.Error("expected SetPixel to write through")
	}
	if err := d.Display(); err != nil {
		t.Error(err)
	}
}
