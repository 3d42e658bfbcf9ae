package main

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/roboticgen/display"
	"github.com/roboticgen/display/internal/logo"
	"github.com/roboticgen/display/pixel"
	"github.com/roboticgen/display/sim"
)

// renderer plays the demo scenes on a display.
type renderer struct {
	d     *display.SSD1306
	panel *sim.Panel // set when running on the emulator
	face  font.Face
}

func (r *renderer) run(ctx context.Context) (err error) {
	if r.panel != nil {
		fmt.Print("\033[2J")
	}
	for _, scene := range []func(context.Context) error{
		r.logos,
		r.caption,
		r.badge,
		r.terminal,
		r.contrast,
		r.power,
	} {
		if err = scene(ctx); err != nil {
			return
		}
	}
	return
}

// show updates the display, and the terminal when emulating.
func (r *renderer) show() error {
	if err := r.d.Show(); err != nil {
		return err
	}
	return r.present()
}

// present prints the emulated panel.
func (r *renderer) present() error {
	if r.panel == nil {
		return nil
	}
	fmt.Print("\033[H")
	return r.panel.Print()
}

func pause(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *renderer) logos(ctx context.Context) (err error) {
	r.d.Fill(pixel.Off)
	r.d.Blit(logo.Roboticgen(), 0, 14)
	if err = r.show(); err != nil {
		return
	}
	if err = pause(ctx, time.Second); err != nil {
		return
	}

	r.d.Fill(pixel.Off)
	r.d.Blit(logo.Oboplay(), 0, 20)
	if err = r.show(); err != nil {
		return
	}
	return pause(ctx, 2*time.Second)
}

func (r *renderer) caption(ctx context.Context) (err error) {
	b := r.d.Bounds()
	r.d.Fill(pixel.Off)
	r.d.RoundRect(0, 0, b.Dx(), b.Dy(), 4, pixel.On)
	r.d.Text("roboticgen", 4, 4, pixel.On)
	r.d.HLine(4, 13, b.Dx()-8, pixel.On)
	r.d.DrawString(r.face, fmt.Sprintf("%dx%d OLED", b.Dx(), b.Dy()), 4, b.Dy()-5, pixel.On)
	if err = r.show(); err != nil {
		return
	}
	return pause(ctx, 2*time.Second)
}

// badge renders an anti-aliased vector scene, which is thresholded to monochrome.
func (r *renderer) badge(ctx context.Context) (err error) {
	var (
		b    = r.d.Bounds()
		w, h = float64(b.Dx()), float64(b.Dy())
		dc   = gg.NewContext(b.Dx(), b.Dy())
	)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	dc.DrawRoundedRectangle(2, 2, w-4, h-4, 6)
	dc.Stroke()
	for i := 0; i < 5; i++ {
		dc.DrawCircle(12+float64(i)*10, h-10, 3)
	}
	dc.Fill()
	dc.SetFontFace(r.face)
	dc.DrawStringAnchored("SSD1306", w/2, h/2-4, 0.5, 0.5)

	if err = r.d.Draw(b, dc.Image(), image.Point{}); err != nil {
		return
	}
	if err = r.present(); err != nil {
		return
	}
	return pause(ctx, 2*time.Second)
}

// terminal scrolls lines of text up from the bottom of the display.
func (r *renderer) terminal(ctx context.Context) (err error) {
	h := r.d.Bounds().Dy()
	r.d.Fill(pixel.Off)
	for i, line := range []string{
		"SSD1306 driver",
		"I2C addr 0x3c",
		"page mode",
		"1bpp pages",
		"",
		"hello, world!",
	} {
		r.d.Scroll(0, -8)
		r.d.Text(fmt.Sprintf("%d %s", i, line), 0, h-8, pixel.On)
		if err = r.show(); err != nil {
			return
		}
		if err = pause(ctx, 400*time.Millisecond); err != nil {
			return
		}
	}
	return pause(ctx, time.Second)
}

func (r *renderer) contrast(ctx context.Context) (err error) {
	set := func(level int) (err error) {
		if err = r.d.Contrast(byte(level)); err != nil {
			return
		}
		if err = r.present(); err != nil {
			return
		}
		return pause(ctx, 30*time.Millisecond)
	}
	for level := 0xff; level >= 0; level -= 0x11 {
		if err = set(level); err != nil {
			return
		}
	}
	for level := 0; level <= 0xff; level += 0x11 {
		if err = set(level); err != nil {
			return
		}
	}

	if err = r.d.Invert(true); err != nil {
		return
	}
	if err = r.present(); err != nil {
		return
	}
	if err = pause(ctx, time.Second); err != nil {
		return
	}
	if err = r.d.Invert(false); err != nil {
		return
	}
	return r.present()
}

// power turns the display off and back on, the image is retained.
func (r *renderer) power(ctx context.Context) (err error) {
	if err = r.d.PowerOff(); err != nil {
		return
	}
	if err = r.present(); err != nil {
		return
	}
	if err = pause(ctx, time.Second); err != nil {
		return
	}
	if err = r.d.PowerOn(); err != nil {
		return
	}
	if err = r.present(); err != nil {
		return
	}
	return pause(ctx, time.Second)
}
