package main

import (
	"context"
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/roboticgen/display"
	"github.com/roboticgen/display/internal/logo"
	"github.com/roboticgen/display/sim"
)

func newRenderer(t *testing.T) (*renderer, *sim.Panel) {
	t.Helper()
	panel := sim.New(128, 64)
	d, err := display.NewSSD1306(display.NewI2CSink(panel, sim.DefaultAddr), nil)
	if err != nil {
		t.Fatal(err)
	}
	return &renderer{d: d, face: basicfont.Face7x13}, panel
}

// cancelled returns a done context, so scenes return at their first pause.
func cancelled() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

func litPixels(panel *sim.Panel) (n int) {
	img := panel.Visible()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.MonoAt(x, y).On {
				n++
			}
		}
	}
	return
}

func TestLogos(t *testing.T) {
	r, panel := newRenderer(t)
	if err := r.logos(cancelled()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	var (
		img  = panel.Visible()
		want = logo.Roboticgen()
	)
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			on := false
			if y >= 14 && y < 14+logo.RoboticgenHeight {
				on = want.MonoAt(x, y-14).On
			}
			if got := img.MonoAt(x, y).On; got != on {
				t.Fatalf("(%d,%d): expected %t, got %t", x, y, on, got)
			}
		}
	}
}

func TestCaption(t *testing.T) {
	r, panel := newRenderer(t)
	if err := r.caption(cancelled()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	img := panel.Visible()
	for _, p := range []image.Point{{64, 0}, {64, 63}, {0, 32}, {127, 32}} {
		if !img.MonoAt(p.X, p.Y).On {
			t.Errorf("expected border at %s", p)
		}
	}
	if img.MonoAt(0, 0).On {
		t.Error("expected rounded corners")
	}
}

func TestBadge(t *testing.T) {
	r, panel := newRenderer(t)
	if err := r.badge(cancelled()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if !panel.Visible().MonoAt(2, 32).On {
		t.Error("expected the badge outline on the left edge")
	}
	if n := litPixels(panel); n == 0 {
		t.Error("expected the badge drawn on the panel")
	}
}

func TestTerminal(t *testing.T) {
	r, panel := newRenderer(t)
	if err := r.terminal(cancelled()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	img := panel.Visible()
	var top, bottom int
	for y := 0; y < 64; y++ {
		for x := 0; x < 128; x++ {
			if img.MonoAt(x, y).On {
				if y < 56 {
					top++
				} else {
					bottom++
				}
			}
		}
	}
	if top != 0 || bottom == 0 {
		t.Errorf("expected the first line on the bottom row only, got %d pixels above and %d on it", top, bottom)
	}
}

func TestPower(t *testing.T) {
	r, panel := newRenderer(t)
	if err := r.power(cancelled()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if panel.On() {
		t.Error("expected panel off")
	}
	if s := r.d.State(); s != display.Suppressed {
		t.Errorf("expected state %s, got %s", display.Suppressed, s)
	}
}
