// Package gpiodemo contains small GPIO demos: a blinking LED, a LED chase, a push button, a
// PWM fade and a potentiometer read through an ADC.
//
// Every demo runs until its context is cancelled, and returns the context error.
package gpiodemo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Errors
var (
	ErrNoPins = errors.New("gpiodemo: no pins")
)

// Demo timing.
const (
	BlinkPeriod    = time.Second
	ChaseDelay     = 500 * time.Millisecond
	ButtonInterval = 200 * time.Millisecond
	FadeFrequency  = 5 * physic.KiloHertz
	FadeStep       = 8
	FadeDelay      = 10 * time.Millisecond
	PotInterval    = 500 * time.Millisecond
)

// FadeMax is the maximum duty of the fade demo, duties are scaled to gpio.DutyMax.
const FadeMax = 1023

// wait blocks for d, or until ctx is done. Replaced in tests.
var wait = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Blink toggles pin every period.
func Blink(ctx context.Context, pin gpio.PinOut, period time.Duration) (err error) {
	defer func() { _ = pin.Out(gpio.Low) }()
	for {
		if err = pin.Out(gpio.High); err != nil {
			return
		}
		if err = wait(ctx, period); err != nil {
			return
		}
		if err = pin.Out(gpio.Low); err != nil {
			return
		}
		if err = wait(ctx, period); err != nil {
			return
		}
	}
}

// Chase lights one pin at a time, moving forward then backward across pins.
func Chase(ctx context.Context, pins []gpio.PinOut, delay time.Duration) (err error) {
	if len(pins) == 0 {
		return ErrNoPins
	}
	for _, pin := range pins {
		if err = pin.Out(gpio.Low); err != nil {
			return
		}
	}

	step := func(pin gpio.PinOut) (err error) {
		if err = pin.Out(gpio.High); err != nil {
			return
		}
		err = wait(ctx, delay)
		if lerr := pin.Out(gpio.Low); err == nil {
			err = lerr
		}
		return
	}
	for {
		for i := 0; i < len(pins); i++ {
			if err = step(pins[i]); err != nil {
				return
			}
		}
		for i := len(pins) - 1; i >= 0; i-- {
			if err = step(pins[i]); err != nil {
				return
			}
		}
	}
}

// Button reports the state of a push button wired between pin and ground to w.
func Button(ctx context.Context, pin gpio.PinIn, interval time.Duration, w io.Writer) (err error) {
	if err = pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return
	}
	for {
		state := "Released"
		if pin.Read() == gpio.Low {
			state = "Pressed"
		}
		if _, err = fmt.Fprintf(w, "Button %s!\n", state); err != nil {
			return
		}
		if err = wait(ctx, interval); err != nil {
			return
		}
	}
}

// FadeDuty scales a duty in 0-FadeMax to a gpio.Duty.
func FadeDuty(v int) gpio.Duty {
	return gpio.Duty(int64(v) * int64(gpio.DutyMax) / FadeMax)
}

// Fade ramps the PWM duty of pin up to FadeMax and back down.
func Fade(ctx context.Context, pin gpio.PinOut) (err error) {
	defer func() { _ = pin.Out(gpio.Low) }()
	set := func(v int) (err error) {
		if err = pin.PWM(FadeDuty(v), FadeFrequency); err != nil {
			return
		}
		return wait(ctx, FadeDelay)
	}
	for {
		for v := 0; v <= FadeMax; v += FadeStep {
			if err = set(v); err != nil {
				return
			}
		}
		for v := FadeMax; v >= 0; v -= FadeStep {
			if err = set(v); err != nil {
				return
			}
		}
	}
}

// Potentiometer reports the potentiometer wiper reading of pin to w.
func Potentiometer(ctx context.Context, pin analog.PinADC, interval time.Duration, w io.Writer) (err error) {
	for {
		var sample analog.Sample
		if sample, err = pin.Read(); err != nil {
			return
		}
		if _, err = fmt.Fprintf(w, "Pot Value: %d Approx Voltage: %s\n", sample.Raw, sample.V); err != nil {
			return
		}
		if err = wait(ctx, interval); err != nil {
			return
		}
	}
}
