package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"

	"github.com/roboticgen/display/internal/gpiodemo"
)

func main() {
	pinFlag := flag.String("pin", "", "GPIO pin (default: GPIO2 for blink, GPIO4 for button, GPIO15 for fade)")
	pinsFlag := flag.String("pins", "GPIO12,GPIO13,GPIO14,GPIO15", "Comma separated GPIO pins for chase")
	i2cBusFlag := flag.String("i2c-bus", "", "I²C bus of the ADS1115 ADC for pot (default: use first available)")
	channelFlag := flag.Int("channel", 0, "ADS1115 single-ended input channel 0-3 of the potentiometer wiper for pot")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <blink|chase|button|fade|pot>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch demo := flag.Arg(0); demo {
	case "blink":
		var pin gpio.PinIO
		if pin, err = openPin(*pinFlag, "GPIO2"); err == nil {
			fmt.Printf("blinking %s\n", pin)
			err = gpiodemo.Blink(ctx, pin, gpiodemo.BlinkPeriod)
		}
	case "chase":
		var pins []gpio.PinOut
		for _, name := range strings.Split(*pinsFlag, ",") {
			var pin gpio.PinIO
			if pin, err = openPin(strings.TrimSpace(name), ""); err != nil {
				break
			}
			pins = append(pins, pin)
		}
		if err == nil {
			fmt.Printf("chasing over %d pins\n", len(pins))
			err = gpiodemo.Chase(ctx, pins, gpiodemo.ChaseDelay)
		}
	case "button":
		var pin gpio.PinIO
		if pin, err = openPin(*pinFlag, "GPIO4"); err == nil {
			err = gpiodemo.Button(ctx, pin, gpiodemo.ButtonInterval, os.Stdout)
		}
	case "fade":
		var pin gpio.PinIO
		if pin, err = openPin(*pinFlag, "GPIO15"); err == nil {
			fmt.Printf("fading %s at %s\n", pin, gpiodemo.FadeFrequency)
			err = gpiodemo.Fade(ctx, pin)
		}
	case "pot":
		err = potentiometer(ctx, *i2cBusFlag, *channelFlag)
	default:
		err = fmt.Errorf("unsupported demo %q", demo)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func openPin(name, fallback string) (gpio.PinIO, error) {
	if name == "" {
		name = fallback
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("unknown GPIO pin %q", name)
	}
	return pin, nil
}

// potentiometer reads a potentiometer wiper through an ADS1115 ADC, the Raspberry Pi has no
// analog inputs of its own.
func potentiometer(ctx context.Context, busName string, channel int) error {
	if channel < 0 || channel > 3 {
		return fmt.Errorf("invalid ADS1115 channel %d", channel)
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return err
	}
	defer bus.Close()

	adc, err := ads1x15.NewADS1115(bus, &ads1x15.DefaultOpts)
	if err != nil {
		return err
	}
	pin, err := adc.PinForChannel(ads1x15.Channel0+ads1x15.Channel(channel), 3300*physic.MilliVolt, 2*physic.Hertz, ads1x15.BestQuality)
	if err != nil {
		return err
	}
	defer pin.Halt()

	fmt.Printf("reading %s\n", pin)
	return gpiodemo.Potentiometer(ctx, pin, gpiodemo.PotInterval, os.Stdout)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
