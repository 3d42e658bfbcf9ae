package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/roboticgen/display"
	"github.com/roboticgen/display/framebuffer"
	"github.com/roboticgen/display/sim"
)

func main() {
	widthFlag := flag.Int("width", display.DefaultConfig.Width, "Display width")
	heightFlag := flag.Int("height", display.DefaultConfig.Height, "Display height")
	externalVCCFlag := flag.Bool("external-vcc", false, "Display is driven by an external VCC supply")
	i2cDeviceFlag := flag.Int("i2c-dev", display.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(display.DefaultI2CConfig.Addr), "I²C device address")
	spiBusFlag := flag.Int("spi-bus", display.DefaultSPIConfig.Bus, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", display.DefaultSPIConfig.Device, "SPI device")
	spiSpeedFlag := flag.Uint("spi-speed", uint(display.DefaultSPIConfig.SpeedHz), "SPI clock frequency in Hz")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin (SPI only)")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (SPI only)")
	contrastFlag := flag.Int("contrast", -1, "Contrast level 0-255 (default: leave at power on level)")
	fontFlag := flag.String("font", "", "TrueType font file for captions (default: Go Regular)")
	fontSizeFlag := flag.Float64("font-size", 12, "Caption font size in pixels")
	loopFlag := flag.Bool("loop", false, "Repeat the demo until interrupted")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <i2c|spi|sim>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	var (
		config = &display.Config{
			Width:       *widthFlag,
			Height:      *heightFlag,
			ExternalVCC: *externalVCCFlag,
		}
		sink  display.CommandSink
		panel *sim.Panel
		err   error
	)
	switch busType := flag.Arg(0); busType {
	case "i2c":
		var addr uint8
		if addr, err = i2cAddr(*i2cAddrFlag); err != nil {
			fatal(err)
		}
		if _, err = host.Init(); err != nil {
			fatal(err)
		}
		sink, err = display.OpenI2C(&display.I2CConfig{
			Device: *i2cDeviceFlag,
			Addr:   addr,
		})
	case "spi":
		if _, err = host.Init(); err != nil {
			fatal(err)
		}
		sink, err = display.OpenSPI(&display.SPIConfig{
			Bus:     *spiBusFlag,
			Device:  *spiDeviceFlag,
			SpeedHz: uint32(*spiSpeedFlag),
			Reset:   gpioreg.ByName(*resetPinFlag),
			DC:      gpioreg.ByName(*dcPinFlag),
		})
	case "sim":
		panel = sim.New(config.Width, config.Height)
		sink = display.NewI2CSink(panel, sim.DefaultAddr)
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Printf("using connection: %s\n", sink)

	d, err := display.NewSSD1306(sink, config)
	if err != nil {
		fatal(err)
	}
	defer d.Close()
	fmt.Printf("using driver: %s\n", d)

	if *contrastFlag >= 0 {
		if err = d.Contrast(byte(*contrastFlag)); err != nil {
			fatal(err)
		}
	}

	face, err := loadFace(*fontFlag, *fontSizeFlag)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &renderer{
		d:     d,
		panel: panel,
		face:  face,
	}
	fmt.Println("hit control-c to stop...")
	for {
		if err = r.run(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			fatal(err)
		}
		if !*loopFlag {
			return
		}
	}
}

func loadFace(name string, size float64) (font.Face, error) {
	if name != "" {
		return framebuffer.LoadFace(name, size)
	}
	face, err := framebuffer.ParseFace(goregular.TTF, size)
	if err != nil {
		// Fall back to the bitmap face.
		return basicfont.Face7x13, nil
	}
	return face, nil
}

// i2cAddr checks v is a 7-bit I²C address.
func i2cAddr(v uint) (uint8, error) {
	if v > 0x7f {
		return 0, fmt.Errorf("invalid I²C address %#x, expected a 7-bit address", v)
	}
	return uint8(v), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
