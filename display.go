// Package display drives monochrome SSD1306 OLED displays.
//
// The driver keeps a page organised framebuffer in memory (see the framebuffer package), which
// callers draw into. [SSD1306.Show] pushes the whole framebuffer to the display RAM in a single
// transfer. The bus is abstracted by a [CommandSink], with implementations for I²C and 4-wire
// SPI on top of periph.io.
//
// The driver is synchronous and not safe for concurrent use: callers must serialize access to a
// controller, and to the bus it is attached to.
//
// Set the DISPLAY_DEBUG environment variable to log the traffic sent to the controller.
package display

import (
	"errors"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("DISPLAY_DEBUG") != ""
}

// Errors
var (
	ErrInvalidGeometry = errors.New("display: invalid geometry")
)

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels, between 1 and 128.
	Width int

	// Height of the display in pixels, a multiple of 8 between 8 and 64.
	Height int

	// ExternalVCC is set when the panel is driven by an external VCC supply, which disables the
	// internal charge pump.
	ExternalVCC bool
}

// DefaultConfig is a 128x64 panel using the internal charge pump.
var DefaultConfig = Config{
	Width:  128,
	Height: 64,
}

// State is the power state of a controller.
type State uint8

// Controller states.
const (
	Unpowered  State = iota // Not yet powered on
	PoweredOn               // Powered, but not initialised
	Active                  // Initialised and displaying
	Suppressed              // Display turned off, RAM and settings retained
)

func (s State) String() string {
	switch s {
	case Unpowered:
		return "unpowered"
	case PoweredOn:
		return "powered on"
	case Active:
		return "active"
	case Suppressed:
		return "suppressed"
	default:
		return "invalid"
	}
}
