package display

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	displayconn "github.com/roboticgen/display/conn"
)

// Conn errors.
var (
	ErrResetPin = errors.New("display: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("display: data/command (DC) GPIO pin is invalid")
)

// CommandSink is the connection a controller uses to talk to the display hardware.
type CommandSink interface {
	// WriteCommand sends a single command byte.
	WriteCommand(cmd byte) error

	// WriteFrameBuffer sends display RAM data.
	WriteFrameBuffer(buf []byte) error
}

// PowerOner is implemented by sinks that have to bring the panel up before it accepts commands.
type PowerOner interface {
	PowerOn() error
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3c,
}

// I2CSink sends commands and data to a display on an I²C bus.
type I2CSink struct {
	c     conn.Conn
	close io.Closer
}

// NewI2CSink returns a sink for the display at addr on bus.
func NewI2CSink(bus i2c.Bus, addr uint16) *I2CSink {
	return &I2CSink{
		c: &i2c.Dev{Bus: bus, Addr: addr},
	}
}

// OpenI2C opens the configured I²C bus. Close the sink to release the bus.
func OpenI2C(config *I2CConfig) (*I2CSink, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	bus, err := displayconn.OpenI2C(config.Device)
	if err != nil {
		return nil, err
	}

	s := NewI2CSink(bus, uint16(config.Addr))
	s.close = bus
	return s, nil
}

func (s *I2CSink) String() string {
	return fmt.Sprintf("I²C %s", s.c)
}

// Close the underlying bus, if it was opened by OpenI2C.
func (s *I2CSink) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close.Close()
}

// WriteCommand sends one command frame.
func (s *I2CSink) WriteCommand(cmd byte) error {
	return s.c.Tx([]byte{i2cCommand, cmd}, nil)
}

// WriteFrameBuffer sends buf as one data frame.
func (s *I2CSink) WriteFrameBuffer(buf []byte) error {
	return s.c.Tx(append([]byte{i2cData}, buf...), nil)
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Bus and Device select the SPI port, use -1 for Bus to use the first available port.
	Bus    int
	Device int

	// SpeedHz is the SPI clock frequency.
	SpeedHz uint32

	// Reset is the optional reset (RES) pin.
	Reset gpio.PinOut

	// DC is the data/command pin.
	DC gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	Bus:     0,
	Device:  0,
	SpeedHz: 8_000_000,
}

// ValidSPISpeeds are the SPI bus speeds accepted by OpenSPI, the SSD1306 serial clock cycle
// time is 100ns.
var ValidSPISpeeds = []uint32{
	500_000,
	1_000_000,
	2_000_000,
	4_000_000,
	8_000_000,
	10_000_000,
}

// SPISink sends commands and data to a display on a 4-wire SPI bus.
type SPISink struct {
	c     conn.Conn
	dc    gpio.PinOut
	reset gpio.PinOut
	close io.Closer
}

// sleep is replaced in tests.
var sleep = time.Sleep

// NewSPISink returns a sink using the SPI connection c, with the data/command pin dc and the
// optional reset pin.
func NewSPISink(c conn.Conn, dc, reset gpio.PinOut) (*SPISink, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, ErrDCPin
	}
	if reset == gpio.INVALID {
		return nil, ErrResetPin
	}
	return &SPISink{
		c:     c,
		dc:    dc,
		reset: reset,
	}, nil
}

// OpenSPI opens the configured SPI port. Close the sink to release the port.
func OpenSPI(config *SPIConfig) (*SPISink, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}

	var valid bool
	for _, speed := range ValidSPISpeeds {
		if valid = speed == config.SpeedHz; valid {
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("display: invalid SPI speed %dHz", config.SpeedHz)
	}

	port, err := displayconn.OpenSPI(config.Bus, config.Device)
	if err != nil {
		return nil, err
	}

	c, err := port.Connect(physic.Frequency(config.SpeedHz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, err
	}

	s, err := NewSPISink(c, config.DC, config.Reset)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	s.close = port
	return s, nil
}

func (s *SPISink) String() string {
	return fmt.Sprintf("SPI %s", s.c)
}

// Close the underlying port, if it was opened by OpenSPI.
func (s *SPISink) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close.Close()
}

// PowerOn pulses the reset pin, if there is one.
func (s *SPISink) PowerOn() (err error) {
	if s.reset == nil {
		return
	}
	if debug {
		log.Printf("display: %s reset pulse on %s", s, s.reset)
	}
	if err = s.reset.Out(gpio.High); err != nil {
		return
	}
	sleep(time.Millisecond)
	if err = s.reset.Out(gpio.Low); err != nil {
		return
	}
	sleep(10 * time.Millisecond)
	return s.reset.Out(gpio.High)
}

// WriteCommand sends cmd with DC low.
func (s *SPISink) WriteCommand(cmd byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return err
	}
	return s.c.Tx([]byte{cmd}, nil)
}

// WriteFrameBuffer sends buf with DC high.
func (s *SPISink) WriteFrameBuffer(buf []byte) error {
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	return s.c.Tx(buf, nil)
}

var (
	_ CommandSink = (*I2CSink)(nil)
	_ CommandSink = (*SPISink)(nil)
	_ PowerOner   = (*SPISink)(nil)
)
