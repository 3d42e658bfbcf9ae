package display

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"log"

	"periph.io/x/conn/v3"
	periphdisplay "periph.io/x/conn/v3/display"

	"github.com/roboticgen/display/framebuffer"
	"github.com/roboticgen/display/pixel"
)

const (
	ssd1306DefaultWidth  = 128
	ssd1306DefaultHeight = 64
	ssd1306MaxWidth      = 128
	ssd1306MaxHeight     = 64
)

// SSD1306 is a SSD1306 OLED controller.
//
// The framebuffer is embedded, so all its drawing methods are available on the controller.
// Drawing only changes the framebuffer, call Show to update the display.
type SSD1306 struct {
	*framebuffer.FrameBuffer
	sink        CommandSink
	width       int
	height      int
	pages       int
	externalVCC bool
	state       State
}

// NewSSD1306 sets up a SSD1306 controller on sink. A nil config uses DefaultConfig.
//
// The panel is powered on and initialised, and the display is cleared.
func NewSSD1306(sink CommandSink, config *Config) (*SSD1306, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	width, height := config.Width, config.Height
	if width == 0 {
		width = ssd1306DefaultWidth
	}
	if height == 0 {
		height = ssd1306DefaultHeight
	}
	if width < 1 || width > ssd1306MaxWidth {
		return nil, fmt.Errorf("%w: SSD1306 width %d not in 1-%d", ErrInvalidGeometry, width, ssd1306MaxWidth)
	}
	if height < 8 || height > ssd1306MaxHeight || height%8 != 0 {
		return nil, fmt.Errorf("%w: SSD1306 height %d not a multiple of 8 in 8-%d", ErrInvalidGeometry, height, ssd1306MaxHeight)
	}

	d := &SSD1306{
		FrameBuffer: framebuffer.New(width, height),
		sink:        sink,
		width:       width,
		height:      height,
		pages:       height / 8,
		externalVCC: config.ExternalVCC,
	}
	if err := d.PowerOn(); err != nil {
		return nil, err
	}
	if err := d.InitDisplay(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *SSD1306) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d", d.width, d.height)
}

// State returns the current power state.
func (d *SSD1306) State() State {
	return d.state
}

func (d *SSD1306) setState(state State) {
	if debug && d.state != state {
		log.Printf("display: %s %s -> %s", d, d.state, state)
	}
	d.state = state
}

func (d *SSD1306) command(cmds ...byte) (err error) {
	for _, cmd := range cmds {
		if err = d.sink.WriteCommand(cmd); err != nil {
			return
		}
	}
	return
}

// PowerOn powers up an unpowered panel, or turns a suppressed display back on. The display RAM
// is retained while suppressed, so no initialisation is needed to resume.
func (d *SSD1306) PowerOn() (err error) {
	switch d.state {
	case Unpowered:
		if p, ok := d.sink.(PowerOner); ok {
			if err = p.PowerOn(); err != nil {
				return
			}
		}
		d.setState(PoweredOn)
	case Suppressed:
		if err = d.command(setDisplayOn); err != nil {
			return
		}
		d.setState(Active)
	}
	return
}

// InitDisplay sends the initialisation sequence, then clears and shows the framebuffer.
func (d *SSD1306) InitDisplay() (err error) {
	var (
		comPins    byte = 0x12
		precharge  byte = 0xF1
		chargePump byte = 0x14
	)
	if d.height == 32 {
		comPins = 0x02
	}
	if d.externalVCC {
		precharge, chargePump = 0x22, 0x10
	}
	if debug {
		log.Printf("display: %s init external VCC=%t", d, d.externalVCC)
	}

	if err = d.command(
		setDisplayOff,
		setMemoryMode, horizontalAddressing,
		setStartLine|0x00,
		setSegmentRemap,
		setMultiplexRatio, byte(d.height-1),
		setComScanDec,
		setDisplayOffset, 0x00,
		setComPins, comPins,
		setDisplayClockDiv, 0x80,
		setPrecharge, precharge,
		setVComDetect, 0x30,
		setContrast, 0xFF,
		setDisplayAllOnResume,
		setNormalDisplay,
		setChargePump, chargePump,
		setDisplayOn,
	); err != nil {
		return
	}
	d.setState(Active)

	d.Fill(pixel.Off)
	return d.Show()
}

// Show writes the whole framebuffer to the display RAM.
func (d *SSD1306) Show() (err error) {
	var (
		x0 = byte(0)
		x1 = byte(d.width - 1)
	)
	if d.width == 64 {
		// 64 pixel wide glass is wired to the centre columns.
		x0 += 32
		x1 += 32
	}
	if debug {
		log.Printf("display: %s show columns %d-%d pages 0-%d", d, x0, x1, d.pages-1)
	}

	if err = d.command(
		setColumnAddr, x0, x1,
		setPageAddr, 0, byte(d.pages-1),
	); err != nil {
		return
	}
	return d.sink.WriteFrameBuffer(d.Bytes())
}

// Contrast sets the contrast level.
func (d *SSD1306) Contrast(level byte) error {
	return d.command(setContrast, level)
}

// Invert toggles inverted display mode, where lit pixels are off and vice versa.
func (d *SSD1306) Invert(invert bool) error {
	var flag byte
	if invert {
		flag = 1
	}
	return d.command(setNormalDisplay | flag)
}

// PowerOff turns the display off. The framebuffer and display RAM are retained, use PowerOn to
// turn the display back on.
func (d *SSD1306) PowerOff() (err error) {
	if err = d.command(setDisplayOff); err != nil {
		return
	}
	d.setState(Suppressed)
	return
}

// Draw implements display.Drawer. It draws src into the framebuffer and shows the result.
func (d *SSD1306) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.FrameBuffer, r, src, sp, draw.Src)
	return d.Show()
}

// Halt implements conn.Resource by turning the display off.
func (d *SSD1306) Halt() error {
	return d.PowerOff()
}

// Close turns the display off and closes the sink, if it can be closed.
func (d *SSD1306) Close() (err error) {
	if d.state == Active {
		err = d.PowerOff()
	}
	if c, ok := d.sink.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return
}

var (
	_ periphdisplay.Drawer = (*SSD1306)(nil)
	_ conn.Resource        = (*SSD1306)(nil)
)
