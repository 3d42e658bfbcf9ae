// Package sim emulates a SSD1306 OLED panel attached to an I²C bus.
//
// A Panel implements i2c.BusCloser, so the display driver can run against it unchanged. It
// decodes the I²C control bytes, parses the command stream and maintains the controller's
// graphic display RAM, which can be inspected with Visible or printed on a terminal with Render.
package sim

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"github.com/roboticgen/display/pixel"
)

// Errors
var (
	ErrNoDevice        = errors.New("sim: no device at address")
	ErrReadUnsupported = errors.New("sim: reads are not supported in serial mode")
)

// DefaultAddr is the default I²C address of the panel.
const DefaultAddr = 0x3c

const (
	ramPages   = 8
	ramColumns = 128
	ramRows    = ramPages * 8
)

// Addressing modes.
const (
	horizontalAddressing = 0x00
	verticalAddressing   = 0x01
	pageAddressing       = 0x02
)

// Panel is an emulated SSD1306 with a width x height glass.
type Panel struct {
	// Addr is the I²C address the panel responds to.
	Addr uint16

	mu      sync.Mutex
	width   int
	height  int
	palette *ansi256.Palette
	ram     [ramPages][ramColumns]byte

	// Command parser.
	cmd  []byte
	args int

	// Address pointers.
	mode      byte
	col, page byte
	colStart  byte
	colEnd    byte
	pageStart byte
	pageEnd   byte

	startLine byte
	contrast  byte
	on        bool
	invert    bool
	entireOn  bool
}

// New returns a powered down panel in its reset state.
func New(width, height int) *Panel {
	return &Panel{
		Addr:     DefaultAddr,
		width:    width,
		height:   height,
		palette:  ansi256.Default,
		mode:     pageAddressing,
		colEnd:   ramColumns - 1,
		pageEnd:  ramPages - 1,
		contrast: 0x7f,
	}
}

func (p *Panel) String() string {
	return fmt.Sprintf("sim.Panel(%dx%d)", p.width, p.height)
}

// Close implements i2c.BusCloser.
func (p *Panel) Close() error {
	return nil
}

// SetSpeed implements i2c.Bus.
func (p *Panel) SetSpeed(f physic.Frequency) error {
	return nil
}

// Tx implements i2c.Bus.
func (p *Panel) Tx(addr uint16, w, r []byte) error {
	if addr != p.Addr {
		return fmt.Errorf("%w %#02x", ErrNoDevice, addr)
	}
	if len(r) > 0 {
		return ErrReadUnsupported
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for i := 0; i < len(w); {
		var (
			ctrl = w[i]
			data = ctrl&0x40 != 0 // D/C#
		)
		i++
		if ctrl&0x80 == 0 {
			// Continuation bit cleared, the rest of the transfer is a data stream.
			for ; i < len(w); i++ {
				p.write(data, w[i])
			}
			break
		}
		if i < len(w) {
			p.write(data, w[i])
			i++
		}
	}
	return nil
}

func (p *Panel) write(data bool, b byte) {
	if data {
		p.writeRAM(b)
	} else {
		p.writeCommand(b)
	}
}

// argCount is the number of argument bytes following a command byte.
func argCount(cmd byte) int {
	switch cmd {
	case 0x20, 0x81, 0x8d, 0xa8, 0xd3, 0xd5, 0xd9, 0xda, 0xdb:
		return 1
	case 0x21, 0x22, 0xa3:
		return 2
	case 0x29, 0x2a:
		return 5
	case 0x26, 0x27:
		return 6
	default:
		return 0
	}
}

func (p *Panel) writeCommand(b byte) {
	if p.cmd == nil {
		p.cmd = []byte{b}
		p.args = argCount(b)
	} else {
		p.cmd = append(p.cmd, b)
	}
	if len(p.cmd) > p.args {
		p.execute(p.cmd[0], p.cmd[1:])
		p.cmd = nil
	}
}

func (p *Panel) execute(cmd byte, args []byte) {
	switch {
	case cmd <= 0x0f:
		p.col = p.col&0xf0 | cmd&0x0f
	case cmd <= 0x1f:
		p.col = (p.col&0x0f | (cmd&0x07)<<4) & 0x7f
	case cmd == 0x20:
		if mode := args[0] & 0x03; mode != 0x03 {
			p.mode = mode
		}
	case cmd == 0x21:
		p.colStart, p.colEnd = args[0]&0x7f, args[1]&0x7f
		p.col = p.colStart
	case cmd == 0x22:
		p.pageStart, p.pageEnd = args[0]&0x07, args[1]&0x07
		p.page = p.pageStart
	case cmd >= 0x40 && cmd <= 0x7f:
		p.startLine = cmd & 0x3f
	case cmd == 0x81:
		p.contrast = args[0]
	case cmd == 0xa4, cmd == 0xa5:
		p.entireOn = cmd&1 == 1
	case cmd == 0xa6, cmd == 0xa7:
		p.invert = cmd&1 == 1
	case cmd == 0xae, cmd == 0xaf:
		p.on = cmd&1 == 1
	case cmd >= 0xb0 && cmd <= 0xb7:
		p.page = cmd & 0x07
	}
	// Hardware configuration (multiplex, remap, clock, charge pump, ...) and scrolling
	// commands are accepted and ignored.
}

func (p *Panel) writeRAM(b byte) {
	p.ram[p.page][p.col] = b

	switch p.mode {
	case horizontalAddressing:
		if p.col == p.colEnd {
			p.col = p.colStart
			p.page = nextPage(p.page, p.pageStart, p.pageEnd)
		} else {
			p.col = (p.col + 1) & 0x7f
		}
	case verticalAddressing:
		if p.page == p.pageEnd {
			p.page = p.pageStart
			if p.col == p.colEnd {
				p.col = p.colStart
			} else {
				p.col = (p.col + 1) & 0x7f
			}
		} else {
			p.page = (p.page + 1) & 0x07
		}
	default:
		p.col = (p.col + 1) & 0x7f
	}
}

func nextPage(page, start, end byte) byte {
	if page == end {
		return start
	}
	return (page + 1) & 0x07
}

// On reports if the display is turned on.
func (p *Panel) On() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.on
}

// Inverted reports if the display is in inverted mode.
func (p *Panel) Inverted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.invert
}

// Contrast returns the contrast level.
func (p *Panel) Contrast() byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.contrast
}

// RAM returns a copy of the graphic display RAM page.
func (p *Panel) RAM(page int) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]byte(nil), p.ram[page&0x07][:]...)
}

// columnOffset is the first RAM column wired to the glass.
func (p *Panel) columnOffset() int {
	if p.width == 64 {
		return 32
	}
	return 0
}

// Visible returns a snapshot of the pixels lit on the glass.
func (p *Panel) Visible() *pixel.MonoImage {
	p.mu.Lock()
	defer p.mu.Unlock()

	img := pixel.NewMonoImage(p.width, p.height)
	if !p.on {
		return img
	}

	offset := p.columnOffset()
	for y := 0; y < p.height; y++ {
		row := (y + int(p.startLine)) % ramRows
		for x := 0; x < p.width; x++ {
			bit := int(p.ram[row/8][(x+offset)%ramColumns]>>(row%8)) & 1
			if p.invert {
				bit ^= 1
			}
			if p.entireOn {
				bit = 1
			}
			img.Set(x, y, pixel.Bit(bit))
		}
	}
	return img
}

// Render prints the visible pixels to w using ANSI colors, one line per pixel row. Lit pixels
// are dimmed according to the contrast level.
func (p *Panel) Render(w io.Writer) error {
	var (
		img = p.Visible()
		lvl = 0x40 + uint16(p.Contrast())*0xbf/0xff
		on  = p.palette.Block(color.NRGBA{R: uint8(lvl / 2), G: uint8(lvl), B: uint8(lvl), A: 0xff})
		off = p.palette.Block(color.NRGBA{A: 0xff})
		buf bytes.Buffer
	)
	_, _ = buf.WriteString("\033[0m")
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			if img.MonoAt(x, y).On {
				_, _ = buf.WriteString(on)
			} else {
				_, _ = buf.WriteString(off)
			}
		}
		_, _ = buf.WriteString("\033[0m\n")
	}
	_, err := buf.WriteTo(w)
	return err
}

// Print renders the panel on the standard output.
func (p *Panel) Print() error {
	return p.Render(colorable.NewColorableStdout())
}

var _ i2c.BusCloser = (*Panel)(nil)
