// Package logo holds the logos shown by the demo program.
package logo

import "github.com/roboticgen/display/pixel"

// Logo dimensions.
const (
	RoboticgenWidth  = 128
	RoboticgenHeight = 33
	OboplayWidth     = 128
	OboplayHeight    = 24
)

// Roboticgen returns the roboticgen logo.
func Roboticgen() *pixel.MonoImage {
	return mustImage(roboticgen[:], RoboticgenWidth, RoboticgenHeight)
}

// Oboplay returns the oboplay logo.
func Oboplay() *pixel.MonoImage {
	return mustImage(oboplay[:], OboplayWidth, OboplayHeight)
}

// mustImage returns a copy of pix, so callers can't modify the logos.
func mustImage(pix []byte, w, h int) *pixel.MonoImage {
	img, err := pixel.NewMonoImageFrom(append([]byte(nil), pix...), w, h)
	if err != nil {
		panic(err)
	}
	return img
}

// Horizontally packed rows, most significant bit first.
var (
	roboticgen = [RoboticgenWidth / 8 * RoboticgenHeight]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x0f, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x0f, 0xf8, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x07, 0xfc, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x07, 0x38, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0xff, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x0f, 0xff, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x7e, 0xff, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x60, 0x00, 0x00, 0x06, 0x03, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x07, 0xfc, 0x00, 0x00, 0xf0, 0x00, 0x00, 0x0e, 0x07, 0x80, 0x00, 0x0f, 0x80, 0x00, 0x00, 0x00,
		0x07, 0xfe, 0x00, 0x00, 0x70, 0x00, 0x00, 0x0e, 0x07, 0x80, 0x00, 0x3f, 0xe0, 0x00, 0x00, 0x00,
		0x07, 0xff, 0x00, 0x00, 0x70, 0x00, 0x00, 0x0e, 0x03, 0x00, 0x00, 0x7f, 0xe0, 0x00, 0x00, 0x00,
		0x07, 0x07, 0x80, 0x00, 0x60, 0x00, 0x00, 0x0e, 0x00, 0x00, 0x00, 0xf0, 0x60, 0x00, 0x00, 0x00,
		0x07, 0x03, 0x83, 0xf0, 0x7f, 0xc0, 0x7e, 0x1f, 0xf3, 0x87, 0xe1, 0xe0, 0x00, 0x7c, 0x07, 0xc0,
		0x07, 0x01, 0xc7, 0xf8, 0x7f, 0xe0, 0xff, 0x1f, 0xf3, 0x8f, 0xf9, 0xc0, 0x01, 0xff, 0x3f, 0xe0,
		0x07, 0x01, 0xcf, 0xfc, 0x7f, 0xf1, 0xff, 0x9f, 0xf3, 0x9f, 0xf9, 0xc0, 0x01, 0xef, 0x3f, 0xf0,
		0x07, 0x01, 0xde, 0x1e, 0x78, 0x73, 0xc3, 0x8e, 0x03, 0x9c, 0x31, 0x80, 0x03, 0x8e, 0x3c, 0x70,
		0x07, 0x03, 0x9c, 0x0e, 0x70, 0x73, 0x81, 0xce, 0x03, 0x9c, 0x01, 0x80, 0x73, 0x9e, 0x38, 0x38,
		0x07, 0x8f, 0x9c, 0xce, 0x77, 0x3b, 0x99, 0xce, 0x03, 0xb8, 0x01, 0xc0, 0x73, 0x1c, 0x38, 0x38,
		0x07, 0xff, 0x1c, 0xce, 0x63, 0x33, 0x99, 0xce, 0x03, 0xb8, 0x01, 0xc0, 0x73, 0x38, 0x38, 0x38,
		0x07, 0xfe, 0x1c, 0x0e, 0x70, 0x73, 0x81, 0xce, 0x03, 0xbc, 0x01, 0xe0, 0x73, 0xf0, 0x38, 0x38,
		0x07, 0xfe, 0x1e, 0x1c, 0x78, 0xf3, 0xc3, 0x87, 0x03, 0x9e, 0x30, 0xf0, 0x73, 0xe2, 0x38, 0x38,
		0x07, 0x0e, 0x0f, 0xfc, 0x3f, 0xf1, 0xff, 0x87, 0xf3, 0x9f, 0xf8, 0x7f, 0xf1, 0xff, 0x38, 0x38,
		0x07, 0x07, 0x07, 0xf8, 0x3f, 0xe0, 0xff, 0x03, 0xf3, 0x8f, 0xf8, 0x3f, 0xe0, 0xff, 0x38, 0x38,
		0x07, 0x07, 0x03, 0xf0, 0x0f, 0x80, 0x7e, 0x01, 0xf3, 0x83, 0xe0, 0x1f, 0xc0, 0x7c, 0x18, 0x30,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	oboplay = [OboplayWidth / 8 * OboplayHeight]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0xf0, 0x03, 0xe0, 0x00, 0x03, 0x80, 0x00, 0xff, 0x80, 0x40, 0x00, 0x03, 0x02, 0x00, 0x04,
		0x03, 0xfc, 0x03, 0x20, 0x60, 0x1e, 0xf0, 0x00, 0x80, 0xe0, 0xc0, 0x00, 0x03, 0x83, 0x00, 0x0c,
		0x04, 0x03, 0x02, 0x00, 0x30, 0x30, 0x18, 0x00, 0x00, 0x30, 0xc0, 0x00, 0x04, 0x81, 0x80, 0x18,
		0x08, 0x01, 0x82, 0x00, 0x10, 0x60, 0x0c, 0x00, 0x00, 0x18, 0xc0, 0x00, 0x04, 0x80, 0xc0, 0x30,
		0x10, 0x00, 0x82, 0x00, 0x10, 0xc0, 0x04, 0x10, 0x00, 0x08, 0xc0, 0x00, 0x0c, 0x40, 0x60, 0x60,
		0x30, 0x00, 0xc2, 0x00, 0x10, 0x83, 0x82, 0x00, 0x00, 0x08, 0xc0, 0x00, 0x08, 0x40, 0x30, 0xc0,
		0x20, 0x80, 0x42, 0x00, 0x30, 0x87, 0xc2, 0x00, 0x00, 0x08, 0xc0, 0x00, 0x18, 0x20, 0x08, 0x80,
		0x20, 0xf0, 0x42, 0x00, 0x61, 0x8f, 0xe2, 0x00, 0x00, 0x08, 0xc0, 0x00, 0x10, 0x20, 0x00, 0x00,
		0x20, 0xf8, 0x42, 0x03, 0xc1, 0x0f, 0xe2, 0x01, 0x80, 0x18, 0xc0, 0x00, 0x30, 0x30, 0x00, 0x00,
		0x20, 0xe0, 0x42, 0x00, 0x61, 0x8f, 0xc2, 0x00, 0x80, 0x30, 0xc0, 0x00, 0x20, 0x10, 0x00, 0x00,
		0x20, 0x80, 0x42, 0x00, 0x30, 0x87, 0xc2, 0x01, 0x80, 0xe0, 0xc0, 0x00, 0x20, 0x18, 0x02, 0x00,
		0x10, 0x00, 0xc2, 0x00, 0x10, 0x81, 0x02, 0x01, 0x80, 0x00, 0xc0, 0x00, 0x40, 0x08, 0x06, 0x00,
		0x18, 0x00, 0x82, 0x00, 0x10, 0xc0, 0x04, 0x11, 0x80, 0x00, 0xc0, 0x00, 0x40, 0x0c, 0x02, 0x00,
		0x08, 0x01, 0x02, 0x00, 0x10, 0x60, 0x0c, 0x01, 0x80, 0x00, 0xc0, 0x00, 0xc0, 0x04, 0x06, 0x00,
		0x06, 0x06, 0x02, 0x00, 0x30, 0x30, 0x18, 0x00, 0x80, 0x00, 0xc0, 0x00, 0x80, 0x04, 0x02, 0x00,
		0x03, 0xfc, 0x02, 0x03, 0xe0, 0x1f, 0xe0, 0x01, 0x80, 0x00, 0xff, 0xf9, 0x80, 0x02, 0x06, 0x00,
		0x00, 0x60, 0x02, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x7f, 0xf9, 0x00, 0x02, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
)
