// Package pixel implements a monochrome color model and packed 1-bit images suitable for OLED
// pixel displays.
//
// The types are compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces.
package pixel
