// Package conn opens the hardware buses displays are attached to.
//
// Buses are looked up in the periph.io registries, so host.Init must have been called first.
package conn

import (
	"strconv"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// OpenI2C opens the numbered I²C bus, or the first available bus if device is negative.
func OpenI2C(device int) (i2c.BusCloser, error) {
	if device < 0 {
		return i2creg.Open("")
	}
	return i2creg.Open(strconv.Itoa(device))
}
