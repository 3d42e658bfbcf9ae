package conn

import (
	"fmt"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// OpenSPI opens the numbered SPI bus with the numbered device, or the first available port if
// bus is negative. The device often corresponds to the CS pin for that bus.
func OpenSPI(bus, device int) (spi.PortCloser, error) {
	return spireg.Open(spiName(bus, device))
}

func spiName(bus, device int) string {
	if bus < 0 {
		return ""
	}
	return fmt.Sprintf("SPI%d.%d", bus, device)
}
