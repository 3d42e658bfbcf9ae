package display

// SSD1xxx command set, see the SSD1306 datasheet chapter 9.
const (
	setLowColumn          = 0x00
	setHighColumn         = 0x10
	setMemoryMode         = 0x20
	setColumnAddr         = 0x21
	setPageAddr           = 0x22
	setStartLine          = 0x40
	setContrast           = 0x81
	setChargePump         = 0x8D
	setRemap              = 0xA0
	setSegmentRemap       = 0xA1
	setDisplayAllOnResume = 0xA4
	setDisplayAllOn       = 0xA5
	setNormalDisplay      = 0xA6
	setInvertDisplay      = 0xA7
	setMultiplexRatio     = 0xA8
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setPageStart          = 0xB0
	setComScanInc         = 0xC0
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDetect         = 0xDB
)

// Memory addressing modes (setMemoryMode argument).
const (
	horizontalAddressing = 0x00
	verticalAddressing   = 0x01
	pageAddressing       = 0x02
)

// Control bytes prefixed to every I²C transfer.
const (
	i2cCommand = 0x80 // Co=1, D/C#=0: one command byte follows
	i2cData    = 0x40 // Co=0, D/C#=1: the rest of the transfer is display RAM data
)
