package bme280

// Oversampling is the register code of an oversampling setting
// (0 skipped, 1 x1, 2 x2, 3 x4, 4 x8, 5 x16).
type Oversampling uint8

// Samples returns the number of internal samples averaged for the setting.
func (o Oversampling) Samples() int {
	if o == 0 {
		return 0
	}
	if o > 5 {
		o = 5
	}
	return 1 << (o - 1)
}

// OversamplingPolicy holds the per-channel oversampling settings.
type OversamplingPolicy struct {
	Temperature Oversampling
	Pressure    Oversampling
	Humidity    Oversampling
}

// Registers is the register map used by the readers.
type Registers struct {
	ChipID uint8

	// 16-bit little endian words, T1 first, P9 last.
	TemperaturePressureCalib uint8
	H1                       uint8
	H2                       uint8
	H3                       uint8
	// H4 and H5 share three consecutive bytes starting here.
	H45 uint8
	H6  uint8

	CtrlHum  uint8
	CtrlMeas uint8
	Data     uint8
}

// Profile describes a device on a bus: where it lives, its register map and
// how it is asked to measure. A Profile is read-only once handed to New.
type Profile struct {
	Bus          int
	Address      uint16
	Registers    Registers
	Oversampling OversamplingPolicy
	// Mode is written to bits 0-1 of ctrl_meas. 2 triggers a single
	// conversion after which the device returns to sleep.
	Mode uint8
}

// DefaultProfile is a BME280 on bus 1 with SDO tied to ground.
var DefaultProfile = Profile{
	Bus:     1,
	Address: 0x76,
	Registers: Registers{
		ChipID:                   0xD0,
		TemperaturePressureCalib: 0x88,
		H1:                       0xA1,
		H2:                       0xE1,
		H3:                       0xE3,
		H45:                      0xE4,
		H6:                       0xE7,
		CtrlHum:                  0xF2,
		CtrlMeas:                 0xF4,
		Data:                     0xF7,
	},
	Oversampling: OversamplingPolicy{
		Temperature: 2,
		Pressure:    2,
		Humidity:    2,
	},
	Mode: 2,
}

// ctrlMeas packs temperature oversampling (bits 5-7), pressure oversampling
// (bits 2-4) and mode (bits 0-1).
func (p *Profile) ctrlMeas() uint8 {
	return uint8(p.Oversampling.Temperature&0x07)<<5 |
		uint8(p.Oversampling.Pressure&0x07)<<2 |
		p.Mode&0x03
}
