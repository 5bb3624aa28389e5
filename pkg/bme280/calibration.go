package bme280

import "log/slog"

// TemperatureCoefficients are dig_T1..dig_T3.
type TemperatureCoefficients struct {
	T1 uint16
	T2 int16
	T3 int16
}

// PressureCoefficients are dig_P1..dig_P9.
type PressureCoefficients struct {
	P1 uint16
	P2 int16
	P3 int16
	P4 int16
	P5 int16
	P6 int16
	P7 int16
	P8 int16
	P9 int16
}

// HumidityCoefficients are dig_H1..dig_H6. H4 and H5 are 12-bit signed values.
type HumidityCoefficients struct {
	H1 uint8
	H2 int16
	H3 uint8
	H4 int16
	H5 int16
	H6 int8
}

// Calibration is the factory trimming stored in the device.
type Calibration struct {
	Temperature TemperatureCoefficients
	Pressure    PressureCoefficients
	Humidity    HumidityCoefficients
}

// ReadCalibration reads every compensation coefficient. Either all reads
// succeed or no calibration is returned.
func (s *Sensor) ReadCalibration() (*Calibration, error) {
	regs := s.profile.Registers

	// T1..T3 and P1..P9 are twelve consecutive words.
	var words [12]uint16
	for i := range words {
		reg := regs.TemperaturePressureCalib + uint8(2*i)
		w, err := readWord(s.bus, reg)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}

	h1, err := readByte(s.bus, regs.H1)
	if err != nil {
		return nil, err
	}
	h2, err := readWord(s.bus, regs.H2)
	if err != nil {
		return nil, err
	}
	h3, err := readByte(s.bus, regs.H3)
	if err != nil {
		return nil, err
	}
	h45, err := readBlock(s.bus, regs.H45, 3)
	if err != nil {
		return nil, err
	}
	h6, err := readByte(s.bus, regs.H6)
	if err != nil {
		return nil, err
	}

	h4, h5 := unpackH45([3]byte{h45[0], h45[1], h45[2]})

	c := &Calibration{
		Temperature: TemperatureCoefficients{
			T1: words[0],
			T2: int16(words[1]),
			T3: int16(words[2]),
		},
		Pressure: PressureCoefficients{
			P1: words[3],
			P2: int16(words[4]),
			P3: int16(words[5]),
			P4: int16(words[6]),
			P5: int16(words[7]),
			P6: int16(words[8]),
			P7: int16(words[9]),
			P8: int16(words[10]),
			P9: int16(words[11]),
		},
		Humidity: HumidityCoefficients{
			H1: h1,
			H2: int16(h2),
			H3: h3,
			H4: h4,
			H5: h5,
			H6: int8(h6),
		},
	}

	s.logger.Debug("calibration loaded",
		slog.Any("temperature", c.Temperature),
		slog.Any("pressure", c.Pressure),
		slog.Any("humidity", c.Humidity),
	)
	return c, nil
}

// unpackH45 decodes the two 12-bit coefficients sharing registers 0xE4..0xE6.
// H4 is b[0] as the upper 8 bits plus the low nibble of b[1]; H5 is b[2] as the
// upper 8 bits plus the high nibble of b[1]. The upper byte is placed at the top
// of an int32 and shifted back with an arithmetic shift so its sign carries.
func unpackH45(b [3]byte) (h4, h5 int16) {
	h4 = int16(int32(uint32(b[0])<<24)>>20 | int32(b[1]&0x0F))
	h5 = int16(int32(uint32(b[2])<<24)>>20 | int32(b[1]>>4))
	return h4, h5
}
