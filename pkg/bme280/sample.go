package bme280

import (
	"log/slog"
	"time"
)

// RawSample is one uncompensated ADC output set.
type RawSample struct {
	Pressure    uint32 // 20 bit
	Temperature uint32 // 20 bit
	Humidity    uint32 // 16 bit
}

// MeasurementDelay is the worst case conversion time for the oversampling
// policy:
//
//	1.25 + 2.3*T + 2.3*P + 0.575 + 2.3*H + 0.575 ms
//
// where T, P and H are sample counts. The sum is taken in microseconds and
// rounded up to a whole millisecond.
func MeasurementDelay(policy OversamplingPolicy) time.Duration {
	us := 1250 +
		2300*policy.Temperature.Samples() +
		2300*policy.Pressure.Samples() + 575 +
		2300*policy.Humidity.Samples() + 575
	ms := (us + 999) / 1000
	return time.Duration(ms) * time.Millisecond
}

// ReadRaw triggers a conversion, waits for it and reads back the data block.
func (s *Sensor) ReadRaw() (RawSample, error) {
	regs := s.profile.Registers

	if err := writeRegister(s.bus, regs.CtrlHum, uint8(s.profile.Oversampling.Humidity&0x07)); err != nil {
		return RawSample{}, err
	}
	// ctrl_hum only takes effect after a write to ctrl_meas.
	if err := writeRegister(s.bus, regs.CtrlMeas, s.profile.ctrlMeas()); err != nil {
		return RawSample{}, err
	}

	wait := MeasurementDelay(s.profile.Oversampling)
	s.logger.Debug("waiting for conversion", slog.Duration("wait", wait))
	s.sleep(wait)

	data, err := readBlock(s.bus, regs.Data, 8)
	if err != nil {
		return RawSample{}, err
	}

	var b [8]byte
	copy(b[:], data)
	raw := unpackRaw(b)
	s.logger.Debug("raw sample",
		slog.Uint64("pressure", uint64(raw.Pressure)),
		slog.Uint64("temperature", uint64(raw.Temperature)),
		slog.Uint64("humidity", uint64(raw.Humidity)),
	)
	return raw, nil
}

// unpackRaw splits the data block into its three ADC values. The xlsb byte
// of pressure and temperature is shifted right by 12, so it never contributes
// and the 20-bit values keep their low nibble at zero.
func unpackRaw(b [8]byte) RawSample {
	return RawSample{
		Pressure:    uint32(b[0])<<12 | uint32(b[1])<<4 | uint32(b[2])>>12,
		Temperature: uint32(b[3])<<12 | uint32(b[4])<<4 | uint32(b[5])>>12,
		Humidity:    uint32(b[6])<<8 | uint32(b[7]),
	}
}
