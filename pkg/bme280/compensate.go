package bme280

import (
	"math"

	"periph.io/x/conn/v3/physic"
)

// Reading is a compensated measurement.
type Reading struct {
	Temperature float64 // °C
	Pressure    float64 // hPa
	Humidity    float64 // %RH, within [0, 100]
}

// Env converts the reading to periph physical units.
func (r Reading) Env() physic.Env {
	return physic.Env{
		Temperature: physic.ZeroCelsius + physic.Temperature(r.Temperature*float64(physic.Celsius)),
		Pressure:    physic.Pressure(r.Pressure * 100 * float64(physic.Pascal)),
		Humidity:    physic.RelativeHumidity(r.Humidity * float64(physic.PercentRH)),
	}
}

// Compensate converts a raw sample. The fine temperature is computed once and
// shared by the pressure and humidity formulas.
func Compensate(c *Calibration, raw RawSample) Reading {
	fine := FineTemperature(raw.Temperature, c.Temperature)
	return Reading{
		Temperature: float64(Temperature(fine)) / 100.0,
		Pressure:    Pressure(fine, c.Pressure, raw.Pressure) / 100.0,
		Humidity:    Humidity(fine, c.Humidity, raw.Humidity),
	}
}

// FineTemperature is the shared intermediate of the Bosch integer
// temperature formula.
func FineTemperature(rawT uint32, c TemperatureCoefficients) float64 {
	adc := int32(rawT)
	t1 := int32(c.T1)

	var1 := (((adc >> 3) - (t1 << 1)) * int32(c.T2)) >> 11
	d := (adc >> 4) - t1
	var2 := (((d * d) >> 12) * int32(c.T3)) >> 14

	return float64(var1 + var2)
}

// Temperature returns hundredths of a degree Celsius.
func Temperature(fineT float64) int32 {
	return (int32(fineT)*5 + 128) >> 8
}

// Pressure returns Pa. A zero divisor yields 0, which the device reference
// uses to flag an unusable calibration.
func Pressure(fineT float64, c PressureCoefficients, rawP uint32) float64 {
	var1 := fineT/2.0 - 64000.0
	var2 := var1 * var1 * float64(c.P6) / 32768.0
	var2 = var2 + var1*float64(c.P5)*2.0
	var2 = var2/4.0 + float64(c.P4)*65536.0
	var1 = (float64(c.P3)*var1*var1/524288.0 + float64(c.P2)*var1) / 524288.0
	var1 = (1.0 + var1/32768.0) * float64(c.P1)
	if var1 == 0 {
		return 0
	}

	p := 1048576.0 - float64(rawP)
	p = (p - var2/4096.0) * 6250.0 / var1
	var1 = float64(c.P9) * p * p / 2147483648.0
	var2 = p * float64(c.P8) / 32768.0
	return p + (var1+var2+float64(c.P7))/16.0
}

// Humidity returns relative humidity in percent, saturated to [0, 100].
func Humidity(fineT float64, c HumidityCoefficients, rawH uint32) float64 {
	h := fineT - 76800.0
	h = (float64(rawH) - (float64(c.H4)*64.0 + float64(c.H5)/16384.0*h)) *
		(float64(c.H2) / 65536.0 * (1.0 + float64(c.H6)/67108864.0*h*(1.0+float64(c.H3)/67108864.0*h)))
	h = h * (1.0 - float64(c.H1)*h/524288.0)

	switch {
	case math.IsNaN(h), h < 0:
		return 0
	case h > 100:
		return 100
	}
	return h
}
