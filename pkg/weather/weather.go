// Package weather derives comfort and sea-level quantities from a
// temperature/humidity/pressure reading.
package weather

import "math"

// AbsoluteHumidity returns g/m^3 for a temperature in °C and relative
// humidity in percent.
func AbsoluteHumidity(temp, relativeHumid float64) float64 {
	vaporPressureSat := 6.1078 * math.Pow(10, 7.5*temp/(temp+237.7))
	vaporAmountSat := 217 * vaporPressureSat / (temp + 273.15)

	return vaporAmountSat * relativeHumid / 100
}

// DisconfortIndex is the temperature-humidity index used in Japan.
func DisconfortIndex(temp, relativeHumid float64) float64 {
	return 0.81*temp + 0.01*relativeHumid*(0.99*temp-14.3) + 46.3
}

// MeanHeightAirPressure reduces a station pressure to mean sea level.
// Heights at or below zero return the pressure unchanged.
func MeanHeightAirPressure(pressure, temp, height float64) float64 {
	if height <= 0 {
		return pressure
	}

	kelvin := temp + 273.15
	return pressure * math.Pow(kelvin/(kelvin+0.0065*height), -5.257)
}
