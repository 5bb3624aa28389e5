package bme280

import (
	"fmt"
	"io"
	"strconv"
)

// WriteText writes the identity and the reading as four lines: temperature
// with as many digits as needed, pressure with 4 decimals and humidity with 2.
func (r Report) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\nTemperature: %s C\nPressure: %.4f hPa\nHumidity: %.2f %%\n",
		r.Identity,
		strconv.FormatFloat(r.Reading.Temperature, 'f', -1, 64),
		r.Reading.Pressure,
		r.Reading.Humidity,
	)
	return err
}
