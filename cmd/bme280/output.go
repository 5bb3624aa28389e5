package main

import (
	"fmt"
	"io"

	"github.com/walkure/bmeprobe/pkg/bme280"
	"github.com/walkure/bmeprobe/pkg/metrics"
	"github.com/walkure/bmeprobe/pkg/weather"
)

func writeReport(w io.Writer, format string, report bme280.Report, labels metrics.Labels, height float64) error {
	switch format {
	case "text":
		return report.WriteText(w)
	case "openmetrics":
		return writeOpenMetrics(w, report.Reading, labels, height)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeOpenMetrics(w io.Writer, r bme280.Reading, labels metrics.Labels, height float64) error {
	s := metrics.MetricSet{}
	temperature := metrics.NewGauge("temperature", "Temperature")
	relativeHumidity := metrics.NewGauge("relative_humidity", "Relative Humidity percent")
	absoluteHumidity := metrics.NewGauge("absolute_humidity", "Absolute Humidity g/m3")
	disconfortIndex := metrics.NewGauge("disconfort_index", "Disconfort Index")
	airPressure := metrics.NewGauge("pressure", "Air Pressure hPa")

	s.Add(temperature, relativeHumidity, absoluteHumidity, disconfortIndex, airPressure)

	temperature.Set(labels, metrics.RoundFloat64{Value: r.Temperature, Precision: 2})
	relativeHumidity.Set(labels, metrics.RoundFloat64{Value: r.Humidity, Precision: 2})
	absoluteHumidity.Set(labels, metrics.RoundFloat64{
		Value:     weather.AbsoluteHumidity(r.Temperature, r.Humidity),
		Precision: 2,
	})
	disconfortIndex.Set(labels, metrics.RoundFloat64{
		Value:     weather.DisconfortIndex(r.Temperature, r.Humidity),
		Precision: 2,
	})
	airPressure.Set(labels, metrics.RoundFloat64{
		Value:     weather.MeanHeightAirPressure(r.Pressure, r.Temperature, height),
		Precision: 2,
	})

	return s.Write(w)
}
