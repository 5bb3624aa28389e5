package main

import (
	"fmt"
	"log/slog"

	"go.uber.org/multierr"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/bmxx80"

	"github.com/walkure/bmeprobe/pkg/bme280"
)

// readingDelta is ours minus the reference driver's.
type readingDelta struct {
	Temperature float64
	Pressure    float64
	Humidity    float64
}

func envToReading(env physic.Env) bme280.Reading {
	return bme280.Reading{
		Temperature: env.Temperature.Celsius(),
		Pressure:    float64(env.Pressure) / float64(physic.Pascal*100),
		Humidity:    float64(env.Humidity) / float64(physic.PercentRH),
	}
}

func delta(ours, ref bme280.Reading) readingDelta {
	return readingDelta{
		Temperature: ours.Temperature - ref.Temperature,
		Pressure:    ours.Pressure - ref.Pressure,
		Humidity:    ours.Humidity - ref.Humidity,
	}
}

// crossCheck takes a second reading through periph's bmxx80 driver with the
// same oversampling and logs how far apart the two are.
func crossCheck(bus i2c.Bus, p *bme280.Profile, ours bme280.Reading, logger *slog.Logger) (err error) {
	dev, err := bmxx80.NewI2C(bus, p.Address, &bmxx80.Opts{
		Temperature: bmxx80.Oversampling(p.Oversampling.Temperature),
		Pressure:    bmxx80.Oversampling(p.Oversampling.Pressure),
		Humidity:    bmxx80.Oversampling(p.Oversampling.Humidity),
	})
	if err != nil {
		return fmt.Errorf("BMxx80 open: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Invoke(dev.Halt))

	var env physic.Env
	if err := dev.Sense(&env); err != nil {
		return fmt.Errorf("BMxx80 sense: %w", err)
	}

	ref := envToReading(env)
	d := delta(ours, ref)
	logger.Info("crosscheck",
		slog.String("driver", dev.String()),
		slog.Float64("temperature", ref.Temperature),
		slog.Float64("pressure", ref.Pressure),
		slog.Float64("humidity", ref.Humidity),
		slog.Float64("temperature_delta", d.Temperature),
		slog.Float64("pressure_delta", d.Pressure),
		slog.Float64("humidity_delta", d.Humidity),
	)
	return nil
}
