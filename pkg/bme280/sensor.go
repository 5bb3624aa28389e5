package bme280

import (
	"log/slog"
	"time"

	loggerFactory "github.com/walkure/bmeprobe/pkg/logger"
)

// Sensor is a single session with one device. It owns the bus for its
// lifetime and is not safe for concurrent use.
type Sensor struct {
	bus     Bus
	profile Profile
	logger  *slog.Logger
	sleep   func(time.Duration)
}

// Report is the outcome of one full pipeline run.
type Report struct {
	Identity Identity
	Reading  Reading
}

// New returns a session on bus. A nil profile selects DefaultProfile.
func New(bus Bus, p *Profile) *Sensor {
	if p == nil {
		p = &DefaultProfile
	}
	return &Sensor{
		bus:     bus,
		profile: *p,
		logger:  loggerFactory.GetLogger("bme280"),
		sleep:   time.Sleep,
	}
}

// Measure identifies the device, loads its calibration, takes one raw sample
// and compensates it. The first failing step aborts the run.
func (s *Sensor) Measure() (Report, error) {
	id, err := s.Identify()
	if err != nil {
		return Report{}, err
	}

	cal, err := s.ReadCalibration()
	if err != nil {
		return Report{}, err
	}

	raw, err := s.ReadRaw()
	if err != nil {
		return Report{}, err
	}

	r := Compensate(cal, raw)
	s.logger.Info("measured",
		slog.Float64("temperature", r.Temperature),
		slog.Float64("pressure", r.Pressure),
		slog.Float64("humidity", r.Humidity),
	)

	return Report{Identity: id, Reading: r}, nil
}
