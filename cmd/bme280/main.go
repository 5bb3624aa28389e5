package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/multierr"
	"kernel.org/pub/linux/libs/security/libcap/cap"

	"github.com/walkure/bmeprobe/pkg/bme280"
	"github.com/walkure/bmeprobe/pkg/metrics"
	"github.com/walkure/bmeprobe/pkg/revision"
)

var logLevel = flag.String("loglevel", "WARN", "Log Level")
var driver = flag.String("driver", "periph", "I2C backend: periph or d2r2")
var format = flag.String("format", "text", "Output format: text or openmetrics")
var doCrossCheck = flag.Bool("crosscheck", false, "Read again through periph bmxx80 driver and log the difference")
var aboveSeaLevel = flag.Float64("above_sea_level", 0, "Height above sea level (openmetrics pressure)")
var place = flag.String("place", "inside", "place label (openmetrics)")

// name of binary file populated at build-time
var binName = ""

type busCloser interface {
	bme280.Bus
	io.Closer
}

func main() {

	flag.Usage = revision.Usage(binName, "Reads a BME280 once and prints temperature, pressure and humidity.")
	flag.Parse()

	logger := initLogger(*logLevel, os.Stderr)
	logger.Debug("procinfo", slog.String("cap", cap.GetProc().String()))

	if err := run(os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error:%s\n", err.Error())
		os.Exit(1)
	}
}

func openBus(name string, p *bme280.Profile) (busCloser, error) {
	switch name {
	case "periph":
		return bme280.OpenPeriph(p)
	case "d2r2":
		return bme280.OpenD2R2(p)
	default:
		return nil, fmt.Errorf("unknown driver %q", name)
	}
}

func run(w io.Writer, logger *slog.Logger) (err error) {
	profile := bme280.DefaultProfile

	logger.Info("arguments",
		slog.String("driver", *driver),
		slog.Int("bus", profile.Bus),
		slog.String("address", fmt.Sprintf("0x%02x", profile.Address)),
	)

	bus, err := openBus(*driver, &profile)
	if err != nil {
		return err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(bus))

	report, err := bme280.New(bus, &profile).Measure()
	if err != nil {
		return err
	}

	if *doCrossCheck {
		if err := runCrossCheck(bus, &profile, report.Reading, logger); err != nil {
			logger.Warn("crosscheck failed", slog.Any("err", err))
		}
	}

	return writeReport(w, *format, report, metrics.Labels{"place": *place}, *aboveSeaLevel)
}

// runCrossCheck reuses the periph bus when that is the active backend and
// opens one otherwise.
func runCrossCheck(bus busCloser, p *bme280.Profile, ours bme280.Reading, logger *slog.Logger) (err error) {
	pb, ok := bus.(*bme280.PeriphBus)
	if !ok {
		pb, err = bme280.OpenPeriph(p)
		if err != nil {
			return err
		}
		defer multierr.AppendInvoke(&err, multierr.Close(pb))
	}
	return crossCheck(pb.Conn(), p, ours, logger)
}
