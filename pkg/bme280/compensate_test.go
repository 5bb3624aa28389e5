package bme280

import (
	"math"
	"math/rand"
	"testing"
)

func TestFineTemperature(t *testing.T) {
	got := FineTemperature(519888, testCalibration.Temperature)
	if got != 128422 {
		t.Errorf("FineTemperature() = %v, want 128422", got)
	}
	if c := Temperature(got); c != 2508 {
		t.Errorf("Temperature(%v) = %d, want 2508", got, c)
	}
}

func TestTemperatureBelowZero(t *testing.T) {
	// (-5120*5 + 128) >> 8 rounds toward minus infinity
	if got := Temperature(-5120); got != -100 {
		t.Errorf("Temperature(-5120) = %d, want -100", got)
	}
}

func TestPressure(t *testing.T) {
	got := Pressure(128422, testCalibration.Pressure, 415136)
	if math.Abs(got-100655.32957454264) > 1e-6 {
		t.Errorf("Pressure() = %v, want 100655.3296", got)
	}
}

func TestPressureZeroDivisor(t *testing.T) {
	c := testCalibration.Pressure
	c.P1 = 0

	for _, fine := range []float64{-200000, 0, 128422, 1e6} {
		if got := Pressure(fine, c, 415136); got != 0 {
			t.Errorf("Pressure(%v) with P1=0 = %v, want 0", fine, got)
		}
	}
}

func TestHumidity(t *testing.T) {
	got := Humidity(128422, testCalibration.Humidity, 30000)
	if math.Abs(got-51.08314257587679) > 1e-9 {
		t.Errorf("Humidity() = %v, want 51.0831", got)
	}
}

func TestHumiditySaturation(t *testing.T) {
	rnd := rand.New(rand.NewSource(280))

	for i := 0; i < 10000; i++ {
		c := HumidityCoefficients{
			H1: uint8(rnd.Intn(256)),
			H2: int16(rnd.Intn(65536) - 32768),
			H3: uint8(rnd.Intn(256)),
			H4: int16(rnd.Intn(4096) - 2048),
			H5: int16(rnd.Intn(4096) - 2048),
			H6: int8(rnd.Intn(256) - 128),
		}
		fine := float64(rnd.Int31()) - float64(rnd.Int31())
		raw := uint32(rnd.Intn(65536))

		got := Humidity(fine, c, raw)
		if math.IsNaN(got) || got < 0 || got > 100 {
			t.Fatalf("Humidity(%v, %+v, %d) = %v out of [0, 100]", fine, c, raw, got)
		}
	}
}

func TestHumidityClampEdges(t *testing.T) {
	c := testCalibration.Humidity

	if got := Humidity(128422, c, 0); got != 0 {
		t.Errorf("Humidity with raw 0 = %v, want 0", got)
	}
	if got := Humidity(128422, c, 0xFFFF); got != 100 {
		t.Errorf("Humidity with raw 0xffff = %v, want 100", got)
	}
	// overflows to +Inf, then H1 = 0 turns the last correction into NaN
	if got := Humidity(math.MaxFloat64, HumidityCoefficients{H2: 1, H3: 255, H6: 127}, 1); got != 0 {
		t.Errorf("Humidity with overflowing fine temperature = %v, want 0", got)
	}
}

func TestCompensate(t *testing.T) {
	raw := RawSample{Pressure: 415136, Temperature: 519888, Humidity: 30000}
	r := Compensate(&testCalibration, raw)

	if r.Temperature != 25.08 {
		t.Errorf("temperature = %v, want 25.08", r.Temperature)
	}
	if math.Abs(r.Pressure-1006.5532957454265) > 1e-8 {
		t.Errorf("pressure = %v, want 1006.5533", r.Pressure)
	}
	if math.Abs(r.Humidity-51.08314257587679) > 1e-9 {
		t.Errorf("humidity = %v, want 51.0831", r.Humidity)
	}

	env := r.Env()
	if c := env.Temperature.Celsius(); math.Abs(c-25.08) > 1e-6 {
		t.Errorf("env temperature = %v", env.Temperature)
	}
}
