package bme280

import (
	"errors"
	"time"

	"periph.io/x/conn/v3/i2c/i2ctest"
)

const testAddr = 0x76

// Datasheet example trimming with a plausible humidity set.
var testCalibration = Calibration{
	Temperature: TemperatureCoefficients{T1: 27504, T2: 26435, T3: -1000},
	Pressure: PressureCoefficients{
		P1: 36477, P2: -10685, P3: 3024, P4: 2855, P5: 140,
		P6: -7, P7: 15500, P8: -14600, P9: 6000,
	},
	Humidity: HumidityCoefficients{H1: 75, H2: 362, H3: 0, H4: 324, H5: 50, H6: 30},
}

var (
	opsIdentify = []i2ctest.IO{
		{Addr: testAddr, W: []byte{0xD0}, R: []byte{0x60, 0x00}},
	}

	opsCalibration = []i2ctest.IO{
		{Addr: testAddr, W: []byte{0x88}, R: []byte{0x70, 0x6B}},       // T1 27504
		{Addr: testAddr, W: []byte{0x8A}, R: []byte{0x43, 0x67}},       // T2 26435
		{Addr: testAddr, W: []byte{0x8C}, R: []byte{0x18, 0xFC}},       // T3 -1000
		{Addr: testAddr, W: []byte{0x8E}, R: []byte{0x7D, 0x8E}},       // P1 36477
		{Addr: testAddr, W: []byte{0x90}, R: []byte{0x43, 0xD6}},       // P2 -10685
		{Addr: testAddr, W: []byte{0x92}, R: []byte{0xD0, 0x0B}},       // P3 3024
		{Addr: testAddr, W: []byte{0x94}, R: []byte{0x27, 0x0B}},       // P4 2855
		{Addr: testAddr, W: []byte{0x96}, R: []byte{0x8C, 0x00}},       // P5 140
		{Addr: testAddr, W: []byte{0x98}, R: []byte{0xF9, 0xFF}},       // P6 -7
		{Addr: testAddr, W: []byte{0x9A}, R: []byte{0x8C, 0x3C}},       // P7 15500
		{Addr: testAddr, W: []byte{0x9C}, R: []byte{0xF8, 0xC6}},       // P8 -14600
		{Addr: testAddr, W: []byte{0x9E}, R: []byte{0x70, 0x17}},       // P9 6000
		{Addr: testAddr, W: []byte{0xA1}, R: []byte{0x4B}},             // H1 75
		{Addr: testAddr, W: []byte{0xE1}, R: []byte{0x6A, 0x01}},       // H2 362
		{Addr: testAddr, W: []byte{0xE3}, R: []byte{0x00}},             // H3 0
		{Addr: testAddr, W: []byte{0xE4}, R: []byte{0x14, 0x24, 0x03}}, // H4 324, H5 50
		{Addr: testAddr, W: []byte{0xE7}, R: []byte{0x1E}},             // H6 30
	}

	opsSample = []i2ctest.IO{
		{Addr: testAddr, W: []byte{0xF2, 0x02}},
		{Addr: testAddr, W: []byte{0xF4, 0x4A}},
		{Addr: testAddr, W: []byte{0xF7}, R: []byte{0x65, 0x5A, 0xC0, 0x7E, 0xED, 0x00, 0x75, 0x30}},
	}
)

func concatOps(sets ...[]i2ctest.IO) []i2ctest.IO {
	var ops []i2ctest.IO
	for _, s := range sets {
		ops = append(ops, s...)
	}
	return ops
}

// newTestSensor returns a sensor replaying ops and the list of requested sleeps.
func newTestSensor(ops ...[]i2ctest.IO) (*Sensor, *i2ctest.Playback, *[]time.Duration) {
	pb := &i2ctest.Playback{Ops: concatOps(ops...), DontPanic: true}
	s := New(NewPeriphBus(pb, testAddr), nil)
	var slept []time.Duration
	s.sleep = func(d time.Duration) { slept = append(slept, d) }
	return s, pb, &slept
}

var errInjected = errors.New("injected failure")

// failingBus fails every access to one register.
type failingBus struct {
	Bus
	reg uint8
}

func (f *failingBus) ReadBlock(reg uint8, n int) ([]byte, error) {
	if reg == f.reg {
		return nil, errInjected
	}
	return f.Bus.ReadBlock(reg, n)
}

func (f *failingBus) ReadWord(reg uint8) (uint16, error) {
	if reg == f.reg {
		return 0, errInjected
	}
	return f.Bus.ReadWord(reg)
}

func (f *failingBus) WriteRegister(reg, value uint8) error {
	if reg == f.reg {
		return errInjected
	}
	return f.Bus.WriteRegister(reg, value)
}

// shortBus returns one byte less than asked for.
type shortBus struct {
	Bus
}

func (s shortBus) ReadBlock(reg uint8, n int) ([]byte, error) {
	data, err := s.Bus.ReadBlock(reg, n)
	if err != nil || len(data) == 0 {
		return data, err
	}
	return data[:len(data)-1], nil
}
