package bme280

import (
	"encoding/binary"
	"strconv"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// PeriphBus talks to the device through periph.io.
type PeriphBus struct {
	bus    i2c.Bus
	closer i2c.BusCloser
	d      *i2c.Dev
}

// OpenPeriph initializes the periph host drivers and opens the bus and
// device address named by p.
func OpenPeriph(p *Profile) (*PeriphBus, error) {
	if _, err := host.Init(); err != nil {
		return nil, &BusError{Op: "open", Err: err}
	}

	bc, err := i2creg.Open(strconv.Itoa(p.Bus))
	if err != nil {
		return nil, &BusError{Op: "open", Err: err}
	}

	pb := NewPeriphBus(bc, p.Address)
	pb.closer = bc
	return pb, nil
}

// NewPeriphBus wraps an already opened bus. Close does not close b.
func NewPeriphBus(b i2c.Bus, addr uint16) *PeriphBus {
	return &PeriphBus{
		bus: b,
		d:   &i2c.Dev{Bus: b, Addr: addr},
	}
}

// Conn returns the underlying bus, shared with other drivers.
func (p *PeriphBus) Conn() i2c.Bus {
	return p.bus
}

func (p *PeriphBus) ReadBlock(reg uint8, n int) ([]byte, error) {
	data := make([]byte, n)
	if err := p.d.Tx([]byte{reg}, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (p *PeriphBus) ReadWord(reg uint8) (uint16, error) {
	var data [2]byte
	if err := p.d.Tx([]byte{reg}, data[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data[:]), nil
}

func (p *PeriphBus) WriteRegister(reg, value uint8) error {
	return p.d.Tx([]byte{reg, value}, nil)
}

// Close releases the bus if it was opened by OpenPeriph.
func (p *PeriphBus) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}
