package bme280

import (
	"errors"
	"fmt"
)

// Bus is the register level access the readers need. Implementations talk to
// a single device whose address was fixed when the bus was opened.
type Bus interface {
	// ReadBlock reads n consecutive registers starting at reg.
	ReadBlock(reg uint8, n int) ([]byte, error)
	// ReadWord reads a little endian 16-bit word at reg.
	ReadWord(reg uint8) (uint16, error)
	// WriteRegister writes a single byte to reg.
	WriteRegister(reg, value uint8) error
}

// ErrShortRead is wrapped in a BusError when a backend returns fewer bytes
// than requested.
var ErrShortRead = errors.New("short read")

// BusError reports a failed bus operation. It is the only error kind returned
// by the readers.
type BusError struct {
	Op       string
	Register uint8
	Err      error
}

func (e *BusError) Error() string {
	if e.Op == "open" {
		return fmt.Sprintf("bme280: open: %v", e.Err)
	}
	return fmt.Sprintf("bme280: %s register 0x%02x: %v", e.Op, e.Register, e.Err)
}

func (e *BusError) Unwrap() error {
	return e.Err
}

func busError(op string, reg uint8, err error) error {
	var be *BusError
	if errors.As(err, &be) {
		return err
	}
	return &BusError{Op: op, Register: reg, Err: err}
}

func readBlock(b Bus, reg uint8, n int) ([]byte, error) {
	data, err := b.ReadBlock(reg, n)
	if err != nil {
		return nil, busError("read", reg, err)
	}
	if len(data) != n {
		return nil, busError("read", reg, fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, len(data), n))
	}
	return data, nil
}

func readByte(b Bus, reg uint8) (uint8, error) {
	data, err := readBlock(b, reg, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

func readWord(b Bus, reg uint8) (uint16, error) {
	v, err := b.ReadWord(reg)
	if err != nil {
		return 0, busError("read", reg, err)
	}
	return v, nil
}

func writeRegister(b Bus, reg, value uint8) error {
	if err := b.WriteRegister(reg, value); err != nil {
		return busError("write", reg, err)
	}
	return nil
}
