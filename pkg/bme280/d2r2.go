package bme280

import (
	"fmt"

	gi2c "github.com/d2r2/go-i2c"
)

// D2R2Bus talks to the device through /dev/i2c-N using github.com/d2r2/go-i2c.
type D2R2Bus struct {
	i2c *gi2c.I2C
}

// OpenD2R2 opens the bus and device address named by p.
func OpenD2R2(p *Profile) (*D2R2Bus, error) {
	if p.Address > 0x7f {
		return nil, &BusError{Op: "open", Err: fmt.Errorf("address 0x%x out of 7-bit range", p.Address)}
	}

	i2c, err := gi2c.NewI2C(uint8(p.Address), p.Bus)
	if err != nil {
		return nil, &BusError{Op: "open", Err: fmt.Errorf("cannot open i2c device:%w", err)}
	}
	return &D2R2Bus{i2c: i2c}, nil
}

func (d *D2R2Bus) ReadBlock(reg uint8, n int) ([]byte, error) {
	data, got, err := d.i2c.ReadRegBytes(reg, n)
	if err != nil {
		return nil, err
	}
	return data[:got], nil
}

func (d *D2R2Bus) ReadWord(reg uint8) (uint16, error) {
	return d.i2c.ReadRegU16LE(reg)
}

func (d *D2R2Bus) WriteRegister(reg, value uint8) error {
	return d.i2c.WriteRegU8(reg, value)
}

func (d *D2R2Bus) Close() error {
	return d.i2c.Close()
}
