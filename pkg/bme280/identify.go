package bme280

import "fmt"

// Identity is the content of the two identification registers.
type Identity struct {
	ChipID  uint8
	Version uint8
}

func (id Identity) String() string {
	return fmt.Sprintf("chip id 0x%02x, version 0x%02x", id.ChipID, id.Version)
}

// Identify reads the chip id block.
func (s *Sensor) Identify() (Identity, error) {
	data, err := readBlock(s.bus, s.profile.Registers.ChipID, 2)
	if err != nil {
		return Identity{}, err
	}
	id := Identity{ChipID: data[0], Version: data[1]}
	s.logger.Debug("identified", "id", id.String())
	return id, nil
}
