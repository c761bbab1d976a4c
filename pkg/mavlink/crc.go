package mavlink

// x25 implements the CRC-16/X25 accumulator used by MAVLink framing.
type x25 struct {
	crc uint16
}

func newX25() x25 {
	return x25{crc: 0xffff}
}

func (c *x25) add(b byte) {
	tmp := b ^ byte(c.crc&0xff)
	tmp ^= tmp << 4
	c.crc = (c.crc >> 8) ^ (uint16(tmp) << 8) ^ (uint16(tmp) << 3) ^ (uint16(tmp) >> 4)
}

func (c *x25) addBytes(p []byte) {
	for _, b := range p {
		c.add(b)
	}
}

func (c *x25) sum() uint16 {
	return c.crc
}
