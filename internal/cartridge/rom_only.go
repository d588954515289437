package cartridge

import "github.com/richardwooding/lr35902/internal/rom"

// romOnly is a cartridge with no bank controller: up to 32 KiB of ROM and
// optional external RAM, both mapped straight through.
type romOnly struct {
	rom *rom.ROM
	ram []byte
}

func newRomOnly(r *rom.ROM) *romOnly {
	c := &romOnly{rom: r}
	if hasRAM(r.Kind()) {
		if size := ramSizeBytes(r.RAMSizeByte()); size > 0 {
			c.ram = make([]byte, size)
		}
	}
	return c
}

// ReadByte returns data[A] for A in 0x0000-0x7FFF and the external RAM
// byte for A in 0xA000-0xBFFF when RAM is present. Any other address, and
// any RAM-region address with no RAM behind it, returns 0xFF instead of
// panicking.
func (c *romOnly) ReadByte(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		data := c.rom.Bytes()
		if int(addr) < len(data) {
			return data[addr]
		}
		return 0xFF
	case addr >= 0xA000 && addr < 0xC000:
		if c.ram == nil {
			return 0xFF
		}
		ramAddr := addr - 0xA000
		if int(ramAddr) < len(c.ram) {
			return c.ram[ramAddr]
		}
		return 0xFF
	default:
		return 0xFF
	}
}

// WriteByte ignores writes to ROM (not writable) and stores into external
// RAM when present.
func (c *romOnly) WriteByte(addr uint16, value uint8) {
	if addr < 0xA000 || addr >= 0xC000 {
		return
	}
	if c.ram == nil {
		return
	}
	ramAddr := addr - 0xA000
	if int(ramAddr) < len(c.ram) {
		c.ram[ramAddr] = value
	}
}

// ReadWord composes two byte reads little-endian: ReadWord(a) =
// makeU16(ReadByte(a+1), ReadByte(a)).
func (c *romOnly) ReadWord(addr uint16) uint16 {
	return makeU16(c.ReadByte(addr+1), c.ReadByte(addr))
}

// WriteWord is a no-op: ROM is not writable. External RAM in this layer
// is byte-addressed only, matching what the bus ever asks a cartridge to
// do with (A000-BFFF) word access.
func (c *romOnly) WriteWord(_ uint16, _ uint16) {}

func (c *romOnly) ROM() *rom.ROM { return c.rom }

func (c *romOnly) HasBattery() bool { return hasBattery(c.rom.Kind()) }

func (c *romOnly) RAM() []byte {
	if c.ram == nil {
		return nil
	}
	out := make([]byte, len(c.ram))
	copy(out, c.ram)
	return out
}

func (c *romOnly) SetRAM(data []byte) {
	if c.ram == nil {
		return
	}
	n := len(data)
	if n > len(c.ram) {
		n = len(c.ram)
	}
	copy(c.ram, data[:n])
}
