// Package memory implements the Game Boy 64 KiB address space and its
// region-specific read/write policy: cartridge delegation, work-RAM echo,
// the unusable region, and interrupt-flag bit masking.
package memory

import (
	"github.com/richardwooding/lr35902/internal/cartridge"
	"github.com/richardwooding/lr35902/internal/gberr"
)

// regIF is the interrupt-flag register address.
const regIF = 0xFF0F

// ifUnusedBits is the fixed value always read back in the top three bits
// of the interrupt-flag register; only the low 5 bits are writable.
const ifUnusedBits = 0xE0

// Bus is the Game Boy's 64 KiB memory-mapped address space. Addresses
// 0x0000-0x7FFF and 0xA000-0xBFFF delegate to the attached Cartridge;
// every other address is backed directly by the bus.
type Bus struct {
	cartridge cartridge.Cartridge
	data      [0x10000]uint8
}

// NewBus returns a Bus with no cartridge attached and the interrupt-flag
// register at its power-on value.
func NewBus() *Bus {
	b := &Bus{}
	b.data[regIF] = ifUnusedBits
	return b
}

// SetCartridge attaches a cartridge to the bus. A nil cartridge makes the
// ROM and external-RAM regions read as 0xFF and ignore writes.
func (b *Bus) SetCartridge(cart cartridge.Cartridge) {
	b.cartridge = cart
}

// Cartridge returns the currently attached cartridge, or nil.
func (b *Bus) Cartridge() cartridge.Cartridge {
	return b.cartridge
}

// ReadByte reads a single byte from the address space.
func (b *Bus) ReadByte(addr uint16) uint8 {
	switch {
	case addr < 0x8000:
		if b.cartridge != nil {
			return b.cartridge.ReadByte(addr)
		}
		return 0xFF

	case addr >= 0xA000 && addr < 0xC000:
		if b.cartridge != nil {
			return b.cartridge.ReadByte(addr)
		}
		return 0xFF

	case addr >= 0xE000 && addr < 0xFE00:
		return b.data[addr-0x2000] // echoes C000-DDFF

	case addr >= 0xFEA0 && addr < 0xFF00:
		return 0x00 // unusable region

	case addr == regIF:
		return b.data[regIF] | ifUnusedBits

	default:
		return b.data[addr]
	}
}

// WriteByte writes a single byte to the address space.
func (b *Bus) WriteByte(addr uint16, value uint8) {
	switch {
	case addr < 0x8000:
		if b.cartridge != nil {
			b.cartridge.WriteByte(addr, value)
		}

	case addr >= 0xA000 && addr < 0xC000:
		if b.cartridge != nil {
			b.cartridge.WriteByte(addr, value)
		}

	case addr >= 0xC000 && addr < 0xDE00:
		b.data[addr] = value
		b.data[addr+0x2000] = value // mirrored forward into echo RAM

	case addr >= 0xDE00 && addr < 0xE000:
		b.data[addr] = value

	case addr >= 0xE000 && addr < 0xFE00:
		b.data[addr] = value
		b.data[addr-0x2000] = value // mirrored back into work RAM

	case addr >= 0xFEA0 && addr < 0xFF00:
		// unusable region: writes are dropped

	case addr == regIF:
		b.data[regIF] = (value & 0x1F) | ifUnusedBits

	default:
		b.data[addr] = value
	}
}

// ReadWord reads a little-endian 16-bit word: low byte at addr, high byte
// at addr+1.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := b.ReadByte(addr)
	hi := b.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian 16-bit word: low byte at addr, high
// byte at addr+1.
func (b *Bus) WriteWord(addr uint16, value uint16) {
	b.WriteByte(addr, uint8(value))
	b.WriteByte(addr+1, uint8(value>>8))
}

// Load copies data into the address space starting at start, failing with
// MemoryLoadOutOfBounds if the range overruns the 64 KiB space. Load
// bypasses cartridge delegation and region policy; it exists for test
// fixtures and bulk initialization, not emulated CPU access.
func (b *Bus) Load(data []byte, start uint32) error {
	size := uint32(len(data))
	if start+size > 0x10000 {
		return gberr.NewMemoryLoadOutOfBounds(start, size)
	}
	for i, v := range data {
		b.data[start+uint32(i)] = v
	}
	return nil
}
