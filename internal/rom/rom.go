// Package rom validates and inspects a raw byte sequence as a Game Boy
// cartridge image, independent of any particular Memory Bank Controller.
package rom

import (
	"github.com/richardwooding/lr35902/internal/gberr"
)

// minSize is the smallest buffer that can back a ROM: one 32 KiB bank,
// covering the header at 0x0100-0x014F.
const minSize = 0x8000

// nintendoLogo is the fixed 48-byte bitmap every valid Game Boy cartridge
// header carries at 0x0104-0x0133. The boot ROM refuses to run a cartridge
// whose logo doesn't match this exactly.
var nintendoLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
	0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Header field offsets within the raw buffer.
const (
	offLogo             = 0x0104
	offTitle            = 0x0134
	titleLen            = 16
	offCartridgeType    = 0x0147
	offROMSize          = 0x0148
	offRAMSize          = 0x0149
	offHeaderChecksum   = 0x014D
	headerChecksumStart = 0x0134
	headerChecksumEnd   = 0x014D // inclusive
	offGlobalChecksumHi = 0x014E
	offGlobalChecksumLo = 0x014F
)

// headerChecksumSeed is the initial value of the 8-bit header checksum
// accumulator, per the cartridge header specification.
const headerChecksumSeed = 0x19

// Kind is the cartridge type byte at 0x0147, mapped to the ROM/MBC family
// it selects.
type Kind byte

// Cartridge kinds as defined in the header at 0x0147.
const (
	KindRomOnly                   Kind = 0x00
	KindMbc1                      Kind = 0x01
	KindMbc1Ram                   Kind = 0x02
	KindMbc1RamBattery            Kind = 0x03
	KindMbc2                      Kind = 0x05
	KindMbc2Battery               Kind = 0x06
	KindRomRam                    Kind = 0x08
	KindRomRamBattery             Kind = 0x09
	KindMmm01                     Kind = 0x0B
	KindMmm01Ram                  Kind = 0x0C
	KindMmm01RamBattery           Kind = 0x0D
	KindMbc3TimerBattery          Kind = 0x0F
	KindMbc3TimerRamBattery       Kind = 0x10
	KindMbc3                      Kind = 0x11
	KindMbc3Ram                   Kind = 0x12
	KindMbc3RamBattery            Kind = 0x13
	KindMbc5                      Kind = 0x19
	KindMbc5Ram                   Kind = 0x1A
	KindMbc5RamBattery            Kind = 0x1B
	KindMbc5Rumble                Kind = 0x1C
	KindMbc5RumbleRam             Kind = 0x1D
	KindMbc5RumbleRamBattery      Kind = 0x1E
	KindMbc6                      Kind = 0x20
	KindMbc7SensorRumbleRamBattery Kind = 0x22
	KindPocketCamera              Kind = 0xFC
	KindBandaiTama5               Kind = 0xFD
	KindHuC3                      Kind = 0xFE
	KindHuC1RamBattery            Kind = 0xFF
)

// String returns a human-readable name for the cartridge kind, or
// "unknown kind" for any byte value not in the closed set above.
func (k Kind) String() string {
	switch k {
	case KindRomOnly:
		return "ROM ONLY"
	case KindMbc1:
		return "MBC1"
	case KindMbc1Ram:
		return "MBC1+RAM"
	case KindMbc1RamBattery:
		return "MBC1+RAM+BATTERY"
	case KindMbc2:
		return "MBC2"
	case KindMbc2Battery:
		return "MBC2+BATTERY"
	case KindRomRam:
		return "ROM+RAM"
	case KindRomRamBattery:
		return "ROM+RAM+BATTERY"
	case KindMmm01:
		return "MMM01"
	case KindMmm01Ram:
		return "MMM01+RAM"
	case KindMmm01RamBattery:
		return "MMM01+RAM+BATTERY"
	case KindMbc3TimerBattery:
		return "MBC3+TIMER+BATTERY"
	case KindMbc3TimerRamBattery:
		return "MBC3+TIMER+RAM+BATTERY"
	case KindMbc3:
		return "MBC3"
	case KindMbc3Ram:
		return "MBC3+RAM"
	case KindMbc3RamBattery:
		return "MBC3+RAM+BATTERY"
	case KindMbc5:
		return "MBC5"
	case KindMbc5Ram:
		return "MBC5+RAM"
	case KindMbc5RamBattery:
		return "MBC5+RAM+BATTERY"
	case KindMbc5Rumble:
		return "MBC5+RUMBLE"
	case KindMbc5RumbleRam:
		return "MBC5+RUMBLE+RAM"
	case KindMbc5RumbleRamBattery:
		return "MBC5+RUMBLE+RAM+BATTERY"
	case KindMbc6:
		return "MBC6"
	case KindMbc7SensorRumbleRamBattery:
		return "MBC7+SENSOR+RUMBLE+RAM+BATTERY"
	case KindPocketCamera:
		return "POCKET CAMERA"
	case KindBandaiTama5:
		return "BANDAI TAMA5"
	case KindHuC3:
		return "HuC3"
	case KindHuC1RamBattery:
		return "HuC1+RAM+BATTERY"
	default:
		return "unknown kind"
	}
}

// ROM is a raw cartridge byte sequence of at least 32 KiB. Construction
// validates only the size; header content is inspected opt-in via the
// methods below.
type ROM struct {
	data []byte
}

// New takes ownership of data and returns a ROM, or CartridgeTooSmall if
// data is shorter than 0x8000 bytes. No header content is validated here.
func New(data []byte) (*ROM, error) {
	if len(data) < minSize {
		return nil, gberr.NewCartridgeTooSmall(len(data))
	}
	return &ROM{data: data}, nil
}

// Size returns the byte length of the backing buffer.
func (r *ROM) Size() int {
	return len(r.data)
}

// Kind reads the cartridge-type byte at 0x0147.
func (r *ROM) Kind() Kind {
	return Kind(r.data[offCartridgeType])
}

// HasValidLogo reports whether bytes 0x0104-0x0133 match the fixed
// Nintendo boot-logo bitmap.
func (r *ROM) HasValidLogo() bool {
	for i, b := range nintendoLogo {
		if r.data[offLogo+i] != b {
			return false
		}
	}
	return true
}

// HasValidHeaderChecksum seeds an 8-bit accumulator with 0x19 and adds
// (8-bit wrapping) every byte in 0x0134..=0x014D; the header is valid
// iff the final accumulator is zero.
func (r *ROM) HasValidHeaderChecksum() bool {
	sum := byte(headerChecksumSeed)
	for addr := headerChecksumStart; addr <= headerChecksumEnd; addr++ {
		sum += r.data[addr]
	}
	return sum == 0
}

// HasValidGlobalChecksum sums every byte in the ROM except the two
// global-checksum bytes themselves (0x014E, 0x014F) into a 16-bit
// wrapping accumulator and compares it against the big-endian value
// stored at those two bytes.
func (r *ROM) HasValidGlobalChecksum() bool {
	sum := uint16(0)
	for i, b := range r.data {
		if i == offGlobalChecksumHi || i == offGlobalChecksumLo {
			continue
		}
		sum += uint16(b)
	}
	expected := uint16(r.data[offGlobalChecksumHi])<<8 | uint16(r.data[offGlobalChecksumLo])
	return sum == expected
}

// Name returns the null-terminated UTF-8 substring at 0x0134-0x0143,
// truncated at the first zero byte.
func (r *ROM) Name() string {
	title := r.data[offTitle : offTitle+titleLen]
	end := len(title)
	for i, b := range title {
		if b == 0 {
			end = i
			break
		}
	}
	return string(title[:end])
}

// Bytes returns the backing buffer. Callers must not mutate it; a ROM's
// contents are immutable once constructed.
func (r *ROM) Bytes() []byte {
	return r.data
}

// RAMSizeByte returns the raw RAM-size header byte at 0x0149, for the
// cartridge layer to map to a bank count.
func (r *ROM) RAMSizeByte() byte {
	return r.data[offRAMSize]
}

// ROMBanks returns the number of 16 KiB ROM banks implied by the
// ROM-size header byte at 0x0148: banks = 2 << ROMSize.
func (r *ROM) ROMBanks() int {
	size := r.data[offROMSize]
	if size > 0x08 {
		return 0
	}
	return 2 << size
}
