package cartridge

import (
	"testing"

	"github.com/richardwooding/lr35902/internal/rom"
)

// buildROM assembles a zero-filled buffer of the given size with the given
// cartridge-type and RAM-size bytes (logo and checksums are not set), and
// wraps it as a *rom.ROM.
func buildROM(t *testing.T, size int, cartType, ramSize byte) *rom.ROM {
	t.Helper()
	data := make([]byte, size)
	data[0x0147] = cartType
	data[0x0148] = 0x00
	data[0x0149] = ramSize
	r, err := rom.New(data)
	if err != nil {
		t.Fatalf("rom.New: %v", err)
	}
	return r
}

func TestRomOnlyRead(t *testing.T) {
	r := buildROM(t, 0x8000, byte(rom.KindRomOnly), 0x00)
	data := r.Bytes()
	data[0x0100] = 0x42
	data[0x4000] = 0x84
	data[0x7FFF] = 0xFF

	cart := newRomOnly(r)

	if got := cart.ReadByte(0x0100); got != 0x42 {
		t.Errorf("ReadByte(0x0100) = 0x%02X, want 0x42", got)
	}
	if got := cart.ReadByte(0x4000); got != 0x84 {
		t.Errorf("ReadByte(0x4000) = 0x%02X, want 0x84", got)
	}
	if got := cart.ReadByte(0x7FFF); got != 0xFF {
		t.Errorf("ReadByte(0x7FFF) = 0x%02X, want 0xFF", got)
	}
}

func TestRomOnlyWriteIgnored(t *testing.T) {
	r := buildROM(t, 0x8000, byte(rom.KindRomOnly), 0x00)
	r.Bytes()[0x0100] = 0x42

	cart := newRomOnly(r)
	cart.WriteByte(0x0100, 0xFF)

	if got := cart.ReadByte(0x0100); got != 0x42 {
		t.Errorf("ReadByte(0x0100) after write = 0x%02X, want 0x42 (ROM writes are ignored)", got)
	}
}

func TestRomOnlyWithRAM(t *testing.T) {
	r := buildROM(t, 0x8000, byte(rom.KindRomRam), 0x02) // 8 KiB RAM
	cart := newRomOnly(r)

	if cart.ram == nil {
		t.Fatal("RAM should be initialized for ROM+RAM cartridge")
	}
	if len(cart.ram) != 8192 {
		t.Errorf("RAM size = %d, want 8192", len(cart.ram))
	}

	cart.WriteByte(0xA000, 0x42)
	if got := cart.ReadByte(0xA000); got != 0x42 {
		t.Errorf("ReadByte(0xA000) after write = 0x%02X, want 0x42", got)
	}

	cart.WriteByte(0xBFFF, 0x99)
	if got := cart.ReadByte(0xBFFF); got != 0x99 {
		t.Errorf("ReadByte(0xBFFF) after write = 0x%02X, want 0x99", got)
	}
}

func TestRomOnlyNoRAM(t *testing.T) {
	r := buildROM(t, 0x8000, byte(rom.KindRomOnly), 0x00)
	cart := newRomOnly(r)

	if cart.ram != nil {
		t.Error("RAM should be nil for ROM-only cartridge")
	}
	if got := cart.ReadByte(0xA000); got != 0xFF {
		t.Errorf("ReadByte(0xA000) with no RAM = 0x%02X, want 0xFF", got)
	}
	cart.WriteByte(0xA000, 0x42) // must not panic
}

func TestRomOnlyHasBattery(t *testing.T) {
	tests := []struct {
		name     string
		cartType rom.Kind
		want     bool
	}{
		{"ROM only", rom.KindRomOnly, false},
		{"ROM+RAM", rom.KindRomRam, false},
		{"ROM+RAM+Battery", rom.KindRomRamBattery, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buildROM(t, 0x8000, byte(tt.cartType), 0x00)
			cart := newRomOnly(r)
			if got := cart.HasBattery(); got != tt.want {
				t.Errorf("HasBattery() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRomOnlyGetSetRAM(t *testing.T) {
	r := buildROM(t, 0x8000, byte(rom.KindRomRamBattery), 0x02)
	cart := newRomOnly(r)

	cart.WriteByte(0xA000, 0x11)
	cart.WriteByte(0xA001, 0x22)
	cart.WriteByte(0xA100, 0x33)

	ramData := cart.RAM()
	if ramData == nil {
		t.Fatal("RAM() returned nil")
	}
	if ramData[0] != 0x11 || ramData[1] != 0x22 || ramData[0x100] != 0x33 {
		t.Error("RAM() did not return the expected contents")
	}

	ramData[0] = 0xFF
	if cart.ram[0] != 0x11 {
		t.Error("modifying RAM() result should not affect internal RAM")
	}

	newData := make([]byte, 8192)
	newData[0] = 0xAA
	newData[1] = 0xBB
	cart.SetRAM(newData)

	if got := cart.ReadByte(0xA000); got != 0xAA {
		t.Errorf("ReadByte(0xA000) after SetRAM = 0x%02X, want 0xAA", got)
	}
	if got := cart.ReadByte(0xA001); got != 0xBB {
		t.Errorf("ReadByte(0xA001) after SetRAM = 0x%02X, want 0xBB", got)
	}
}

func TestRomOnlyReadWordLittleEndian(t *testing.T) {
	r := buildROM(t, 0x8000, byte(rom.KindRomOnly), 0x00)
	data := r.Bytes()
	data[0x0100] = 0x34
	data[0x0101] = 0x12

	cart := newRomOnly(r)
	if got := cart.ReadWord(0x0100); got != 0x1234 {
		t.Errorf("ReadWord(0x0100) = 0x%04X, want 0x1234", got)
	}
}
