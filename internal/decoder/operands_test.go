package decoder

import "testing"

func TestReg8HiLoAllPrefixes(t *testing.T) {
	for p := 0; p <= 0xFF; p++ {
		prefix := uint8(p)
		wantHi := (prefix >> 3) & 0x07
		wantLo := prefix & 0x07
		if got := reg8Hi(prefix); got != wantHi {
			t.Errorf("reg8Hi(0x%02X) = %d, want %d", prefix, got, wantHi)
		}
		if got := reg8Lo(prefix); got != wantLo {
			t.Errorf("reg8Lo(0x%02X) = %d, want %d", prefix, got, wantLo)
		}
	}
}

func TestReg16SPAllPrefixes(t *testing.T) {
	want := []Reg16{RegBC, RegDE, RegHL, RegSP}
	for p := 0; p <= 0xFF; p++ {
		prefix := uint8(p)
		idx := (prefix >> 4) & 0x03
		if got := reg16SP(prefix); got != want[idx] {
			t.Errorf("reg16SP(0x%02X) = %v, want %v", prefix, got, want[idx])
		}
	}
}

func TestReg16AFAllPrefixes(t *testing.T) {
	want := []Reg16{RegBC, RegDE, RegHL, RegAF}
	for p := 0; p <= 0xFF; p++ {
		prefix := uint8(p)
		idx := (prefix >> 4) & 0x03
		if got := reg16AF(prefix); got != want[idx] {
			t.Errorf("reg16AF(0x%02X) = %v, want %v", prefix, got, want[idx])
		}
	}
}

func TestHlPMAllPrefixes(t *testing.T) {
	want := []Reg16{RegBC, RegDE, RegHL, RegHL}
	for p := 0; p <= 0xFF; p++ {
		prefix := uint8(p)
		idx := (prefix >> 4) & 0x03
		if got := hlPM(prefix); got != want[idx] {
			t.Errorf("hlPM(0x%02X) = %v, want %v", prefix, got, want[idx])
		}
	}
}

func TestConditionAllPrefixes(t *testing.T) {
	want := []Condition{CondNZ, CondZ, CondNC, CondC}
	for p := 0; p <= 0xFF; p++ {
		prefix := uint8(p)
		idx := (prefix >> 3) & 0x03
		if got := condition(prefix); got != want[idx] {
			t.Errorf("condition(0x%02X) = %v, want %v", prefix, got, want[idx])
		}
	}
}

func TestReg8StringCoversAllValues(t *testing.T) {
	for _, r := range []Reg8{RegB, RegC, RegD, RegE, RegH, RegL, RegA} {
		if r.String() == "?" {
			t.Errorf("Reg8(%d).String() = %q, want a named register", r, r.String())
		}
	}
}
