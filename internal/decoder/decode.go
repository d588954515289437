package decoder

import "github.com/richardwooding/lr35902/internal/gberr"

// Memory is the narrow read-only capability the decoder needs. A
// *memory.Bus satisfies it; tests may substitute a flat byte slice.
type Memory interface {
	ReadByte(addr uint16) uint8
	ReadWord(addr uint16) uint16
}

// Operation pairs a decoded Opcode with the prefix byte it was decoded
// from, retained for debug/trace purposes.
type Operation struct {
	Opcode Opcode
	Prefix uint8
}

// undefinedPrefixes are the eleven bytes with no defined LR35902 encoding.
var undefinedPrefixes = map[uint8]struct{}{
	0xD3: {}, 0xDB: {}, 0xDD: {}, 0xE3: {}, 0xE4: {}, 0xEB: {},
	0xEC: {}, 0xED: {}, 0xF4: {}, 0xFC: {}, 0xFD: {},
}

// FromMemory reads the byte at pc (the prefix) and, for instructions that
// need them, up to two more bytes for an immediate or offset operand. It
// performs only reads: decoding never mutates mem.
func FromMemory(pc uint16, mem Memory) (Operation, error) {
	p := mem.ReadByte(pc)

	if _, undefined := undefinedPrefixes[p]; undefined {
		return Operation{}, gberr.NewUnknownOpcodePrefix(p)
	}

	switch p {
	case 0x00:
		return op(p, Nop{}), nil

	case 0x01, 0x11, 0x21, 0x31:
		return op(p, Ld16RegImm{Reg: reg16SP(p), Imm: mem.ReadWord(pc + 1)}), nil

	case 0x02, 0x12, 0x22, 0x32:
		return op(p, St8MemRegAcc{Reg: hlPM(p)}), nil

	case 0x03, 0x13, 0x23, 0x33:
		return op(p, Inc16Reg{Reg: reg16SP(p)}), nil

	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x3C:
		return op(p, Inc8Reg{Reg: reg8(reg8Hi(p))}), nil

	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x3D:
		return op(p, Dec8Reg{Reg: reg8(reg8Hi(p))}), nil

	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x3E:
		return op(p, Ld8RegImm{Reg: reg8(reg8Hi(p)), Imm: mem.ReadByte(pc + 1)}), nil

	case 0x07:
		return op(p, Rlca{}), nil
	case 0x0F:
		return op(p, Rrca{}), nil
	case 0x17:
		return op(p, Rla{}), nil
	case 0x1F:
		return op(p, Rra{}), nil
	case 0x27:
		return op(p, Daa{}), nil
	case 0x2F:
		return op(p, Cpl{}), nil
	case 0x37:
		return op(p, Scf{}), nil
	case 0x3F:
		return op(p, Ccf{}), nil

	case 0x08:
		return op(p, St16MemSp{Imm: mem.ReadWord(pc + 1)}), nil

	case 0x09, 0x19, 0x29, 0x39:
		return op(p, Add16HlReg{Reg: reg16SP(p)}), nil

	case 0x0A, 0x1A, 0x2A, 0x3A:
		return op(p, Ld8AccMem{Reg: hlPM(p)}), nil

	case 0x0B, 0x1B, 0x2B, 0x3B:
		return op(p, Dec16Reg{Reg: reg16SP(p)}), nil

	case 0x10:
		return op(p, Stop{}), nil

	case 0x18:
		return op(p, JrUncond{Offset: offset8(mem, pc)}), nil

	case 0x20, 0x28, 0x30, 0x38:
		return op(p, Jr{Cond: condition(p), Offset: offset8(mem, pc)}), nil

	case 0x34:
		return op(p, Inc8MemHl{}), nil
	case 0x35:
		return op(p, Dec8MemHl{}), nil
	case 0x36:
		return op(p, Ld8MemHlImm{Imm: mem.ReadByte(pc + 1)}), nil
	case 0x76:
		return op(p, Halt{}), nil

	case 0x46, 0x4E, 0x56, 0x5E, 0x66, 0x6E, 0x7E:
		return op(p, Ld8RegMemHl{Dst: reg8(reg8Hi(p))}), nil

	case 0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x77:
		return op(p, St8MemHlReg{Src: reg8(reg8Lo(p))}), nil

	case 0x80, 0x81, 0x82, 0x83, 0x84, 0x85, 0x87:
		return op(p, Add8Reg{Reg: reg8(reg8Lo(p))}), nil
	case 0x86:
		return op(p, Add8AccHl{}), nil

	case 0x88, 0x89, 0x8A, 0x8B, 0x8C, 0x8D, 0x8F:
		return op(p, Adc8Reg{Reg: reg8(reg8Lo(p))}), nil
	case 0x8E:
		return op(p, Adc8AccHl{}), nil

	case 0x90, 0x91, 0x92, 0x93, 0x94, 0x95, 0x97:
		return op(p, Sub8Reg{Reg: reg8(reg8Lo(p))}), nil
	case 0x96:
		return op(p, Sub8AccHl{}), nil

	case 0x98, 0x99, 0x9A, 0x9B, 0x9C, 0x9D, 0x9F:
		return op(p, Sbc8Reg{Reg: reg8(reg8Lo(p))}), nil
	case 0x9E:
		return op(p, Sbc8AccHl{}), nil

	case 0xA0, 0xA1, 0xA2, 0xA3, 0xA4, 0xA5, 0xA7:
		return op(p, And8Reg{Reg: reg8(reg8Lo(p))}), nil
	case 0xA6:
		return op(p, And8AccHl{}), nil

	case 0xA8, 0xA9, 0xAA, 0xAB, 0xAC, 0xAD, 0xAF:
		return op(p, Xor8Reg{Reg: reg8(reg8Lo(p))}), nil
	case 0xAE:
		return op(p, Xor8AccHl{}), nil

	case 0xB0, 0xB1, 0xB2, 0xB3, 0xB4, 0xB5, 0xB7:
		return op(p, Or8Reg{Reg: reg8(reg8Lo(p))}), nil
	case 0xB6:
		return op(p, Or8AccHl{}), nil

	case 0xB8, 0xB9, 0xBA, 0xBB, 0xBC, 0xBD, 0xBF:
		return op(p, Cp8Reg{Reg: reg8(reg8Lo(p))}), nil
	case 0xBE:
		return op(p, Cp8AccHl{}), nil

	case 0xC0, 0xC8, 0xD0, 0xD8:
		return op(p, RetCond{Cond: condition(p)}), nil

	case 0xC1, 0xD1, 0xE1, 0xF1:
		return op(p, Pop{Reg: reg16AF(p)}), nil

	case 0xC2, 0xCA, 0xD2, 0xDA:
		return op(p, Jp{Cond: condition(p), Imm: mem.ReadWord(pc + 1)}), nil

	case 0xC3:
		return op(p, JpImm{Imm: mem.ReadWord(pc + 1)}), nil

	case 0xC4, 0xCC, 0xD4, 0xDC:
		return op(p, CallCond{Cond: condition(p), Imm: mem.ReadWord(pc + 1)}), nil

	case 0xC5, 0xD5, 0xE5, 0xF5:
		return op(p, Push{Reg: reg16AF(p)}), nil

	case 0xC6:
		return op(p, Add8Imm{Imm: mem.ReadByte(pc + 1)}), nil
	case 0xCE:
		return op(p, Adc8Imm{Imm: mem.ReadByte(pc + 1)}), nil
	case 0xD6:
		return op(p, Sub8Imm{Imm: mem.ReadByte(pc + 1)}), nil
	case 0xDE:
		return op(p, Sbc8Imm{Imm: mem.ReadByte(pc + 1)}), nil
	case 0xE6:
		return op(p, And8Imm{Imm: mem.ReadByte(pc + 1)}), nil
	case 0xEE:
		return op(p, Xor8Imm{Imm: mem.ReadByte(pc + 1)}), nil
	case 0xF6:
		return op(p, Or8Imm{Imm: mem.ReadByte(pc + 1)}), nil
	case 0xFE:
		return op(p, Cp8Imm{Imm: mem.ReadByte(pc + 1)}), nil

	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		return op(p, Rst{Addr: p & 0x38}), nil

	case 0xC9:
		return op(p, Ret{}), nil
	case 0xD9:
		return op(p, Reti{}), nil

	case 0xCB:
		q := mem.ReadByte(pc + 1)
		return op(p, decodeCB(q)), nil

	case 0xCD:
		return op(p, Call{Imm: mem.ReadWord(pc + 1)}), nil

	case 0xE0:
		return op(p, LdhMemAcc{Imm: mem.ReadByte(pc + 1)}), nil
	case 0xF0:
		return op(p, LdhAccMem{Imm: mem.ReadByte(pc + 1)}), nil

	case 0xE2:
		return op(p, LdcMemAcc{}), nil
	case 0xF2:
		return op(p, LdcAccMem{}), nil

	case 0xE8:
		return op(p, AddSp{Offset: offset8(mem, pc)}), nil
	case 0xF8:
		return op(p, LdHlSp{Offset: offset8(mem, pc)}), nil

	case 0xE9:
		return op(p, JpHl{}), nil
	case 0xF9:
		return op(p, LdSpHl{}), nil

	case 0xEA:
		return op(p, St8MemImmAcc{Imm: mem.ReadWord(pc + 1)}), nil
	case 0xFA:
		return op(p, Ld8AccMemImm{Imm: mem.ReadWord(pc + 1)}), nil

	case 0xF3:
		return op(p, Di{}), nil
	case 0xFB:
		return op(p, Ei{}), nil

	default:
		if p >= 0x40 && p <= 0x7F {
			return op(p, Ld8RegReg{Dst: reg8(reg8Hi(p)), Src: reg8(reg8Lo(p))}), nil
		}
		return Operation{}, gberr.NewUnknownOpcodePrefix(p)
	}
}

// op bundles a decoded Opcode with its source prefix byte.
func op(p uint8, o Opcode) Operation {
	return Operation{Opcode: o, Prefix: p}
}

// offset8 reads the signed relative operand at pc+1.
func offset8(mem Memory, pc uint16) int8 {
	return int8(mem.ReadByte(pc + 1))
}

// decodeCB decodes the second byte of a CB-prefixed instruction. All 256
// values are defined; there are no holes.
func decodeCB(q uint8) Opcode {
	field := reg8Lo(q)
	n := (q >> 3) & 0x07

	switch q >> 6 {
	case 0: // rotate/shift/swap, sub-op selected by bits 5..3
		switch n {
		case 0:
			if field == 6 {
				return RlcMemHl{}
			}
			return RlcReg{Reg: reg8(field)}
		case 1:
			if field == 6 {
				return RrcMemHl{}
			}
			return RrcReg{Reg: reg8(field)}
		case 2:
			if field == 6 {
				return RlMemHl{}
			}
			return RlReg{Reg: reg8(field)}
		case 3:
			if field == 6 {
				return RrMemHl{}
			}
			return RrReg{Reg: reg8(field)}
		case 4:
			if field == 6 {
				return SlaMemHl{}
			}
			return SlaReg{Reg: reg8(field)}
		case 5:
			if field == 6 {
				return SraMemHl{}
			}
			return SraReg{Reg: reg8(field)}
		case 6:
			if field == 6 {
				return SwapMemHl{}
			}
			return SwapReg{Reg: reg8(field)}
		default: // 7
			if field == 6 {
				return SrlMemHl{}
			}
			return SrlReg{Reg: reg8(field)}
		}

	case 1: // BIT n, r
		if field == 6 {
			return BitMemHl{N: n}
		}
		return BitReg{N: n, Reg: reg8(field)}

	case 2: // RES n, r
		if field == 6 {
			return ResMemHl{N: n}
		}
		return ResReg{N: n, Reg: reg8(field)}

	default: // 3: SET n, r
		if field == 6 {
			return SetMemHl{N: n}
		}
		return SetReg{N: n, Reg: reg8(field)}
	}
}
