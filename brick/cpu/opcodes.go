package cpu

import "github.com/aferranti/go-brick/brick/bit"

// Primary opcode handlers. Each returns the T-cycles it consumed;
// conditional instructions return the taken or not-taken cost themselves.

// NOP
func opcode0x00(cpu *CPU) int {
	return 4
}

// LD BC,d16
func opcode0x01(cpu *CPU) int {
	cpu.setBC(cpu.readImmediateWord())
	return 12
}

// LD (BC),A
func opcode0x02(cpu *CPU) int {
	cpu.memory.Write(cpu.getBC(), cpu.a)
	return 8
}

// INC BC
func opcode0x03(cpu *CPU) int {
	cpu.setBC(cpu.getBC() + 1)
	return 8
}

// INC B
func opcode0x04(cpu *CPU) int {
	cpu.b = cpu.inc(cpu.b)
	return 4
}

// DEC B
func opcode0x05(cpu *CPU) int {
	cpu.b = cpu.dec(cpu.b)
	return 4
}

// LD B,d8
func opcode0x06(cpu *CPU) int {
	cpu.b = cpu.readImmediate()
	return 8
}

// RLCA
func opcode0x07(cpu *CPU) int {
	cpu.rotateA((*CPU).rlc)
	return 4
}

// LD (a16),SP
func opcode0x08(cpu *CPU) int {
	target := cpu.readImmediateWord()
	cpu.memory.Write(target, bit.Low(cpu.sp))
	cpu.memory.Write(target+1, bit.High(cpu.sp))
	return 20
}

// ADD HL,BC
func opcode0x09(cpu *CPU) int {
	cpu.addToHL(cpu.getBC())
	return 8
}

// LD A,(BC)
func opcode0x0A(cpu *CPU) int {
	cpu.a = cpu.memory.Read(cpu.getBC())
	return 8
}

// DEC BC
func opcode0x0B(cpu *CPU) int {
	cpu.setBC(cpu.getBC() - 1)
	return 8
}

// INC C
func opcode0x0C(cpu *CPU) int {
	cpu.c = cpu.inc(cpu.c)
	return 4
}

// DEC C
func opcode0x0D(cpu *CPU) int {
	cpu.c = cpu.dec(cpu.c)
	return 4
}

// LD C,d8
func opcode0x0E(cpu *CPU) int {
	cpu.c = cpu.readImmediate()
	return 8
}

// RRCA
func opcode0x0F(cpu *CPU) int {
	cpu.rotateA((*CPU).rrc)
	return 4
}

// STOP
func opcode0x10(cpu *CPU) int {
	// STOP is treated as a low-power NOP; the latch is observable
	// through the driver but execution continues on the next step.
	cpu.stopped = true
	cpu.pc++ // skip the pad byte
	return 4
}

// LD DE,d16
func opcode0x11(cpu *CPU) int {
	cpu.setDE(cpu.readImmediateWord())
	return 12
}

// LD (DE),A
func opcode0x12(cpu *CPU) int {
	cpu.memory.Write(cpu.getDE(), cpu.a)
	return 8
}

// INC DE
func opcode0x13(cpu *CPU) int {
	cpu.setDE(cpu.getDE() + 1)
	return 8
}

// INC D
func opcode0x14(cpu *CPU) int {
	cpu.d = cpu.inc(cpu.d)
	return 4
}

// DEC D
func opcode0x15(cpu *CPU) int {
	cpu.d = cpu.dec(cpu.d)
	return 4
}

// LD D,d8
func opcode0x16(cpu *CPU) int {
	cpu.d = cpu.readImmediate()
	return 8
}

// RLA
func opcode0x17(cpu *CPU) int {
	cpu.rotateA((*CPU).rl)
	return 4
}

// JR r8
func opcode0x18(cpu *CPU) int {
	cpu.jr()
	return 12
}

// ADD HL,DE
func opcode0x19(cpu *CPU) int {
	cpu.addToHL(cpu.getDE())
	return 8
}

// LD A,(DE)
func opcode0x1A(cpu *CPU) int {
	cpu.a = cpu.memory.Read(cpu.getDE())
	return 8
}

// DEC DE
func opcode0x1B(cpu *CPU) int {
	cpu.setDE(cpu.getDE() - 1)
	return 8
}

// INC E
func opcode0x1C(cpu *CPU) int {
	cpu.e = cpu.inc(cpu.e)
	return 4
}

// DEC E
func opcode0x1D(cpu *CPU) int {
	cpu.e = cpu.dec(cpu.e)
	return 4
}

// LD E,d8
func opcode0x1E(cpu *CPU) int {
	cpu.e = cpu.readImmediate()
	return 8
}

// RRA
func opcode0x1F(cpu *CPU) int {
	cpu.rotateA((*CPU).rr)
	return 4
}

// JR NZ,r8
func opcode0x20(cpu *CPU) int {
	if !cpu.isSetFlag(zeroFlag) {
		cpu.jr()
		return 12
	}
	cpu.skipJr()
	return 8
}

// LD HL,d16
func opcode0x21(cpu *CPU) int {
	cpu.setHL(cpu.readImmediateWord())
	return 12
}

// LD (HL+),A
func opcode0x22(cpu *CPU) int {
	cpu.writeHL(cpu.a)
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// INC HL
func opcode0x23(cpu *CPU) int {
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// INC H
func opcode0x24(cpu *CPU) int {
	cpu.h = cpu.inc(cpu.h)
	return 4
}

// DEC H
func opcode0x25(cpu *CPU) int {
	cpu.h = cpu.dec(cpu.h)
	return 4
}

// LD H,d8
func opcode0x26(cpu *CPU) int {
	cpu.h = cpu.readImmediate()
	return 8
}

// DAA
func opcode0x27(cpu *CPU) int {
	cpu.daa()
	return 4
}

// JR Z,r8
func opcode0x28(cpu *CPU) int {
	if cpu.isSetFlag(zeroFlag) {
		cpu.jr()
		return 12
	}
	cpu.skipJr()
	return 8
}

// ADD HL,HL
func opcode0x29(cpu *CPU) int {
	cpu.addToHL(cpu.getHL())
	return 8
}

// LD A,(HL+)
func opcode0x2A(cpu *CPU) int {
	cpu.a = cpu.readHL()
	cpu.setHL(cpu.getHL() + 1)
	return 8
}

// DEC HL
func opcode0x2B(cpu *CPU) int {
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// INC L
func opcode0x2C(cpu *CPU) int {
	cpu.l = cpu.inc(cpu.l)
	return 4
}

// DEC L
func opcode0x2D(cpu *CPU) int {
	cpu.l = cpu.dec(cpu.l)
	return 4
}

// LD L,d8
func opcode0x2E(cpu *CPU) int {
	cpu.l = cpu.readImmediate()
	return 8
}

// CPL
func opcode0x2F(cpu *CPU) int {
	cpu.a = ^cpu.a
	cpu.setFlag(subFlag)
	cpu.setFlag(halfCarryFlag)
	return 4
}

// JR NC,r8
func opcode0x30(cpu *CPU) int {
	if !cpu.isSetFlag(carryFlag) {
		cpu.jr()
		return 12
	}
	cpu.skipJr()
	return 8
}

// LD SP,d16
func opcode0x31(cpu *CPU) int {
	cpu.sp = cpu.readImmediateWord()
	return 12
}

// LD (HL-),A
func opcode0x32(cpu *CPU) int {
	cpu.writeHL(cpu.a)
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// INC SP
func opcode0x33(cpu *CPU) int {
	cpu.sp++
	return 8
}

// INC (HL)
func opcode0x34(cpu *CPU) int {
	cpu.writeHL(cpu.inc(cpu.readHL()))
	return 12
}

// DEC (HL)
func opcode0x35(cpu *CPU) int {
	cpu.writeHL(cpu.dec(cpu.readHL()))
	return 12
}

// LD (HL),d8
func opcode0x36(cpu *CPU) int {
	cpu.writeHL(cpu.readImmediate())
	return 12
}

// SCF
func opcode0x37(cpu *CPU) int {
	cpu.resetFlag(subFlag)
	cpu.resetFlag(halfCarryFlag)
	cpu.setFlag(carryFlag)
	return 4
}

// JR C,r8
func opcode0x38(cpu *CPU) int {
	if cpu.isSetFlag(carryFlag) {
		cpu.jr()
		return 12
	}
	cpu.skipJr()
	return 8
}

// ADD HL,SP
func opcode0x39(cpu *CPU) int {
	cpu.addToHL(cpu.sp)
	return 8
}

// LD A,(HL-)
func opcode0x3A(cpu *CPU) int {
	cpu.a = cpu.readHL()
	cpu.setHL(cpu.getHL() - 1)
	return 8
}

// DEC SP
func opcode0x3B(cpu *CPU) int {
	cpu.sp--
	return 8
}

// INC A
func opcode0x3C(cpu *CPU) int {
	cpu.a = cpu.inc(cpu.a)
	return 4
}

// DEC A
func opcode0x3D(cpu *CPU) int {
	cpu.a = cpu.dec(cpu.a)
	return 4
}

// LD A,d8
func opcode0x3E(cpu *CPU) int {
	cpu.a = cpu.readImmediate()
	return 8
}

// CCF
func opcode0x3F(cpu *CPU) int {
	cpu.resetFlag(subFlag)
	cpu.resetFlag(halfCarryFlag)
	cpu.setFlagToCondition(carryFlag, !cpu.isSetFlag(carryFlag))
	return 4
}

// LD B,B
func opcode0x40(cpu *CPU) int {
	cpu.b = cpu.b
	return 4
}

// LD B,C
func opcode0x41(cpu *CPU) int {
	cpu.b = cpu.c
	return 4
}

// LD B,D
func opcode0x42(cpu *CPU) int {
	cpu.b = cpu.d
	return 4
}

// LD B,E
func opcode0x43(cpu *CPU) int {
	cpu.b = cpu.e
	return 4
}

// LD B,H
func opcode0x44(cpu *CPU) int {
	cpu.b = cpu.h
	return 4
}

// LD B,L
func opcode0x45(cpu *CPU) int {
	cpu.b = cpu.l
	return 4
}

// LD B,(HL)
func opcode0x46(cpu *CPU) int {
	cpu.b = cpu.readHL()
	return 8
}

// LD B,A
func opcode0x47(cpu *CPU) int {
	cpu.b = cpu.a
	return 4
}

// LD C,B
func opcode0x48(cpu *CPU) int {
	cpu.c = cpu.b
	return 4
}

// LD C,C
func opcode0x49(cpu *CPU) int {
	cpu.c = cpu.c
	return 4
}

// LD C,D
func opcode0x4A(cpu *CPU) int {
	cpu.c = cpu.d
	return 4
}

// LD C,E
func opcode0x4B(cpu *CPU) int {
	cpu.c = cpu.e
	return 4
}

// LD C,H
func opcode0x4C(cpu *CPU) int {
	cpu.c = cpu.h
	return 4
}

// LD C,L
func opcode0x4D(cpu *CPU) int {
	cpu.c = cpu.l
	return 4
}

// LD C,(HL)
func opcode0x4E(cpu *CPU) int {
	cpu.c = cpu.readHL()
	return 8
}

// LD C,A
func opcode0x4F(cpu *CPU) int {
	cpu.c = cpu.a
	return 4
}

// LD D,B
func opcode0x50(cpu *CPU) int {
	cpu.d = cpu.b
	return 4
}

// LD D,C
func opcode0x51(cpu *CPU) int {
	cpu.d = cpu.c
	return 4
}

// LD D,D
func opcode0x52(cpu *CPU) int {
	cpu.d = cpu.d
	return 4
}

// LD D,E
func opcode0x53(cpu *CPU) int {
	cpu.d = cpu.e
	return 4
}

// LD D,H
func opcode0x54(cpu *CPU) int {
	cpu.d = cpu.h
	return 4
}

// LD D,L
func opcode0x55(cpu *CPU) int {
	cpu.d = cpu.l
	return 4
}

// LD D,(HL)
func opcode0x56(cpu *CPU) int {
	cpu.d = cpu.readHL()
	return 8
}

// LD D,A
func opcode0x57(cpu *CPU) int {
	cpu.d = cpu.a
	return 4
}

// LD E,B
func opcode0x58(cpu *CPU) int {
	cpu.e = cpu.b
	return 4
}

// LD E,C
func opcode0x59(cpu *CPU) int {
	cpu.e = cpu.c
	return 4
}

// LD E,D
func opcode0x5A(cpu *CPU) int {
	cpu.e = cpu.d
	return 4
}

// LD E,E
func opcode0x5B(cpu *CPU) int {
	cpu.e = cpu.e
	return 4
}

// LD E,H
func opcode0x5C(cpu *CPU) int {
	cpu.e = cpu.h
	return 4
}

// LD E,L
func opcode0x5D(cpu *CPU) int {
	cpu.e = cpu.l
	return 4
}

// LD E,(HL)
func opcode0x5E(cpu *CPU) int {
	cpu.e = cpu.readHL()
	return 8
}

// LD E,A
func opcode0x5F(cpu *CPU) int {
	cpu.e = cpu.a
	return 4
}

// LD H,B
func opcode0x60(cpu *CPU) int {
	cpu.h = cpu.b
	return 4
}

// LD H,C
func opcode0x61(cpu *CPU) int {
	cpu.h = cpu.c
	return 4
}

// LD H,D
func opcode0x62(cpu *CPU) int {
	cpu.h = cpu.d
	return 4
}

// LD H,E
func opcode0x63(cpu *CPU) int {
	cpu.h = cpu.e
	return 4
}

// LD H,H
func opcode0x64(cpu *CPU) int {
	cpu.h = cpu.h
	return 4
}

// LD H,L
func opcode0x65(cpu *CPU) int {
	cpu.h = cpu.l
	return 4
}

// LD H,(HL)
func opcode0x66(cpu *CPU) int {
	cpu.h = cpu.readHL()
	return 8
}

// LD H,A
func opcode0x67(cpu *CPU) int {
	cpu.h = cpu.a
	return 4
}

// LD L,B
func opcode0x68(cpu *CPU) int {
	cpu.l = cpu.b
	return 4
}

// LD L,C
func opcode0x69(cpu *CPU) int {
	cpu.l = cpu.c
	return 4
}

// LD L,D
func opcode0x6A(cpu *CPU) int {
	cpu.l = cpu.d
	return 4
}

// LD L,E
func opcode0x6B(cpu *CPU) int {
	cpu.l = cpu.e
	return 4
}

// LD L,H
func opcode0x6C(cpu *CPU) int {
	cpu.l = cpu.h
	return 4
}

// LD L,L
func opcode0x6D(cpu *CPU) int {
	cpu.l = cpu.l
	return 4
}

// LD L,(HL)
func opcode0x6E(cpu *CPU) int {
	cpu.l = cpu.readHL()
	return 8
}

// LD L,A
func opcode0x6F(cpu *CPU) int {
	cpu.l = cpu.a
	return 4
}

// LD (HL),B
func opcode0x70(cpu *CPU) int {
	cpu.writeHL(cpu.b)
	return 8
}

// LD (HL),C
func opcode0x71(cpu *CPU) int {
	cpu.writeHL(cpu.c)
	return 8
}

// LD (HL),D
func opcode0x72(cpu *CPU) int {
	cpu.writeHL(cpu.d)
	return 8
}

// LD (HL),E
func opcode0x73(cpu *CPU) int {
	cpu.writeHL(cpu.e)
	return 8
}

// LD (HL),H
func opcode0x74(cpu *CPU) int {
	cpu.writeHL(cpu.h)
	return 8
}

// LD (HL),L
func opcode0x75(cpu *CPU) int {
	cpu.writeHL(cpu.l)
	return 8
}

// HALT
func opcode0x76(cpu *CPU) int {
	if !cpu.ime && cpu.irq.AnyPending() {
		// HALT bug (do-not-halt form): with IME off and a
		// pending enabled interrupt the CPU does not sleep.
		return 4
	}
	cpu.halted = true
	return 4
}

// LD (HL),A
func opcode0x77(cpu *CPU) int {
	cpu.writeHL(cpu.a)
	return 8
}

// LD A,B
func opcode0x78(cpu *CPU) int {
	cpu.a = cpu.b
	return 4
}

// LD A,C
func opcode0x79(cpu *CPU) int {
	cpu.a = cpu.c
	return 4
}

// LD A,D
func opcode0x7A(cpu *CPU) int {
	cpu.a = cpu.d
	return 4
}

// LD A,E
func opcode0x7B(cpu *CPU) int {
	cpu.a = cpu.e
	return 4
}

// LD A,H
func opcode0x7C(cpu *CPU) int {
	cpu.a = cpu.h
	return 4
}

// LD A,L
func opcode0x7D(cpu *CPU) int {
	cpu.a = cpu.l
	return 4
}

// LD A,(HL)
func opcode0x7E(cpu *CPU) int {
	cpu.a = cpu.readHL()
	return 8
}

// LD A,A
func opcode0x7F(cpu *CPU) int {
	cpu.a = cpu.a
	return 4
}

// ADD A,B
func opcode0x80(cpu *CPU) int {
	cpu.addToA(cpu.b)
	return 4
}

// ADD A,C
func opcode0x81(cpu *CPU) int {
	cpu.addToA(cpu.c)
	return 4
}

// ADD A,D
func opcode0x82(cpu *CPU) int {
	cpu.addToA(cpu.d)
	return 4
}

// ADD A,E
func opcode0x83(cpu *CPU) int {
	cpu.addToA(cpu.e)
	return 4
}

// ADD A,H
func opcode0x84(cpu *CPU) int {
	cpu.addToA(cpu.h)
	return 4
}

// ADD A,L
func opcode0x85(cpu *CPU) int {
	cpu.addToA(cpu.l)
	return 4
}

// ADD A,(HL)
func opcode0x86(cpu *CPU) int {
	cpu.addToA(cpu.readHL())
	return 8
}

// ADD A,A
func opcode0x87(cpu *CPU) int {
	cpu.addToA(cpu.a)
	return 4
}

// ADC A,B
func opcode0x88(cpu *CPU) int {
	cpu.adcToA(cpu.b)
	return 4
}

// ADC A,C
func opcode0x89(cpu *CPU) int {
	cpu.adcToA(cpu.c)
	return 4
}

// ADC A,D
func opcode0x8A(cpu *CPU) int {
	cpu.adcToA(cpu.d)
	return 4
}

// ADC A,E
func opcode0x8B(cpu *CPU) int {
	cpu.adcToA(cpu.e)
	return 4
}

// ADC A,H
func opcode0x8C(cpu *CPU) int {
	cpu.adcToA(cpu.h)
	return 4
}

// ADC A,L
func opcode0x8D(cpu *CPU) int {
	cpu.adcToA(cpu.l)
	return 4
}

// ADC A,(HL)
func opcode0x8E(cpu *CPU) int {
	cpu.adcToA(cpu.readHL())
	return 8
}

// ADC A,A
func opcode0x8F(cpu *CPU) int {
	cpu.adcToA(cpu.a)
	return 4
}

// SUB B
func opcode0x90(cpu *CPU) int {
	cpu.subFromA(cpu.b)
	return 4
}

// SUB C
func opcode0x91(cpu *CPU) int {
	cpu.subFromA(cpu.c)
	return 4
}

// SUB D
func opcode0x92(cpu *CPU) int {
	cpu.subFromA(cpu.d)
	return 4
}

// SUB E
func opcode0x93(cpu *CPU) int {
	cpu.subFromA(cpu.e)
	return 4
}

// SUB H
func opcode0x94(cpu *CPU) int {
	cpu.subFromA(cpu.h)
	return 4
}

// SUB L
func opcode0x95(cpu *CPU) int {
	cpu.subFromA(cpu.l)
	return 4
}

// SUB (HL)
func opcode0x96(cpu *CPU) int {
	cpu.subFromA(cpu.readHL())
	return 8
}

// SUB A
func opcode0x97(cpu *CPU) int {
	cpu.subFromA(cpu.a)
	return 4
}

// SBC A,B
func opcode0x98(cpu *CPU) int {
	cpu.sbcFromA(cpu.b)
	return 4
}

// SBC A,C
func opcode0x99(cpu *CPU) int {
	cpu.sbcFromA(cpu.c)
	return 4
}

// SBC A,D
func opcode0x9A(cpu *CPU) int {
	cpu.sbcFromA(cpu.d)
	return 4
}

// SBC A,E
func opcode0x9B(cpu *CPU) int {
	cpu.sbcFromA(cpu.e)
	return 4
}

// SBC A,H
func opcode0x9C(cpu *CPU) int {
	cpu.sbcFromA(cpu.h)
	return 4
}

// SBC A,L
func opcode0x9D(cpu *CPU) int {
	cpu.sbcFromA(cpu.l)
	return 4
}

// SBC A,(HL)
func opcode0x9E(cpu *CPU) int {
	cpu.sbcFromA(cpu.readHL())
	return 8
}

// SBC A,A
func opcode0x9F(cpu *CPU) int {
	cpu.sbcFromA(cpu.a)
	return 4
}

// AND B
func opcode0xA0(cpu *CPU) int {
	cpu.andWithA(cpu.b)
	return 4
}

// AND C
func opcode0xA1(cpu *CPU) int {
	cpu.andWithA(cpu.c)
	return 4
}

// AND D
func opcode0xA2(cpu *CPU) int {
	cpu.andWithA(cpu.d)
	return 4
}

// AND E
func opcode0xA3(cpu *CPU) int {
	cpu.andWithA(cpu.e)
	return 4
}

// AND H
func opcode0xA4(cpu *CPU) int {
	cpu.andWithA(cpu.h)
	return 4
}

// AND L
func opcode0xA5(cpu *CPU) int {
	cpu.andWithA(cpu.l)
	return 4
}

// AND (HL)
func opcode0xA6(cpu *CPU) int {
	cpu.andWithA(cpu.readHL())
	return 8
}

// AND A
func opcode0xA7(cpu *CPU) int {
	cpu.andWithA(cpu.a)
	return 4
}

// XOR B
func opcode0xA8(cpu *CPU) int {
	cpu.xorWithA(cpu.b)
	return 4
}

// XOR C
func opcode0xA9(cpu *CPU) int {
	cpu.xorWithA(cpu.c)
	return 4
}

// XOR D
func opcode0xAA(cpu *CPU) int {
	cpu.xorWithA(cpu.d)
	return 4
}

// XOR E
func opcode0xAB(cpu *CPU) int {
	cpu.xorWithA(cpu.e)
	return 4
}

// XOR H
func opcode0xAC(cpu *CPU) int {
	cpu.xorWithA(cpu.h)
	return 4
}

// XOR L
func opcode0xAD(cpu *CPU) int {
	cpu.xorWithA(cpu.l)
	return 4
}

// XOR (HL)
func opcode0xAE(cpu *CPU) int {
	cpu.xorWithA(cpu.readHL())
	return 8
}

// XOR A
func opcode0xAF(cpu *CPU) int {
	cpu.xorWithA(cpu.a)
	return 4
}

// OR B
func opcode0xB0(cpu *CPU) int {
	cpu.orWithA(cpu.b)
	return 4
}

// OR C
func opcode0xB1(cpu *CPU) int {
	cpu.orWithA(cpu.c)
	return 4
}

// OR D
func opcode0xB2(cpu *CPU) int {
	cpu.orWithA(cpu.d)
	return 4
}

// OR E
func opcode0xB3(cpu *CPU) int {
	cpu.orWithA(cpu.e)
	return 4
}

// OR H
func opcode0xB4(cpu *CPU) int {
	cpu.orWithA(cpu.h)
	return 4
}

// OR L
func opcode0xB5(cpu *CPU) int {
	cpu.orWithA(cpu.l)
	return 4
}

// OR (HL)
func opcode0xB6(cpu *CPU) int {
	cpu.orWithA(cpu.readHL())
	return 8
}

// OR A
func opcode0xB7(cpu *CPU) int {
	cpu.orWithA(cpu.a)
	return 4
}

// CP B
func opcode0xB8(cpu *CPU) int {
	cpu.compare(cpu.a, cpu.b)
	return 4
}

// CP C
func opcode0xB9(cpu *CPU) int {
	cpu.compare(cpu.a, cpu.c)
	return 4
}

// CP D
func opcode0xBA(cpu *CPU) int {
	cpu.compare(cpu.a, cpu.d)
	return 4
}

// CP E
func opcode0xBB(cpu *CPU) int {
	cpu.compare(cpu.a, cpu.e)
	return 4
}

// CP H
func opcode0xBC(cpu *CPU) int {
	cpu.compare(cpu.a, cpu.h)
	return 4
}

// CP L
func opcode0xBD(cpu *CPU) int {
	cpu.compare(cpu.a, cpu.l)
	return 4
}

// CP (HL)
func opcode0xBE(cpu *CPU) int {
	cpu.compare(cpu.a, cpu.readHL())
	return 8
}

// CP A
func opcode0xBF(cpu *CPU) int {
	cpu.compare(cpu.a, cpu.a)
	return 4
}

// RET NZ
func opcode0xC0(cpu *CPU) int {
	if !cpu.isSetFlag(zeroFlag) {
		cpu.ret()
		return 20
	}
	return 8
}

// POP BC
func opcode0xC1(cpu *CPU) int {
	cpu.setBC(cpu.popStack())
	return 12
}

// JP NZ,a16
func opcode0xC2(cpu *CPU) int {
	if !cpu.isSetFlag(zeroFlag) {
		cpu.jp()
		return 16
	}
	cpu.skipJp()
	return 12
}

// JP a16
func opcode0xC3(cpu *CPU) int {
	cpu.jp()
	return 16
}

// CALL NZ,a16
func opcode0xC4(cpu *CPU) int {
	if !cpu.isSetFlag(zeroFlag) {
		cpu.call()
		return 24
	}
	cpu.skipJp()
	return 12
}

// PUSH BC
func opcode0xC5(cpu *CPU) int {
	cpu.pushStack(cpu.getBC())
	return 16
}

// ADD A,d8
func opcode0xC6(cpu *CPU) int {
	cpu.addToA(cpu.readImmediate())
	return 8
}

// RST 00H
func opcode0xC7(cpu *CPU) int {
	cpu.rst(0x0000)
	return 16
}

// RET Z
func opcode0xC8(cpu *CPU) int {
	if cpu.isSetFlag(zeroFlag) {
		cpu.ret()
		return 20
	}
	return 8
}

// RET
func opcode0xC9(cpu *CPU) int {
	cpu.ret()
	return 16
}

// JP Z,a16
func opcode0xCA(cpu *CPU) int {
	if cpu.isSetFlag(zeroFlag) {
		cpu.jp()
		return 16
	}
	cpu.skipJp()
	return 12
}

// PREFIX CB
func opcode0xCB(cpu *CPU) int {
	return cbTable[cpu.readImmediate()].fn(cpu)
}

// CALL Z,a16
func opcode0xCC(cpu *CPU) int {
	if cpu.isSetFlag(zeroFlag) {
		cpu.call()
		return 24
	}
	cpu.skipJp()
	return 12
}

// CALL a16
func opcode0xCD(cpu *CPU) int {
	cpu.call()
	return 24
}

// ADC A,d8
func opcode0xCE(cpu *CPU) int {
	cpu.adcToA(cpu.readImmediate())
	return 8
}

// RST 08H
func opcode0xCF(cpu *CPU) int {
	cpu.rst(0x0008)
	return 16
}

// RET NC
func opcode0xD0(cpu *CPU) int {
	if !cpu.isSetFlag(carryFlag) {
		cpu.ret()
		return 20
	}
	return 8
}

// POP DE
func opcode0xD1(cpu *CPU) int {
	cpu.setDE(cpu.popStack())
	return 12
}

// JP NC,a16
func opcode0xD2(cpu *CPU) int {
	if !cpu.isSetFlag(carryFlag) {
		cpu.jp()
		return 16
	}
	cpu.skipJp()
	return 12
}

// CALL NC,a16
func opcode0xD4(cpu *CPU) int {
	if !cpu.isSetFlag(carryFlag) {
		cpu.call()
		return 24
	}
	cpu.skipJp()
	return 12
}

// PUSH DE
func opcode0xD5(cpu *CPU) int {
	cpu.pushStack(cpu.getDE())
	return 16
}

// SUB d8
func opcode0xD6(cpu *CPU) int {
	cpu.subFromA(cpu.readImmediate())
	return 8
}

// RST 10H
func opcode0xD7(cpu *CPU) int {
	cpu.rst(0x0010)
	return 16
}

// RET C
func opcode0xD8(cpu *CPU) int {
	if cpu.isSetFlag(carryFlag) {
		cpu.ret()
		return 20
	}
	return 8
}

// RETI
func opcode0xD9(cpu *CPU) int {
	cpu.ret()
	// unlike EI, RETI enables interrupts with no delay
	cpu.ime = true
	return 16
}

// JP C,a16
func opcode0xDA(cpu *CPU) int {
	if cpu.isSetFlag(carryFlag) {
		cpu.jp()
		return 16
	}
	cpu.skipJp()
	return 12
}

// CALL C,a16
func opcode0xDC(cpu *CPU) int {
	if cpu.isSetFlag(carryFlag) {
		cpu.call()
		return 24
	}
	cpu.skipJp()
	return 12
}

// SBC A,d8
func opcode0xDE(cpu *CPU) int {
	cpu.sbcFromA(cpu.readImmediate())
	return 8
}

// RST 18H
func opcode0xDF(cpu *CPU) int {
	cpu.rst(0x0018)
	return 16
}

// LDH (a8),A
func opcode0xE0(cpu *CPU) int {
	cpu.memory.Write(0xFF00|uint16(cpu.readImmediate()), cpu.a)
	return 12
}

// POP HL
func opcode0xE1(cpu *CPU) int {
	cpu.setHL(cpu.popStack())
	return 12
}

// LD (C),A
func opcode0xE2(cpu *CPU) int {
	cpu.memory.Write(0xFF00|uint16(cpu.c), cpu.a)
	return 8
}

// PUSH HL
func opcode0xE5(cpu *CPU) int {
	cpu.pushStack(cpu.getHL())
	return 16
}

// AND d8
func opcode0xE6(cpu *CPU) int {
	cpu.andWithA(cpu.readImmediate())
	return 8
}

// RST 20H
func opcode0xE7(cpu *CPU) int {
	cpu.rst(0x0020)
	return 16
}

// ADD SP,e8
func opcode0xE8(cpu *CPU) int {
	cpu.sp = cpu.addSPSigned(cpu.readImmediate())
	return 16
}

// JP (HL)
func opcode0xE9(cpu *CPU) int {
	cpu.pc = cpu.getHL()
	return 4
}

// LD (a16),A
func opcode0xEA(cpu *CPU) int {
	cpu.memory.Write(cpu.readImmediateWord(), cpu.a)
	return 16
}

// XOR d8
func opcode0xEE(cpu *CPU) int {
	cpu.xorWithA(cpu.readImmediate())
	return 8
}

// RST 28H
func opcode0xEF(cpu *CPU) int {
	cpu.rst(0x0028)
	return 16
}

// LDH A,(a8)
func opcode0xF0(cpu *CPU) int {
	cpu.a = cpu.memory.Read(0xFF00 | uint16(cpu.readImmediate()))
	return 12
}

// POP AF
func opcode0xF1(cpu *CPU) int {
	cpu.setAF(cpu.popStack())
	return 12
}

// LD A,(C)
func opcode0xF2(cpu *CPU) int {
	cpu.a = cpu.memory.Read(0xFF00 | uint16(cpu.c))
	return 8
}

// DI
func opcode0xF3(cpu *CPU) int {
	cpu.ime = false
	// DI also cancels a not-yet-applied EI
	cpu.eiPending = false
	return 4
}

// PUSH AF
func opcode0xF5(cpu *CPU) int {
	cpu.pushStack(cpu.getAF())
	return 16
}

// OR d8
func opcode0xF6(cpu *CPU) int {
	cpu.orWithA(cpu.readImmediate())
	return 8
}

// RST 30H
func opcode0xF7(cpu *CPU) int {
	cpu.rst(0x0030)
	return 16
}

// LD HL,SP+e8
func opcode0xF8(cpu *CPU) int {
	cpu.setHL(cpu.addSPSigned(cpu.readImmediate()))
	return 12
}

// LD SP,HL
func opcode0xF9(cpu *CPU) int {
	cpu.sp = cpu.getHL()
	return 8
}

// LD A,(a16)
func opcode0xFA(cpu *CPU) int {
	cpu.a = cpu.memory.Read(cpu.readImmediateWord())
	return 16
}

// EI
func opcode0xFB(cpu *CPU) int {
	// IME turns on only after the next instruction completes
	cpu.eiPending = true
	return 4
}

// CP d8
func opcode0xFE(cpu *CPU) int {
	cpu.compare(cpu.a, cpu.readImmediate())
	return 8
}

// RST 38H
func opcode0xFF(cpu *CPU) int {
	cpu.rst(0x0038)
	return 16
}
