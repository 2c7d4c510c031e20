package cpu

import "github.com/aferranti/go-brick/brick/bit"

// CB-prefixed opcode handlers: rotates, shifts, SWAP and the
// BIT/RES/SET groups. Register forms cost 8 cycles, (HL) forms 12
// for BIT and 16 for everything that writes back.

// RLC B
func opcodeCB0x00(cpu *CPU) int {
	cpu.b = cpu.rlc(cpu.b)
	return 8
}

// RLC C
func opcodeCB0x01(cpu *CPU) int {
	cpu.c = cpu.rlc(cpu.c)
	return 8
}

// RLC D
func opcodeCB0x02(cpu *CPU) int {
	cpu.d = cpu.rlc(cpu.d)
	return 8
}

// RLC E
func opcodeCB0x03(cpu *CPU) int {
	cpu.e = cpu.rlc(cpu.e)
	return 8
}

// RLC H
func opcodeCB0x04(cpu *CPU) int {
	cpu.h = cpu.rlc(cpu.h)
	return 8
}

// RLC L
func opcodeCB0x05(cpu *CPU) int {
	cpu.l = cpu.rlc(cpu.l)
	return 8
}

// RLC (HL)
func opcodeCB0x06(cpu *CPU) int {
	cpu.writeHL(cpu.rlc(cpu.readHL()))
	return 16
}

// RLC A
func opcodeCB0x07(cpu *CPU) int {
	cpu.a = cpu.rlc(cpu.a)
	return 8
}

// RRC B
func opcodeCB0x08(cpu *CPU) int {
	cpu.b = cpu.rrc(cpu.b)
	return 8
}

// RRC C
func opcodeCB0x09(cpu *CPU) int {
	cpu.c = cpu.rrc(cpu.c)
	return 8
}

// RRC D
func opcodeCB0x0A(cpu *CPU) int {
	cpu.d = cpu.rrc(cpu.d)
	return 8
}

// RRC E
func opcodeCB0x0B(cpu *CPU) int {
	cpu.e = cpu.rrc(cpu.e)
	return 8
}

// RRC H
func opcodeCB0x0C(cpu *CPU) int {
	cpu.h = cpu.rrc(cpu.h)
	return 8
}

// RRC L
func opcodeCB0x0D(cpu *CPU) int {
	cpu.l = cpu.rrc(cpu.l)
	return 8
}

// RRC (HL)
func opcodeCB0x0E(cpu *CPU) int {
	cpu.writeHL(cpu.rrc(cpu.readHL()))
	return 16
}

// RRC A
func opcodeCB0x0F(cpu *CPU) int {
	cpu.a = cpu.rrc(cpu.a)
	return 8
}

// RL B
func opcodeCB0x10(cpu *CPU) int {
	cpu.b = cpu.rl(cpu.b)
	return 8
}

// RL C
func opcodeCB0x11(cpu *CPU) int {
	cpu.c = cpu.rl(cpu.c)
	return 8
}

// RL D
func opcodeCB0x12(cpu *CPU) int {
	cpu.d = cpu.rl(cpu.d)
	return 8
}

// RL E
func opcodeCB0x13(cpu *CPU) int {
	cpu.e = cpu.rl(cpu.e)
	return 8
}

// RL H
func opcodeCB0x14(cpu *CPU) int {
	cpu.h = cpu.rl(cpu.h)
	return 8
}

// RL L
func opcodeCB0x15(cpu *CPU) int {
	cpu.l = cpu.rl(cpu.l)
	return 8
}

// RL (HL)
func opcodeCB0x16(cpu *CPU) int {
	cpu.writeHL(cpu.rl(cpu.readHL()))
	return 16
}

// RL A
func opcodeCB0x17(cpu *CPU) int {
	cpu.a = cpu.rl(cpu.a)
	return 8
}

// RR B
func opcodeCB0x18(cpu *CPU) int {
	cpu.b = cpu.rr(cpu.b)
	return 8
}

// RR C
func opcodeCB0x19(cpu *CPU) int {
	cpu.c = cpu.rr(cpu.c)
	return 8
}

// RR D
func opcodeCB0x1A(cpu *CPU) int {
	cpu.d = cpu.rr(cpu.d)
	return 8
}

// RR E
func opcodeCB0x1B(cpu *CPU) int {
	cpu.e = cpu.rr(cpu.e)
	return 8
}

// RR H
func opcodeCB0x1C(cpu *CPU) int {
	cpu.h = cpu.rr(cpu.h)
	return 8
}

// RR L
func opcodeCB0x1D(cpu *CPU) int {
	cpu.l = cpu.rr(cpu.l)
	return 8
}

// RR (HL)
func opcodeCB0x1E(cpu *CPU) int {
	cpu.writeHL(cpu.rr(cpu.readHL()))
	return 16
}

// RR A
func opcodeCB0x1F(cpu *CPU) int {
	cpu.a = cpu.rr(cpu.a)
	return 8
}

// SLA B
func opcodeCB0x20(cpu *CPU) int {
	cpu.b = cpu.sla(cpu.b)
	return 8
}

// SLA C
func opcodeCB0x21(cpu *CPU) int {
	cpu.c = cpu.sla(cpu.c)
	return 8
}

// SLA D
func opcodeCB0x22(cpu *CPU) int {
	cpu.d = cpu.sla(cpu.d)
	return 8
}

// SLA E
func opcodeCB0x23(cpu *CPU) int {
	cpu.e = cpu.sla(cpu.e)
	return 8
}

// SLA H
func opcodeCB0x24(cpu *CPU) int {
	cpu.h = cpu.sla(cpu.h)
	return 8
}

// SLA L
func opcodeCB0x25(cpu *CPU) int {
	cpu.l = cpu.sla(cpu.l)
	return 8
}

// SLA (HL)
func opcodeCB0x26(cpu *CPU) int {
	cpu.writeHL(cpu.sla(cpu.readHL()))
	return 16
}

// SLA A
func opcodeCB0x27(cpu *CPU) int {
	cpu.a = cpu.sla(cpu.a)
	return 8
}

// SRA B
func opcodeCB0x28(cpu *CPU) int {
	cpu.b = cpu.sra(cpu.b)
	return 8
}

// SRA C
func opcodeCB0x29(cpu *CPU) int {
	cpu.c = cpu.sra(cpu.c)
	return 8
}

// SRA D
func opcodeCB0x2A(cpu *CPU) int {
	cpu.d = cpu.sra(cpu.d)
	return 8
}

// SRA E
func opcodeCB0x2B(cpu *CPU) int {
	cpu.e = cpu.sra(cpu.e)
	return 8
}

// SRA H
func opcodeCB0x2C(cpu *CPU) int {
	cpu.h = cpu.sra(cpu.h)
	return 8
}

// SRA L
func opcodeCB0x2D(cpu *CPU) int {
	cpu.l = cpu.sra(cpu.l)
	return 8
}

// SRA (HL)
func opcodeCB0x2E(cpu *CPU) int {
	cpu.writeHL(cpu.sra(cpu.readHL()))
	return 16
}

// SRA A
func opcodeCB0x2F(cpu *CPU) int {
	cpu.a = cpu.sra(cpu.a)
	return 8
}

// SWAP B
func opcodeCB0x30(cpu *CPU) int {
	cpu.b = cpu.swap(cpu.b)
	return 8
}

// SWAP C
func opcodeCB0x31(cpu *CPU) int {
	cpu.c = cpu.swap(cpu.c)
	return 8
}

// SWAP D
func opcodeCB0x32(cpu *CPU) int {
	cpu.d = cpu.swap(cpu.d)
	return 8
}

// SWAP E
func opcodeCB0x33(cpu *CPU) int {
	cpu.e = cpu.swap(cpu.e)
	return 8
}

// SWAP H
func opcodeCB0x34(cpu *CPU) int {
	cpu.h = cpu.swap(cpu.h)
	return 8
}

// SWAP L
func opcodeCB0x35(cpu *CPU) int {
	cpu.l = cpu.swap(cpu.l)
	return 8
}

// SWAP (HL)
func opcodeCB0x36(cpu *CPU) int {
	cpu.writeHL(cpu.swap(cpu.readHL()))
	return 16
}

// SWAP A
func opcodeCB0x37(cpu *CPU) int {
	cpu.a = cpu.swap(cpu.a)
	return 8
}

// SRL B
func opcodeCB0x38(cpu *CPU) int {
	cpu.b = cpu.srl(cpu.b)
	return 8
}

// SRL C
func opcodeCB0x39(cpu *CPU) int {
	cpu.c = cpu.srl(cpu.c)
	return 8
}

// SRL D
func opcodeCB0x3A(cpu *CPU) int {
	cpu.d = cpu.srl(cpu.d)
	return 8
}

// SRL E
func opcodeCB0x3B(cpu *CPU) int {
	cpu.e = cpu.srl(cpu.e)
	return 8
}

// SRL H
func opcodeCB0x3C(cpu *CPU) int {
	cpu.h = cpu.srl(cpu.h)
	return 8
}

// SRL L
func opcodeCB0x3D(cpu *CPU) int {
	cpu.l = cpu.srl(cpu.l)
	return 8
}

// SRL (HL)
func opcodeCB0x3E(cpu *CPU) int {
	cpu.writeHL(cpu.srl(cpu.readHL()))
	return 16
}

// SRL A
func opcodeCB0x3F(cpu *CPU) int {
	cpu.a = cpu.srl(cpu.a)
	return 8
}

// BIT 0,B
func opcodeCB0x40(cpu *CPU) int {
	cpu.bitTest(0, cpu.b)
	return 8
}

// BIT 0,C
func opcodeCB0x41(cpu *CPU) int {
	cpu.bitTest(0, cpu.c)
	return 8
}

// BIT 0,D
func opcodeCB0x42(cpu *CPU) int {
	cpu.bitTest(0, cpu.d)
	return 8
}

// BIT 0,E
func opcodeCB0x43(cpu *CPU) int {
	cpu.bitTest(0, cpu.e)
	return 8
}

// BIT 0,H
func opcodeCB0x44(cpu *CPU) int {
	cpu.bitTest(0, cpu.h)
	return 8
}

// BIT 0,L
func opcodeCB0x45(cpu *CPU) int {
	cpu.bitTest(0, cpu.l)
	return 8
}

// BIT 0,(HL)
func opcodeCB0x46(cpu *CPU) int {
	cpu.bitTest(0, cpu.readHL())
	return 12
}

// BIT 0,A
func opcodeCB0x47(cpu *CPU) int {
	cpu.bitTest(0, cpu.a)
	return 8
}

// BIT 1,B
func opcodeCB0x48(cpu *CPU) int {
	cpu.bitTest(1, cpu.b)
	return 8
}

// BIT 1,C
func opcodeCB0x49(cpu *CPU) int {
	cpu.bitTest(1, cpu.c)
	return 8
}

// BIT 1,D
func opcodeCB0x4A(cpu *CPU) int {
	cpu.bitTest(1, cpu.d)
	return 8
}

// BIT 1,E
func opcodeCB0x4B(cpu *CPU) int {
	cpu.bitTest(1, cpu.e)
	return 8
}

// BIT 1,H
func opcodeCB0x4C(cpu *CPU) int {
	cpu.bitTest(1, cpu.h)
	return 8
}

// BIT 1,L
func opcodeCB0x4D(cpu *CPU) int {
	cpu.bitTest(1, cpu.l)
	return 8
}

// BIT 1,(HL)
func opcodeCB0x4E(cpu *CPU) int {
	cpu.bitTest(1, cpu.readHL())
	return 12
}

// BIT 1,A
func opcodeCB0x4F(cpu *CPU) int {
	cpu.bitTest(1, cpu.a)
	return 8
}

// BIT 2,B
func opcodeCB0x50(cpu *CPU) int {
	cpu.bitTest(2, cpu.b)
	return 8
}

// BIT 2,C
func opcodeCB0x51(cpu *CPU) int {
	cpu.bitTest(2, cpu.c)
	return 8
}

// BIT 2,D
func opcodeCB0x52(cpu *CPU) int {
	cpu.bitTest(2, cpu.d)
	return 8
}

// BIT 2,E
func opcodeCB0x53(cpu *CPU) int {
	cpu.bitTest(2, cpu.e)
	return 8
}

// BIT 2,H
func opcodeCB0x54(cpu *CPU) int {
	cpu.bitTest(2, cpu.h)
	return 8
}

// BIT 2,L
func opcodeCB0x55(cpu *CPU) int {
	cpu.bitTest(2, cpu.l)
	return 8
}

// BIT 2,(HL)
func opcodeCB0x56(cpu *CPU) int {
	cpu.bitTest(2, cpu.readHL())
	return 12
}

// BIT 2,A
func opcodeCB0x57(cpu *CPU) int {
	cpu.bitTest(2, cpu.a)
	return 8
}

// BIT 3,B
func opcodeCB0x58(cpu *CPU) int {
	cpu.bitTest(3, cpu.b)
	return 8
}

// BIT 3,C
func opcodeCB0x59(cpu *CPU) int {
	cpu.bitTest(3, cpu.c)
	return 8
}

// BIT 3,D
func opcodeCB0x5A(cpu *CPU) int {
	cpu.bitTest(3, cpu.d)
	return 8
}

// BIT 3,E
func opcodeCB0x5B(cpu *CPU) int {
	cpu.bitTest(3, cpu.e)
	return 8
}

// BIT 3,H
func opcodeCB0x5C(cpu *CPU) int {
	cpu.bitTest(3, cpu.h)
	return 8
}

// BIT 3,L
func opcodeCB0x5D(cpu *CPU) int {
	cpu.bitTest(3, cpu.l)
	return 8
}

// BIT 3,(HL)
func opcodeCB0x5E(cpu *CPU) int {
	cpu.bitTest(3, cpu.readHL())
	return 12
}

// BIT 3,A
func opcodeCB0x5F(cpu *CPU) int {
	cpu.bitTest(3, cpu.a)
	return 8
}

// BIT 4,B
func opcodeCB0x60(cpu *CPU) int {
	cpu.bitTest(4, cpu.b)
	return 8
}

// BIT 4,C
func opcodeCB0x61(cpu *CPU) int {
	cpu.bitTest(4, cpu.c)
	return 8
}

// BIT 4,D
func opcodeCB0x62(cpu *CPU) int {
	cpu.bitTest(4, cpu.d)
	return 8
}

// BIT 4,E
func opcodeCB0x63(cpu *CPU) int {
	cpu.bitTest(4, cpu.e)
	return 8
}

// BIT 4,H
func opcodeCB0x64(cpu *CPU) int {
	cpu.bitTest(4, cpu.h)
	return 8
}

// BIT 4,L
func opcodeCB0x65(cpu *CPU) int {
	cpu.bitTest(4, cpu.l)
	return 8
}

// BIT 4,(HL)
func opcodeCB0x66(cpu *CPU) int {
	cpu.bitTest(4, cpu.readHL())
	return 12
}

// BIT 4,A
func opcodeCB0x67(cpu *CPU) int {
	cpu.bitTest(4, cpu.a)
	return 8
}

// BIT 5,B
func opcodeCB0x68(cpu *CPU) int {
	cpu.bitTest(5, cpu.b)
	return 8
}

// BIT 5,C
func opcodeCB0x69(cpu *CPU) int {
	cpu.bitTest(5, cpu.c)
	return 8
}

// BIT 5,D
func opcodeCB0x6A(cpu *CPU) int {
	cpu.bitTest(5, cpu.d)
	return 8
}

// BIT 5,E
func opcodeCB0x6B(cpu *CPU) int {
	cpu.bitTest(5, cpu.e)
	return 8
}

// BIT 5,H
func opcodeCB0x6C(cpu *CPU) int {
	cpu.bitTest(5, cpu.h)
	return 8
}

// BIT 5,L
func opcodeCB0x6D(cpu *CPU) int {
	cpu.bitTest(5, cpu.l)
	return 8
}

// BIT 5,(HL)
func opcodeCB0x6E(cpu *CPU) int {
	cpu.bitTest(5, cpu.readHL())
	return 12
}

// BIT 5,A
func opcodeCB0x6F(cpu *CPU) int {
	cpu.bitTest(5, cpu.a)
	return 8
}

// BIT 6,B
func opcodeCB0x70(cpu *CPU) int {
	cpu.bitTest(6, cpu.b)
	return 8
}

// BIT 6,C
func opcodeCB0x71(cpu *CPU) int {
	cpu.bitTest(6, cpu.c)
	return 8
}

// BIT 6,D
func opcodeCB0x72(cpu *CPU) int {
	cpu.bitTest(6, cpu.d)
	return 8
}

// BIT 6,E
func opcodeCB0x73(cpu *CPU) int {
	cpu.bitTest(6, cpu.e)
	return 8
}

// BIT 6,H
func opcodeCB0x74(cpu *CPU) int {
	cpu.bitTest(6, cpu.h)
	return 8
}

// BIT 6,L
func opcodeCB0x75(cpu *CPU) int {
	cpu.bitTest(6, cpu.l)
	return 8
}

// BIT 6,(HL)
func opcodeCB0x76(cpu *CPU) int {
	cpu.bitTest(6, cpu.readHL())
	return 12
}

// BIT 6,A
func opcodeCB0x77(cpu *CPU) int {
	cpu.bitTest(6, cpu.a)
	return 8
}

// BIT 7,B
func opcodeCB0x78(cpu *CPU) int {
	cpu.bitTest(7, cpu.b)
	return 8
}

// BIT 7,C
func opcodeCB0x79(cpu *CPU) int {
	cpu.bitTest(7, cpu.c)
	return 8
}

// BIT 7,D
func opcodeCB0x7A(cpu *CPU) int {
	cpu.bitTest(7, cpu.d)
	return 8
}

// BIT 7,E
func opcodeCB0x7B(cpu *CPU) int {
	cpu.bitTest(7, cpu.e)
	return 8
}

// BIT 7,H
func opcodeCB0x7C(cpu *CPU) int {
	cpu.bitTest(7, cpu.h)
	return 8
}

// BIT 7,L
func opcodeCB0x7D(cpu *CPU) int {
	cpu.bitTest(7, cpu.l)
	return 8
}

// BIT 7,(HL)
func opcodeCB0x7E(cpu *CPU) int {
	cpu.bitTest(7, cpu.readHL())
	return 12
}

// BIT 7,A
func opcodeCB0x7F(cpu *CPU) int {
	cpu.bitTest(7, cpu.a)
	return 8
}

// RES 0,B
func opcodeCB0x80(cpu *CPU) int {
	cpu.b = bit.Reset(0, cpu.b)
	return 8
}

// RES 0,C
func opcodeCB0x81(cpu *CPU) int {
	cpu.c = bit.Reset(0, cpu.c)
	return 8
}

// RES 0,D
func opcodeCB0x82(cpu *CPU) int {
	cpu.d = bit.Reset(0, cpu.d)
	return 8
}

// RES 0,E
func opcodeCB0x83(cpu *CPU) int {
	cpu.e = bit.Reset(0, cpu.e)
	return 8
}

// RES 0,H
func opcodeCB0x84(cpu *CPU) int {
	cpu.h = bit.Reset(0, cpu.h)
	return 8
}

// RES 0,L
func opcodeCB0x85(cpu *CPU) int {
	cpu.l = bit.Reset(0, cpu.l)
	return 8
}

// RES 0,(HL)
func opcodeCB0x86(cpu *CPU) int {
	cpu.writeHL(bit.Reset(0, cpu.readHL()))
	return 16
}

// RES 0,A
func opcodeCB0x87(cpu *CPU) int {
	cpu.a = bit.Reset(0, cpu.a)
	return 8
}

// RES 1,B
func opcodeCB0x88(cpu *CPU) int {
	cpu.b = bit.Reset(1, cpu.b)
	return 8
}

// RES 1,C
func opcodeCB0x89(cpu *CPU) int {
	cpu.c = bit.Reset(1, cpu.c)
	return 8
}

// RES 1,D
func opcodeCB0x8A(cpu *CPU) int {
	cpu.d = bit.Reset(1, cpu.d)
	return 8
}

// RES 1,E
func opcodeCB0x8B(cpu *CPU) int {
	cpu.e = bit.Reset(1, cpu.e)
	return 8
}

// RES 1,H
func opcodeCB0x8C(cpu *CPU) int {
	cpu.h = bit.Reset(1, cpu.h)
	return 8
}

// RES 1,L
func opcodeCB0x8D(cpu *CPU) int {
	cpu.l = bit.Reset(1, cpu.l)
	return 8
}

// RES 1,(HL)
func opcodeCB0x8E(cpu *CPU) int {
	cpu.writeHL(bit.Reset(1, cpu.readHL()))
	return 16
}

// RES 1,A
func opcodeCB0x8F(cpu *CPU) int {
	cpu.a = bit.Reset(1, cpu.a)
	return 8
}

// RES 2,B
func opcodeCB0x90(cpu *CPU) int {
	cpu.b = bit.Reset(2, cpu.b)
	return 8
}

// RES 2,C
func opcodeCB0x91(cpu *CPU) int {
	cpu.c = bit.Reset(2, cpu.c)
	return 8
}

// RES 2,D
func opcodeCB0x92(cpu *CPU) int {
	cpu.d = bit.Reset(2, cpu.d)
	return 8
}

// RES 2,E
func opcodeCB0x93(cpu *CPU) int {
	cpu.e = bit.Reset(2, cpu.e)
	return 8
}

// RES 2,H
func opcodeCB0x94(cpu *CPU) int {
	cpu.h = bit.Reset(2, cpu.h)
	return 8
}

// RES 2,L
func opcodeCB0x95(cpu *CPU) int {
	cpu.l = bit.Reset(2, cpu.l)
	return 8
}

// RES 2,(HL)
func opcodeCB0x96(cpu *CPU) int {
	cpu.writeHL(bit.Reset(2, cpu.readHL()))
	return 16
}

// RES 2,A
func opcodeCB0x97(cpu *CPU) int {
	cpu.a = bit.Reset(2, cpu.a)
	return 8
}

// RES 3,B
func opcodeCB0x98(cpu *CPU) int {
	cpu.b = bit.Reset(3, cpu.b)
	return 8
}

// RES 3,C
func opcodeCB0x99(cpu *CPU) int {
	cpu.c = bit.Reset(3, cpu.c)
	return 8
}

// RES 3,D
func opcodeCB0x9A(cpu *CPU) int {
	cpu.d = bit.Reset(3, cpu.d)
	return 8
}

// RES 3,E
func opcodeCB0x9B(cpu *CPU) int {
	cpu.e = bit.Reset(3, cpu.e)
	return 8
}

// RES 3,H
func opcodeCB0x9C(cpu *CPU) int {
	cpu.h = bit.Reset(3, cpu.h)
	return 8
}

// RES 3,L
func opcodeCB0x9D(cpu *CPU) int {
	cpu.l = bit.Reset(3, cpu.l)
	return 8
}

// RES 3,(HL)
func opcodeCB0x9E(cpu *CPU) int {
	cpu.writeHL(bit.Reset(3, cpu.readHL()))
	return 16
}

// RES 3,A
func opcodeCB0x9F(cpu *CPU) int {
	cpu.a = bit.Reset(3, cpu.a)
	return 8
}

// RES 4,B
func opcodeCB0xA0(cpu *CPU) int {
	cpu.b = bit.Reset(4, cpu.b)
	return 8
}

// RES 4,C
func opcodeCB0xA1(cpu *CPU) int {
	cpu.c = bit.Reset(4, cpu.c)
	return 8
}

// RES 4,D
func opcodeCB0xA2(cpu *CPU) int {
	cpu.d = bit.Reset(4, cpu.d)
	return 8
}

// RES 4,E
func opcodeCB0xA3(cpu *CPU) int {
	cpu.e = bit.Reset(4, cpu.e)
	return 8
}

// RES 4,H
func opcodeCB0xA4(cpu *CPU) int {
	cpu.h = bit.Reset(4, cpu.h)
	return 8
}

// RES 4,L
func opcodeCB0xA5(cpu *CPU) int {
	cpu.l = bit.Reset(4, cpu.l)
	return 8
}

// RES 4,(HL)
func opcodeCB0xA6(cpu *CPU) int {
	cpu.writeHL(bit.Reset(4, cpu.readHL()))
	return 16
}

// RES 4,A
func opcodeCB0xA7(cpu *CPU) int {
	cpu.a = bit.Reset(4, cpu.a)
	return 8
}

// RES 5,B
func opcodeCB0xA8(cpu *CPU) int {
	cpu.b = bit.Reset(5, cpu.b)
	return 8
}

// RES 5,C
func opcodeCB0xA9(cpu *CPU) int {
	cpu.c = bit.Reset(5, cpu.c)
	return 8
}

// RES 5,D
func opcodeCB0xAA(cpu *CPU) int {
	cpu.d = bit.Reset(5, cpu.d)
	return 8
}

// RES 5,E
func opcodeCB0xAB(cpu *CPU) int {
	cpu.e = bit.Reset(5, cpu.e)
	return 8
}

// RES 5,H
func opcodeCB0xAC(cpu *CPU) int {
	cpu.h = bit.Reset(5, cpu.h)
	return 8
}

// RES 5,L
func opcodeCB0xAD(cpu *CPU) int {
	cpu.l = bit.Reset(5, cpu.l)
	return 8
}

// RES 5,(HL)
func opcodeCB0xAE(cpu *CPU) int {
	cpu.writeHL(bit.Reset(5, cpu.readHL()))
	return 16
}

// RES 5,A
func opcodeCB0xAF(cpu *CPU) int {
	cpu.a = bit.Reset(5, cpu.a)
	return 8
}

// RES 6,B
func opcodeCB0xB0(cpu *CPU) int {
	cpu.b = bit.Reset(6, cpu.b)
	return 8
}

// RES 6,C
func opcodeCB0xB1(cpu *CPU) int {
	cpu.c = bit.Reset(6, cpu.c)
	return 8
}

// RES 6,D
func opcodeCB0xB2(cpu *CPU) int {
	cpu.d = bit.Reset(6, cpu.d)
	return 8
}

// RES 6,E
func opcodeCB0xB3(cpu *CPU) int {
	cpu.e = bit.Reset(6, cpu.e)
	return 8
}

// RES 6,H
func opcodeCB0xB4(cpu *CPU) int {
	cpu.h = bit.Reset(6, cpu.h)
	return 8
}

// RES 6,L
func opcodeCB0xB5(cpu *CPU) int {
	cpu.l = bit.Reset(6, cpu.l)
	return 8
}

// RES 6,(HL)
func opcodeCB0xB6(cpu *CPU) int {
	cpu.writeHL(bit.Reset(6, cpu.readHL()))
	return 16
}

// RES 6,A
func opcodeCB0xB7(cpu *CPU) int {
	cpu.a = bit.Reset(6, cpu.a)
	return 8
}

// RES 7,B
func opcodeCB0xB8(cpu *CPU) int {
	cpu.b = bit.Reset(7, cpu.b)
	return 8
}

// RES 7,C
func opcodeCB0xB9(cpu *CPU) int {
	cpu.c = bit.Reset(7, cpu.c)
	return 8
}

// RES 7,D
func opcodeCB0xBA(cpu *CPU) int {
	cpu.d = bit.Reset(7, cpu.d)
	return 8
}

// RES 7,E
func opcodeCB0xBB(cpu *CPU) int {
	cpu.e = bit.Reset(7, cpu.e)
	return 8
}

// RES 7,H
func opcodeCB0xBC(cpu *CPU) int {
	cpu.h = bit.Reset(7, cpu.h)
	return 8
}

// RES 7,L
func opcodeCB0xBD(cpu *CPU) int {
	cpu.l = bit.Reset(7, cpu.l)
	return 8
}

// RES 7,(HL)
func opcodeCB0xBE(cpu *CPU) int {
	cpu.writeHL(bit.Reset(7, cpu.readHL()))
	return 16
}

// RES 7,A
func opcodeCB0xBF(cpu *CPU) int {
	cpu.a = bit.Reset(7, cpu.a)
	return 8
}

// SET 0,B
func opcodeCB0xC0(cpu *CPU) int {
	cpu.b = bit.Set(0, cpu.b)
	return 8
}

// SET 0,C
func opcodeCB0xC1(cpu *CPU) int {
	cpu.c = bit.Set(0, cpu.c)
	return 8
}

// SET 0,D
func opcodeCB0xC2(cpu *CPU) int {
	cpu.d = bit.Set(0, cpu.d)
	return 8
}

// SET 0,E
func opcodeCB0xC3(cpu *CPU) int {
	cpu.e = bit.Set(0, cpu.e)
	return 8
}

// SET 0,H
func opcodeCB0xC4(cpu *CPU) int {
	cpu.h = bit.Set(0, cpu.h)
	return 8
}

// SET 0,L
func opcodeCB0xC5(cpu *CPU) int {
	cpu.l = bit.Set(0, cpu.l)
	return 8
}

// SET 0,(HL)
func opcodeCB0xC6(cpu *CPU) int {
	cpu.writeHL(bit.Set(0, cpu.readHL()))
	return 16
}

// SET 0,A
func opcodeCB0xC7(cpu *CPU) int {
	cpu.a = bit.Set(0, cpu.a)
	return 8
}

// SET 1,B
func opcodeCB0xC8(cpu *CPU) int {
	cpu.b = bit.Set(1, cpu.b)
	return 8
}

// SET 1,C
func opcodeCB0xC9(cpu *CPU) int {
	cpu.c = bit.Set(1, cpu.c)
	return 8
}

// SET 1,D
func opcodeCB0xCA(cpu *CPU) int {
	cpu.d = bit.Set(1, cpu.d)
	return 8
}

// SET 1,E
func opcodeCB0xCB(cpu *CPU) int {
	cpu.e = bit.Set(1, cpu.e)
	return 8
}

// SET 1,H
func opcodeCB0xCC(cpu *CPU) int {
	cpu.h = bit.Set(1, cpu.h)
	return 8
}

// SET 1,L
func opcodeCB0xCD(cpu *CPU) int {
	cpu.l = bit.Set(1, cpu.l)
	return 8
}

// SET 1,(HL)
func opcodeCB0xCE(cpu *CPU) int {
	cpu.writeHL(bit.Set(1, cpu.readHL()))
	return 16
}

// SET 1,A
func opcodeCB0xCF(cpu *CPU) int {
	cpu.a = bit.Set(1, cpu.a)
	return 8
}

// SET 2,B
func opcodeCB0xD0(cpu *CPU) int {
	cpu.b = bit.Set(2, cpu.b)
	return 8
}

// SET 2,C
func opcodeCB0xD1(cpu *CPU) int {
	cpu.c = bit.Set(2, cpu.c)
	return 8
}

// SET 2,D
func opcodeCB0xD2(cpu *CPU) int {
	cpu.d = bit.Set(2, cpu.d)
	return 8
}

// SET 2,E
func opcodeCB0xD3(cpu *CPU) int {
	cpu.e = bit.Set(2, cpu.e)
	return 8
}

// SET 2,H
func opcodeCB0xD4(cpu *CPU) int {
	cpu.h = bit.Set(2, cpu.h)
	return 8
}

// SET 2,L
func opcodeCB0xD5(cpu *CPU) int {
	cpu.l = bit.Set(2, cpu.l)
	return 8
}

// SET 2,(HL)
func opcodeCB0xD6(cpu *CPU) int {
	cpu.writeHL(bit.Set(2, cpu.readHL()))
	return 16
}

// SET 2,A
func opcodeCB0xD7(cpu *CPU) int {
	cpu.a = bit.Set(2, cpu.a)
	return 8
}

// SET 3,B
func opcodeCB0xD8(cpu *CPU) int {
	cpu.b = bit.Set(3, cpu.b)
	return 8
}

// SET 3,C
func opcodeCB0xD9(cpu *CPU) int {
	cpu.c = bit.Set(3, cpu.c)
	return 8
}

// SET 3,D
func opcodeCB0xDA(cpu *CPU) int {
	cpu.d = bit.Set(3, cpu.d)
	return 8
}

// SET 3,E
func opcodeCB0xDB(cpu *CPU) int {
	cpu.e = bit.Set(3, cpu.e)
	return 8
}

// SET 3,H
func opcodeCB0xDC(cpu *CPU) int {
	cpu.h = bit.Set(3, cpu.h)
	return 8
}

// SET 3,L
func opcodeCB0xDD(cpu *CPU) int {
	cpu.l = bit.Set(3, cpu.l)
	return 8
}

// SET 3,(HL)
func opcodeCB0xDE(cpu *CPU) int {
	cpu.writeHL(bit.Set(3, cpu.readHL()))
	return 16
}

// SET 3,A
func opcodeCB0xDF(cpu *CPU) int {
	cpu.a = bit.Set(3, cpu.a)
	return 8
}

// SET 4,B
func opcodeCB0xE0(cpu *CPU) int {
	cpu.b = bit.Set(4, cpu.b)
	return 8
}

// SET 4,C
func opcodeCB0xE1(cpu *CPU) int {
	cpu.c = bit.Set(4, cpu.c)
	return 8
}

// SET 4,D
func opcodeCB0xE2(cpu *CPU) int {
	cpu.d = bit.Set(4, cpu.d)
	return 8
}

// SET 4,E
func opcodeCB0xE3(cpu *CPU) int {
	cpu.e = bit.Set(4, cpu.e)
	return 8
}

// SET 4,H
func opcodeCB0xE4(cpu *CPU) int {
	cpu.h = bit.Set(4, cpu.h)
	return 8
}

// SET 4,L
func opcodeCB0xE5(cpu *CPU) int {
	cpu.l = bit.Set(4, cpu.l)
	return 8
}

// SET 4,(HL)
func opcodeCB0xE6(cpu *CPU) int {
	cpu.writeHL(bit.Set(4, cpu.readHL()))
	return 16
}

// SET 4,A
func opcodeCB0xE7(cpu *CPU) int {
	cpu.a = bit.Set(4, cpu.a)
	return 8
}

// SET 5,B
func opcodeCB0xE8(cpu *CPU) int {
	cpu.b = bit.Set(5, cpu.b)
	return 8
}

// SET 5,C
func opcodeCB0xE9(cpu *CPU) int {
	cpu.c = bit.Set(5, cpu.c)
	return 8
}

// SET 5,D
func opcodeCB0xEA(cpu *CPU) int {
	cpu.d = bit.Set(5, cpu.d)
	return 8
}

// SET 5,E
func opcodeCB0xEB(cpu *CPU) int {
	cpu.e = bit.Set(5, cpu.e)
	return 8
}

// SET 5,H
func opcodeCB0xEC(cpu *CPU) int {
	cpu.h = bit.Set(5, cpu.h)
	return 8
}

// SET 5,L
func opcodeCB0xED(cpu *CPU) int {
	cpu.l = bit.Set(5, cpu.l)
	return 8
}

// SET 5,(HL)
func opcodeCB0xEE(cpu *CPU) int {
	cpu.writeHL(bit.Set(5, cpu.readHL()))
	return 16
}

// SET 5,A
func opcodeCB0xEF(cpu *CPU) int {
	cpu.a = bit.Set(5, cpu.a)
	return 8
}

// SET 6,B
func opcodeCB0xF0(cpu *CPU) int {
	cpu.b = bit.Set(6, cpu.b)
	return 8
}

// SET 6,C
func opcodeCB0xF1(cpu *CPU) int {
	cpu.c = bit.Set(6, cpu.c)
	return 8
}

// SET 6,D
func opcodeCB0xF2(cpu *CPU) int {
	cpu.d = bit.Set(6, cpu.d)
	return 8
}

// SET 6,E
func opcodeCB0xF3(cpu *CPU) int {
	cpu.e = bit.Set(6, cpu.e)
	return 8
}

// SET 6,H
func opcodeCB0xF4(cpu *CPU) int {
	cpu.h = bit.Set(6, cpu.h)
	return 8
}

// SET 6,L
func opcodeCB0xF5(cpu *CPU) int {
	cpu.l = bit.Set(6, cpu.l)
	return 8
}

// SET 6,(HL)
func opcodeCB0xF6(cpu *CPU) int {
	cpu.writeHL(bit.Set(6, cpu.readHL()))
	return 16
}

// SET 6,A
func opcodeCB0xF7(cpu *CPU) int {
	cpu.a = bit.Set(6, cpu.a)
	return 8
}

// SET 7,B
func opcodeCB0xF8(cpu *CPU) int {
	cpu.b = bit.Set(7, cpu.b)
	return 8
}

// SET 7,C
func opcodeCB0xF9(cpu *CPU) int {
	cpu.c = bit.Set(7, cpu.c)
	return 8
}

// SET 7,D
func opcodeCB0xFA(cpu *CPU) int {
	cpu.d = bit.Set(7, cpu.d)
	return 8
}

// SET 7,E
func opcodeCB0xFB(cpu *CPU) int {
	cpu.e = bit.Set(7, cpu.e)
	return 8
}

// SET 7,H
func opcodeCB0xFC(cpu *CPU) int {
	cpu.h = bit.Set(7, cpu.h)
	return 8
}

// SET 7,L
func opcodeCB0xFD(cpu *CPU) int {
	cpu.l = bit.Set(7, cpu.l)
	return 8
}

// SET 7,(HL)
func opcodeCB0xFE(cpu *CPU) int {
	cpu.writeHL(bit.Set(7, cpu.readHL()))
	return 16
}

// SET 7,A
func opcodeCB0xFF(cpu *CPU) int {
	cpu.a = bit.Set(7, cpu.a)
	return 8
}
