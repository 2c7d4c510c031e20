package cpu

import "github.com/aferranti/go-brick/brick/bit"

// The helpers in this file implement the shared ALU/flow behavior the opcode
// functions delegate to. Flag semantics follow the LR35902 exactly; the low
// nibble of F is never written.

func (c *CPU) pushStack(value uint16) {
	c.sp--
	c.memory.Write(c.sp, bit.High(value))
	c.sp--
	c.memory.Write(c.sp, bit.Low(value))
}

func (c *CPU) popStack() uint16 {
	low := c.memory.Read(c.sp)
	c.sp++
	high := c.memory.Read(c.sp)
	c.sp++
	return bit.Combine(high, low)
}

// inc increments an 8 bit value. C is untouched.
func (c *CPU) inc(value uint8) uint8 {
	result := value + 1
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, value&0x0F == 0x0F)
	return result
}

// dec decrements an 8 bit value. C is untouched.
func (c *CPU) dec(value uint8) uint8 {
	result := value - 1
	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, value&0x0F == 0x00)
	return result
}

func (c *CPU) addToA(value uint8) {
	a := c.a
	result := a + value

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (a&0x0F)+(value&0x0F) > 0x0F)
	c.setFlagToCondition(carryFlag, uint16(a)+uint16(value) > 0xFF)

	c.a = result
}

func (c *CPU) adcToA(value uint8) {
	a := c.a
	carry := c.flagToBit(carryFlag)
	result := a + value + carry

	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (a&0x0F)+(value&0x0F)+carry > 0x0F)
	c.setFlagToCondition(carryFlag, uint16(a)+uint16(value)+uint16(carry) > 0xFF)

	c.a = result
}

func (c *CPU) subFromA(value uint8) {
	c.a = c.compare(c.a, value)
}

func (c *CPU) sbcFromA(value uint8) {
	a := c.a
	borrow := c.flagToBit(carryFlag)
	result := a - value - borrow

	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, a&0x0F < (value&0x0F)+borrow)
	c.setFlagToCondition(carryFlag, uint16(a) < uint16(value)+uint16(borrow))

	c.a = result
}

// compare performs a-b, sets all flags, and returns the difference.
// CP uses the flags only; SUB stores the result too.
func (c *CPU) compare(a, b uint8) uint8 {
	result := a - b
	c.setFlagToCondition(zeroFlag, result == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, a&0x0F < b&0x0F)
	c.setFlagToCondition(carryFlag, a < b)
	return result
}

func (c *CPU) andWithA(value uint8) {
	c.a &= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) orWithA(value uint8) {
	c.a |= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) xorWithA(value uint8) {
	c.a ^= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

// addToHL adds a 16 bit register to HL. Z is untouched; H and C come from
// bits 11 and 15.
func (c *CPU) addToHL(value uint16) {
	hl := c.getHL()

	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (hl&0x0FFF)+(value&0x0FFF) > 0x0FFF)
	c.setFlagToCondition(carryFlag, uint32(hl)+uint32(value) > 0xFFFF)

	c.setHL(hl + value)
}

// addSPSigned returns SP plus a sign-extended immediate, with the ADD SP,e8
// flag rule: Z and N clear, H and C from the unsigned low-byte addition.
func (c *CPU) addSPSigned(offset uint8) uint16 {
	result := c.sp + uint16(int8(offset))

	c.resetFlag(zeroFlag)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (c.sp&0x0F)+(uint16(offset)&0x0F) > 0x0F)
	c.setFlagToCondition(carryFlag, (c.sp&0xFF)+uint16(offset) > 0xFF)

	return result
}

// daa adjusts A after BCD arithmetic, driven by the N, H and C flags.
func (c *CPU) daa() {
	a := uint16(c.a)

	if c.isSetFlag(subFlag) {
		if c.isSetFlag(halfCarryFlag) {
			a = (a - 0x06) & 0xFF
		}
		if c.isSetFlag(carryFlag) {
			a -= 0x60
		}
	} else {
		if c.isSetFlag(halfCarryFlag) || a&0x0F > 0x09 {
			a += 0x06
		}
		if c.isSetFlag(carryFlag) || a > 0x9F {
			a += 0x60
		}
	}

	if a&0x100 != 0 {
		c.setFlag(carryFlag)
	}
	c.a = uint8(a)
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(halfCarryFlag)
}

// rotate and shift helpers; the CB-prefixed forms set Z from the result,
// the accumulator-only forms (RLCA etc.) force Z to 0.

func (c *CPU) rlc(value uint8) uint8 {
	result := value<<1 | value>>7
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&0x80 != 0)
	return result
}

func (c *CPU) rrc(value uint8) uint8 {
	result := value>>1 | value<<7
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&0x01 != 0)
	return result
}

func (c *CPU) rl(value uint8) uint8 {
	result := value<<1 | c.flagToBit(carryFlag)
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&0x80 != 0)
	return result
}

func (c *CPU) rr(value uint8) uint8 {
	result := value>>1 | c.flagToBit(carryFlag)<<7
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&0x01 != 0)
	return result
}

func (c *CPU) sla(value uint8) uint8 {
	result := value << 1
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&0x80 != 0)
	return result
}

// sra shifts right arithmetically: bit 7 is preserved.
func (c *CPU) sra(value uint8) uint8 {
	result := value>>1 | value&0x80
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&0x01 != 0)
	return result
}

func (c *CPU) srl(value uint8) uint8 {
	result := value >> 1
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, value&0x01 != 0)
	return result
}

func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.setFlagToCondition(zeroFlag, result == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
	return result
}

// rotateA applies one of the CB rotate helpers to A and forces Z clear,
// which is how RLCA/RRCA/RLA/RRA differ from their CB forms.
func (c *CPU) rotateA(rotate func(*CPU, uint8) uint8) {
	c.a = rotate(c, c.a)
	c.resetFlag(zeroFlag)
}

// bitTest implements BIT n: Z mirrors the inverted bit, C is untouched.
func (c *CPU) bitTest(index, value uint8) {
	c.setFlagToCondition(zeroFlag, !bit.IsSet(index, value))
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

// control flow

// jr applies the signed relative offset after the operand read.
func (c *CPU) jr() {
	offset := int8(c.readImmediate())
	c.pc += uint16(offset)
}

func (c *CPU) skipJr() {
	c.pc++
}

func (c *CPU) jp() {
	c.pc = c.readImmediateWord()
}

func (c *CPU) skipJp() {
	c.pc += 2
}

func (c *CPU) call() {
	target := c.readImmediateWord()
	c.pushStack(c.pc)
	c.pc = target
}

func (c *CPU) ret() {
	c.pc = c.popStack()
}

func (c *CPU) rst(vector uint16) {
	c.pushStack(c.pc)
	c.pc = vector
}

// readHL and writeHL access the byte HL points at.
func (c *CPU) readHL() uint8 {
	return c.memory.Read(c.getHL())
}

func (c *CPU) writeHL(value uint8) {
	c.memory.Write(c.getHL(), value)
}
