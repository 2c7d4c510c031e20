// Package disasm renders instruction listings from the CPU's opcode
// metadata, for debugger front-ends.
package disasm

import (
	"fmt"
	"strings"

	"github.com/aferranti/go-brick/brick/cpu"
)

// Memory is the read access the disassembler needs.
type Memory interface {
	Read(address uint16) uint8
}

// Instruction is one decoded instruction at a fixed address.
type Instruction struct {
	Address  uint16
	Bytes    []uint8
	Mnemonic string
}

func (i Instruction) String() string {
	raw := make([]string, len(i.Bytes))
	for j, b := range i.Bytes {
		raw[j] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X  %-9s %s", i.Address, strings.Join(raw, " "), i.Mnemonic)
}

// Decode reads one instruction at the given address and returns it together
// with the address of the next one.
func Decode(mem Memory, address uint16) (Instruction, uint16) {
	opcode := mem.Read(address)
	info := cpu.Describe(opcode)

	if opcode == 0xCB {
		sub := mem.Read(address + 1)
		info = cpu.DescribeCB(sub)
	}

	inst := Instruction{Address: address, Mnemonic: info.Mnemonic}
	for i := 0; i < info.Length; i++ {
		inst.Bytes = append(inst.Bytes, mem.Read(address+uint16(i)))
	}

	// substitute operand placeholders with the actual bytes
	switch info.Length {
	case 2:
		if opcode != 0xCB {
			operand := inst.Bytes[1]
			inst.Mnemonic = replaceOperand(info.Mnemonic, fmt.Sprintf("0x%02X", operand))
		}
	case 3:
		operand := uint16(inst.Bytes[2])<<8 | uint16(inst.Bytes[1])
		inst.Mnemonic = replaceOperand(info.Mnemonic, fmt.Sprintf("0x%04X", operand))
	}

	return inst, address + uint16(info.Length)
}

// DecodeRange decodes count instructions starting at address.
func DecodeRange(mem Memory, address uint16, count int) []Instruction {
	out := make([]Instruction, 0, count)
	for i := 0; i < count; i++ {
		inst, next := Decode(mem, address)
		out = append(out, inst)
		address = next
	}
	return out
}

func replaceOperand(mnemonic, value string) string {
	for _, placeholder := range []string{"d16", "a16", "d8", "a8", "r8", "e8"} {
		if strings.Contains(mnemonic, placeholder) {
			return strings.Replace(mnemonic, placeholder, value, 1)
		}
	}
	return mnemonic
}
