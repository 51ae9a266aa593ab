// Package disasm decodes IBM 1130 memory words into assembly
// instructions and walks deck memory ranges to produce listings.
package disasm

import (
	"github.com/retroenv/retrogolib/set"
)

// Instruction word layout:
//
//	bits 15-11: opcode
//	bit  10:    format, 1 = long, the absolute address follows in a second word
//	bits  9-8:  tag, index register 1-3, 0 = no indexing
//	bit   7:    indirect addressing (long format only)
//	bits  7-0:  signed displacement relative to address+1 (short format)
const (
	opcodeShift      = 11
	formatBit        = 0x0400
	tagShift         = 8
	tagMask          = 0x0003
	indirectBit      = 0x0080
	displacementMask = 0x00FF

	shiftModifierShift = 6
	shiftModifierMask  = 0x0003
	shiftCountMask     = 0x003F
)

// UnknownMnemonic is emitted for opcodes not present in the table.
// Decoding continues at the next word rather than aborting.
const UnknownMnemonic = "UNKNOWN"

// opcodeEntry describes one entry of the opcode table.
type opcodeEntry struct {
	mnemonic string
	// shift group instructions refine their mnemonic from the modifier
	// bits and take a count operand instead of an address
	shiftLeft  bool
	shiftRight bool
}

// opcodes maps the 5 bit opcode field to its instruction. The table is
// the full IBM 1130 instruction set; gaps are invalid opcodes.
var opcodes = map[uint16]opcodeEntry{
	0x01: {mnemonic: "XIO"},
	0x02: {shiftLeft: true},
	0x03: {shiftRight: true},
	0x04: {mnemonic: "LDS"},
	0x05: {mnemonic: "STS"},
	0x06: {mnemonic: "WAIT"},
	0x08: {mnemonic: "BSI"},
	0x09: {mnemonic: "BSC"},
	0x0C: {mnemonic: "LDX"},
	0x0D: {mnemonic: "STX"},
	0x0E: {mnemonic: "MDX"},
	0x10: {mnemonic: "A"},
	0x11: {mnemonic: "AD"},
	0x12: {mnemonic: "S"},
	0x13: {mnemonic: "SD"},
	0x14: {mnemonic: "M"},
	0x15: {mnemonic: "D"},
	0x18: {mnemonic: "LD"},
	0x19: {mnemonic: "LDD"},
	0x1A: {mnemonic: "STO"},
	0x1B: {mnemonic: "STD"},
	0x1C: {mnemonic: "AND"},
	0x1D: {mnemonic: "OR"},
	0x1E: {mnemonic: "EOR"},
}

// Shift group mnemonics, selected by the modifier bits 6-7. The
// combination 01 of the right shift group is not a valid instruction.
var (
	shiftLeftMnemonics  = [4]string{"SLA", "SLCA", "SLT", "SLC"}
	shiftRightMnemonics = [4]string{"SRA", "", "SRT", "RTE"}
)

// Instruction name sets grouped by behavior class.
var (
	// MemoryReadInstructions reference a memory operand for reading.
	MemoryReadInstructions = newNameSet(
		"A", "AD", "S", "SD", "M", "D", "AND", "OR", "EOR",
		"LD", "LDD", "LDX", "MDX", "XIO",
	)

	// MemoryWriteInstructions store into their memory operand.
	MemoryWriteInstructions = newNameSet("STO", "STD", "STS", "STX", "BSI")

	// BranchInstructions can change the flow of execution.
	BranchInstructions = newNameSet("BSI", "BSC", "MDX")

	// ShiftInstructions operate on the accumulator with a bit count.
	ShiftInstructions = newNameSet(
		"SLA", "SLCA", "SLT", "SLC", "SRA", "SRT", "RTE",
	)

	// NoOperandInstructions have no operand display.
	NoOperandInstructions = newNameSet("WAIT", "LDS")
)

func newNameSet(names ...string) set.Set[string] {
	s := set.New[string]()
	for _, name := range names {
		s.Add(name)
	}
	return s
}
