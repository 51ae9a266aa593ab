package disasm

import (
	"fmt"
)

// Resolver maps an absolute address to a symbol name.
type Resolver func(address uint16) (string, bool)

// NoSymbols is a resolver without any symbol knowledge, all operands
// display as hex addresses.
func NoSymbols(uint16) (string, bool) { return "", false }

// Decode decodes one instruction from words, a slice of the memory
// words starting at address. It returns the instruction and the number
// of words consumed, 1 or 2. An opcode missing from the table decodes
// to the UNKNOWN mnemonic with the raw word as operand display and
// consumes one word, so a walk never aborts.
func Decode(address uint16, words []uint16, resolve Resolver) (Instruction, int) {
	if resolve == nil {
		resolve = NoSymbols
	}
	if len(words) == 0 {
		words = []uint16{0}
	}

	word := words[0]
	entry, ok := opcodes[word>>opcodeShift]
	if !ok {
		return unknownInstruction(address, word), 1
	}

	instruction := Instruction{
		Address:   address,
		Mnemonic:  entry.mnemonic,
		Tag:       uint8((word >> tagShift) & tagMask),
		WordCount: 1,
		RawWords:  []uint16{word},
	}

	switch {
	case entry.shiftLeft, entry.shiftRight:
		return decodeShift(instruction, entry, word), 1

	case NoOperandInstructions.Contains(entry.mnemonic):
		return instruction, 1

	case word&formatBit != 0:
		return decodeLong(instruction, words, resolve)

	default:
		return decodeShort(instruction, word, resolve), 1
	}
}

// decodeShift refines the shift group mnemonic from the modifier bits.
// Shift instructions are short format only; with a nonzero tag the
// count comes from the index register at run time.
func decodeShift(instruction Instruction, entry opcodeEntry, word uint16) Instruction {
	modifier := (word >> shiftModifierShift) & shiftModifierMask
	mnemonic := shiftLeftMnemonics[modifier]
	if entry.shiftRight {
		mnemonic = shiftRightMnemonics[modifier]
	}
	if mnemonic == "" {
		return unknownInstruction(instruction.Address, word)
	}

	instruction.Mnemonic = mnemonic
	if instruction.Tag != 0 {
		instruction.OperandDisplay = fmt.Sprintf("X%d", instruction.Tag)
	} else {
		instruction.OperandDisplay = fmt.Sprintf("%d", word&shiftCountMask)
	}
	return instruction
}

// decodeLong consumes the second word holding the absolute operand
// address. A missing second word decodes as zero and is flagged.
func decodeLong(instruction Instruction, words []uint16, resolve Resolver) (Instruction, int) {
	word := words[0]

	var operand uint16
	if len(words) > 1 {
		operand = words[1]
	} else {
		instruction.Diagnostic = "missing second word, assuming 0000"
	}

	instruction.Format = Long
	instruction.Indirect = word&indirectBit != 0
	instruction.WordCount = 2
	instruction.RawWords = append(instruction.RawWords, operand)
	instruction.OperandDisplay = displayOperand(operand, instruction.Tag, resolve)
	return instruction, 2
}

// decodeShort computes the operand address from the signed
// displacement relative to the next word.
func decodeShort(instruction Instruction, word uint16, resolve Resolver) Instruction {
	displacement := int8(word & displacementMask)

	if instruction.Tag != 0 {
		// indexed operands stay symbolic, the index register content is
		// a run time concern
		instruction.OperandDisplay = fmt.Sprintf("%d,X%d", displacement, instruction.Tag)
		return instruction
	}

	operand := instruction.Address + 1 + uint16(int16(displacement))
	instruction.OperandDisplay = displayOperand(operand, 0, resolve)
	return instruction
}

// displayOperand resolves an operand address against the symbol table.
// Indexed operands are never resolved, their effective address depends
// on the index register.
func displayOperand(address uint16, tag uint8, resolve Resolver) string {
	if tag != 0 {
		return fmt.Sprintf("%04X,X%d", address, tag)
	}
	if name, ok := resolve(address); ok {
		return name
	}
	return fmt.Sprintf("%04X", address)
}

func unknownInstruction(address, word uint16) Instruction {
	return Instruction{
		Address:        address,
		Mnemonic:       UnknownMnemonic,
		OperandDisplay: fmt.Sprintf("%04X", word),
		WordCount:      1,
		RawWords:       []uint16{word},
	}
}
