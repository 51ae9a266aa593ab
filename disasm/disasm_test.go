package disasm

import (
	"testing"

	"github.com/retroenv/deck1130/deck"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func testDeck(t *testing.T, lines []string) *deck.ObjectDeck {
	t.Helper()

	objectDeck, err := deck.AssembleLines(log.NewTestLogger(t), lines)
	assert.NoError(t, err)
	return objectDeck
}

func TestDisassemble(t *testing.T) {
	t.Parallel()

	// LD LOOP / SLA 4 / WAIT
	objectDeck := testDeck(t, []string{
		"*L0100LOOP",
		"*W0100C40001001004300030000000",
	})

	instructions := Disassemble(objectDeck, 0x0100, 4)
	assert.Len(t, instructions, 3)

	assert.Equal(t, uint16(0x0100), instructions[0].Address)
	assert.Equal(t, "LD", instructions[0].Mnemonic)
	assert.Equal(t, "LOOP", instructions[0].OperandDisplay)
	assert.Equal(t, 2, instructions[0].WordCount)

	assert.Equal(t, uint16(0x0102), instructions[1].Address)
	assert.Equal(t, "SLA", instructions[1].Mnemonic)
	assert.Equal(t, "4", instructions[1].OperandDisplay)

	assert.Equal(t, uint16(0x0103), instructions[2].Address)
	assert.Equal(t, "WAIT", instructions[2].Mnemonic)
}

func TestDisassembleUnknownOpcodeContinues(t *testing.T) {
	t.Parallel()

	// an unrecognized opcode followed by a valid instruction
	objectDeck := testDeck(t, []string{
		"*W0100F8001004",
	})

	instructions := Disassemble(objectDeck, 0x0100, 2)
	assert.Len(t, instructions, 2)

	assert.Equal(t, UnknownMnemonic, instructions[0].Mnemonic)
	assert.Equal(t, "F800", instructions[0].OperandDisplay)

	assert.Equal(t, uint16(0x0101), instructions[1].Address)
	assert.Equal(t, "SLA", instructions[1].Mnemonic)
}

func TestDisassembleMemoryHole(t *testing.T) {
	t.Parallel()

	objectDeck := testDeck(t, []string{
		"*W01001004",
	})

	instructions := Disassemble(objectDeck, 0x0100, 2)
	assert.Len(t, instructions, 2)

	assert.Equal(t, "SLA", instructions[0].Mnemonic)
	assert.Equal(t, "", instructions[0].Diagnostic)

	// the hole decodes as a synthetic zero word and is flagged
	assert.Equal(t, uint16(0x0101), instructions[1].Address)
	assert.Equal(t, UnknownMnemonic, instructions[1].Mnemonic)
	assert.Equal(t, []uint16{0x0000}, instructions[1].RawWords)
	assert.NotEmpty(t, instructions[1].Diagnostic)
}

func TestDisassembleLengthContract(t *testing.T) {
	t.Parallel()

	// every word is a one word instruction, so the listing covers
	// exactly the requested number of words
	objectDeck := testDeck(t, []string{
		"*W02001001100210031004100510061007100810091010",
	})

	instructions := Disassemble(objectDeck, 0x0200, 10)
	assert.Len(t, instructions, 10)
}

func TestDisassembleRestartable(t *testing.T) {
	t.Parallel()

	objectDeck := testDeck(t, []string{
		"*L0100LOOP",
		"*W0100C4000100D0000100",
	})

	first := Disassemble(objectDeck, 0x0100, 4)
	second := Disassemble(objectDeck, 0x0100, 4)
	assert.Equal(t, first, second)
}

func TestDisassembleStopsAtAddressSpaceEnd(t *testing.T) {
	t.Parallel()

	objectDeck := testDeck(t, []string{
		"*WFFFE10011002",
	})

	instructions := Disassemble(objectDeck, 0xFFFE, 10)
	assert.Len(t, instructions, 2)
	assert.Equal(t, uint16(0xFFFF), instructions[1].Address)
}

func TestDisassembleSymbolRoundTrip(t *testing.T) {
	t.Parallel()

	// every non indexed operand that equals a defined symbol address
	// must resolve to the symbol name, not its hex value
	objectDeck := testDeck(t, []string{
		"*L0100LOOP",
		"*L0104DONE",
		"*W0100C40001041004D4000100",
	})

	instructions := Disassemble(objectDeck, 0x0100, 5)
	assert.Len(t, instructions, 3)
	assert.Equal(t, "DONE", instructions[0].OperandDisplay)
	assert.Equal(t, "LOOP", instructions[2].OperandDisplay)

	for _, instruction := range instructions {
		if instruction.Tag != 0 {
			continue
		}
		name, ok := objectDeck.SymbolForAddress(operandAddress(instruction))
		if !ok {
			continue
		}
		assert.Equal(t, name, instruction.OperandDisplay)
	}
}

// operandAddress re-derives the operand address of a decoded
// non indexed instruction.
func operandAddress(instruction Instruction) uint16 {
	if instruction.Format == Long {
		return instruction.RawWords[1]
	}
	displacement := int8(instruction.RawWords[0] & 0xFF)
	return instruction.Address + 1 + uint16(int16(displacement))
}
