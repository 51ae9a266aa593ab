package disasm

import (
	"fmt"

	"github.com/retroenv/deck1130/deck"
)

// maxAddress is the last valid word address of the 1130 address space.
const maxAddress = 0xFFFF

// Disassemble walks length words of deck memory starting at start and
// returns the decoded instructions in address order. Holes in memory
// decode as synthetic zero words flagged in the instruction diagnostic
// instead of failing the walk. The walk is restartable: calling again
// with the same arguments produces the same listing.
func Disassemble(objectDeck *deck.ObjectDeck, start, length uint16) []Instruction {
	resolve := NewDeckResolver(objectDeck)

	var instructions []Instruction
	address := uint32(start)
	end := address + uint32(length)

	for address < end && address <= maxAddress {
		words, missing := fetchWords(objectDeck, uint16(address))

		instruction, consumed := Decode(uint16(address), words, resolve)
		flagMissingWords(&instruction, missing)

		instructions = append(instructions, instruction)
		address += uint32(consumed)
	}

	return instructions
}

// fetchWords reads up to two words at address, substituting zero for
// missing addresses and reporting which ones were missing.
func fetchWords(objectDeck *deck.ObjectDeck, address uint16) ([]uint16, [2]bool) {
	var missing [2]bool

	first, ok := objectDeck.Memory[address]
	missing[0] = !ok

	words := []uint16{first}
	if address < maxAddress {
		second, ok := objectDeck.Memory[address+1]
		missing[1] = !ok
		words = append(words, second)
	}

	return words, missing
}

// flagMissingWords records synthetic zero words in the instruction
// diagnostic. The second word only matters for long instructions.
func flagMissingWords(instruction *Instruction, missing [2]bool) {
	if missing[0] {
		instruction.Diagnostic = fmt.Sprintf(
			"no word at %04X, decoded as 0000", instruction.Address)
		return
	}
	if instruction.WordCount == 2 && missing[1] {
		instruction.Diagnostic = fmt.Sprintf(
			"no word at %04X, decoded as 0000", instruction.Address+1)
	}
}

// NewDeckResolver returns a resolver backed by the symbol table of the
// deck. The reverse mapping is built once; on address collisions the
// lexicographically smallest name wins, matching ObjectDeck.SymbolForAddress.
func NewDeckResolver(objectDeck *deck.ObjectDeck) Resolver {
	byAddress := make(map[uint16]string, len(objectDeck.Symbols))
	for name, address := range objectDeck.Symbols {
		if existing, ok := byAddress[address]; !ok || name < existing {
			byAddress[address] = name
		}
	}

	return func(address uint16) (string, bool) {
		name, ok := byAddress[address]
		return name, ok
	}
}
