package export

import (
	"github.com/retroenv/deck1130/disasm"
)

// Line is one serialized disassembly listing line.
type Line struct {
	Address        string   `json:"address"`
	RawWords       []string `json:"raw_words"`
	Mnemonic       string   `json:"mnemonic"`
	OperandDisplay string   `json:"operand_display"`
	Diagnostic     string   `json:"diagnostic,omitempty"`
}

// NewListing builds the serialized form of a disassembly listing.
func NewListing(instructions []disasm.Instruction) []Line {
	lines := make([]Line, 0, len(instructions))
	for _, instruction := range instructions {
		rawWords := make([]string, 0, len(instruction.RawWords))
		for _, word := range instruction.RawWords {
			rawWords = append(rawWords, hexWord(word))
		}

		lines = append(lines, Line{
			Address:        hexWord(instruction.Address),
			RawWords:       rawWords,
			Mnemonic:       instruction.Mnemonic,
			OperandDisplay: instruction.OperandDisplay,
			Diagnostic:     instruction.Diagnostic,
		})
	}
	return lines
}
