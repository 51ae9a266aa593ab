// Package export converts object decks and disassembly listings into
// the wire representation consumed by the UI and emulator
// collaborators. All output is deterministic: memory ascending by
// address, symbols ascending by address then name, diagnostics in
// record order.
package export

import (
	"fmt"
	"sort"

	"github.com/retroenv/deck1130/deck"
)

// Deck is the serialized form of an object deck.
type Deck struct {
	Memory      []MemoryWord `json:"memory"`
	Symbols     []Symbol     `json:"symbols"`
	EntryPoint  string       `json:"entry_point,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	ChecksumOK  string       `json:"checksum_ok"`
}

// MemoryWord is one address/value pair, both as 4 digit hex.
type MemoryWord struct {
	Address string `json:"address"`
	Value   string `json:"value"`
}

// Symbol is one symbol table entry.
type Symbol struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Diagnostic is one recorded non-fatal issue.
type Diagnostic struct {
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

// NewDeck builds the serialized form of an object deck.
func NewDeck(objectDeck *deck.ObjectDeck) Deck {
	exported := Deck{
		Memory:      exportMemory(objectDeck),
		Symbols:     exportSymbols(objectDeck),
		Diagnostics: exportDiagnostics(objectDeck),
		ChecksumOK:  objectDeck.Checksum.String(),
	}
	if objectDeck.HasEntryPoint {
		exported.EntryPoint = hexWord(objectDeck.EntryPoint)
	}
	return exported
}

func exportMemory(objectDeck *deck.ObjectDeck) []MemoryWord {
	addresses := make([]uint16, 0, len(objectDeck.Memory))
	for address := range objectDeck.Memory {
		addresses = append(addresses, address)
	}
	sort.Slice(addresses, func(i, j int) bool {
		return addresses[i] < addresses[j]
	})

	memory := make([]MemoryWord, 0, len(addresses))
	for _, address := range addresses {
		memory = append(memory, MemoryWord{
			Address: hexWord(address),
			Value:   hexWord(objectDeck.Memory[address]),
		})
	}
	return memory
}

func exportSymbols(objectDeck *deck.ObjectDeck) []Symbol {
	symbols := make([]Symbol, 0, len(objectDeck.Symbols))
	for name, address := range objectDeck.Symbols {
		symbols = append(symbols, Symbol{
			Name:    name,
			Address: hexWord(address),
		})
	}
	sort.Slice(symbols, func(i, j int) bool {
		if symbols[i].Address != symbols[j].Address {
			return symbols[i].Address < symbols[j].Address
		}
		return symbols[i].Name < symbols[j].Name
	})
	return symbols
}

func exportDiagnostics(objectDeck *deck.ObjectDeck) []Diagnostic {
	diagnostics := make([]Diagnostic, 0, len(objectDeck.Diagnostics))
	for _, diagnostic := range objectDeck.Diagnostics {
		diagnostics = append(diagnostics, Diagnostic{
			Kind:   diagnostic.Kind.String(),
			Detail: diagnostic.Detail,
		})
	}
	return diagnostics
}

func hexWord(value uint16) string {
	return fmt.Sprintf("%04X", value)
}
