// Package deck assembles parsed card records into an object deck, the
// loadable program image of word addressed memory, symbol table and
// entry point.
package deck

import (
	"github.com/retroenv/deck1130/card"
)

// ChecksumState is the tri-state verdict of the most recently folded
// checksum card.
type ChecksumState int

const (
	ChecksumUnchecked ChecksumState = iota
	ChecksumPass
	ChecksumFail
)

// String implements the fmt.Stringer interface.
func (s ChecksumState) String() string {
	switch s {
	case ChecksumPass:
		return "pass"
	case ChecksumFail:
		return "fail"
	default:
		return "unchecked"
	}
}

// ObjectDeck is the decoded program image accumulated from a card
// deck. It is mutated strictly in card order during assembly and
// treated as read-only once the input stream ends.
type ObjectDeck struct {
	// Memory maps each written address to its word, later writes to the
	// same address overwrite earlier ones.
	Memory map[uint16]uint16

	// Symbols maps each defined symbol name to its address.
	Symbols map[string]uint16

	// EntryPoint is the address set by the most recent transfer card,
	// valid only if HasEntryPoint is set.
	EntryPoint    uint16
	HasEntryPoint bool

	// Cards preserves the original records in physical card order for
	// diagnostics and re-derivation of checksums.
	Cards []card.Record

	// Diagnostics collects all non-fatal issues in fold order.
	Diagnostics []Diagnostic

	// Checksum reflects the most recently folded checksum card.
	Checksum ChecksumState
}

// New returns an empty object deck.
func New() *ObjectDeck {
	return &ObjectDeck{
		Memory:  map[uint16]uint16{},
		Symbols: map[string]uint16{},
	}
}

// SymbolForAddress returns the symbol bound to the given address. If
// multiple names are bound to the same address the lexicographically
// smallest name wins, keeping lookups deterministic.
func (d *ObjectDeck) SymbolForAddress(address uint16) (string, bool) {
	var found string
	for name, addr := range d.Symbols {
		if addr != address {
			continue
		}
		if found == "" || name < found {
			found = name
		}
	}
	return found, found != ""
}
