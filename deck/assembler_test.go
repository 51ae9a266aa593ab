package deck

import (
	"errors"
	"testing"

	"github.com/retroenv/deck1130/card"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestAssembleLinesSmallProgram(t *testing.T) {
	t.Parallel()

	lines := []string{
		"*L0100LOOP",
		"*W0100ABCD1234",
		"*T0100",
		"*C0000BE01", // 0xABCD + 0x1234 wraps to 0xBE01
	}

	deck, err := AssembleLines(log.NewTestLogger(t), lines)
	assert.NoError(t, err)

	assert.Equal(t, uint16(0xABCD), deck.Memory[0x0100])
	assert.Equal(t, uint16(0x1234), deck.Memory[0x0101])
	assert.Equal(t, uint16(0x0100), deck.Symbols["LOOP"])
	assert.True(t, deck.HasEntryPoint)
	assert.Equal(t, uint16(0x0100), deck.EntryPoint)
	assert.Equal(t, ChecksumPass, deck.Checksum)
	assert.Equal(t, 4, len(deck.Cards))

	// the short input lines were padded, which is flagged
	for _, diagnostic := range deck.Diagnostics {
		assert.Equal(t, TruncatedLine, diagnostic.Kind)
	}
}

func TestAssembleLastWriteWins(t *testing.T) {
	t.Parallel()

	deck, err := Assemble(log.NewTestLogger(t), []card.Record{
		card.Write{Base: 0x0100, Words: []uint16{0x0000}},
		card.Write{Base: 0x0100, Words: []uint16{0x0001}},
	})
	assert.NoError(t, err)

	assert.Equal(t, uint16(0x0001), deck.Memory[0x0100])
	assert.Len(t, deck.Diagnostics, 1)
	assert.Equal(t, AddressOverwritten, deck.Diagnostics[0].Kind)
}

func TestAssembleDuplicateSymbol(t *testing.T) {
	t.Parallel()

	deck, err := Assemble(log.NewTestLogger(t), []card.Record{
		card.Label{Address: 0x0100, Name: "A"},
		card.Write{Base: 0x0200, Words: []uint16{0x1111}},
		card.Label{Address: 0x0200, Name: "A"},
		card.Write{Base: 0x0300, Words: []uint16{0x2222}},
	})

	var duplicateErr *DuplicateSymbolError
	assert.True(t, errors.As(err, &duplicateErr))
	assert.Equal(t, "A", duplicateErr.Name)

	// the partial deck built before the failure is still usable
	assert.NotNil(t, deck)
	assert.Equal(t, uint16(0x0100), deck.Symbols["A"])
	assert.Equal(t, uint16(0x1111), deck.Memory[0x0200])

	// folding stopped at the offending card
	_, ok := deck.Memory[0x0300]
	assert.False(t, ok)
	assert.Equal(t, 3, len(deck.Cards))
}

func TestAssembleDuplicateSymbolSameAddress(t *testing.T) {
	t.Parallel()

	deck, err := Assemble(log.NewTestLogger(t), []card.Record{
		card.Label{Address: 0x0100, Name: "A"},
		card.Label{Address: 0x0100, Name: "A"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(deck.Symbols))
	assert.Len(t, deck.Diagnostics, 0)
}

func TestAssembleEntryPointRedefined(t *testing.T) {
	t.Parallel()

	deck, err := Assemble(log.NewTestLogger(t), []card.Record{
		card.Transfer{Address: 0x0100},
		card.Transfer{Address: 0x0200},
	})
	assert.NoError(t, err)

	assert.Equal(t, uint16(0x0200), deck.EntryPoint)
	assert.Len(t, deck.Diagnostics, 1)
	assert.Equal(t, EntryPointRedefined, deck.Diagnostics[0].Kind)
}

func TestAssembleChecksumMismatchContinues(t *testing.T) {
	t.Parallel()

	deck, err := Assemble(log.NewTestLogger(t), []card.Record{
		card.Write{Base: 0x0100, Words: []uint16{0x0001}},
		card.Checksum{Expected: 0xFFFF},
		card.Write{Base: 0x0200, Words: []uint16{0x0002}},
	})
	assert.NoError(t, err)

	assert.Equal(t, ChecksumFail, deck.Checksum)
	assert.Len(t, deck.Diagnostics, 1)
	assert.Equal(t, ChecksumMismatch, deck.Diagnostics[0].Kind)

	// folding continued past the failed checksum
	assert.Equal(t, uint16(0x0002), deck.Memory[0x0200])
}

func TestAssembleChecksumIsCumulative(t *testing.T) {
	t.Parallel()

	// the second checksum card covers the words of both write cards
	deck, err := Assemble(log.NewTestLogger(t), []card.Record{
		card.Write{Base: 0x0100, Words: []uint16{0x0001}},
		card.Checksum{Expected: 0x0001},
		card.Write{Base: 0x0200, Words: []uint16{0x0002}},
		card.Checksum{Expected: 0x0003},
	})
	assert.NoError(t, err)
	assert.Equal(t, ChecksumPass, deck.Checksum)
}

func TestAssembleChecksumLastCardWins(t *testing.T) {
	t.Parallel()

	deck, err := Assemble(log.NewTestLogger(t), []card.Record{
		card.Write{Base: 0x0100, Words: []uint16{0x0001}},
		card.Checksum{Expected: 0x0001},
		card.Write{Base: 0x0200, Words: []uint16{0x0002}},
		card.Checksum{Expected: 0xBAD0},
	})
	assert.NoError(t, err)
	assert.Equal(t, ChecksumFail, deck.Checksum)
}

func TestAssembleUnknownCard(t *testing.T) {
	t.Parallel()

	deck, err := AssembleLines(log.NewTestLogger(t), []string{
		"ZZ GARBAGE",
		"*W0100FFFF",
	})
	assert.NoError(t, err)

	// the unparseable card does not affect the following cards
	assert.Equal(t, uint16(0xFFFF), deck.Memory[0x0100])

	found := false
	for _, diagnostic := range deck.Diagnostics {
		if diagnostic.Kind == UnparseableCard {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAssembleEmptyDeck(t *testing.T) {
	t.Parallel()

	deck, err := Assemble(log.NewTestLogger(t), nil)
	assert.NoError(t, err)

	assert.Equal(t, 0, len(deck.Memory))
	assert.Equal(t, 0, len(deck.Symbols))
	assert.False(t, deck.HasEntryPoint)
	assert.Equal(t, ChecksumUnchecked, deck.Checksum)
}

func TestSymbolForAddress(t *testing.T) {
	t.Parallel()

	deck, err := Assemble(log.NewTestLogger(t), []card.Record{
		card.Label{Address: 0x0100, Name: "LOOP"},
		card.Label{Address: 0x0100, Name: "ALIAS"},
		card.Label{Address: 0x0200, Name: "DONE"},
	})
	assert.NoError(t, err)

	name, ok := deck.SymbolForAddress(0x0100)
	assert.True(t, ok)
	assert.Equal(t, "ALIAS", name)

	name, ok = deck.SymbolForAddress(0x0200)
	assert.True(t, ok)
	assert.Equal(t, "DONE", name)

	_, ok = deck.SymbolForAddress(0x0300)
	assert.False(t, ok)
}
