package deck

import (
	"fmt"

	"github.com/retroenv/deck1130/card"
	"github.com/retroenv/retrogolib/log"
)

// Assembler folds an ordered sequence of card records into an object
// deck. Folding is strictly sequential: later cards can overwrite
// memory, redefine the entry point and affect cumulative checksums.
type Assembler struct {
	logger *log.Logger
	deck   *ObjectDeck

	// all data words written so far, in fold order, the input of every
	// checksum card evaluation
	writeWords []uint16
}

// NewAssembler creates an assembler that accumulates into an empty deck.
func NewAssembler(logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.NewWithConfig(log.DefaultConfig())
	}
	return &Assembler{
		logger: logger,
		deck:   New(),
	}
}

// Deck returns the deck accumulated so far.
func (a *Assembler) Deck() *ObjectDeck {
	return a.deck
}

// Fold applies one card record to the deck. It returns an error only
// for a DuplicateSymbolError, every other issue degrades to a recorded
// diagnostic.
func (a *Assembler) Fold(record card.Record) error {
	a.deck.Cards = append(a.deck.Cards, record)

	switch r := record.(type) {
	case card.Write:
		a.foldWrite(r)

	case card.Label:
		if err := a.foldLabel(r); err != nil {
			return err
		}

	case card.Transfer:
		a.foldTransfer(r)

	case card.Checksum:
		a.foldChecksum(r)

	case card.Unknown:
		a.deck.Diagnostics = append(a.deck.Diagnostics,
			unparseableCard(len(a.deck.Cards), r.Reason, r.Column, r.Raw))

	default:
		return fmt.Errorf("unsupported card record type %T", record)
	}

	return nil
}

func (a *Assembler) foldWrite(r card.Write) {
	for i, word := range r.Words {
		address := r.Base + uint16(i)
		if old, ok := a.deck.Memory[address]; ok {
			a.deck.Diagnostics = append(a.deck.Diagnostics,
				addressOverwritten(address, old, word))
		}
		a.deck.Memory[address] = word
	}
	a.writeWords = append(a.writeWords, r.Words...)

	a.logger.Debug("Folded write card",
		log.String("base", fmt.Sprintf("%04X", r.Base)),
		log.Int("words", len(r.Words)))
}

func (a *Assembler) foldLabel(r card.Label) error {
	if existing, ok := a.deck.Symbols[r.Name]; ok {
		if existing != r.Address {
			return &DuplicateSymbolError{Name: r.Name}
		}
		return nil // duplicate with the same address is a no-op
	}

	a.deck.Symbols[r.Name] = r.Address
	return nil
}

func (a *Assembler) foldTransfer(r card.Transfer) {
	if a.deck.HasEntryPoint {
		a.deck.Diagnostics = append(a.deck.Diagnostics,
			entryPointRedefined(a.deck.EntryPoint, r.Address))
	}
	a.deck.EntryPoint = r.Address
	a.deck.HasEntryPoint = true
}

func (a *Assembler) foldChecksum(r card.Checksum) {
	actual := Checksum(a.writeWords)
	if actual == r.Expected {
		a.deck.Checksum = ChecksumPass
		return
	}

	a.deck.Checksum = ChecksumFail
	a.deck.Diagnostics = append(a.deck.Diagnostics,
		checksumMismatch(r.Expected, actual))
}

// Assemble folds all records into a new object deck. On a duplicate
// symbol the partial deck built before the failure is returned
// together with the error.
func Assemble(logger *log.Logger, records []card.Record) (*ObjectDeck, error) {
	assembler := NewAssembler(logger)
	for _, record := range records {
		if err := assembler.Fold(record); err != nil {
			return assembler.Deck(), err
		}
	}
	return assembler.Deck(), nil
}

// AssembleLines parses and folds raw 80 column card lines, the input
// boundary towards the ingest collaborator. Line length issues are
// recorded as deck diagnostics.
func AssembleLines(logger *log.Logger, lines []string) (*ObjectDeck, error) {
	assembler := NewAssembler(logger)
	for i, line := range lines {
		record, issues := card.Parse(line)
		for _, issue := range issues {
			assembler.deck.Diagnostics = append(assembler.deck.Diagnostics,
				truncatedLine(i+1, issue.Column))
		}
		if err := assembler.Fold(record); err != nil {
			return assembler.Deck(), err
		}
	}
	return assembler.Deck(), nil
}
