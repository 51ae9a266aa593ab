package export

import (
	"github.com/retroenv/deck1130/card"
	"github.com/retroenv/deck1130/deck"
)

// Machine is the target machine identifier of emulator card decks.
const Machine = "IBM1130"

// sequenceStep is the increment between card sequence numbers,
// following the punch card convention of leaving room for inserts.
const sequenceStep = 10

// EmulatorDeck is the card deck format understood by IBM 1130
// emulators.
type EmulatorDeck struct {
	Machine string         `json:"machine"`
	Cards   []EmulatorCard `json:"cards"`
}

// EmulatorCard is one 80 column card with its sequence number.
type EmulatorCard struct {
	Seq  int    `json:"seq"`
	Text string `json:"text"`
}

// NewEmulatorDeck re-renders the retained card records of a deck into
// an emulator consumable card deck.
func NewEmulatorDeck(objectDeck *deck.ObjectDeck) EmulatorDeck {
	cards := make([]EmulatorCard, 0, len(objectDeck.Cards))
	for i, record := range objectDeck.Cards {
		cards = append(cards, EmulatorCard{
			Seq:  (i + 1) * sequenceStep,
			Text: card.Render(record),
		})
	}

	return EmulatorDeck{
		Machine: Machine,
		Cards:   cards,
	}
}
