// Package pipeline orchestrates decoding of independent card decks.
// One deck folds strictly sequentially, but separate decks share no
// state and are processed in parallel.
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/retroenv/deck1130/deck"
	"github.com/retroenv/retrogolib/log"
)

// Options contains behavior options of the pipeline.
type Options struct {
	// Workers caps the number of decks decoded in parallel, 0 uses one
	// worker per CPU.
	Workers int
}

// Result is the outcome for one input deck. Results are indexed like
// the input, Deck is set even when Err reports a fatal assembly error
// so callers can inspect the partial deck.
type Result struct {
	Deck *deck.ObjectDeck
	Err  error
}

// Pipeline decodes batches of card decks.
type Pipeline struct {
	logger  *log.Logger
	workers int
}

// New creates a new pipeline.
func New(logger *log.Logger, options Options) *Pipeline {
	if logger == nil {
		logger = NewLogger(false, false)
	}
	workers := options.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pipeline{
		logger:  logger,
		workers: workers,
	}
}

// ProcessDecks assembles every deck, each given as its ordered card
// lines. Decks are processed in parallel and results collected by
// index. A cancelled context marks all not yet started decks with the
// context error; decks already being folded run to completion.
func (p *Pipeline) ProcessDecks(ctx context.Context, decks [][]string) []Result {
	results := make([]Result, len(decks))
	sem := make(chan struct{}, p.workers)

	var wg sync.WaitGroup
	for i, lines := range decks {
		wg.Add(1)

		go func(index int, lines []string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				results[index] = Result{Err: ctx.Err()}
				return
			}
			defer func() { <-sem }()

			objectDeck, err := deck.AssembleLines(p.logger, lines)
			results[index] = Result{Deck: objectDeck, Err: err}

			p.logger.Debug("Assembled deck",
				log.Int("index", index),
				log.Int("cards", len(lines)),
				log.Int("diagnostics", len(objectDeck.Diagnostics)))
		}(i, lines)
	}

	wg.Wait()
	return results
}

// NewLogger creates a logger with appropriate settings.
func NewLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
