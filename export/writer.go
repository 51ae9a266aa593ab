package export

import (
	"fmt"
	"io"
	"strings"
)

// Writer writes human readable listings in columnar form.
type Writer struct {
	writer  io.Writer
	options Options
}

// Options of the writer.
type Options struct {
	HexComments bool // append the raw words of each line as a comment
}

// NewWriter creates a new listing writer.
func NewWriter(writer io.Writer, options Options) *Writer {
	return &Writer{
		writer:  writer,
		options: options,
	}
}

// WriteListing writes all listing lines, one instruction per line.
func (w *Writer) WriteListing(lines []Line) error {
	for _, line := range lines {
		if err := w.writeLine(line); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
	}
	return nil
}

func (w *Writer) writeLine(line Line) error {
	text := fmt.Sprintf("%s  %-5s %s", line.Address, line.Mnemonic, line.OperandDisplay)

	if w.options.HexComments {
		text = fmt.Sprintf("%-32s ; %s", text, strings.Join(line.RawWords, " "))
	}
	if line.Diagnostic != "" {
		text += " ; " + line.Diagnostic
	}

	_, err := fmt.Fprintln(w.writer, strings.TrimRight(text, " "))
	return err
}

// WriteSymbols writes the symbol table, one symbol per line.
func (w *Writer) WriteSymbols(symbols []Symbol) error {
	for _, symbol := range symbols {
		if _, err := fmt.Fprintf(w.writer, "%-12s EQU  /%s\n", symbol.Name, symbol.Address); err != nil {
			return fmt.Errorf("writing symbol %s: %w", symbol.Name, err)
		}
	}
	return nil
}
