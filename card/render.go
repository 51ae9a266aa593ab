package card

import (
	"fmt"
	"strings"
)

// Render encodes a record back into its canonical 80 column text form.
// Parsing a rendered line yields an equal record, which allows decks to
// be re-derived for emulator export and checksum verification.
func Render(record Record) string {
	var sb strings.Builder

	switch r := record.(type) {
	case Write:
		fmt.Fprintf(&sb, "%s%04X", writeCode, r.Base)
		for _, word := range r.Words {
			fmt.Fprintf(&sb, "%04X", word)
		}

	case Label:
		fmt.Fprintf(&sb, "%s%04X%s", labelCode, r.Address, r.Name)

	case Transfer:
		fmt.Fprintf(&sb, "%s%04X", transferCode, r.Address)

	case Checksum:
		fmt.Fprintf(&sb, "%s%04X%04X", checksumCode, r.Address, r.Expected)

	case Unknown:
		sb.WriteString(r.Raw)
	}

	return pad(sb.String())
}

// pad normalizes a rendered line to exactly 80 columns.
func pad(line string) string {
	if len(line) >= Columns {
		return line[:Columns]
	}
	return line + strings.Repeat(" ", Columns-len(line))
}
