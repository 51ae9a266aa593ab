package card

import (
	"strconv"
	"strings"
)

// Field columns, 0-indexed into the normalized 80 column line.
const (
	typeCodeEnd   = 2
	addressStart  = 2 // columns 3-6
	addressEnd    = 6
	dataStart     = 6 // columns 7-78
	dataEnd       = 78
	checksumStart = 6 // columns 7-10
	checksumEnd   = 10
	hexFieldWidth = 4
)

// Parse parses one card line into a record. The line is conceptually
// 80 columns wide; shorter lines are right padded with spaces and
// longer lines are truncated, both reported as a TruncatedLine issue.
// Columns are 1-indexed byte positions: the card character set is
// ASCII, a multi-byte character is malformed input and reported at its
// first byte. Parse is a pure function of the line text.
func Parse(line string) (Record, []Issue) {
	normalized, issues := normalizeLine(line)

	switch normalized[:typeCodeEnd] {
	case writeCode:
		return parseWrite(line, normalized), issues
	case labelCode:
		return parseLabel(line, normalized), issues
	case transferCode:
		return parseTransfer(line, normalized), issues
	case checksumCode:
		return parseChecksum(line, normalized), issues
	default:
		return Unknown{Raw: line, Reason: UnrecognizedType, Column: 1}, issues
	}
}

// normalizeLine pads or truncates the line to exactly 80 columns.
func normalizeLine(line string) (string, []Issue) {
	switch {
	case len(line) < Columns:
		issue := Issue{Kind: TruncatedLine, Column: len(line) + 1}
		return line + strings.Repeat(" ", Columns-len(line)), []Issue{issue}

	case len(line) > Columns:
		issue := Issue{Kind: TruncatedLine, Column: Columns + 1}
		return line[:Columns], []Issue{issue}

	default:
		return line, nil
	}
}

func parseWrite(raw, line string) Record {
	base, errColumn, ok := parseHexField(line, addressStart)
	if !ok {
		return Unknown{Raw: raw, Reason: MalformedField, Column: errColumn}
	}

	// Words are packed without separators; trailing spaces end the data
	// and a trailing group shorter than 4 hex digits is padding.
	field := strings.TrimRight(line[dataStart:dataEnd], " ")
	words := make([]uint16, 0, MaxWordsPerCard)
	for i := 0; i+hexFieldWidth <= len(field); i += hexFieldWidth {
		word, errColumn, ok := parseHexField(line, dataStart+i)
		if !ok {
			return Unknown{Raw: raw, Reason: MalformedField, Column: errColumn}
		}
		words = append(words, word)
	}

	return Write{Base: base, Words: words}
}

func parseLabel(raw, line string) Record {
	address, errColumn, ok := parseHexField(line, addressStart)
	if !ok {
		return Unknown{Raw: raw, Reason: MalformedField, Column: errColumn}
	}

	name := strings.TrimSpace(line[dataStart:])
	if name == "" {
		return Unknown{Raw: raw, Reason: EmptyLabel, Column: dataStart + 1}
	}
	if len(name) > MaxNameLength {
		name = name[:MaxNameLength]
	}

	return Label{Address: address, Name: name}
}

func parseTransfer(raw, line string) Record {
	address, errColumn, ok := parseHexField(line, addressStart)
	if !ok {
		return Unknown{Raw: raw, Reason: MalformedField, Column: errColumn}
	}
	return Transfer{Address: address}
}

func parseChecksum(raw, line string) Record {
	address, errColumn, ok := parseHexField(line, addressStart)
	if !ok {
		return Unknown{Raw: raw, Reason: MalformedField, Column: errColumn}
	}

	// The expected sum sits in columns 7-10, after the address field.
	// Decks that leave columns 7-10 blank carry the sum in the address
	// field instead; accept both encodings.
	if line[checksumStart:checksumEnd] == strings.Repeat(" ", hexFieldWidth) {
		return Checksum{Expected: address}
	}

	expected, errColumn, ok := parseHexField(line, checksumStart)
	if !ok {
		return Unknown{Raw: raw, Reason: MalformedField, Column: errColumn}
	}
	return Checksum{Address: address, Expected: expected}
}

// parseHexField parses the 4 digit uppercase hex field starting at the
// 0-indexed column start. On an invalid character it returns the
// 1-indexed column of the first offending character.
func parseHexField(line string, start int) (uint16, int, bool) {
	field := line[start : start+hexFieldWidth]
	for i := 0; i < len(field); i++ {
		if !isHexDigit(field[i]) {
			return 0, start + i + 1, false
		}
	}

	value, err := strconv.ParseUint(field, 16, 16)
	if err != nil {
		return 0, start + 1, false
	}
	return uint16(value), 0, true
}

// isHexDigit reports whether c is an uppercase hex digit. Lowercase
// digits are rejected, the card character set has no lowercase.
func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')
}
