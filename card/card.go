// Package card parses IBM 1130 object deck card images.
// Each card is one 80 column record; the first two columns select the
// card type and the remaining columns hold hex packed fields.
package card

// Card layout constants.
const (
	// Columns is the width of a logical card record.
	Columns = 80

	// MaxWordsPerCard is the number of data words a write card can hold,
	// packed as 4 hex digits each into columns 7-78.
	MaxWordsPerCard = 18

	// MaxNameLength is the longest accepted symbol name on a label card.
	MaxNameLength = 12
)

// Card type codes in columns 1-2.
const (
	writeCode    = "*W"
	labelCode    = "*L"
	transferCode = "*T"
	checksumCode = "*C"
)

// Type identifies the variant of a card record.
type Type int

const (
	TypeWrite Type = iota
	TypeLabel
	TypeTransfer
	TypeChecksum
	TypeUnknown
)

// String implements the fmt.Stringer interface.
func (t Type) String() string {
	switch t {
	case TypeWrite:
		return "write"
	case TypeLabel:
		return "label"
	case TypeTransfer:
		return "transfer"
	case TypeChecksum:
		return "checksum"
	default:
		return "unknown"
	}
}

// Record is one parsed card. The concrete type is one of Write, Label,
// Transfer, Checksum or Unknown; records are immutable after parsing.
type Record interface {
	Type() Type
}

// Compile-time checks to ensure all variants implement Record.
var (
	_ Record = Write{}
	_ Record = Label{}
	_ Record = Transfer{}
	_ Record = Checksum{}
	_ Record = Unknown{}
)

// Write loads a run of words into memory starting at a base address.
type Write struct {
	Base  uint16
	Words []uint16
}

// Type implements the Record interface.
func (Write) Type() Type { return TypeWrite }

// Label binds a symbol name to an address.
type Label struct {
	Address uint16
	Name    string
}

// Type implements the Record interface.
func (Label) Type() Type { return TypeLabel }

// Transfer sets the entry point of the program.
type Transfer struct {
	Address uint16
}

// Type implements the Record interface.
func (Transfer) Type() Type { return TypeTransfer }

// Checksum asserts the expected cumulative sum of all data words
// written by the write cards processed so far.
type Checksum struct {
	Address  uint16
	Expected uint16
}

// Type implements the Record interface.
func (Checksum) Type() Type { return TypeChecksum }

// Unknown is the non-fatal placeholder for a line that could not be
// parsed. Raw preserves the original input line.
type Unknown struct {
	Raw    string
	Reason ParseErrorKind
	Column int // 1-indexed column of the offending character
}

// Type implements the Record interface.
func (Unknown) Type() Type { return TypeUnknown }

// ParseErrorKind classifies why a line could not be parsed into a
// typed record. All kinds are recoverable; they affect only the
// offending card.
type ParseErrorKind int

const (
	// UnrecognizedType marks a card whose first two columns are not a
	// known type code.
	UnrecognizedType ParseErrorKind = iota
	// MalformedField marks a hex field containing a character outside 0-9A-F.
	MalformedField
	// EmptyLabel marks a label card without a symbol name.
	EmptyLabel
	// TruncatedLine marks a line that was not exactly 80 columns wide.
	TruncatedLine
)

// String implements the fmt.Stringer interface.
func (k ParseErrorKind) String() string {
	switch k {
	case UnrecognizedType:
		return "unrecognized type"
	case MalformedField:
		return "malformed field"
	case EmptyLabel:
		return "empty label"
	case TruncatedLine:
		return "truncated line"
	default:
		return "invalid"
	}
}

// Issue reports a non-fatal observation made while parsing a line that
// still produced a typed record, for example a line that had to be
// padded or truncated to 80 columns.
type Issue struct {
	Kind   ParseErrorKind
	Column int // 1-indexed column where the issue starts
}
