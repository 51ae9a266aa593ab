package deck

import "fmt"

// DiagnosticKind classifies a non-fatal issue recorded during
// assembly. None of these interrupt folding, a damaged deck still
// yields maximal partial information.
type DiagnosticKind int

const (
	// AddressOverwritten marks a memory address written more than once.
	AddressOverwritten DiagnosticKind = iota
	// EntryPointRedefined marks a second transfer card, last one wins.
	EntryPointRedefined
	// ChecksumMismatch marks a checksum card whose expected sum differs
	// from the accumulated sum of all data words folded so far.
	ChecksumMismatch
	// UnparseableCard marks a card that could not be parsed.
	UnparseableCard
	// TruncatedLine marks an input line that was not 80 columns wide.
	TruncatedLine
)

// String implements the fmt.Stringer interface. The values double as
// the wire form of the kind field in exported diagnostics.
func (k DiagnosticKind) String() string {
	switch k {
	case AddressOverwritten:
		return "address_overwritten"
	case EntryPointRedefined:
		return "entry_point_redefined"
	case ChecksumMismatch:
		return "checksum_mismatch"
	case UnparseableCard:
		return "unparseable_card"
	case TruncatedLine:
		return "truncated_line"
	default:
		return "invalid"
	}
}

// Diagnostic is one recorded non-fatal issue.
type Diagnostic struct {
	Kind   DiagnosticKind
	Detail string
}

func addressOverwritten(address, old, value uint16) Diagnostic {
	return Diagnostic{
		Kind:   AddressOverwritten,
		Detail: fmt.Sprintf("address %04X overwritten: %04X replaced by %04X", address, old, value),
	}
}

func entryPointRedefined(old, new uint16) Diagnostic {
	return Diagnostic{
		Kind:   EntryPointRedefined,
		Detail: fmt.Sprintf("entry point %04X redefined to %04X", old, new),
	}
}

func checksumMismatch(expected, actual uint16) Diagnostic {
	return Diagnostic{
		Kind:   ChecksumMismatch,
		Detail: fmt.Sprintf("checksum mismatch: expected %04X, actual %04X", expected, actual),
	}
}

func unparseableCard(index int, reason fmt.Stringer, column int, raw string) Diagnostic {
	return Diagnostic{
		Kind:   UnparseableCard,
		Detail: fmt.Sprintf("card %d unparseable at column %d: %s: %q", index, column, reason, raw),
	}
}

func truncatedLine(index, column int) Diagnostic {
	return Diagnostic{
		Kind:   TruncatedLine,
		Detail: fmt.Sprintf("card %d is not 80 columns wide, adjusted at column %d", index, column),
	}
}

// DuplicateSymbolError is the sole fatal assembly error: a symbol name
// bound to two different addresses is unrecoverable ambiguity for the
// disassembler. Assembly halts immediately, the partial deck built so
// far is still returned for inspection.
type DuplicateSymbolError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("symbol %q is already defined at a different address", e.Name)
}
