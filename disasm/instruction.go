package disasm

// Format of a decoded instruction.
type Format int

const (
	// Short instructions are one word with a relative displacement.
	Short Format = iota
	// Long instructions carry their absolute address in a second word.
	Long
)

// String implements the fmt.Stringer interface.
func (f Format) String() string {
	if f == Long {
		return "long"
	}
	return "short"
}

// Instruction is one decoded instruction. Instances are produced per
// decode call and owned by the caller; they never mutate the deck.
type Instruction struct {
	Address  uint16
	Mnemonic string
	Format   Format

	// Tag selects the index register 1-3, 0 means no indexing.
	Tag uint8

	// Indirect is set when the operand word is a pointer rather than
	// the operand itself.
	Indirect bool

	// OperandDisplay is the resolved symbol name, the operand address
	// as 4 digit hex, or the symbolic indexed form.
	OperandDisplay string

	// WordCount is 1 for short and 2 for long format instructions.
	WordCount int

	// RawWords holds the WordCount undecoded memory words.
	RawWords []uint16

	// Diagnostic notes decode anomalies, for example memory holes that
	// were decoded as synthetic zero words.
	Diagnostic string
}
