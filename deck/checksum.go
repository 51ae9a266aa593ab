package deck

// Checksum returns the sum of all words modulo 2^16. Wrapping
// addition, no sign extension.
func Checksum(words []uint16) uint16 {
	var sum uint16
	for _, word := range words {
		sum += word
	}
	return sum
}
