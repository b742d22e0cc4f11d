package pattern

// Alphabet is the ordered set of letters a rangoli is drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

const (
	// Separator joins consecutive letters within a row.
	Separator = "-"
	// Filler pads each row out to the width of the equator.
	Filler = '-'
)

// Size limits accepted by Build.
const (
	LowerBound = 1
	UpperBound = len(Alphabet)
)
