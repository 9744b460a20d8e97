package enum

// Size is a drink cup size. Every priced item carries an entry for all
// three sizes.
type Size string

const (
	Size12oz Size = "12 oz"
	Size16oz Size = "16 oz"
	Size20oz Size = "20 oz"
)

// Sizes lists every valid size in menu display order.
func Sizes() []Size {
	return []Size{Size12oz, Size16oz, Size20oz}
}

// Valid reports whether s is one of the three known sizes.
func (s Size) Valid() bool {
	switch s {
	case Size12oz, Size16oz, Size20oz:
		return true
	}
	return false
}

func (s Size) String() string {
	return string(s)
}
