package digit

// Word lengths that can begin or end with a given byte, longest first.
// A scanner must try every entry before moving its cursor, since one
// letter can start or end words of different lengths (t: three, two).
var (
	starting = [256][]int{
		'z': {4},    // zero
		'o': {3},    // one
		't': {5, 3}, // three, two
		'f': {4},    // four/five
		's': {5, 3}, // seven, six
		'e': {5},    // eight
		'n': {4},    // nine
	}

	ending = [256][]int{
		'o': {4, 3},    // zero, two
		'e': {5, 4, 3}, // three, five/nine, one
		'r': {4},       // four
		'x': {3},       // six
		'n': {5},       // seven
		't': {5},       // eight
	}
)

// Starting returns the lengths of the words that start with c.
func Starting(c byte) []int {
	return starting[c]
}

// Ending returns the lengths of the words that end with c.
func Ending(c byte) []int {
	return ending[c]
}
