// Package grade maps result totals to letter grades.
package grade

// InProgress is recorded instead of a letter while any mark is still missing.
const InProgress = "IP"

type band struct {
	min    int
	letter string
}

// descending; first match wins
var bands = []band{
	{74, "A"},
	{70, "A-"},
	{67, "B+"},
	{64, "B"},
	{60, "B-"},
	{57, "C+"},
	{54, "C"},
	{50, "C-"},
	{47, "D+"},
	{44, "D"},
	{40, "D-"},
}

// Fail is the grade below the lowest band.
const Fail = "F"

// For returns the letter grade for `total`. Any int is accepted.
func For(total int) string {
	for _, b := range bands {
		if total >= b.min {
			return b.letter
		}
	}
	return Fail
}

// IsLetter reports whether `label` is a real letter grade (not InProgress).
func IsLetter(label string) bool {
	if label == Fail {
		return true
	}
	for _, b := range bands {
		if b.letter == label {
			return true
		}
	}
	return false
}

// Letters returns all grades from best to worst.
func Letters() []string {
	letters := make([]string, 0, len(bands)+1)
	for _, b := range bands {
		letters = append(letters, b.letter)
	}
	return append(letters, Fail)
}
