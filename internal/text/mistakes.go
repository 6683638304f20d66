package text

// CountMistakes compares typed and target position by position and counts the
// positions that differ. A position past the end of either string counts as a
// mismatch. There is no insertion or deletion alignment: a single dropped rune
// shifts every following position.
func CountMistakes(typed, target string) int {
	a := []rune(typed)
	b := []rune(target)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	mistakes := 0
	for i := 0; i < n; i++ {
		if i >= len(a) || i >= len(b) || a[i] != b[i] {
			mistakes++
		}
	}
	return mistakes
}
