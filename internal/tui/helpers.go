package tui

// truncate shortens a string to a maximum length in runes
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// columns returns how many cards of at least minWidth fit in width, at least
// one and at most n.
func columns(width, minWidth, n int) int {
	if n <= 0 {
		return 1
	}
	cols := width / minWidth
	if cols < 1 {
		cols = 1
	}
	if cols > n {
		cols = n
	}
	return cols
}
