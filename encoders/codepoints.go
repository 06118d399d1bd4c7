package encoders

// Terminator is appended to every encoded text.
const Terminator = 10

// Codepoints returns the scalar values of text followed by Terminator.
// Invalid UTF-8 bytes decode as U+FFFD.
func Codepoints(text string) []int {
	ret := make([]int, 0, len(text)+1)
	for _, r := range text {
		ret = append(ret, int(r))
	}
	return append(ret, Terminator)
}

// Deltas returns the difference of each code point to the previous one, the first relative to zero.
func Deltas(codepoints []int) []int {
	ret := make([]int, len(codepoints))
	previous := 0
	for i, cp := range codepoints {
		ret[i] = cp - previous
		previous = cp
	}
	return ret
}
