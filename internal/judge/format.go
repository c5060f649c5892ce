package judge

// NumToAlphabet converts a one-based ordinal to a spreadsheet style
// index: 1 -> "A", 26 -> "Z", 27 -> "AA".
func NumToAlphabet(n int) string {
	if n < 1 {
		return ""
	}
	var buf []byte
	for n > 0 {
		n--
		buf = append(buf, byte('A'+n%26))
		n /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
