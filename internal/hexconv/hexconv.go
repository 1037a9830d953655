package hexconv

// Halfbyte maps an ASCII character onto its hexadecimal value. Characters that aren't
// valid hex digits are mapped onto 0xff, so that for any pair (a, b) of looked-up
// values a|b > 0x0f indicates that at least one of them is invalid.
var Halfbyte = newTable()

func newTable() (table [256]byte) {
	for i := range table {
		table[i] = 0xff
	}

	for c := byte('0'); c <= '9'; c++ {
		table[c] = c - '0'
	}

	for c := byte('a'); c <= 'f'; c++ {
		table[c] = c - 'a' + 10
		table[c-'a'+'A'] = c - 'a' + 10
	}

	return table
}
