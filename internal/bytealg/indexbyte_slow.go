package bytealg

// IndexByteSlow returns the index of the first instance of c in b, or -1.
// It compares one byte per iteration.
func IndexByteSlow(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

// LastIndexByteSlow returns the index of the last instance of c in b, or -1.
// It compares one byte per iteration.
func LastIndexByteSlow(b []byte, c byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] == c {
			return i
		}
	}
	return -1
}
