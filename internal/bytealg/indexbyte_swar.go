package bytealg

import (
	"math/bits"
	"unsafe"
)

// wordSize is the width in bytes of the words loaded by the SWAR scanners.
const wordSize = bits.UintSize / 8

// WordSized reports whether the target word is 32 or 64 bits wide, the two
// widths the SWAR scanners are written for.
const WordSized = bits.UintSize == 32 || bits.UintSize == 64

const (
	lo = ^uint(0) / 0xff // 0x0101...01
	hi = lo << 7         // 0x8080...80
)

// containsZeroByte reports whether any byte of x may be zero.
//
// The borrow of the subtraction can mark a 0x01 byte sitting above a zero
// byte as well, so callers treat a hit as a candidate window and confirm it
// byte by byte.
func containsZeroByte(x uint) bool {
	return (x-lo)&^x&hi != 0
}

// repeatByte returns a word with every byte set to b.
func repeatByte(b byte) uint {
	rep := uint(b)<<8 | uint(b)
	rep = rep<<16 | rep
	if bits.UintSize == 64 {
		rep = rep<<(bits.UintSize/2) | rep
	}
	return rep
}

// loadWord reads the word at base+off. off must leave base+off word aligned
// with wordSize bytes of the haystack behind it.
func loadWord(base unsafe.Pointer, off int) uint {
	return *(*uint)(unsafe.Add(base, off))
}

// headLen returns how many of the n bytes starting at addr precede the first
// word aligned address, capped at n.
func headLen(addr uintptr, n int) int {
	if align := int(addr & (wordSize - 1)); align > 0 {
		return min(wordSize-align, n)
	}
	return 0
}

// tailLen returns how many of the n bytes starting at addr follow the last
// word aligned address, capped at n.
func tailLen(addr uintptr, n int) int {
	return min(int((addr+uintptr(n))&(wordSize-1)), n)
}

// IndexByte returns the index of the first instance of c in b, or -1 if c is
// not present in b.
//
// The scan runs in three phases:
//   - head: bytes before the first word aligned address, one at a time
//   - body: two aligned words per iteration, stopping at the first pair that
//     may contain c
//   - tail: the remaining bytes, one at a time
func IndexByte(b []byte, c byte) int {
	n := len(b)
	if n == 0 {
		return -1
	}
	base := unsafe.Pointer(unsafe.SliceData(b))

	offset := headLen(uintptr(base), n)
	if i := IndexByteSlow(b[:offset], c); i >= 0 {
		return i
	}

	rep := repeatByte(c)
	for offset+2*wordSize <= n {
		u := loadWord(base, offset)
		v := loadWord(base, offset+wordSize)
		if containsZeroByte(u^rep) || containsZeroByte(v^rep) {
			break
		}
		offset += 2 * wordSize
	}

	if i := IndexByteSlow(b[offset:], c); i >= 0 {
		return offset + i
	}
	return -1
}

// LastIndexByte returns the index of the last instance of c in b, or -1 if c
// is not present in b.
//
// Mirror of IndexByte: the unaligned end of b is scanned first, then pairs
// of aligned words walking backwards, then whatever precedes the pair that
// stopped the body loop.
func LastIndexByte(b []byte, c byte) int {
	n := len(b)
	if n == 0 {
		return -1
	}
	base := unsafe.Pointer(unsafe.SliceData(b))

	offset := n - tailLen(uintptr(base), n)
	if i := LastIndexByteSlow(b[offset:], c); i >= 0 {
		return offset + i
	}

	rep := repeatByte(c)
	for offset >= 2*wordSize {
		u := loadWord(base, offset-2*wordSize)
		v := loadWord(base, offset-wordSize)
		if containsZeroByte(u^rep) || containsZeroByte(v^rep) {
			break
		}
		offset -= 2 * wordSize
	}

	return LastIndexByteSlow(b[:offset], c)
}
