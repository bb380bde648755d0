// Package memchr finds a single byte in a byte sequence.
//
// Memchr returns the first occurrence and Memrchr the last. Each dispatches,
// at build time, either to a routine provided by the host (the C library
// when cgo is enabled, the Go runtime otherwise) or to a portable
// word-at-a-time scanner that tests two machine words per iteration for the
// needle. The choice depends only on the target operating system and word
// size; results are identical either way.
//
// Building with the nolibc tag keeps the C library out of the picture even
// when cgo is available.
package memchr

import "unsafe"

// Memchr returns the index of the first instance of needle in haystack, or
// -1 if needle is not present in haystack.
//
// Example:
//
//	memchr.Memchr([]byte("the quick brown fox"), 'k') // 8
func Memchr(haystack []byte, needle byte) int {
	return memchr(haystack, needle)
}

// Memrchr returns the index of the last instance of needle in haystack, or
// -1 if needle is not present in haystack.
//
// Example:
//
//	memchr.Memrchr([]byte("the quick brown fox"), 'o') // 17
func Memrchr(haystack []byte, needle byte) int {
	return memrchr(haystack, needle)
}

// MemchrString is Memchr over the bytes of s.
func MemchrString(s string, needle byte) int {
	return memchr(stringBytes(s), needle)
}

// MemrchrString is Memrchr over the bytes of s.
func MemrchrString(s string, needle byte) int {
	return memrchr(stringBytes(s), needle)
}

// Backend names the implementations selected for this build: first for
// Memchr, last for Memrchr. Values are "swar", "libc" or "runtime";
// "bytewise" is reserved for word sizes other than 32 and 64 bits, which no
// current Go target has.
func Backend() (first, last string) {
	return firstBackend, lastBackend
}

// stringBytes views s as a byte slice without copying. The result must not
// be written to.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
