//go:build !linux || !cgo || nolibc

package memchr

import "github.com/mhr3/memchr/internal/bytealg"

var lastBackend = func() string {
	if bytealg.WordSized {
		return "swar"
	}
	return "bytewise"
}()

func memrchr(haystack []byte, needle byte) int {
	if bytealg.WordSized {
		return bytealg.LastIndexByte(haystack, needle)
	}
	return bytealg.LastIndexByteSlow(haystack, needle)
}
