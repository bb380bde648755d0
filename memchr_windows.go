//go:build windows

package memchr

import "github.com/mhr3/memchr/internal/bytealg"

// The C runtime's memchr on Windows is slower than the word scanner.
var firstBackend = func() string {
	if bytealg.WordSized {
		return "swar"
	}
	return bytealg.HostName
}()

func memchr(haystack []byte, needle byte) int {
	if bytealg.WordSized {
		return bytealg.IndexByte(haystack, needle)
	}
	return bytealg.HostIndexByte(haystack, needle)
}
