//go:build linux && cgo && !nolibc

package memchr

import "github.com/mhr3/memchr/internal/bytealg"

const lastBackend = bytealg.HostName

func memrchr(haystack []byte, needle byte) int {
	return bytealg.HostLastIndexByte(haystack, needle)
}
