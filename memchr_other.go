//go:build !windows

package memchr

import "github.com/mhr3/memchr/internal/bytealg"

const firstBackend = bytealg.HostName

func memchr(haystack []byte, needle byte) int {
	return bytealg.HostIndexByte(haystack, needle)
}
