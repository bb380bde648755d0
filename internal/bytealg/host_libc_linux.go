//go:build linux && cgo && !nolibc

package bytealg

/*
#define _GNU_SOURCE
#include <string.h>
*/
import "C"

import "unsafe"

// HostLastIndexByte returns the index of the last instance of c in b using
// the C library's memrchr, or -1 if c is not present in b.
func HostLastIndexByte(b []byte, c byte) int {
	// glibc's memrchr, unlike memchr, is not safe to call on an empty range.
	if len(b) == 0 {
		return -1
	}
	base := unsafe.Pointer(unsafe.SliceData(b))
	return hostOffset(base, C.memrchr(base, C.int(c), C.size_t(len(b))))
}
