//go:build cgo && !nolibc && !windows

package bytealg

/*
#include <string.h>
*/
import "C"

import "unsafe"

// HostName identifies the host routines wired into this build.
const HostName = "libc"

// HostIndexByte returns the index of the first instance of c in b using the
// C library's memchr, or -1 if c is not present in b.
func HostIndexByte(b []byte, c byte) int {
	if len(b) == 0 {
		return -1
	}
	base := unsafe.Pointer(unsafe.SliceData(b))
	return hostOffset(base, C.memchr(base, C.int(c), C.size_t(len(b))))
}

// hostOffset converts a pointer returned by a C search routine into an index
// relative to base. A nil pointer means no match.
func hostOffset(base, p unsafe.Pointer) int {
	if p == nil {
		return -1
	}
	return int(uintptr(p) - uintptr(base))
}
