//go:build !cgo || nolibc || windows

package bytealg

import "bytes"

// HostName identifies the host routines wired into this build.
const HostName = "runtime"

// HostIndexByte returns the index of the first instance of c in b, or -1 if
// c is not present in b. Without a C library the host routine is the Go
// runtime's own vectorized search.
func HostIndexByte(b []byte, c byte) int {
	return bytes.IndexByte(b, c)
}
