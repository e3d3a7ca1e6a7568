//go:build linux || darwin

package stackvec

import "golang.org/x/sys/unix"

// systemStackLimit returns the soft RLIMIT_STACK of the process, or 0 when
// the limit is unlimited or unavailable. The limit applies to the main
// thread rather than to goroutine stacks, so it is only used to cap the
// default budget, never to raise it.
func systemStackLimit() uintptr {
	var lim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_STACK, &lim); err != nil {
		return 0
	}
	if lim.Cur == unix.RLIM_INFINITY {
		return 0
	}
	return uintptr(lim.Cur)
}
