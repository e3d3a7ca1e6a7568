//go:build !linux && !darwin

package stackvec

// systemStackLimit reports no platform stack limit; the default budget
// applies unchanged.
func systemStackLimit() uintptr { return 0 }
