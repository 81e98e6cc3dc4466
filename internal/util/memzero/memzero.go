package memzero

import "runtime"

// Zero overwrites b with zeros. Best-effort: the noinline pragma and the
// KeepAlive fence reduce the chance of the compiler eliding the writes.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
