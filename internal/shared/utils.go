// Package shared provides small helpers used across the portal binaries.
package shared

// WipeByteArray overwrites b with zeros. Use it on password buffers read
// from the terminal once they are no longer needed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
