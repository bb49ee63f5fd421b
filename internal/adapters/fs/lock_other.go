//go:build !unix

package fs

// Lock is a no-op where flock is unavailable.
func Lock(_ string) (func(), error) {
	return func() {}, nil
}
