package fs

import "os"

// SetSyncFile swaps the flush function and returns a restore func.
func SetSyncFile(fn func(*os.File) error) func() {
	prev := syncFile
	syncFile = fn
	return func() { syncFile = prev }
}
