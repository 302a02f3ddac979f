//go:build windows

package historystore

import "os"

// Windows has no flock; a single terminal per config directory is assumed.
func acquireLock(_ string, _ bool) (*os.File, error) {
	return nil, nil
}

func releaseLock(_ *os.File) {}
