//go:build !linux && !darwin && !freebsd

package tree

import "os"

// IsDir stats name, following symlinks.
func (OSFS) IsDir(name string) bool {
	info, err := os.Stat(name)
	if err != nil {
		return false
	}
	return info.IsDir()
}
