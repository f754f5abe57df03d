//go:build linux || darwin || freebsd

package tree

import (
	"golang.org/x/sys/unix"
)

// IsDir stats name, following symlinks.
func (OSFS) IsDir(name string) bool {
	var st unix.Stat_t
	if err := unix.Stat(name, &st); err != nil {
		return false
	}
	return st.Mode&unix.S_IFMT == unix.S_IFDIR
}
