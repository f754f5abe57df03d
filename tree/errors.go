package tree

import (
	"errors"
	"fmt"
)

// ErrInvalidName indicates an entry name (or the root path) is not valid UTF-8.
var ErrInvalidName = errors.New("tree: name is not valid UTF-8")

// Operations reported in IOError.Op.
const (
	OpReadDir = "readdir"
	OpDecode  = "decode"
	OpWrite   = "write"
)

// IOError records a failure that aborted a traversal.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("tree: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
