package tree

import (
	"bufio"
	"io"
)

const DefaultMaxDepth = 2

// Options controls rendering behavior.
type Options struct {
	// MaxDepth limits how many nesting levels below the root are printed.
	// 0 prints only the root line. Negative values print nothing.
	// Default: 2
	MaxDepth int
}

// DefaultOptions returns the defaults used by the tree command.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
	}
}

// Stats counts the entries printed by the last Render call, excluding the
// root line. Classification uses the entry type reported by ReadDir, so a
// symlink to a directory counts as a file.
type Stats struct {
	Dirs  int
	Files int
}

// Renderer writes directory trees.
type Renderer struct {
	fsys  FS
	w     io.Writer
	opts  Options
	out   *bufio.Writer
	stats Stats
}

// New creates a Renderer that reads from fsys and writes to w.
//
// Example:
//
//	r := tree.New(tree.OSFS{}, os.Stdout, tree.DefaultOptions())
//	err := r.Render("src")
func New(fsys FS, w io.Writer, opts Options) *Renderer {
	return &Renderer{
		fsys: fsys,
		w:    w,
		opts: opts,
	}
}

// depthState is the per-call traversal context. It is passed by value and
// closed is never mutated in place, so each subtree owns its copy.
type depthState struct {
	indent int
	depth  int
	closed Levels
}

// child derives the state for the entry at the current level.
func (s depthState) child(isLast bool) depthState {
	next := depthState{
		indent: s.indent + 1,
		depth:  s.depth + 1,
		closed: s.closed,
	}
	if isLast {
		next.closed = s.closed.With(s.depth)
	}
	return next
}

// Render prints root followed by its contents down to Options.MaxDepth.
//
// Output is flushed before Render returns, including when it fails, so
// every line produced before an error reaches the writer.
func (r *Renderer) Render(root string) (err error) {
	r.out = bufio.NewWriter(r.w)
	r.stats = Stats{}

	defer func() {
		if flushErr := r.out.Flush(); flushErr != nil && err == nil {
			err = &IOError{Op: OpWrite, Path: root, Err: flushErr}
		}
		r.out = nil
	}()

	return r.renderSubtree(root, depthState{})
}

// Stats returns counts for the last Render call.
func (r *Renderer) Stats() Stats {
	return r.stats
}

func (r *Renderer) renderSubtree(name string, st depthState) error {
	if st.depth > r.opts.MaxDepth {
		return nil
	}

	if st.depth == 0 {
		text, err := decodeName(name)
		if err != nil {
			return &IOError{Op: OpDecode, Path: name, Err: err}
		}
		if err := r.writeLine("", text); err != nil {
			return err
		}
	}

	// Children would sit below the limit; don't touch the filesystem.
	if st.depth >= r.opts.MaxDepth {
		return nil
	}

	if !r.fsys.IsDir(name) {
		return nil
	}

	entries, err := r.fsys.ReadDir(name)
	if err != nil {
		return &IOError{Op: OpReadDir, Path: name, Err: err}
	}

	n := len(entries)
	for i, entry := range entries {
		isLast := i == n-1

		childPath := r.fsys.Join(name, entry.Name())
		text, err := decodeName(entry.Name())
		if err != nil {
			return &IOError{Op: OpDecode, Path: childPath, Err: err}
		}

		if err := r.writeLine(buildPrefix(st.indent, isLast, st.closed), text); err != nil {
			return err
		}
		if entry.IsDir() {
			r.stats.Dirs++
		} else {
			r.stats.Files++
		}

		if err := r.renderSubtree(childPath, st.child(isLast)); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) writeLine(prefix, text string) error {
	var err error
	if prefix != "" {
		_, err = r.out.WriteString(prefix + " ")
	}
	if err == nil {
		_, err = r.out.WriteString(text + "\n")
	}
	if err != nil {
		return &IOError{Op: OpWrite, Path: text, Err: err}
	}
	return nil
}
