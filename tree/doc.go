// Package tree renders a directory hierarchy as connector-prefixed text.
//
// # Overview
//
// A Renderer walks a filesystem depth-first and writes one line per entry,
// in the order the filesystem enumerates them:
//
//	a
//	├── b
//	|   └── x
//	└── c
//
// The root line carries no prefix. Every other line starts with one
// four-character column per ancestor level followed by a connector glyph:
//   - "|   " when the ancestor at that level still has siblings below it
//   - "    " when that ancestor was the last child of its parent (a closed level)
//   - "├──" for an entry with later siblings, "└──" for the last entry
//
// # Depth
//
// Options.MaxDepth counts nesting levels below the root. The root is depth 0
// and an entry at depth d is printed only if d <= MaxDepth. Directories at
// the limit are never enumerated.
//
// # Errors
//
// Enumeration failures and undecodable entry names abort the traversal and
// are returned as *IOError. Lines written before the failure stay written.
//
// # Quick Start
//
//	r := tree.New(tree.OSFS{}, os.Stdout, tree.DefaultOptions())
//	if err := r.Render("path/to/folder"); err != nil {
//	    return err
//	}
package tree
