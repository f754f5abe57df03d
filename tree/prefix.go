package tree

import "strings"

// Glyphs used to build line prefixes.
const (
	ChildPrefix     = "├──"
	LastChildPrefix = "└──"
	OpenColumn      = "|   "
	ClosedColumn    = "    "
)

// buildPrefix returns the prefix for an entry at the given indentation level.
// Each ancestor level contributes one column; levels present in closed are
// left blank.
func buildPrefix(indent int, isLast bool, closed Levels) string {
	var sb strings.Builder
	sb.Grow(indent*len(OpenColumn) + len(LastChildPrefix))

	for level := 0; level < indent; level++ {
		if closed.Contains(level) {
			sb.WriteString(ClosedColumn)
		} else {
			sb.WriteString(OpenColumn)
		}
	}

	if isLast {
		sb.WriteString(LastChildPrefix)
	} else {
		sb.WriteString(ChildPrefix)
	}
	return sb.String()
}
