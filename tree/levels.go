package tree

const bitsPerWord = 64

// Levels is the set of closed indentation levels.
//
// It has value semantics: With never modifies the receiver, so a set handed
// to one subtree can't be changed by a sibling. The zero value is empty.
type Levels struct {
	words []uint64
}

// Contains reports whether level is in the set.
func (l Levels) Contains(level int) bool {
	if level < 0 {
		return false
	}
	idx := level / bitsPerWord
	if idx >= len(l.words) {
		return false
	}
	return l.words[idx]&(1<<(uint(level)%bitsPerWord)) != 0
}

// With returns a copy of l with level added.
func (l Levels) With(level int) Levels {
	if level < 0 {
		return l
	}
	idx := level / bitsPerWord
	n := max(len(l.words), idx+1)

	words := make([]uint64, n)
	copy(words, l.words)
	words[idx] |= 1 << (uint(level) % bitsPerWord)
	return Levels{words: words}
}
