// Package matcher resolves typed input against candidate kana entries.
// Functions are pure; callers own the buffer and decide what to consume.
package matcher

import (
	"strings"

	"github.com/charazer/kana-game-sub000/content"
)

// Match describes a romaji hit inside the buffer
type Match struct {
	// Index is the position of the matched entry in the candidate slice
	Index int
	// Romaji is the spelling that matched
	Romaji string
	// Suffix is set when the spelling matched the end of the buffer rather
	// than its start
	Suffix bool
}

// ExactMatch reports whether buffer is the entry's glyph or one of its
// romaji spellings verbatim
func ExactMatch(entry content.Entry, buffer string) bool {
	if buffer == "" {
		return false
	}
	if buffer == entry.Kana {
		return true
	}
	for _, sp := range entry.Romaji {
		if buffer == sp {
			return true
		}
	}
	return false
}

// LongestRomajiMatch finds the longest spelling that prefixes buffer.
// Ties go to the earliest entry. Without a prefix hit, the longest spelling
// that ends the buffer is returned instead, for buffers carrying an
// unmatched head.
func LongestRomajiMatch(entries []content.Entry, buffer string) (Match, bool) {
	if buffer == "" {
		return Match{}, false
	}
	if m, ok := longest(entries, buffer, strings.HasPrefix); ok {
		return m, true
	}
	m, ok := longest(entries, buffer, strings.HasSuffix)
	m.Suffix = ok
	return m, ok
}

func longest(entries []content.Entry, buffer string, fits func(s, part string) bool) (Match, bool) {
	best := Match{Index: -1}
	for i, e := range entries {
		for _, sp := range e.Romaji {
			if sp == "" || len(sp) <= len(best.Romaji) {
				continue
			}
			if fits(buffer, sp) {
				best = Match{Index: i, Romaji: sp}
			}
		}
	}
	return best, best.Index >= 0
}
