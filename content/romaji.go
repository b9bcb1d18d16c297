package content

// RomajiAlphabet holds every letter the input accepts as romaji. It spans
// all of a-z so custom catalogs may use l, q, v or x spellings.
const RomajiAlphabet = "abcdefghijklmnopqrstuvwxyz"

var romajiRunes = func() map[rune]bool {
	m := make(map[rune]bool, len(RomajiAlphabet))
	for _, c := range RomajiAlphabet {
		m[c] = true
	}
	return m
}()

// IsRomajiRune reports whether c may appear in typed romaji
func IsRomajiRune(c rune) bool {
	return romajiRunes[c]
}

// IsKanaRune reports whether c lies in the hiragana (U+3040-U+309F) or
// katakana (U+30A0-U+30FF) blocks
func IsKanaRune(c rune) bool {
	return (c >= 0x3040 && c <= 0x309F) || (c >= 0x30A0 && c <= 0x30FF)
}

// Typeable reports whether every rune of spelling can be entered as input
func Typeable(spelling string) bool {
	if spelling == "" {
		return false
	}
	for _, c := range spelling {
		if !IsRomajiRune(c) && !IsKanaRune(c) {
			return false
		}
	}
	return true
}
