package content

import "strings"

// Type distinguishes the two kana scripts
type Type uint8

const (
	Hiragana Type = iota
	Katakana
)

// String returns the lower-case script name used in keys and config files
func (t Type) String() string {
	switch t {
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	default:
		return "unknown"
	}
}

// ParseType converts a script name back into a Type
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hiragana":
		return Hiragana, true
	case "katakana":
		return Katakana, true
	}
	return 0, false
}

// Entry is one immutable catalog row
// Romaji lists every accepted spelling in preference order
type Entry struct {
	ID     string
	Kana   string
	Romaji []string
	Type   Type
}

// Key returns the catalog-unique identity of the entry
func (e Entry) Key() Key {
	return Key{Type: e.Type, ID: e.ID}
}

// Key identifies an entry across scripts; plain IDs collide between
// hiragana and katakana
type Key struct {
	Type Type
	ID   string
}

func (k Key) String() string {
	return k.Type.String() + ":" + k.ID
}

// Set names which scripts are loaded into the engine
type Set string

const (
	SetHiragana Set = "hiragana"
	SetKatakana Set = "katakana"
	SetMixed    Set = "mixed"
)

// ParseSet validates a set name from flags or config
func ParseSet(s string) (Set, bool) {
	switch Set(strings.ToLower(strings.TrimSpace(s))) {
	case SetHiragana:
		return SetHiragana, true
	case SetKatakana:
		return SetKatakana, true
	case SetMixed:
		return SetMixed, true
	}
	return "", false
}
