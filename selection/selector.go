// Package selection picks the next kana to spawn.
//
// Kana never shown in the session are drawn first. Once every available
// kana has appeared, spawns proceed in rounds: each round is a shuffled
// queue of the least-shown kana, so per-kana spawn counts never differ by
// more than one. The head of a new round is never the kana spawned last.
package selection

import (
	"sort"
	"strings"

	"github.com/charazer/kana-game-sub000/content"
	"github.com/charazer/kana-game-sub000/vmath"
)

// Selector holds the spawn history of one game session
type Selector struct {
	rng vmath.Rand

	seq         uint64
	lastSeen    map[content.Key]uint64
	roundCount  map[content.Key]int
	queue       []content.Key
	fingerprint string
}

// New creates an empty selector drawing from rng
func New(rng vmath.Rand) *Selector {
	s := &Selector{rng: rng}
	s.Reset()
	return s
}

// Reset forgets all history
func (s *Selector) Reset() {
	s.seq = 0
	s.lastSeen = make(map[content.Key]uint64)
	s.roundCount = make(map[content.Key]int)
	s.queue = nil
	s.fingerprint = ""
}

// Next picks the entry to spawn from available and records the spawn.
// It returns false only when available is empty.
func (s *Selector) Next(available []content.Entry) (content.Entry, bool) {
	if len(available) == 0 {
		return content.Entry{}, false
	}

	byKey := make(map[content.Key]content.Entry, len(available))
	for _, e := range available {
		if _, dup := byKey[e.Key()]; !dup {
			byKey[e.Key()] = e
		}
	}

	var chosen content.Entry
	if unseen := s.unseen(available); len(unseen) > 0 {
		chosen = unseen[s.rng.Intn(len(unseen))]
	} else {
		key := s.dequeue(byKey)
		chosen = byKey[key]
	}

	s.record(chosen.Key())
	return chosen, true
}

// Counts returns a copy of the per-kana spawn counts
func (s *Selector) Counts() map[content.Key]int {
	out := make(map[content.Key]int, len(s.roundCount))
	for k, v := range s.roundCount {
		out[k] = v
	}
	return out
}

// Last returns the most recently spawned key
func (s *Selector) Last() (content.Key, bool) {
	var (
		best  content.Key
		bestN uint64
	)
	for k, n := range s.lastSeen {
		if n > bestN {
			best, bestN = k, n
		}
	}
	return best, bestN > 0
}

func (s *Selector) record(k content.Key) {
	s.seq++
	s.lastSeen[k] = s.seq
	s.roundCount[k]++
}

func (s *Selector) unseen(available []content.Entry) []content.Entry {
	var out []content.Entry
	for _, e := range available {
		if _, ok := s.lastSeen[e.Key()]; !ok {
			out = append(out, e)
		}
	}
	return out
}

// dequeue pops the next key of the current round, rebuilding the round
// when it is exhausted or the available set changed
func (s *Selector) dequeue(byKey map[content.Key]content.Entry) content.Key {
	fp := fingerprint(byKey)
	if len(s.queue) == 0 || fp != s.fingerprint {
		s.rebuild(byKey)
		s.fingerprint = fp
	}

	key := s.queue[0]
	s.queue = s.queue[1:]
	return key
}

func (s *Selector) rebuild(byKey map[content.Key]content.Entry) {
	keys := sortedKeys(byKey)

	minCount := -1
	for _, k := range keys {
		if c := s.roundCount[k]; minCount < 0 || c < minCount {
			minCount = c
		}
	}

	tier := tierAt(keys, s.roundCount, minCount)

	// A set change can leave the kana just spawned as the only least-shown
	// one; widen the round to the next tier so it is not repeated
	last, hasLast := s.Last()
	if hasLast && len(tier) == 1 && tier[0] == last && len(keys) > 1 {
		next := -1
		for _, k := range keys {
			if c := s.roundCount[k]; c > minCount && (next < 0 || c < next) {
				next = c
			}
		}
		tier = append(tier, tierAt(keys, s.roundCount, next)...)
	}

	// Fisher-Yates
	for i := len(tier) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		tier[i], tier[j] = tier[j], tier[i]
	}

	if hasLast && len(tier) > 1 && tier[0] == last {
		j := 1 + s.rng.Intn(len(tier)-1)
		tier[0], tier[j] = tier[j], tier[0]
	}

	s.queue = tier
}

func tierAt(keys []content.Key, counts map[content.Key]int, count int) []content.Key {
	out := make([]content.Key, 0, len(keys))
	for _, k := range keys {
		if counts[k] == count {
			out = append(out, k)
		}
	}
	return out
}

func sortedKeys(byKey map[content.Key]content.Entry) []content.Key {
	keys := make([]content.Key, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func fingerprint(byKey map[content.Key]content.Entry) string {
	keys := sortedKeys(byKey)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, "|")
}
