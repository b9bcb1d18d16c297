package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MaxRankingEntries caps each mode's ranking in the score file
const MaxRankingEntries = 50

// rankingRow is the on-disk shape of a Record
type rankingRow struct {
	RunID      string `json:"run_id"`
	Name       string `json:"name"`
	Set        string `json:"set"`
	Score      int    `json:"score"`
	Correct    int    `json:"correct"`
	MaxCombo   int    `json:"max_combo"`
	DurationMS int64  `json:"duration_ms"`
	PlayedAt   string `json:"played_at"`
}

// JSONStore keeps rankings in a JSON file laid out as
// modes.<mode>.ranking (best first) and modes.<mode>.plays
type JSONStore struct {
	path string
	log  logrus.FieldLogger
	mu   sync.Mutex
}

// NewJSONStore creates a store over path; the file is created on first Save
func NewJSONStore(path string, log logrus.FieldLogger) *JSONStore {
	return &JSONStore{path: path, log: orDiscard(log).WithField("component", "store")}
}

func (s *JSONStore) Save(_ context.Context, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}

	records := parseRanking(data, r.Mode)
	records = append(records, r)
	rank(records)
	if len(records) > MaxRankingEntries {
		records = records[:MaxRankingEntries]
	}

	rows := make([]rankingRow, len(records))
	for i, rec := range records {
		rows[i] = toRow(rec)
	}

	base := "modes." + escapeKey(r.Mode)
	if data, err = sjson.SetBytes(data, base+".ranking", rows); err != nil {
		return fmt.Errorf("set ranking: %w", err)
	}
	plays := gjson.GetBytes(data, base+".plays").Int()
	if data, err = sjson.SetBytes(data, base+".plays", plays+1); err != nil {
		return fmt.Errorf("set plays: %w", err)
	}

	if err := s.write(data); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"run_id": r.RunID, "mode": r.Mode, "score": r.Score}).Info("run saved")
	return nil
}

func (s *JSONStore) Top(_ context.Context, mode string, n int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	records := parseRanking(data, mode)
	if n >= 0 && len(records) > n {
		records = records[:n]
	}
	return records, nil
}

// Plays returns how many runs of mode were ever saved
func (s *JSONStore) Plays(mode string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return 0, err
	}
	return int(gjson.GetBytes(data, "modes."+escapeKey(mode)+".plays").Int()), nil
}

func (s *JSONStore) Close() error { return nil }

// read returns the file contents, or an empty object if it does not exist
func (s *JSONStore) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(bytes.TrimSpace(data)) == 0) {
		return []byte("{}"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s", ErrCorrupt, s.path)
	}
	return data, nil
}

// write pretty-prints data and replaces the file atomically
func (s *JSONStore) write(data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err == nil {
		data = buf.Bytes()
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".stats-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

// parseRanking converts modes.<mode>.ranking into records
func parseRanking(data []byte, mode string) []Record {
	res := gjson.GetBytes(data, "modes."+escapeKey(mode)+".ranking")
	if !res.Exists() || !res.IsArray() {
		return nil
	}
	out := make([]Record, 0, int(res.Get("#").Int()))
	res.ForEach(func(_, v gjson.Result) bool {
		playedAt, _ := time.Parse(time.RFC3339Nano, v.Get("played_at").Str)
		out = append(out, Record{
			RunID:    v.Get("run_id").Str,
			Player:   v.Get("name").Str,
			Mode:     mode,
			Set:      v.Get("set").Str,
			Score:    int(v.Get("score").Int()),
			Correct:  int(v.Get("correct").Int()),
			MaxCombo: int(v.Get("max_combo").Int()),
			Duration: time.Duration(v.Get("duration_ms").Int()) * time.Millisecond,
			PlayedAt: playedAt,
		})
		return true
	})
	return out
}

func toRow(r Record) rankingRow {
	return rankingRow{
		RunID:      r.RunID,
		Name:       r.Player,
		Set:        r.Set,
		Score:      r.Score,
		Correct:    r.Correct,
		MaxCombo:   r.MaxCombo,
		DurationMS: r.Duration.Milliseconds(),
		PlayedAt:   r.PlayedAt.UTC().Format(time.RFC3339Nano),
	}
}

// escapeKey protects path metacharacters in a mode name
func escapeKey(key string) string {
	var b bytes.Buffer
	for _, c := range key {
		switch c {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
