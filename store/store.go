// Package store persists finished runs and serves the high score table.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoDatabase = errors.New("no database url configured")
	ErrCorrupt    = errors.New("score file is not valid json")
)

// Record is one finished run
type Record struct {
	RunID    string
	Player   string
	Mode     string
	Set      string
	Score    int
	Correct  int
	MaxCombo int
	Duration time.Duration
	PlayedAt time.Time
}

// NewRunID returns a fresh run identifier
func NewRunID() string {
	return uuid.NewString()
}

// Store saves runs and lists the best per mode
type Store interface {
	Save(ctx context.Context, r Record) error
	Top(ctx context.Context, mode string, n int) ([]Record, error)
	Close() error
}

// Discard drops every record; used when persistence is turned off
type Discard struct{}

func (Discard) Save(context.Context, Record) error                 { return nil }
func (Discard) Top(context.Context, string, int) ([]Record, error) { return nil, nil }
func (Discard) Close() error                                       { return nil }

// Open builds the store for driver: "json" uses path, "postgres" uses dsn,
// "none" discards
func Open(ctx context.Context, driver, path, dsn string, log logrus.FieldLogger) (Store, error) {
	log = orDiscard(log)
	switch driver {
	case "json", "":
		return NewJSONStore(path, log), nil
	case "postgres":
		pg, err := OpenPostgres(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case "none":
		return Discard{}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", driver)
}

func orDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log != nil {
		return log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// rank orders best first; earlier runs win ties
func rank(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Score != records[j].Score {
			return records[i].Score > records[j].Score
		}
		return records[i].PlayedAt.Before(records[j].PlayedAt)
	})
}
