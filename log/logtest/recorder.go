/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// Package logtest provides a recording log.FieldLogger for tests.
package logtest

import (
	"sync"
	"time"

	"github.com/ssgreg/logf"

	"github.com/acronis/go-callkit/log"
)

// RecordedEntry is a logged entry captured by Recorder.
type RecordedEntry struct {
	Fields []log.Field
	Level  log.Level
	Time   time.Time
	Text   string
}

// FindField returns the field with the given key.
func (re *RecordedEntry) FindField(key string) (log.Field, bool) {
	for _, f := range re.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return log.Field{}, false
}

type entryStore struct {
	mu      sync.RWMutex
	entries []RecordedEntry
}

//nolint:gocritic
func (s *entryStore) WriteEntry(e logf.Entry) {
	fields := make([]log.Field, 0, len(e.DerivedFields)+len(e.Fields))
	fields = append(fields, e.DerivedFields...)
	fields = append(fields, e.Fields...)

	s.mu.Lock()
	s.entries = append(s.entries, RecordedEntry{Fields: fields, Level: fromLogfLevel(e.Level), Time: e.Time, Text: e.Text})
	s.mu.Unlock()
}

// Recorder is a log.FieldLogger that keeps every entry in memory.
type Recorder struct {
	*log.LogfAdapter
	store *entryStore
}

// NewRecorder creates a Recorder that records all levels.
func NewRecorder() *Recorder {
	store := &entryStore{}
	return &Recorder{&log.LogfAdapter{Logger: logf.NewLogger(logf.LevelDebug, store)}, store}
}

// With returns a Recorder sharing the same entries and carrying the extra fields.
func (r *Recorder) With(fs ...log.Field) log.FieldLogger {
	return &Recorder{r.LogfAdapter.With(fs...).(*log.LogfAdapter), r.store}
}

// WithLevel returns a Recorder sharing the same entries with an additional level check.
func (r *Recorder) WithLevel(level log.Level) log.FieldLogger {
	return &Recorder{r.LogfAdapter.WithLevel(level).(*log.LogfAdapter), r.store}
}

// Entries returns a copy of recorded entries.
func (r *Recorder) Entries() []RecordedEntry {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]RecordedEntry(nil), r.store.entries...)
}

// FindEntry returns the first entry with the given message.
func (r *Recorder) FindEntry(msg string) (RecordedEntry, bool) {
	for _, e := range r.Entries() {
		if e.Text == msg {
			return e, true
		}
	}
	return RecordedEntry{}, false
}

// CountEntries returns the number of entries with the given message.
func (r *Recorder) CountEntries(msg string) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Text == msg {
			n++
		}
	}
	return n
}

// Reset drops recorded entries.
func (r *Recorder) Reset() {
	r.store.mu.Lock()
	r.store.entries = nil
	r.store.mu.Unlock()
}

func fromLogfLevel(level logf.Level) log.Level {
	switch level {
	case logf.LevelError:
		return log.LevelError
	case logf.LevelWarn:
		return log.LevelWarn
	case logf.LevelDebug:
		return log.LevelDebug
	}
	return log.LevelInfo
}
