package store

import (
	"errors"
	"sync"
	"time"

	"weather-report/internal/weather"
)

// ErrNotFound is returned when no report run has been recorded yet, or none
// fall in the requested range.
var ErrNotFound = errors.New("no report runs recorded")

// Run is one completed fetch batch: the records for every configured city,
// stamped with the time the batch finished.
type Run struct {
	FetchedAt time.Time
	Records   []weather.Record
}

// RunStore is a concurrency-safe in-memory history of report runs. A failed
// batch is never saved, so the latest run is always the last good one.
type RunStore struct {
	mu   sync.RWMutex
	runs []Run

	// retention configuration
	maxHistory int           // max number of retained runs (<= 0 = unlimited)
	maxAge     time.Duration // max age of retained runs (0 = unlimited)
}

// NewRunStore creates a new RunStore with optional retention limits.
func NewRunStore(maxHistory int, maxAge time.Duration) *RunStore {
	return &RunStore{
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// Save appends a run and enforces retention.
func (s *RunStore) Save(run Run) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = append(s.runs, run)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(s.runs) > s.maxHistory {
		over := len(s.runs) - s.maxHistory
		s.runs = s.runs[over:]
	}

	// Enforce retention by age; runs are appended in time order.
	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(s.runs); i++ {
			if !s.runs[i].FetchedAt.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(s.runs) {
			s.runs = s.runs[i:]
		}
	}
}

// Latest returns the most recent run.
func (s *RunStore) Latest() (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.runs) == 0 {
		return Run{}, ErrNotFound
	}
	return s.runs[len(s.runs)-1], nil
}

// Range returns all runs fetched between from and to (inclusive).
func (s *RunStore) Range(from, to time.Time) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Run
	for _, run := range s.runs {
		if !run.FetchedAt.Before(from) && !run.FetchedAt.After(to) {
			result = append(result, run)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}
