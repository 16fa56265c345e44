package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"billsplit/internal/dispute/models"
	id "billsplit/pkg/domain"
)

type historyKey struct {
	cnp  id.CNP
	date string
}

// History keeps one credit score entry per user per calendar day.
type History struct {
	mu      sync.RWMutex
	entries map[historyKey]*models.CreditScoreHistoryEntry
}

func NewHistory() *History {
	return &History{entries: make(map[historyKey]*models.CreditScoreHistoryEntry)}
}

func (s *History) UpsertCreditScoreHistory(_ context.Context, cnp id.CNP, date time.Time, score int) error {
	day := date.UTC().Truncate(24 * time.Hour)
	key := historyKey{cnp: cnp, date: day.Format(time.DateOnly)}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok {
		e.Score = score
		return nil
	}
	s.entries[key] = &models.CreditScoreHistoryEntry{UserCNP: cnp, Date: day, Score: score}
	return nil
}

// ListByUser returns a user's entries, newest first.
func (s *History) ListByUser(_ context.Context, cnp id.CNP) ([]*models.CreditScoreHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.CreditScoreHistoryEntry, 0)
	for k, e := range s.entries {
		if k.cnp == cnp {
			entry := *e
			out = append(out, &entry)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}
