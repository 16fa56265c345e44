package memory

import (
	"context"
	"sort"
	"sync"

	"billsplit/internal/dispute/models"
	id "billsplit/pkg/domain"
	"billsplit/pkg/platform/sentinel"
)

// Reports holds open dispute reports. Deleting a report closes it.
type Reports struct {
	mu      sync.RWMutex
	reports map[id.ReportID]*models.BillSplitReport
}

func NewReports() *Reports {
	return &Reports{reports: make(map[id.ReportID]*models.BillSplitReport)}
}

// Create stores a report. It returns sentinel.ErrAlreadyUsed when the ID is
// taken or an identical complaint is already open.
func (s *Reports) Create(_ context.Context, report *models.BillSplitReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[report.ID]; ok {
		return sentinel.ErrAlreadyUsed
	}
	for _, existing := range s.reports {
		if existing.DuplicateOf(report) {
			return sentinel.ErrAlreadyUsed
		}
	}
	r := *report
	s.reports[r.ID] = &r
	return nil
}

func (s *Reports) FindByID(_ context.Context, reportID id.ReportID) (*models.BillSplitReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[reportID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	out := *r
	return &out, nil
}

// FindOpenForUpdate is FindByID. Callers serialize through the sharded
// transaction, which stands in for the row lock.
func (s *Reports) FindOpenForUpdate(ctx context.Context, reportID id.ReportID) (*models.BillSplitReport, error) {
	return s.FindByID(ctx, reportID)
}

// ListOpen returns open reports ordered by creation time.
func (s *Reports) ListOpen(_ context.Context) ([]*models.BillSplitReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.BillSplitReport, 0, len(s.reports))
	for _, r := range s.reports {
		report := *r
		out = append(out, &report)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Reports) DeleteReport(_ context.Context, reportID id.ReportID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[reportID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.reports, reportID)
	return nil
}
