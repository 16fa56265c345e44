//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	audit "billsplit/pkg/platform/audit"
	"billsplit/pkg/platform/audit/store/postgres"
	"billsplit/pkg/testutil/containers"
)

type AuditStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *postgres.Store
	ctx      context.Context
}

func TestAuditStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(AuditStoreSuite))
}

func (s *AuditStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = postgres.New(s.postgres.DB)
	s.ctx = context.Background()
}

func (s *AuditStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(s.ctx, "audit_events"))
}

func (s *AuditStoreSuite) TestAppendDerivesCategory() {
	at := time.Date(2026, 5, 25, 10, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.Append(s.ctx, audit.Event{
		Category:  audit.CategoryOperations,
		Timestamp: at,
		Action:    string(audit.EventDisputeResolved),
		ReportID:  "r-1",
		Subject:   "hashed-subject",
		Decision:  "applied",
		Details:   map[string]string{"delta": "-22"},
	}))

	events, err := s.store.ListByReport(s.ctx, "r-1")
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(audit.CategoryCompliance, events[0].Category)
	s.Equal(at, events[0].Timestamp.UTC())
	s.Equal("hashed-subject", events[0].Subject)
	s.Equal("-22", events[0].Details["delta"])
}

func (s *AuditStoreSuite) TestListOrdering() {
	at := time.Date(2026, 5, 25, 10, 0, 0, 0, time.UTC)
	for i, action := range []audit.AuditEvent{audit.EventDisputeFiled, audit.EventCorroborationChecked, audit.EventDisputeDeleted} {
		s.Require().NoError(s.store.Append(s.ctx, audit.Event{
			Action:    string(action),
			ReportID:  "r-2",
			Timestamp: at.Add(time.Duration(i) * time.Minute),
		}))
	}
	s.Require().NoError(s.store.Append(s.ctx, audit.Event{Action: string(audit.EventDisputeFiled), ReportID: "r-3", Timestamp: at}))

	byReport, err := s.store.ListByReport(s.ctx, "r-2")
	s.Require().NoError(err)
	s.Require().Len(byReport, 3)
	s.Equal(string(audit.EventDisputeFiled), byReport[0].Action)
	s.Nil(byReport[0].Details)

	recent, err := s.store.ListRecent(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(recent, 2)
	s.Equal(string(audit.EventDisputeDeleted), recent[0].Action)
}
