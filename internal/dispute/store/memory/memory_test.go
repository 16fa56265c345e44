package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"billsplit/internal/dispute/models"
	id "billsplit/pkg/domain"
	"billsplit/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	users   *Users
	ledger  *Ledger
	history *History
	reports *Reports
	ctx     context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

var day = time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

func (s *MemoryStoreSuite) SetupTest() {
	s.users = NewUsers()
	s.ledger = NewLedger(s.users)
	s.history = NewHistory()
	s.reports = NewReports()
	s.ctx = context.Background()

	s.users.Put(&models.UserFinancialProfile{CNP: "alice", Balance: decimal.NewFromInt(100), CreditScore: 640})
	s.users.Put(&models.UserFinancialProfile{CNP: "bob", Balance: decimal.NewFromInt(5), CreditScore: 710})
}

func (s *MemoryStoreSuite) send(from, to id.CNP, amount string, at time.Time) {
	s.ledger.Record(models.LedgerTransaction{
		ID:          uuid.New(),
		SenderCNP:   from,
		ReceiverCNP: to,
		Amount:      decimal.RequireFromString(amount),
		Description: "transfer",
		Category:    "transfer",
		CreatedAt:   at,
	})
}

func (s *MemoryStoreSuite) TestUsers() {
	s.Run("reads and mutates a profile", func() {
		s.Require().NoError(s.users.SetCreditScore(s.ctx, "alice", 600))
		s.Require().NoError(s.users.IncrementBillSharesPaid(s.ctx, "alice"))

		p, err := s.users.FindProfile(s.ctx, "alice")
		s.Require().NoError(err)
		s.Equal(600, p.CreditScore)
		s.Equal(1, p.NumberOfBillSharesPaid)
	})

	s.Run("returns ErrNotFound for unknown users", func() {
		_, err := s.users.GetBalance(s.ctx, "carol")
		s.ErrorIs(err, sentinel.ErrNotFound)
		s.ErrorIs(s.users.SetCreditScore(s.ctx, "carol", 1), sentinel.ErrNotFound)
	})

	s.Run("returned profiles are copies", func() {
		p, err := s.users.FindProfile(s.ctx, "bob")
		s.Require().NoError(err)
		p.CreditScore = 1

		score, err := s.users.GetCreditScore(s.ctx, "bob")
		s.Require().NoError(err)
		s.Equal(710, score)
	})
}

func (s *MemoryStoreSuite) TestLedger() {
	s.send("alice", "bob", "10", day.Add(-time.Hour))
	s.send("alice", "bob", "20.50", day)
	s.send("alice", "carol", "5", day.Add(time.Hour))
	s.send("bob", "alice", "7", day.Add(time.Hour))

	s.Run("sums outgoing amounts from the given instant", func() {
		sum, err := s.ledger.SumTransactionsSince(s.ctx, "alice", day)
		s.Require().NoError(err)
		s.True(sum.Equal(decimal.RequireFromString("25.50")), "got %s", sum)
	})

	s.Run("counts transfers for one direction", func() {
		n, err := s.ledger.CountTransfersBetween(s.ctx, "alice", "bob", day.AddDate(0, 0, -30))
		s.Require().NoError(err)
		s.Equal(2, n)
	})

	s.Run("unknown user is not found", func() {
		_, err := s.ledger.SumTransactionsSince(s.ctx, "nobody", day)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *MemoryStoreSuite) TestHistoryUpsert() {
	s.Require().NoError(s.history.UpsertCreditScoreHistory(s.ctx, "alice", day.Add(9*time.Hour), 630))
	s.Require().NoError(s.history.UpsertCreditScoreHistory(s.ctx, "alice", day.Add(17*time.Hour), 620))
	s.Require().NoError(s.history.UpsertCreditScoreHistory(s.ctx, "alice", day.AddDate(0, 0, -1), 640))

	entries, err := s.history.ListByUser(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.True(entries[0].Date.Equal(day))
	s.Equal(620, entries[0].Score)
	s.Equal(640, entries[1].Score)

	none, err := s.history.ListByUser(s.ctx, "bob")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *MemoryStoreSuite) TestReports() {
	newReport := func(share string) *models.BillSplitReport {
		r, err := models.NewBillSplitReport(id.NewReportID(), "alice", "bob", day,
			decimal.RequireFromString(share), day.Add(time.Hour))
		s.Require().NoError(err)
		return r
	}

	s.Run("create, find, delete", func() {
		r := newReport("12")
		s.Require().NoError(s.reports.Create(s.ctx, r))

		found, err := s.reports.FindOpenForUpdate(s.ctx, r.ID)
		s.Require().NoError(err)
		s.True(found.BillShare.Equal(r.BillShare))

		s.Require().NoError(s.reports.DeleteReport(s.ctx, r.ID))
		_, err = s.reports.FindByID(s.ctx, r.ID)
		s.ErrorIs(err, sentinel.ErrNotFound)
		s.ErrorIs(s.reports.DeleteReport(s.ctx, r.ID), sentinel.ErrNotFound)
	})

	s.Run("rejects an identical open complaint", func() {
		s.Require().NoError(s.reports.Create(s.ctx, newReport("30")))
		s.ErrorIs(s.reports.Create(s.ctx, newReport("30")), sentinel.ErrAlreadyUsed)
		s.NoError(s.reports.Create(s.ctx, newReport("31")))
	})

	s.Run("lists open reports", func() {
		open, err := s.reports.ListOpen(s.ctx)
		s.Require().NoError(err)
		s.Len(open, 2)
	})
}

func (s *MemoryStoreSuite) TestHasCorroboratingPayment() {
	r, err := models.NewBillSplitReport(id.NewReportID(), "alice", "bob", day,
		decimal.RequireFromString("15"), day)
	s.Require().NoError(err)

	found, err := s.ledger.HasCorroboratingPayment(s.ctx, r)
	s.Require().NoError(err)
	s.False(found)

	s.ledger.Record(models.LedgerTransaction{
		ID:          uuid.New(),
		SenderCNP:   "alice",
		ReceiverCNP: "bob",
		Amount:      decimal.RequireFromString("15.00"),
		Description: "split for groceries",
		Category:    "transfer",
		CreatedAt:   day.Add(26 * time.Hour),
	})

	found, err = s.ledger.HasCorroboratingPayment(s.ctx, r)
	s.Require().NoError(err)
	s.True(found)
}
