package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"billsplit/internal/dispute/models"
	id "billsplit/pkg/domain"
	"billsplit/pkg/platform/sentinel"
)

// Ledger holds transactions in insertion order. When built with a Users store
// it reports sentinel.ErrNotFound for unknown users.
type Ledger struct {
	mu    sync.RWMutex
	users *Users
	txs   []models.LedgerTransaction
}

func NewLedger(users *Users) *Ledger {
	return &Ledger{users: users}
}

// Record appends a transaction.
func (s *Ledger) Record(tx models.LedgerTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, tx)
}

func (s *Ledger) requireUser(cnp id.CNP) error {
	if s.users != nil && !s.users.exists(cnp) {
		return sentinel.ErrNotFound
	}
	return nil
}

// SumTransactionsSince sums amounts sent by cnp at or after since.
func (s *Ledger) SumTransactionsSince(_ context.Context, cnp id.CNP, since time.Time) (decimal.Decimal, error) {
	if err := s.requireUser(cnp); err != nil {
		return decimal.Zero, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := decimal.Zero
	for i := range s.txs {
		tx := &s.txs[i]
		if tx.SenderCNP == cnp && !tx.CreatedAt.Before(since) {
			sum = sum.Add(tx.Amount)
		}
	}
	return sum, nil
}

// CountTransfersBetween counts transfers from -> to at or after since.
func (s *Ledger) CountTransfersBetween(_ context.Context, from, to id.CNP, since time.Time) (int, error) {
	if err := s.requireUser(from); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for i := range s.txs {
		tx := &s.txs[i]
		if tx.SenderCNP == from && tx.ReceiverCNP == to && !tx.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *Ledger) HasCorroboratingPayment(_ context.Context, report *models.BillSplitReport) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.txs {
		if report.CorroboratedBy(&s.txs[i]) {
			return true, nil
		}
	}
	return false, nil
}
