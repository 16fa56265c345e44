// Package memory provides in-process implementations of the dispute stores for
// tests and local runs without a database.
package memory

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"billsplit/internal/dispute/models"
	id "billsplit/pkg/domain"
	"billsplit/pkg/platform/sentinel"
)

// Users holds user financial profiles keyed by CNP.
type Users struct {
	mu       sync.RWMutex
	profiles map[id.CNP]*models.UserFinancialProfile
}

func NewUsers() *Users {
	return &Users{profiles: make(map[id.CNP]*models.UserFinancialProfile)}
}

// Put inserts or replaces a profile.
func (s *Users) Put(profile *models.UserFinancialProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *profile
	s.profiles[p.CNP] = &p
}

func (s *Users) exists(cnp id.CNP) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.profiles[cnp]
	return ok
}

func (s *Users) read(cnp id.CNP) (models.UserFinancialProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[cnp]
	if !ok {
		return models.UserFinancialProfile{}, sentinel.ErrNotFound
	}
	return *p, nil
}

func (s *Users) update(cnp id.CNP, fn func(p *models.UserFinancialProfile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[cnp]
	if !ok {
		return sentinel.ErrNotFound
	}
	fn(p)
	return nil
}

func (s *Users) FindProfile(_ context.Context, cnp id.CNP) (*models.UserFinancialProfile, error) {
	p, err := s.read(cnp)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Users) GetBalance(_ context.Context, cnp id.CNP) (decimal.Decimal, error) {
	p, err := s.read(cnp)
	return p.Balance, err
}

func (s *Users) GetBillSharesPaidCount(_ context.Context, cnp id.CNP) (int, error) {
	p, err := s.read(cnp)
	return p.NumberOfBillSharesPaid, err
}

func (s *Users) GetOffenseCount(_ context.Context, cnp id.CNP) (int, error) {
	p, err := s.read(cnp)
	return p.NumberOfOffenses, err
}

func (s *Users) GetCreditScore(_ context.Context, cnp id.CNP) (int, error) {
	p, err := s.read(cnp)
	return p.CreditScore, err
}

func (s *Users) SetCreditScore(_ context.Context, cnp id.CNP, score int) error {
	return s.update(cnp, func(p *models.UserFinancialProfile) {
		p.CreditScore = score
	})
}

func (s *Users) IncrementBillSharesPaid(_ context.Context, cnp id.CNP) error {
	return s.update(cnp, func(p *models.UserFinancialProfile) {
		p.NumberOfBillSharesPaid++
	})
}
