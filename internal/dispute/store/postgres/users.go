package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"billsplit/internal/dispute/models"
	id "billsplit/pkg/domain"
	"billsplit/pkg/platform/sentinel"
	txcontext "billsplit/pkg/platform/tx"
)

// Users reads and updates the users table.
type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

// Upsert inserts or replaces a profile. Used to seed users.
func (s *Users) Upsert(ctx context.Context, p *models.UserFinancialProfile) error {
	_, err := txcontext.Use(ctx, s.db).ExecContext(ctx, `
		INSERT INTO users (cnp, balance, credit_score, number_of_offenses, number_of_bill_shares_paid)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (cnp) DO UPDATE SET
			balance = EXCLUDED.balance,
			credit_score = EXCLUDED.credit_score,
			number_of_offenses = EXCLUDED.number_of_offenses,
			number_of_bill_shares_paid = EXCLUDED.number_of_bill_shares_paid
	`, p.CNP.String(), p.Balance, p.CreditScore, p.NumberOfOffenses, p.NumberOfBillSharesPaid)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (s *Users) FindProfile(ctx context.Context, cnp id.CNP) (*models.UserFinancialProfile, error) {
	var p models.UserFinancialProfile
	var raw string
	err := txcontext.Use(ctx, s.db).QueryRowContext(ctx, `
		SELECT cnp, balance, credit_score, number_of_offenses, number_of_bill_shares_paid
		FROM users
		WHERE cnp = $1
	`, cnp.String()).Scan(&raw, &p.Balance, &p.CreditScore, &p.NumberOfOffenses, &p.NumberOfBillSharesPaid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user profile: %w", err)
	}
	p.CNP = id.CNP(raw)
	return &p, nil
}

func (s *Users) GetBalance(ctx context.Context, cnp id.CNP) (decimal.Decimal, error) {
	var balance decimal.Decimal
	if err := s.scanColumn(ctx, "balance", cnp, &balance); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (s *Users) GetBillSharesPaidCount(ctx context.Context, cnp id.CNP) (int, error) {
	var n int
	err := s.scanColumn(ctx, "number_of_bill_shares_paid", cnp, &n)
	return n, err
}

func (s *Users) GetOffenseCount(ctx context.Context, cnp id.CNP) (int, error) {
	var n int
	err := s.scanColumn(ctx, "number_of_offenses", cnp, &n)
	return n, err
}

func (s *Users) GetCreditScore(ctx context.Context, cnp id.CNP) (int, error) {
	var n int
	err := s.scanColumn(ctx, "credit_score", cnp, &n)
	return n, err
}

func (s *Users) SetCreditScore(ctx context.Context, cnp id.CNP, score int) error {
	return s.updateOne(ctx, "set credit score",
		`UPDATE users SET credit_score = $2 WHERE cnp = $1`, cnp.String(), score)
}

func (s *Users) IncrementBillSharesPaid(ctx context.Context, cnp id.CNP) error {
	return s.updateOne(ctx, "increment bill shares paid",
		`UPDATE users SET number_of_bill_shares_paid = number_of_bill_shares_paid + 1 WHERE cnp = $1`, cnp.String())
}

// scanColumn reads one column of a user row. column is always a constant.
func (s *Users) scanColumn(ctx context.Context, column string, cnp id.CNP, dest any) error {
	query := "SELECT " + column + " FROM users WHERE cnp = $1"
	err := txcontext.Use(ctx, s.db).QueryRowContext(ctx, query, cnp.String()).Scan(dest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sentinel.ErrNotFound
		}
		return fmt.Errorf("read user %s: %w", column, err)
	}
	return nil
}

func (s *Users) updateOne(ctx context.Context, op, query string, args ...any) error {
	res, err := txcontext.Use(ctx, s.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
