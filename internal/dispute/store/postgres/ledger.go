package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"billsplit/internal/dispute/models"
	id "billsplit/pkg/domain"
	"billsplit/pkg/platform/sentinel"
	txcontext "billsplit/pkg/platform/tx"
)

// Ledger reads the transactions table.
type Ledger struct {
	db *sql.DB
}

func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// Record inserts a transaction. Used to seed the ledger.
func (s *Ledger) Record(ctx context.Context, t models.LedgerTransaction) error {
	_, err := txcontext.Use(ctx, s.db).ExecContext(ctx, `
		INSERT INTO transactions (id, sender_cnp, receiver_cnp, amount, description, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, t.ID, t.SenderCNP.String(), t.ReceiverCNP.String(), t.Amount, t.Description, t.Category, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("record transaction: %w", err)
	}
	return nil
}

// SumTransactionsSince sums amounts sent by cnp at or after since.
// The join on users turns an unknown user into sentinel.ErrNotFound.
func (s *Ledger) SumTransactionsSince(ctx context.Context, cnp id.CNP, since time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := txcontext.Use(ctx, s.db).QueryRowContext(ctx, `
		SELECT COALESCE((
			SELECT SUM(t.amount)
			FROM transactions t
			WHERE t.sender_cnp = u.cnp AND t.created_at >= $2
		), 0)
		FROM users u
		WHERE u.cnp = $1
	`, cnp.String(), since).Scan(&sum)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, sentinel.ErrNotFound
		}
		return decimal.Zero, fmt.Errorf("sum transactions: %w", err)
	}
	return sum, nil
}

// CountTransfersBetween counts transfers from -> to at or after since.
func (s *Ledger) CountTransfersBetween(ctx context.Context, from, to id.CNP, since time.Time) (int, error) {
	var n int
	err := txcontext.Use(ctx, s.db).QueryRowContext(ctx, `
		SELECT (
			SELECT COUNT(*)
			FROM transactions t
			WHERE t.sender_cnp = u.cnp AND t.receiver_cnp = $2 AND t.created_at >= $3
		)
		FROM users u
		WHERE u.cnp = $1
	`, from.String(), to.String(), since).Scan(&n)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, sentinel.ErrNotFound
		}
		return 0, fmt.Errorf("count transfers: %w", err)
	}
	return n, nil
}

// corroborationQuery mirrors models.BillSplitReport.CorroboratedBy.
var corroborationQuery = buildCorroborationQuery(models.CorroborationKeywords)

func buildCorroborationQuery(keywords []string) string {
	var b strings.Builder
	b.WriteString(`
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE sender_cnp = $1
			  AND receiver_cnp = $2
			  AND created_at > $3
			  AND amount = $4
			  AND lower(btrim(category)) <> $5
			  AND (`)
	for i := range keywords {
		if i > 0 {
			b.WriteString(" OR ")
		}
		fmt.Fprintf(&b, "description ILIKE $%d", i+6)
	}
	b.WriteString("))")
	return b.String()
}

func (s *Ledger) HasCorroboratingPayment(ctx context.Context, report *models.BillSplitReport) (bool, error) {
	args := []any{
		report.ReportedUserCNP.String(),
		report.ReportingUserCNP.String(),
		report.DateOfTransaction,
		report.BillShare,
		models.BillSplitCategory,
	}
	for _, k := range models.CorroborationKeywords {
		args = append(args, "%"+k+"%")
	}

	var exists bool
	if err := txcontext.Use(ctx, s.db).QueryRowContext(ctx, corroborationQuery, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check corroborating payment: %w", err)
	}
	return exists, nil
}
