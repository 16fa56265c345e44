package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"billsplit/internal/dispute/models"
	id "billsplit/pkg/domain"
	txcontext "billsplit/pkg/platform/tx"
)

// History persists credit_score_history, keyed by (user_cnp, date).
type History struct {
	db *sql.DB
}

func NewHistory(db *sql.DB) *History {
	return &History{db: db}
}

func (s *History) UpsertCreditScoreHistory(ctx context.Context, cnp id.CNP, date time.Time, score int) error {
	day := date.UTC().Format(time.DateOnly)
	_, err := txcontext.Use(ctx, s.db).ExecContext(ctx, `
		INSERT INTO credit_score_history (user_cnp, date, score)
		VALUES ($1, $2::date, $3)
		ON CONFLICT (user_cnp, date) DO UPDATE SET score = EXCLUDED.score
	`, cnp.String(), day, score)
	if err != nil {
		return fmt.Errorf("upsert credit score history: %w", err)
	}
	return nil
}

// ListByUser returns a user's entries, newest first.
func (s *History) ListByUser(ctx context.Context, cnp id.CNP) ([]*models.CreditScoreHistoryEntry, error) {
	rows, err := txcontext.Use(ctx, s.db).QueryContext(ctx, `
		SELECT date, score
		FROM credit_score_history
		WHERE user_cnp = $1
		ORDER BY date DESC
	`, cnp.String())
	if err != nil {
		return nil, fmt.Errorf("list credit score history: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.CreditScoreHistoryEntry, 0)
	for rows.Next() {
		e := &models.CreditScoreHistoryEntry{UserCNP: cnp}
		if err := rows.Scan(&e.Date, &e.Score); err != nil {
			return nil, fmt.Errorf("scan credit score history: %w", err)
		}
		e.Date = e.Date.UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credit score history: %w", err)
	}
	return entries, nil
}
