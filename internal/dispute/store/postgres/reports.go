package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"billsplit/internal/dispute/models"
	id "billsplit/pkg/domain"
	"billsplit/pkg/platform/sentinel"
	txcontext "billsplit/pkg/platform/tx"
)

// Reports persists open dispute reports in bill_split_reports.
type Reports struct {
	db *sql.DB
}

func NewReports(db *sql.DB) *Reports {
	return &Reports{db: db}
}

const reportColumns = `id, reported_user_cnp, reporting_user_cnp, date_of_transaction, bill_share, created_at`

// Create inserts a report. The table's unique constraint on the complaint
// fields surfaces as sentinel.ErrAlreadyUsed.
func (s *Reports) Create(ctx context.Context, r *models.BillSplitReport) error {
	_, err := txcontext.Use(ctx, s.db).ExecContext(ctx, `
		INSERT INTO bill_split_reports (`+reportColumns+`)
		VALUES ($1, $2, $3, $4::date, $5, $6)
	`, r.ID.String(), r.ReportedUserCNP.String(), r.ReportingUserCNP.String(),
		r.DateOfTransaction.Format("2006-01-02"), r.BillShare, r.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("create bill split report: %w", err)
	}
	return nil
}

func (s *Reports) FindByID(ctx context.Context, reportID id.ReportID) (*models.BillSplitReport, error) {
	return s.findOne(ctx, `SELECT `+reportColumns+` FROM bill_split_reports WHERE id = $1`, reportID)
}

// FindOpenForUpdate locks the report row for the rest of the transaction.
// A report closed by a concurrent resolution is not found.
func (s *Reports) FindOpenForUpdate(ctx context.Context, reportID id.ReportID) (*models.BillSplitReport, error) {
	if !txcontext.InTx(ctx) {
		return nil, errLockOutsideTx
	}
	return s.findOne(ctx, `SELECT `+reportColumns+` FROM bill_split_reports WHERE id = $1 FOR UPDATE`, reportID)
}

func (s *Reports) findOne(ctx context.Context, query string, reportID id.ReportID) (*models.BillSplitReport, error) {
	row := txcontext.Use(ctx, s.db).QueryRowContext(ctx, query, reportID.String())
	r, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find bill split report: %w", err)
	}
	return r, nil
}

// ListOpen returns open reports ordered by creation time.
func (s *Reports) ListOpen(ctx context.Context) ([]*models.BillSplitReport, error) {
	rows, err := txcontext.Use(ctx, s.db).QueryContext(ctx,
		`SELECT `+reportColumns+` FROM bill_split_reports ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list bill split reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.BillSplitReport, 0)
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill split report: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bill split reports: %w", err)
	}
	return reports, nil
}

func (s *Reports) DeleteReport(ctx context.Context, reportID id.ReportID) error {
	res, err := txcontext.Use(ctx, s.db).ExecContext(ctx,
		`DELETE FROM bill_split_reports WHERE id = $1`, reportID.String())
	if err != nil {
		return fmt.Errorf("delete bill split report: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bill split report: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*models.BillSplitReport, error) {
	var (
		r                  models.BillSplitReport
		rawID              uuid.UUID
		reported, reporter string
	)
	if err := row.Scan(&rawID, &reported, &reporter, &r.DateOfTransaction, &r.BillShare, &r.CreatedAt); err != nil {
		return nil, err
	}
	r.ID = id.ReportID(rawID)
	r.ReportedUserCNP = id.CNP(reported)
	r.ReportingUserCNP = id.CNP(reporter)
	r.DateOfTransaction = r.DateOfTransaction.UTC()
	r.CreatedAt = r.CreatedAt.UTC()
	return &r, nil
}
