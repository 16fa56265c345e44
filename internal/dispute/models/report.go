package models

import (
	"time"

	"github.com/shopspring/decimal"

	id "billsplit/pkg/domain"
	dErrors "billsplit/pkg/domain-errors"
)

// BillSplitReport is a filed complaint that ReportedUserCNP did not pay their
// share of a bill incurred together with ReportingUserCNP.
//
// Invariants:
//   - ReportedUserCNP and ReportingUserCNP are well formed and differ
//   - BillShare is non-negative with at most two decimal places
//   - DateOfTransaction is a calendar day (UTC midnight)
//
// A report is never updated in place. It is deleted exactly once, either when
// resolved or when removed administratively.
type BillSplitReport struct {
	ID                id.ReportID     `json:"id"`
	ReportedUserCNP   id.CNP          `json:"reported_user_cnp"`
	ReportingUserCNP  id.CNP          `json:"reporting_user_cnp"`
	DateOfTransaction time.Time       `json:"date_of_transaction"`
	BillShare         decimal.Decimal `json:"bill_share"`
	CreatedAt         time.Time       `json:"created_at"`
}

// NewBillSplitReport constructs a report and enforces its invariants.
func NewBillSplitReport(
	reportID id.ReportID,
	reported, reporting id.CNP,
	dateOfTransaction time.Time,
	billShare decimal.Decimal,
	createdAt time.Time,
) (*BillSplitReport, error) {
	r := &BillSplitReport{
		ID:                reportID,
		ReportedUserCNP:   reported,
		ReportingUserCNP:  reporting,
		DateOfTransaction: truncateToDay(dateOfTransaction),
		BillShare:         billShare,
		CreatedAt:         createdAt,
	}
	if err := r.Validate(); err != nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, dErrors.MessageOf(err))
	}
	return r, nil
}

// Validate checks the report's invariants. It returns CodeValidation so
// callers holding a report from an untrusted source can surface it directly.
func (r *BillSplitReport) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeValidation, "report is required")
	}
	if r.ID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "report id is required")
	}
	if _, err := id.ParseCNP(string(r.ReportedUserCNP)); err != nil {
		return dErrors.New(dErrors.CodeValidation, "reported user cnp is malformed")
	}
	if _, err := id.ParseCNP(string(r.ReportingUserCNP)); err != nil {
		return dErrors.New(dErrors.CodeValidation, "reporting user cnp is malformed")
	}
	if r.ReportedUserCNP == r.ReportingUserCNP {
		return dErrors.New(dErrors.CodeValidation, "a user cannot report themselves")
	}
	if r.BillShare.IsNegative() {
		return dErrors.New(dErrors.CodeValidation, "bill share must not be negative")
	}
	if !r.BillShare.Equal(r.BillShare.Round(2)) {
		return dErrors.New(dErrors.CodeValidation, "bill share must have at most two decimal places")
	}
	return nil
}

// DuplicateOf reports whether other describes the same complaint: same pair,
// same bill date and same share.
func (r *BillSplitReport) DuplicateOf(other *BillSplitReport) bool {
	return r.ReportedUserCNP == other.ReportedUserCNP &&
		r.ReportingUserCNP == other.ReportingUserCNP &&
		r.DateOfTransaction.Equal(other.DateOfTransaction) &&
		r.BillShare.Equal(other.BillShare)
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
