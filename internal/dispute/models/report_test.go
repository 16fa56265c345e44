package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "billsplit/pkg/domain"
	dErrors "billsplit/pkg/domain-errors"
)

var billDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func validReport(t *testing.T) *BillSplitReport {
	t.Helper()
	r, err := NewBillSplitReport(id.NewReportID(), "1960101123456", "2970202654321",
		billDate.Add(15*time.Hour), decimal.RequireFromString("42.50"), billDate.Add(24*time.Hour))
	require.NoError(t, err)
	return r
}

func TestNewBillSplitReport(t *testing.T) {
	t.Run("normalizes the bill date to a calendar day", func(t *testing.T) {
		r := validReport(t)
		assert.True(t, r.DateOfTransaction.Equal(billDate))
	})

	tests := []struct {
		name      string
		reported  id.CNP
		reporting id.CNP
		share     string
	}{
		{name: "self report", reported: "111", reporting: "111", share: "10"},
		{name: "negative share", reported: "111", reporting: "222", share: "-0.01"},
		{name: "sub-cent share", reported: "111", reporting: "222", share: "10.005"},
		{name: "malformed reported cnp", reported: "11 1", reporting: "222", share: "10"},
		{name: "empty reporting cnp", reported: "111", reporting: "", share: "10"},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := NewBillSplitReport(id.NewReportID(), tt.reported, tt.reporting, billDate,
				decimal.RequireFromString(tt.share), billDate)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}

	t.Run("accepts a zero share", func(t *testing.T) {
		_, err := NewBillSplitReport(id.NewReportID(), "111", "222", billDate, decimal.Zero, billDate)
		assert.NoError(t, err)
	})
}

func TestBillSplitReport_Validate(t *testing.T) {
	var nilReport *BillSplitReport
	assert.True(t, dErrors.HasCode(nilReport.Validate(), dErrors.CodeValidation))

	r := validReport(t)
	r.ID = id.ReportID(uuid.Nil)
	assert.True(t, dErrors.HasCode(r.Validate(), dErrors.CodeValidation))
}

func TestBillSplitReport_DuplicateOf(t *testing.T) {
	a := validReport(t)
	b := *a
	b.ID = id.NewReportID()
	assert.True(t, a.DuplicateOf(&b))

	b.BillShare = decimal.RequireFromString("42.51")
	assert.False(t, a.DuplicateOf(&b))
}

func TestBillSplitReport_CorroboratedBy(t *testing.T) {
	r := validReport(t)
	payment := func() *LedgerTransaction {
		return &LedgerTransaction{
			ID:          uuid.New(),
			SenderCNP:   r.ReportedUserCNP,
			ReceiverCNP: r.ReportingUserCNP,
			Amount:      decimal.RequireFromString("42.5"),
			Description: "My SHARE of the pizza",
			Category:    "transfer",
			CreatedAt:   billDate.Add(48 * time.Hour),
		}
	}

	assert.True(t, r.CorroboratedBy(payment()))

	tests := []struct {
		name   string
		mutate func(tx *LedgerTransaction)
	}{
		{name: "wrong direction", mutate: func(tx *LedgerTransaction) { tx.SenderCNP, tx.ReceiverCNP = tx.ReceiverCNP, tx.SenderCNP }},
		{name: "before the bill", mutate: func(tx *LedgerTransaction) { tx.CreatedAt = billDate.Add(-time.Hour) }},
		{name: "different amount", mutate: func(tx *LedgerTransaction) { tx.Amount = decimal.RequireFromString("42.49") }},
		{name: "unrelated description", mutate: func(tx *LedgerTransaction) { tx.Description = "coffee" }},
		{name: "bill split category", mutate: func(tx *LedgerTransaction) { tx.Category = " Bill Split" }},
	}
	for _, tt := range tests {
		t.Run("ignores "+tt.name, func(t *testing.T) {
			tx := payment()
			tt.mutate(tx)
			assert.False(t, r.CorroboratedBy(tx))
		})
	}
}
