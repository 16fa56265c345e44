package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	id "billsplit/pkg/domain"
)

// UserFinancialProfile is the slice of a user record the dispute engine reads
// and mutates. The record itself is owned by the surrounding system.
type UserFinancialProfile struct {
	CNP                    id.CNP          `json:"cnp"`
	Balance                decimal.Decimal `json:"balance"`
	CreditScore            int             `json:"credit_score"`
	NumberOfOffenses       int             `json:"number_of_offenses"`
	NumberOfBillSharesPaid int             `json:"number_of_bill_shares_paid"`
}

// CreditScoreHistoryEntry records a user's score on a calendar day.
// There is at most one entry per (UserCNP, Date).
type CreditScoreHistoryEntry struct {
	UserCNP id.CNP    `json:"user_cnp"`
	Date    time.Time `json:"date"`
	Score   int       `json:"score"`
}

// LedgerTransaction is a money movement between two users.
type LedgerTransaction struct {
	ID          uuid.UUID       `json:"id"`
	SenderCNP   id.CNP          `json:"sender_cnp"`
	ReceiverCNP id.CNP          `json:"receiver_cnp"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
}
