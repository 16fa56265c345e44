package handler

import (
	"time"

	"billsplit/internal/dispute/models"
)

// DisputeResponse is the HTTP representation of an open dispute.
type DisputeResponse struct {
	ID                string    `json:"id"`
	ReportedUserCNP   string    `json:"reported_user_cnp"`
	ReportingUserCNP  string    `json:"reporting_user_cnp"`
	DateOfTransaction string    `json:"date_of_transaction"`
	BillShare         string    `json:"bill_share"`
	CreatedAt         time.Time `json:"created_at"`
}

// ListDisputesResponse is the HTTP response for GET /disputes.
type ListDisputesResponse struct {
	Disputes []DisputeResponse `json:"disputes"`
}

// ResolutionResponse is the HTTP response for resolve and preview.
type ResolutionResponse struct {
	ReportID      string          `json:"report_id"`
	UserCNP       string          `json:"user_cnp"`
	PreviousScore int             `json:"previous_score"`
	NewScore      int             `json:"new_score"`
	Delta         int             `json:"delta"`
	Gravity       string          `json:"gravity"`
	TimeFactor    string          `json:"time_factor"`
	AmountFactor  string          `json:"amount_factor"`
	Signals       SignalsResponse `json:"signals"`
	ResolvedAt    time.Time       `json:"resolved_at"`
	Committed     bool            `json:"committed"`
}

// SignalsResponse is the signal portion of a resolution.
type SignalsResponse struct {
	DaysOverdue       int    `json:"days_overdue"`
	BillShare         string `json:"bill_share"`
	AbleToPay         bool   `json:"able_to_pay"`
	HasGoodHistory    bool   `json:"has_good_history"`
	FrequentTransfers bool   `json:"frequent_transfers"`
	OffenseCount      int    `json:"offense_count"`
	CurrentScore      int    `json:"current_score"`
}

// CorroborationResponse is the HTTP response for GET /disputes/{id}/corroboration.
type CorroborationResponse struct {
	ReportID     string `json:"report_id"`
	Corroborated bool   `json:"corroborated"`
}

// HistoryEntryResponse is one day of a user's credit score history.
type HistoryEntryResponse struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// HistoryResponse is the HTTP response for GET /users/{cnp}/credit-score-history.
type HistoryResponse struct {
	CNP     string                 `json:"cnp"`
	Entries []HistoryEntryResponse `json:"entries"`
}

func FromReport(r *models.BillSplitReport) DisputeResponse {
	return DisputeResponse{
		ID:                r.ID.String(),
		ReportedUserCNP:   r.ReportedUserCNP.String(),
		ReportingUserCNP:  r.ReportingUserCNP.String(),
		DateOfTransaction: r.DateOfTransaction.Format(dateLayout),
		BillShare:         r.BillShare.StringFixed(2),
		CreatedAt:         r.CreatedAt,
	}
}

func FromReports(reports []*models.BillSplitReport) *ListDisputesResponse {
	out := make([]DisputeResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, FromReport(r))
	}
	return &ListDisputesResponse{Disputes: out}
}

// FromResolution converts a domain resolution to an HTTP response.
func FromResolution(res *models.Resolution) *ResolutionResponse {
	return &ResolutionResponse{
		ReportID:      res.ReportID.String(),
		UserCNP:       res.UserCNP.String(),
		PreviousScore: res.PreviousScore,
		NewScore:      res.NewScore,
		Delta:         res.Delta,
		Gravity:       res.Assessment.Gravity.String(),
		TimeFactor:    res.Assessment.TimeFactor.String(),
		AmountFactor:  res.Assessment.AmountFactor.String(),
		Signals: SignalsResponse{
			DaysOverdue:       res.Signals.DaysOverdue,
			BillShare:         res.Signals.BillShare.StringFixed(2),
			AbleToPay:         res.Signals.AbleToPay,
			HasGoodHistory:    res.Signals.HasGoodHistory,
			FrequentTransfers: res.Signals.FrequentTransfers,
			OffenseCount:      res.Signals.OffenseCount,
			CurrentScore:      res.Signals.CurrentScore,
		},
		ResolvedAt: res.ResolvedAt,
		Committed:  res.Committed,
	}
}

func FromHistory(cnp string, entries []*models.CreditScoreHistoryEntry) *HistoryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{Date: e.Date.Format(dateLayout), Score: e.Score})
	}
	return &HistoryResponse{CNP: cnp, Entries: out}
}
