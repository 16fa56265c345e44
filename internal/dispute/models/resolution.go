package models

import (
	"time"

	"billsplit/internal/dispute"
	id "billsplit/pkg/domain"
)

// Resolution describes the outcome of scoring one dispute. It is returned by
// both a committed resolution and a dry-run preview.
type Resolution struct {
	ReportID      id.ReportID        `json:"report_id"`
	UserCNP       id.CNP             `json:"user_cnp"`
	Signals       dispute.Signals    `json:"signals"`
	Assessment    dispute.Assessment `json:"assessment"`
	PreviousScore int                `json:"previous_score"`
	NewScore      int                `json:"new_score"`
	Delta         int                `json:"delta"`
	ResolvedAt    time.Time          `json:"resolved_at"`
	Committed     bool               `json:"committed"`
}

// NewResolution applies an assessment to the signals' current score.
func NewResolution(report *BillSplitReport, signals dispute.Signals, assessment dispute.Assessment, at time.Time) *Resolution {
	newScore := assessment.NewScore(signals.CurrentScore)
	return &Resolution{
		ReportID:      report.ID,
		UserCNP:       report.ReportedUserCNP,
		Signals:       signals,
		Assessment:    assessment,
		PreviousScore: signals.CurrentScore,
		NewScore:      newScore,
		Delta:         newScore - signals.CurrentScore,
		ResolvedAt:    at,
	}
}
