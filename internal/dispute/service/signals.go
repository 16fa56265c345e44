package service

import (
	"context"
	"time"

	"billsplit/internal/dispute"
	"billsplit/internal/dispute/models"
)

// collectSignals reads the six scoring inputs for the accused user of report.
// today must be a UTC calendar day. Reads stop at the first failure, so a
// missing user surfaces as not found before anything is written.
func collectSignals(ctx context.Context, users UserStore, ledger LedgerStore, report *models.BillSplitReport, today time.Time) (dispute.Signals, error) {
	cnp := report.ReportedUserCNP

	balance, err := users.GetBalance(ctx, cnp)
	if err != nil {
		return dispute.Signals{}, translateReadErr(err, "reported user not found", "failed to read balance")
	}
	spent, err := ledger.SumTransactionsSince(ctx, cnp, report.DateOfTransaction)
	if err != nil {
		return dispute.Signals{}, translateReadErr(err, "reported user not found", "failed to sum transactions")
	}
	sharesPaid, err := users.GetBillSharesPaidCount(ctx, cnp)
	if err != nil {
		return dispute.Signals{}, translateReadErr(err, "reported user not found", "failed to read bill shares paid")
	}
	windowStart := today.AddDate(0, 0, -dispute.TransferWindowDays)
	transfers, err := ledger.CountTransfersBetween(ctx, cnp, report.ReportingUserCNP, windowStart)
	if err != nil {
		return dispute.Signals{}, translateReadErr(err, "reported user not found", "failed to count transfers")
	}
	offenses, err := users.GetOffenseCount(ctx, cnp)
	if err != nil {
		return dispute.Signals{}, translateReadErr(err, "reported user not found", "failed to read offense count")
	}
	score, err := users.GetCreditScore(ctx, cnp)
	if err != nil {
		return dispute.Signals{}, translateReadErr(err, "reported user not found", "failed to read credit score")
	}

	return dispute.Signals{
		DaysOverdue:       daysBetween(report.DateOfTransaction, today),
		BillShare:         report.BillShare,
		AbleToPay:         balance.Add(spent).GreaterThanOrEqual(report.BillShare),
		HasGoodHistory:    sharesPaid >= dispute.GoodHistoryThreshold,
		FrequentTransfers: transfers >= dispute.FrequentTransferThreshold,
		OffenseCount:      max(0, offenses),
		CurrentScore:      score,
	}, nil
}

// daysBetween counts whole UTC calendar days from from to to, clamped at zero.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	days := int(t.Sub(f).Hours() / 24)
	return max(0, days)
}
