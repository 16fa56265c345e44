package models

import (
	textutil "billsplit/pkg/platform/strings"
)

// CorroborationKeywords mark a transfer description as settling a shared bill.
var CorroborationKeywords = textutil.DedupeAndTrimLower([]string{"bill", "share", "split"})

// BillSplitCategory is the ledger category of transfers created by the
// bill-split feature itself. Those never count as independent evidence.
const BillSplitCategory = "bill split"

// CorroboratedBy reports whether tx is an independent payment of this
// report's share: accused to reporter, after the bill date, for exactly the
// share, described as a bill payment and not itself a bill-split transfer.
func (r *BillSplitReport) CorroboratedBy(tx *LedgerTransaction) bool {
	return tx.SenderCNP == r.ReportedUserCNP &&
		tx.ReceiverCNP == r.ReportingUserCNP &&
		tx.CreatedAt.After(r.DateOfTransaction) &&
		tx.Amount.Equal(r.BillShare) &&
		textutil.ContainsAnyFold(tx.Description, CorroborationKeywords) &&
		!textutil.EqualFoldTrim(tx.Category, BillSplitCategory)
}
