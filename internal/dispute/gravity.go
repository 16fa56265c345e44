// Package dispute holds the pure scoring rules for bill-split disputes.
// Everything here is deterministic: no I/O, no clock, no randomness.
package dispute

import "github.com/shopspring/decimal"

var (
	factorCap        = decimal.NewFromInt(50)
	timeRampDays     = decimal.NewFromInt(20)
	amountRampSpan   = decimal.NewFromInt(999)
	one              = decimal.NewFromInt(1)
	ableToPayRate    = decimal.RequireFromString("0.10")
	goodHistoryRate  = decimal.RequireFromString("0.05")
	frequentRate     = decimal.RequireFromString("0.05")
	offenseRate      = decimal.RequireFromString("0.1")
	scorePenaltyRate = decimal.RequireFromString("0.2")
)

const (
	// GoodHistoryThreshold is the number of bill shares paid that counts as a
	// track record of compliance.
	GoodHistoryThreshold = 3
	// FrequentTransferThreshold is the number of transfers from the accused to
	// the reporter in the trailing window that counts as a regular relationship.
	FrequentTransferThreshold = 5
	// TransferWindowDays is the length of the trailing window for transfers.
	TransferWindowDays = 30
)

// Signals are the raw inputs gathered for one dispute.
type Signals struct {
	DaysOverdue       int             `json:"days_overdue"`
	BillShare         decimal.Decimal `json:"bill_share"`
	AbleToPay         bool            `json:"able_to_pay"`
	HasGoodHistory    bool            `json:"has_good_history"`
	FrequentTransfers bool            `json:"frequent_transfers"`
	OffenseCount      int             `json:"offense_count"`
	CurrentScore      int             `json:"current_score"`
}

// Assessment is the outcome of scoring a set of signals.
type Assessment struct {
	TimeFactor   decimal.Decimal `json:"time_factor"`
	AmountFactor decimal.Decimal `json:"amount_factor"`
	// Gravity is the final severity, including the offense aggravation.
	Gravity decimal.Decimal `json:"gravity"`
}

// Assess combines signals into a gravity. The percentage adjustments apply to
// the running value in a fixed order: ability to pay, good history, frequent
// transfers. The offense aggravation is added last.
func Assess(s Signals) Assessment {
	tf := TimeFactor(s.DaysOverdue)
	af := AmountFactor(s.BillShare)

	gravity := tf.Add(af)
	if s.AbleToPay {
		gravity = gravity.Add(gravity.Mul(ableToPayRate))
	}
	if s.HasGoodHistory {
		gravity = gravity.Sub(gravity.Mul(goodHistoryRate))
	}
	if s.FrequentTransfers {
		gravity = gravity.Sub(gravity.Mul(frequentRate))
	}
	if s.OffenseCount > 0 {
		gravity = gravity.Add(decimal.NewFromInt(int64(s.OffenseCount)).Mul(offenseRate).Floor())
	}

	return Assessment{TimeFactor: tf, AmountFactor: af, Gravity: gravity}
}

// TimeFactor ramps linearly from 0 at one day overdue to 50 at 21 days.
func TimeFactor(daysOverdue int) decimal.Decimal {
	d := max(0, daysOverdue-1)
	return decimal.Min(factorCap, decimal.NewFromInt(int64(d)).Mul(factorCap).Div(timeRampDays))
}

// AmountFactor ramps linearly from 0 at a share of 1 to 50 at a share of 1000.
func AmountFactor(billShare decimal.Decimal) decimal.Decimal {
	excess := decimal.Max(decimal.Zero, billShare.Sub(one))
	return decimal.Min(factorCap, excess.Mul(factorCap).Div(amountRampSpan))
}

// NewScore applies the assessment to a credit score. The result is never
// higher than current. No lower bound is applied.
func (a Assessment) NewScore(current int) int {
	penalty := a.Gravity.Mul(scorePenaltyRate)
	return int(decimal.NewFromInt(int64(current)).Sub(penalty).Floor().IntPart())
}

// Delta is the signed change NewScore applies to current. It is never positive.
func (a Assessment) Delta(current int) int {
	return a.NewScore(current) - current
}
