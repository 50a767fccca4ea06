// service/split.go
package service

import (
	"github.com/shopspring/decimal"

	"borccu-api/models"
)

// shareTolerance is the maximum absolute difference accepted between a
// declared group total and the sum of its per-member shares. Equal splits
// round to 2 decimal places, so 100.00 over 3 people yields 33.33 each and
// a 0.01 remainder that must not be flagged.
var shareTolerance = decimal.NewFromFloat(0.01)

// EqualSplit divides total evenly over participants, rounded to cents.
func EqualSplit(total decimal.Decimal, participants int) (decimal.Decimal, error) {
	if participants <= 0 {
		return decimal.Zero, ErrNoParticipants
	}
	if !total.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return total.Div(decimal.NewFromInt(int64(participants))).Round(2), nil
}

// ValidateShareTotal checks an entered per-member sum against the declared
// group total. A mismatch beyond the tolerance returns
// ErrReconciliationMismatch; it is advisory, callers may confirm and proceed.
func ValidateShareTotal(entered, declared decimal.Decimal) error {
	if entered.Sub(declared).Abs().GreaterThan(shareTolerance) {
		return ErrReconciliationMismatch
	}
	return nil
}

// ValidateMemberShares checks a share list before it is written: no share
// may be negative, and the group creator never owes into their own pool.
func ValidateMemberShares(creatorID uint, members []models.GroupMember) error {
	for _, m := range members {
		if m.AmountOwed.IsNegative() {
			return ErrNegativeShare
		}
		if m.UserID == creatorID && m.AmountOwed.IsPositive() {
			return ErrCreatorShare
		}
	}
	return nil
}

// GroupProgress is the recomputed-on-read state of a group's ledger. There
// is no stored group total; it is always the sum of member shares.
type GroupProgress struct {
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	PendingAmount     decimal.Decimal `json:"pending_amount"`
	CompletionPercent int             `json:"completion_percent"`
}

// Progress aggregates the paid/pending totals of a member list.
// CompletionPercent is 0 for an empty or zero-total group.
func Progress(members []models.GroupMember) GroupProgress {
	p := GroupProgress{
		TotalAmount:   decimal.Zero,
		PaidAmount:    decimal.Zero,
		PendingAmount: decimal.Zero,
	}
	for _, m := range members {
		p.TotalAmount = p.TotalAmount.Add(m.AmountOwed)
		if m.IsPaid {
			p.PaidAmount = p.PaidAmount.Add(m.AmountOwed)
		}
	}
	p.PendingAmount = p.TotalAmount.Sub(p.PaidAmount)
	if p.TotalAmount.IsPositive() {
		pct := p.PaidAmount.Div(p.TotalAmount).Mul(decimal.NewFromInt(100)).Round(0)
		p.CompletionPercent = int(pct.IntPart())
	}
	return p
}
