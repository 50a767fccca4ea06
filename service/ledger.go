// service/ledger.go
package service

import (
	"time"

	"github.com/shopspring/decimal"

	"borccu-api/models"
)

// ===== Dual-entry debt builder =====

// DebtDirection says which way the money moved, from the reporting user's
// point of view.
type DebtDirection string

const (
	ActorBorrowed DebtDirection = "borrowed" // actor owes the counterparty
	ActorLent     DebtDirection = "lent"     // counterparty owes the actor
)

// DebtPayload is one side of a debt pair, ready to be persisted as a row
// owned by OwnerID. Exactly one of AmountReceivable/AmountPayable is nonzero.
type DebtPayload struct {
	OwnerID          uint
	CreditorID       uint
	DebtorID         uint
	AmountReceivable decimal.Decimal
	AmountPayable    decimal.Decimal
	Description      string
	PayDate          *time.Time
}

// BuildDebtPair turns a single reported debt action into the two mirrored
// payloads of the dual-entry model. Both payloads name the same creditor and
// debtor; only the perspective amounts differ, and they are complementary.
func BuildDebtPair(actorID, counterpartyID uint, amount decimal.Decimal, dir DebtDirection, description string, payDate *time.Time) (fromActor, fromCounterparty DebtPayload, err error) {
	if !amount.IsPositive() {
		return DebtPayload{}, DebtPayload{}, ErrInvalidAmount
	}
	if actorID == counterpartyID {
		return DebtPayload{}, DebtPayload{}, ErrSelfReference
	}

	creditorID, debtorID := actorID, counterpartyID
	if dir == ActorBorrowed {
		creditorID, debtorID = counterpartyID, actorID
	}

	fromActor = DebtPayload{
		OwnerID:     actorID,
		CreditorID:  creditorID,
		DebtorID:    debtorID,
		Description: description,
		PayDate:     payDate,
	}
	fromCounterparty = fromActor
	fromCounterparty.OwnerID = counterpartyID

	zero := decimal.Zero
	if dir == ActorBorrowed {
		fromActor.AmountPayable, fromActor.AmountReceivable = amount, zero
		fromCounterparty.AmountReceivable, fromCounterparty.AmountPayable = amount, zero
	} else {
		fromActor.AmountReceivable, fromActor.AmountPayable = amount, zero
		fromCounterparty.AmountPayable, fromCounterparty.AmountReceivable = amount, zero
	}
	return fromActor, fromCounterparty, nil
}

// ===== Balance aggregation =====

type BalanceKind string

const (
	WillReceive BalanceKind = "will_receive"
	WillGive    BalanceKind = "will_give"
)

// BalanceItem is one open debt flattened for display: the single nonzero
// perspective amount plus which side it sits on.
type BalanceItem struct {
	DebtID         uint            `json:"debt_id"`
	CounterpartyID uint            `json:"counterparty_id"`
	Amount         decimal.Decimal `json:"amount"`
	Kind           BalanceKind     `json:"kind"`
	Description    string          `json:"description"`
	PayDate        *time.Time      `json:"pay_date,omitempty"`
}

type BalanceSummary struct {
	WillReceive decimal.Decimal `json:"will_receive"`
	WillGive    decimal.Decimal `json:"will_give"`
	Items       []BalanceItem   `json:"items"`
}

// SummarizeBalances computes the headline receivable/payable totals over the
// user's open debts. Input rows must already be the user's own perspective
// rows. Settled rows are skipped; rows with both amounts zero count as zero
// in the sums and are left out of the item list. Input order is preserved.
func SummarizeBalances(userID uint, debts []models.Debt) BalanceSummary {
	sum := BalanceSummary{
		WillReceive: decimal.Zero,
		WillGive:    decimal.Zero,
		Items:       make([]BalanceItem, 0, len(debts)),
	}

	for _, d := range debts {
		if d.IsSettled {
			continue
		}

		item := BalanceItem{
			DebtID:      d.ID,
			Description: d.Description,
			PayDate:     d.PayDate,
		}
		switch {
		case d.CreditorID == userID && d.AmountReceivable.IsPositive():
			sum.WillReceive = sum.WillReceive.Add(d.AmountReceivable)
			item.Amount = d.AmountReceivable
			item.Kind = WillReceive
			item.CounterpartyID = d.DebtorID
		case d.DebtorID == userID && d.AmountPayable.IsPositive():
			sum.WillGive = sum.WillGive.Add(d.AmountPayable)
			item.Amount = d.AmountPayable
			item.Kind = WillGive
			item.CounterpartyID = d.CreditorID
		default:
			// degenerate row, nothing to show
			continue
		}
		sum.Items = append(sum.Items, item)
	}
	return sum
}
