package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"borccu-api/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuildDebtPair_Lent(t *testing.T) {
	// user 1 reports "I lent 50 to user 2"
	fromActor, fromCounterparty, err := BuildDebtPair(1, 2, dec("50"), ActorLent, "lunch", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fromActor.CreditorID != 1 || fromActor.DebtorID != 2 {
		t.Errorf("actor row creditor/debtor = %d/%d, want 1/2", fromActor.CreditorID, fromActor.DebtorID)
	}
	if fromCounterparty.CreditorID != 1 || fromCounterparty.DebtorID != 2 {
		t.Errorf("counterparty row creditor/debtor = %d/%d, want 1/2", fromCounterparty.CreditorID, fromCounterparty.DebtorID)
	}
	if !fromActor.AmountReceivable.Equal(dec("50")) || !fromActor.AmountPayable.IsZero() {
		t.Errorf("actor row amounts = %s/%s, want 50/0", fromActor.AmountReceivable, fromActor.AmountPayable)
	}
	if !fromCounterparty.AmountPayable.Equal(dec("50")) || !fromCounterparty.AmountReceivable.IsZero() {
		t.Errorf("counterparty row amounts = %s/%s, want 0/50", fromCounterparty.AmountReceivable, fromCounterparty.AmountPayable)
	}
	if fromActor.OwnerID != 1 || fromCounterparty.OwnerID != 2 {
		t.Errorf("owners = %d/%d, want 1/2", fromActor.OwnerID, fromCounterparty.OwnerID)
	}
}

func TestBuildDebtPair_Borrowed(t *testing.T) {
	fromActor, fromCounterparty, err := BuildDebtPair(7, 9, dec("12.50"), ActorBorrowed, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fromActor.CreditorID != 9 || fromActor.DebtorID != 7 {
		t.Errorf("actor row creditor/debtor = %d/%d, want 9/7", fromActor.CreditorID, fromActor.DebtorID)
	}
	if !fromActor.AmountPayable.Equal(dec("12.50")) || !fromActor.AmountReceivable.IsZero() {
		t.Errorf("actor row amounts = %s/%s, want 0/12.50", fromActor.AmountReceivable, fromActor.AmountPayable)
	}
	if !fromCounterparty.AmountReceivable.Equal(dec("12.50")) || !fromCounterparty.AmountPayable.IsZero() {
		t.Errorf("counterparty row amounts = %s/%s, want 12.50/0", fromCounterparty.AmountReceivable, fromCounterparty.AmountPayable)
	}
}

func TestBuildDebtPair_Complementary(t *testing.T) {
	// each payload carries the full amount on exactly one side
	amounts := []string{"0.01", "1", "33.33", "12000.99"}
	for _, a := range amounts {
		for _, dir := range []DebtDirection{ActorBorrowed, ActorLent} {
			fromActor, fromCounterparty, err := BuildDebtPair(1, 2, dec(a), dir, "", nil)
			if err != nil {
				t.Fatalf("amount %s dir %s: %v", a, dir, err)
			}
			for name, p := range map[string]DebtPayload{"actor": fromActor, "counterparty": fromCounterparty} {
				total := p.AmountReceivable.Add(p.AmountPayable)
				if !total.Equal(dec(a)) {
					t.Errorf("%s payload for %s/%s sums to %s", name, a, dir, total)
				}
				if p.AmountReceivable.IsPositive() && p.AmountPayable.IsPositive() {
					t.Errorf("%s payload for %s/%s has both sides nonzero", name, a, dir)
				}
			}
		}
	}
}

func TestBuildDebtPair_Validation(t *testing.T) {
	tests := []struct {
		name         string
		actor        uint
		counterparty uint
		amount       decimal.Decimal
		wantErr      error
	}{
		{"zero amount", 1, 2, decimal.Zero, ErrInvalidAmount},
		{"negative amount", 1, 2, dec("-5"), ErrInvalidAmount},
		{"self reference", 3, 3, dec("10"), ErrSelfReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := BuildDebtPair(tt.actor, tt.counterparty, tt.amount, ActorLent, "", nil)
			if err != tt.wantErr {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSummarizeBalances(t *testing.T) {
	debts := []models.Debt{
		{ID: 1, OwnerID: 1, CreditorID: 1, DebtorID: 2, AmountReceivable: dec("50")},
		{ID: 2, OwnerID: 1, CreditorID: 3, DebtorID: 1, AmountPayable: dec("20")},
		{ID: 3, OwnerID: 1, CreditorID: 1, DebtorID: 4, AmountReceivable: dec("30"), IsSettled: true},
		{ID: 4, OwnerID: 1, CreditorID: 1, DebtorID: 5}, // degenerate, both zero
		{ID: 5, OwnerID: 1, CreditorID: 6, DebtorID: 1, AmountPayable: dec("5.25")},
	}

	sum := SummarizeBalances(1, debts)

	if !sum.WillReceive.Equal(dec("50")) {
		t.Errorf("WillReceive = %s, want 50", sum.WillReceive)
	}
	if !sum.WillGive.Equal(dec("25.25")) {
		t.Errorf("WillGive = %s, want 25.25", sum.WillGive)
	}
	if len(sum.Items) != 3 {
		t.Fatalf("items = %d, want 3 (settled and degenerate rows excluded)", len(sum.Items))
	}

	// input order preserved
	if sum.Items[0].DebtID != 1 || sum.Items[1].DebtID != 2 || sum.Items[2].DebtID != 5 {
		t.Errorf("item order = %d,%d,%d", sum.Items[0].DebtID, sum.Items[1].DebtID, sum.Items[2].DebtID)
	}
	if sum.Items[0].Kind != WillReceive || sum.Items[0].CounterpartyID != 2 {
		t.Errorf("item 0 = %+v", sum.Items[0])
	}
	if sum.Items[1].Kind != WillGive || sum.Items[1].CounterpartyID != 3 {
		t.Errorf("item 1 = %+v", sum.Items[1])
	}
}

func TestSummarizeBalances_Idempotent(t *testing.T) {
	debts := []models.Debt{
		{ID: 1, OwnerID: 1, CreditorID: 1, DebtorID: 2, AmountReceivable: dec("10")},
		{ID: 2, OwnerID: 1, CreditorID: 2, DebtorID: 1, AmountPayable: dec("4")},
	}

	first := SummarizeBalances(1, debts)
	second := SummarizeBalances(1, debts)

	if !first.WillReceive.Equal(second.WillReceive) || !first.WillGive.Equal(second.WillGive) {
		t.Errorf("repeated aggregation differs: %s/%s vs %s/%s",
			first.WillReceive, first.WillGive, second.WillReceive, second.WillGive)
	}
	if len(first.Items) != len(second.Items) {
		t.Errorf("item counts differ: %d vs %d", len(first.Items), len(second.Items))
	}
}

func TestSummarizeBalances_Empty(t *testing.T) {
	sum := SummarizeBalances(1, nil)
	if !sum.WillReceive.IsZero() || !sum.WillGive.IsZero() {
		t.Errorf("empty input sums = %s/%s, want 0/0", sum.WillReceive, sum.WillGive)
	}
	if len(sum.Items) != 0 {
		t.Errorf("empty input items = %d", len(sum.Items))
	}
}
