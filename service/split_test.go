package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"borccu-api/models"
)

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name         string
		total        string
		participants int
		want         string
		wantErr      error
	}{
		{"round remainder", "100.00", 3, "33.33", nil},
		{"exact", "90.00", 3, "30", nil},
		{"two ways", "0.03", 2, "0.02", nil},
		{"single participant", "12.34", 1, "12.34", nil},
		{"zero participants", "100.00", 0, "", ErrNoParticipants},
		{"negative participants", "100.00", -2, "", ErrNoParticipants},
		{"zero total", "0", 3, "", ErrInvalidAmount},
		{"negative total", "-10", 3, "", ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EqualSplit(dec(tt.total), tt.participants)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && !got.Equal(dec(tt.want)) {
				t.Errorf("share = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValidateShareTotal(t *testing.T) {
	tests := []struct {
		name     string
		entered  string
		declared string
		wantErr  error
	}{
		{"exact match", "100.00", "100.00", nil},
		{"rounding remainder accepted", "99.99", "100.00", nil}, // 3x33.33 vs 100
		{"boundary 0.01 accepted", "100.01", "100.00", nil},
		{"0.02 rejected", "99.98", "100.00", ErrReconciliationMismatch},
		{"way off rejected", "90.00", "100.00", ErrReconciliationMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShareTotal(dec(tt.entered), dec(tt.declared))
			if err != tt.wantErr {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEqualSplit_ReconcilesWithinTolerance(t *testing.T) {
	// 100.00 over 3 people: shares sum to 99.99 and must still reconcile
	share, err := EqualSplit(dec("100.00"), 3)
	if err != nil {
		t.Fatal(err)
	}
	entered := share.Mul(decimal.NewFromInt(3))
	if !entered.Equal(dec("99.99")) {
		t.Fatalf("3 shares sum to %s, want 99.99", entered)
	}
	if err := ValidateShareTotal(entered, dec("100.00")); err != nil {
		t.Errorf("rounding remainder flagged as mismatch: %v", err)
	}
}

func TestValidateMemberShares(t *testing.T) {
	const creatorID = 7

	tests := []struct {
		name    string
		members []models.GroupMember
		wantErr error
	}{
		{"regular shares", []models.GroupMember{
			{UserID: 1, AmountOwed: dec("25")},
			{UserID: 2, AmountOwed: dec("25")},
		}, nil},
		{"creator at zero allowed", []models.GroupMember{
			{UserID: creatorID, AmountOwed: dec("0")},
			{UserID: 3, AmountOwed: dec("50")},
		}, nil},
		{"creator with nonzero share rejected", []models.GroupMember{
			{UserID: creatorID, AmountOwed: dec("50")},
		}, ErrCreatorShare},
		{"negative share rejected", []models.GroupMember{
			{UserID: 4, AmountOwed: dec("-1")},
		}, ErrNegativeShare},
		{"empty list", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMemberShares(creatorID, tt.members)
			if err != tt.wantErr {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMemberShares_CreatorCannotInflateProgress(t *testing.T) {
	// a share pushed onto the creator would count as instantly paid, faking
	// full completion; the validation must stop it before any write
	members := []models.GroupMember{{UserID: 7, AmountOwed: dec("50"), IsPaid: true}}
	if err := ValidateMemberShares(7, members); err != ErrCreatorShare {
		t.Fatalf("creator share passed validation: %v", err)
	}

	p := Progress(members)
	if p.CompletionPercent != 100 {
		t.Fatalf("precondition: unchecked creator share should read as %d%% complete", p.CompletionPercent)
	}
}

func TestProgress(t *testing.T) {
	members := []models.GroupMember{
		{AmountOwed: dec("30"), IsPaid: true},
		{AmountOwed: dec("70"), IsPaid: false},
	}
	p := Progress(members)

	if !p.TotalAmount.Equal(dec("100")) {
		t.Errorf("total = %s, want 100", p.TotalAmount)
	}
	if !p.PaidAmount.Equal(dec("30")) {
		t.Errorf("paid = %s, want 30", p.PaidAmount)
	}
	if !p.PendingAmount.Equal(dec("70")) {
		t.Errorf("pending = %s, want 70", p.PendingAmount)
	}
	if p.CompletionPercent != 30 {
		t.Errorf("completion = %d, want 30", p.CompletionPercent)
	}
}

func TestProgress_PaidPlusPendingEqualsTotal(t *testing.T) {
	lists := [][]models.GroupMember{
		{},
		{{AmountOwed: dec("0.01"), IsPaid: true}},
		{{AmountOwed: dec("33.33")}, {AmountOwed: dec("33.33"), IsPaid: true}, {AmountOwed: dec("33.34")}},
		{{AmountOwed: dec("10"), IsPaid: true}, {AmountOwed: dec("0")}},
	}
	for i, members := range lists {
		p := Progress(members)
		if !p.PaidAmount.Add(p.PendingAmount).Equal(p.TotalAmount) {
			t.Errorf("list %d: paid %s + pending %s != total %s", i, p.PaidAmount, p.PendingAmount, p.TotalAmount)
		}
	}
}

func TestProgress_Bounds(t *testing.T) {
	if p := Progress(nil); p.CompletionPercent != 0 {
		t.Errorf("empty group completion = %d, want 0", p.CompletionPercent)
	}

	zeroOnly := []models.GroupMember{{AmountOwed: decimal.Zero, IsPaid: true}}
	if p := Progress(zeroOnly); p.CompletionPercent != 0 {
		t.Errorf("zero-total completion = %d, want 0", p.CompletionPercent)
	}

	allPaid := []models.GroupMember{
		{AmountOwed: dec("25"), IsPaid: true},
		{AmountOwed: dec("75"), IsPaid: true},
	}
	if p := Progress(allPaid); p.CompletionPercent != 100 {
		t.Errorf("all-paid completion = %d, want 100", p.CompletionPercent)
	}
}
