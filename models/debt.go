// models/debt.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Debt is one party's view of a bilateral obligation. Every debt exists as
// two mirrored rows (one per participant) sharing a PairID: the creditor's
// row carries the amount in AmountReceivable, the debtor's in AmountPayable.
type Debt struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	PairID uuid.UUID `gorm:"type:uuid;index;not null" json:"pair_id"`

	OwnerID    uint `gorm:"index;not null" json:"owner_id"` // whose perspective this row is
	CreditorID uint `gorm:"index;not null" json:"creditor_id"`
	DebtorID   uint `gorm:"index;not null" json:"debtor_id"`

	AmountReceivable decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"amount_receivable"`
	AmountPayable    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"amount_payable"`

	Description string `gorm:"size:255" json:"description"`
	GroupID     *uint  `gorm:"index" json:"group_id,omitempty"`

	IsSettled bool       `gorm:"not null;default:false;index" json:"is_settled"`
	PayDate   *time.Time `json:"pay_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
