// models/group.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Group is a named pool of shared expense. There is no stored total: the
// group's liability is always the sum of its members' AmountOwed.
type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:180;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	CreatedBy   uint   `gorm:"index;not null" json:"created_by"`

	Members []GroupMember `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"members"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupMember is one user's share in a group. The creator is always a member
// with AmountOwed 0.
type GroupMember struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	GroupID uint `gorm:"uniqueIndex:idx_group_member;not null" json:"group_id"`
	UserID  uint `gorm:"uniqueIndex:idx_group_member;not null" json:"user_id"`

	AmountOwed decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"amount_owed"`
	IsPaid     bool            `gorm:"not null;default:false" json:"is_paid"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
