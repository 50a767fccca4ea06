// models/notification.go
package models

import "time"

const (
	NotifDebtCreated    = "debt_created"
	NotifDebtSettled    = "debt_settled"
	NotifGroupAdded     = "group_added"
	NotifFriendRequest  = "friend_request"
	NotifFriendAccepted = "friend_accepted"
)

type Notification struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Type   string `gorm:"size:40;not null" json:"type"`
	Title  string `gorm:"size:180;not null" json:"title"`
	Body   string `gorm:"size:255" json:"body"`

	// optional reference to the record that produced the notification
	RefType string `gorm:"size:40" json:"ref_type,omitempty"`
	RefID   uint   `json:"ref_id,omitempty"`

	IsRead    bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
