// models/friend_request.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type FriendRequestStatus string

const (
	FriendRequestPending   FriendRequestStatus = "pending"
	FriendRequestAccepted  FriendRequestStatus = "accepted"
	FriendRequestDeclined  FriendRequestStatus = "declined"
	FriendRequestCancelled FriendRequestStatus = "cancelled"
)

type FriendRequest struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	FromUserID uint                `gorm:"index;not null" json:"from_user_id"`
	ToUserID   uint                `gorm:"index;not null" json:"to_user_id"`
	Status     FriendRequestStatus `gorm:"size:20;not null;default:'pending'" json:"status"`

	From User `gorm:"foreignKey:FromUserID" json:"from,omitempty"`
	To   User `gorm:"foreignKey:ToUserID" json:"to,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

// Friendship is a confirmed edge between two users, stored once with
// UserAID < UserBID so the pair has a single canonical row.
type Friendship struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	UserAID uint `gorm:"uniqueIndex:idx_friend_pair;not null" json:"user_a_id"`
	UserBID uint `gorm:"uniqueIndex:idx_friend_pair;not null" json:"user_b_id"`

	CreatedAt time.Time `json:"created_at"`
}

func (f *Friendship) BeforeCreate(_ *gorm.DB) error {
	if f.UserAID > f.UserBID {
		f.UserAID, f.UserBID = f.UserBID, f.UserAID
	}
	return nil
}
