package models

import "time"

type User struct {
	ID           uint       `gorm:"primaryKey"              json:"id"`
	Email        string     `gorm:"uniqueIndex;size:180"    json:"email"`
	FullName     string     `gorm:"size:180"                json:"full_name"`
	Phone        string     `gorm:"size:60"                 json:"phone"`
	AvatarURL    string     `gorm:"size:255"                json:"avatar_url"`
	TrustScore   float64    `gorm:"not null;default:0"      json:"trust_score"` // 0..5
	PasswordHash string     `gorm:"size:255"                json:"-"`
	IsActive     bool       `gorm:"default:true"            json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
