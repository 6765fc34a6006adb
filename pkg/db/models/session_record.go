package models

import "time"

// SessionRecord persists the auth token and the cached user profile. The
// store keeps a single row.
type SessionRecord struct {
	ID        int       `gorm:"column:id;primaryKey"`
	Token     string    `gorm:"column:token;not null"`
	User      *User     `gorm:"column:user_payload;type:text;serializer:json"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (SessionRecord) TableName() string {
	return "session_records"
}
