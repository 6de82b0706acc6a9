package rdb

import "time"

// CallRecord is the RDB persistence model for the call journal.
// Table name: calls
type CallRecord struct {
	ID         string    `gorm:"primaryKey;type:text;not null"`
	DatagramID string    `gorm:"type:text;index"`
	Pattern    string    `gorm:"type:text;not null;index"`
	Username   string    `gorm:"type:text"`
	Status     string    `gorm:"type:text;not null"`
	Message    string    `gorm:"type:text"`
	DurationMs int64     `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

func (CallRecord) TableName() string { return "calls" }
