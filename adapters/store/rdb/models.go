package rdb

import "time"

// RunRow is the RDB persistence model for domain RunRecord.
// Table name: runs
type RunRow struct {
	ID        string    `gorm:"primaryKey;type:text;not null"`
	Kind      string    `gorm:"type:text;not null"`
	Resource  string    `gorm:"type:text;not null"`
	Name      string    `gorm:"type:text"`
	Type      string    `gorm:"type:text"`
	Action    string    `gorm:"type:text;not null"`
	Changed   bool      `gorm:"not null"`
	CheckMode bool      `gorm:"not null"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

func (RunRow) TableName() string { return "runs" }
