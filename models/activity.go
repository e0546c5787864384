package models

import (
	"time"
)

// Activity actions. Every mutating document action is recorded,
// plus downloads.
const (
	ActionUpload       = "upload"
	ActionDownload     = "download"
	ActionEdit         = "edit"
	ActionDelete       = "delete"
	ActionStatusChange = "status-change"
)

// Activity is an append-only audit record. Rows are never updated
// or deleted by normal operation.
type Activity struct {
	ActivityID int       `gorm:"primaryKey;column:activity_id" json:"id"`
	Action     string    `gorm:"column:action" json:"action"`
	FileName   string    `gorm:"column:file_name" json:"fileName"`
	Actor      string    `gorm:"column:actor" json:"actor"`
	Timestamp  time.Time `gorm:"column:timestamp" json:"timestamp"`
}

func (Activity) TableName() string {
	return "activities"
}
