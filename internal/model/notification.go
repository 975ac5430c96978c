package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationList []Notification

type Notification struct {
	ID        int64      `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"user_id"`
	Message   string     `db:"message" json:"message"`
	SentAt    time.Time  `db:"sent_at" json:"sent_at"`
	ReadAt    *time.Time `db:"read_at" json:"read_at,omitempty"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// NotificationEvent is the kafka payload produced on message creation and
// consumed by the notification worker.
type NotificationEvent struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}
