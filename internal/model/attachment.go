package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageAttachment keeps one current file reference per owning user;
// re-uploads replace the previous row.
type MessageAttachment struct {
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	FileName   string    `db:"file_name" json:"file_name"`
	StoredName string    `db:"stored_name" json:"stored_name"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploaded_at"`
}
