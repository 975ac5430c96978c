package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/jobdesk/messaging-service/internal/model"
)

func (r *Repository) UpsertAttachment(ctx context.Context, attachment *model.MessageAttachment) error {
	query, args, err := sq.Insert("message_attachments").
		Columns("user_id", "file_name", "stored_name").
		Values(attachment.UserID, attachment.FileName, attachment.StoredName).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET file_name = EXCLUDED.file_name, stored_name = EXCLUDED.stored_name, uploaded_at = now()").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save attachment: %v", err)
	}

	return nil
}

func (r *Repository) GetAttachment(ctx context.Context, userID uuid.UUID) (*model.MessageAttachment, error) {
	query, args, err := sq.Select("user_id", "file_name", "stored_name", "uploaded_at").
		From("message_attachments").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var attachment model.MessageAttachment
	err = r.Chk(ctx).GetContext(ctx, &attachment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewNotFound("attachment not found")
	}
	if err != nil {
		return nil, err
	}

	return &attachment, nil
}
