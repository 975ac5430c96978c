package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/jobdesk/messaging-service/internal/model"
)

func (r *Repository) CreateNotification(ctx context.Context, notification *model.Notification) error {
	query, args, err := sq.Insert("notifications").
		Columns("user_id", "message").
		Values(notification.UserID, notification.Message).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save notification: %v", err)
	}

	return nil
}

func (r *Repository) GetNotifications(ctx context.Context, userID uuid.UUID) (model.NotificationList, error) {
	query, args, err := sq.Select("id", "user_id", "message", "sent_at", "read_at", "deleted_at").
		From("notifications").
		Where(sq.Eq{"user_id": userID, "deleted_at": nil}).
		OrderBy("sent_at DESC", "id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var notifications model.NotificationList
	err = r.Chk(ctx).SelectContext(ctx, &notifications, query, args...)
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *Repository) CountUnreadNotifications(ctx context.Context, userID uuid.UUID) (int64, error) {
	query, args, err := sq.Select("COUNT(*)").
		From("notifications").
		Where(sq.Eq{"user_id": userID, "read_at": nil, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	err = r.Chk(ctx).GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %v", err)
	}

	return count, nil
}

func (r *Repository) SetNotificationRead(ctx context.Context, userID uuid.UUID, notificationID int64) error {
	query, args, err := sq.Update("notifications").
		Set("read_at", sq.Expr("now()")).
		Where(sq.Eq{"id": notificationID, "user_id": userID, "read_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %v", err)
	}

	return nil
}

func (r *Repository) SetNotificationDeleted(ctx context.Context, userID uuid.UUID, notificationID int64) error {
	query, args, err := sq.Update("notifications").
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": notificationID, "user_id": userID, "deleted_at": nil}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %v", err)
	}

	return nil
}
