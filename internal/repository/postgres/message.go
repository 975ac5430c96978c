package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jobdesk/messaging-service/internal/model"
)

var messageColumns = []string{
	"id",
	"subject",
	"body",
	"topic",
	"app_type",
	"sender_kind",
	"sender_id",
	"sender_name",
	"recipient_kind",
	"recipient_id",
	"recipient_name",
	"parent_id",
	"thread_id",
	"sent_at",
	"read_at",
	"replied_at",
	"sender_archived",
	"recipient_archived",
	"sender_deleted_at",
	"recipient_deleted_at",
}

func recipientIs(subscriber model.ActorRef) sq.Eq {
	return sq.Eq{"recipient_kind": subscriber.Kind, "recipient_id": subscriber.ID}
}

func senderIs(subscriber model.ActorRef) sq.Eq {
	return sq.Eq{"sender_kind": subscriber.Kind, "sender_id": subscriber.ID}
}

// folderConditions builds the per-party visibility predicate for a folder.
// A delete timestamp outranks the archive flag: trash matches deleted rows
// regardless of the archive state, archives only non-deleted archived rows.
func folderConditions(q model.FolderQuery) (sq.Sqlizer, error) {
	switch q.Folder {
	case model.FolderInbox:
		return sq.And{
			recipientIs(q.Subscriber),
			sq.Eq{"recipient_archived": false, "recipient_deleted_at": nil},
		}, nil
	case model.FolderSent:
		return sq.And{
			senderIs(q.Subscriber),
			sq.Eq{"sender_archived": false, "sender_deleted_at": nil},
		}, nil
	case model.FolderArchives:
		return sq.Or{
			sq.And{recipientIs(q.Subscriber), sq.Eq{"recipient_archived": true, "recipient_deleted_at": nil}},
			sq.And{senderIs(q.Subscriber), sq.Eq{"sender_archived": true, "sender_deleted_at": nil}},
		}, nil
	case model.FolderTrash:
		return sq.Or{
			sq.And{recipientIs(q.Subscriber), sq.NotEq{"recipient_deleted_at": nil}},
			sq.And{senderIs(q.Subscriber), sq.NotEq{"sender_deleted_at": nil}},
		}, nil
	default:
		return nil, model.NewNotFound(fmt.Sprintf("unknown folder %q", q.Folder))
	}
}

func (r *Repository) GetFolderMessages(ctx context.Context, q model.FolderQuery) (model.MessageList, error) {
	conditions, err := folderConditions(q)
	if err != nil {
		return nil, err
	}

	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(conditions).
		OrderBy("sent_at DESC", "id DESC")

	if len(q.AppTypes) > 0 {
		queryBuilder = queryBuilder.Where(sq.Eq{"app_type": q.AppTypes})
	}

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		queryBuilder = queryBuilder.Where(sq.Or{
			sq.ILike{"subject": pattern},
			sq.ILike{"body": pattern},
			sq.ILike{"sender_name": pattern},
			sq.ILike{"recipient_name": pattern},
		})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *Repository) GetThreadMessages(ctx context.Context, subscriber model.ActorRef, threadID int64) (model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"thread_id": threadID}).
		Where(sq.Or{recipientIs(subscriber), senderIs(subscriber)}).
		OrderBy("sent_at ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *Repository) GetMessage(ctx context.Context, messageID int64) (*model.Message, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"id": messageID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewNotFound(fmt.Sprintf("message %d not found", messageID))
	}
	if err != nil {
		return nil, err
	}

	return &message, nil
}

func (r *Repository) CreateMessage(ctx context.Context, message *model.Message) (int64, error) {
	query, args, err := sq.Insert("messages").
		Columns(
			"subject", "body", "topic", "app_type",
			"sender_kind", "sender_id", "sender_name",
			"recipient_kind", "recipient_id", "recipient_name",
			"parent_id", "thread_id",
		).
		Values(
			message.Subject, message.Body, message.Topic, message.AppType,
			message.SenderKind, message.SenderID, message.SenderName,
			message.RecipientKind, message.RecipientID, message.RecipientName,
			message.ParentID, message.ThreadID,
		).
		Suffix("RETURNING id, sent_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var created struct {
		ID     int64        `db:"id"`
		SentAt sql.NullTime `db:"sent_at"`
	}
	err = r.Chk(ctx).GetContext(ctx, &created, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to save message: %v", err)
	}

	message.ID = created.ID
	if created.SentAt.Valid {
		message.SentAt = created.SentAt.Time
	}

	return created.ID, nil
}

func promoteThreadRootUpdate(messageID int64) sq.UpdateBuilder {
	return sq.Update("messages").
		Set("thread_id", sq.Expr("id")).
		Where(sq.Eq{"id": messageID, "thread_id": nil})
}

// PromoteThreadRoot sets a message as its own thread root. The thread_id
// guard makes the promotion safe under two simultaneous first replies: only
// one update matches.
func (r *Repository) PromoteThreadRoot(ctx context.Context, messageID int64) error {
	query, args, err := promoteThreadRootUpdate(messageID).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to promote thread root: %v", err)
	}

	return nil
}

func setReadUpdate(subscriber model.ActorRef, threadID int64) sq.UpdateBuilder {
	return sq.Update("messages").
		Set("read_at", sq.Expr("now()")).
		Where(sq.Eq{"thread_id": threadID, "read_at": nil}).
		Where(recipientIs(subscriber))
}

// SetRead marks the subscriber's unread messages in the thread as read.
// The read_at guard keeps the update idempotent.
func (r *Repository) SetRead(ctx context.Context, subscriber model.ActorRef, threadID int64) error {
	query, args, err := setReadUpdate(subscriber, threadID).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark thread read: %v", err)
	}

	return nil
}

func setArchivedUpdates(subscriber model.ActorRef, threadID int64, archived bool) (sq.UpdateBuilder, sq.UpdateBuilder) {
	recipientSide := sq.Update("messages").
		Set("recipient_archived", archived).
		Where(sq.Eq{"thread_id": threadID}).
		Where(recipientIs(subscriber))

	senderSide := sq.Update("messages").
		Set("sender_archived", archived).
		Where(sq.Eq{"thread_id": threadID}).
		Where(senderIs(subscriber))

	return recipientSide, senderSide
}

// SetArchived flips the archive flag on every row in the thread where the
// subscriber occupies that party role, recipient side and sender side
// independently.
func (r *Repository) SetArchived(ctx context.Context, subscriber model.ActorRef, threadID int64, archived bool) error {
	recipientSide, senderSide := setArchivedUpdates(subscriber, threadID, archived)
	return r.execBoth(ctx, recipientSide, senderSide)
}

func setDeletedUpdates(subscriber model.ActorRef, threadID int64) (sq.UpdateBuilder, sq.UpdateBuilder) {
	recipientSide := sq.Update("messages").
		Set("recipient_deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"thread_id": threadID, "recipient_deleted_at": nil}).
		Where(recipientIs(subscriber))

	senderSide := sq.Update("messages").
		Set("sender_deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"thread_id": threadID, "sender_deleted_at": nil}).
		Where(senderIs(subscriber))

	return recipientSide, senderSide
}

// SetDeleted stamps the subscriber's rows deleted. The archive flag is left
// as is: the delete timestamp supersedes it for folder placement, and a
// later restore clears both.
func (r *Repository) SetDeleted(ctx context.Context, subscriber model.ActorRef, threadID int64) error {
	recipientSide, senderSide := setDeletedUpdates(subscriber, threadID)
	return r.execBoth(ctx, recipientSide, senderSide)
}

func restoreDeletedUpdates(subscriber model.ActorRef, threadID int64) (sq.UpdateBuilder, sq.UpdateBuilder) {
	recipientSide := sq.Update("messages").
		Set("recipient_deleted_at", nil).
		Set("recipient_archived", false).
		Where(sq.Eq{"thread_id": threadID}).
		Where(recipientIs(subscriber))

	senderSide := sq.Update("messages").
		Set("sender_deleted_at", nil).
		Set("sender_archived", false).
		Where(sq.Eq{"thread_id": threadID}).
		Where(senderIs(subscriber))

	return recipientSide, senderSide
}

// RestoreDeleted returns the subscriber's rows to the active state, clearing
// the archive flag along with the delete timestamp.
func (r *Repository) RestoreDeleted(ctx context.Context, subscriber model.ActorRef, threadID int64) error {
	recipientSide, senderSide := restoreDeletedUpdates(subscriber, threadID)
	return r.execBoth(ctx, recipientSide, senderSide)
}

func (r *Repository) execBoth(ctx context.Context, recipientSide, senderSide sq.UpdateBuilder) error {
	for _, builder := range []sq.UpdateBuilder{recipientSide, senderSide} {
		query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	return nil
}

func countUnreadSelect(subscriber model.ActorRef) sq.SelectBuilder {
	return sq.Select("COUNT(*)").
		From("messages").
		Where(recipientIs(subscriber)).
		Where(sq.Eq{"read_at": nil, "recipient_archived": false, "recipient_deleted_at": nil})
}

// CountUnread counts the subscriber's unread inbox rows. Archived and
// deleted rows are excluded so the badge matches what the inbox shows.
func (r *Repository) CountUnread(ctx context.Context, subscriber model.ActorRef) (int64, error) {
	query, args, err := countUnreadSelect(subscriber).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var count int64
	err = r.Chk(ctx).GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %v", err)
	}

	return count, nil
}
