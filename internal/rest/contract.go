//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobdesk/messaging-service/internal/api"
	"github.com/jobdesk/messaging-service/internal/model"
)

type DBRepo interface {
	GetUserBySlug(ctx context.Context, slug string) (*model.User, error)
	GetEntityBySlug(ctx context.Context, slug string) (*model.Entity, error)

	GetMessage(ctx context.Context, messageID int64) (*model.Message, error)
	CreateMessage(ctx context.Context, message *model.Message) (int64, error)
	PromoteThreadRoot(ctx context.Context, messageID int64) error
	GetFolderMessages(ctx context.Context, q model.FolderQuery) (model.MessageList, error)
	GetThreadMessages(ctx context.Context, subscriber model.ActorRef, threadID int64) (model.MessageList, error)
	SetRead(ctx context.Context, subscriber model.ActorRef, threadID int64) error
	SetArchived(ctx context.Context, subscriber model.ActorRef, threadID int64, archived bool) error
	SetDeleted(ctx context.Context, subscriber model.ActorRef, threadID int64) error
	RestoreDeleted(ctx context.Context, subscriber model.ActorRef, threadID int64) error
	CountUnread(ctx context.Context, subscriber model.ActorRef) (int64, error)

	GetNotifications(ctx context.Context, userID uuid.UUID) (model.NotificationList, error)
	CountUnreadNotifications(ctx context.Context, userID uuid.UUID) (int64, error)
	SetNotificationRead(ctx context.Context, userID uuid.UUID, notificationID int64) error
	SetNotificationDeleted(ctx context.Context, userID uuid.UUID, notificationID int64) error

	UpsertAttachment(ctx context.Context, attachment *model.MessageAttachment) error
	GetAttachment(ctx context.Context, userID uuid.UUID) (*model.MessageAttachment, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type PermissionGate interface {
	CheckCompose(ctx context.Context, actor model.ActorRef, entityID uuid.UUID, appType string) error
	AllowedAppTypes(ctx context.Context, actor model.ActorRef, entityID uuid.UUID) ([]string, error)
}

type EmailClient interface {
	Send(ctx context.Context, letter model.EmailLetter) error
}

type NotificationProducer interface {
	ProduceMessage(ctx context.Context, message interface{}, key interface{}) error
}

type Validator interface {
	ValidateCompose(req *api.ComposeMessageRequest) error
	ValidateReply(req *api.ReplyMessageRequest) error
	ValidateAttachment(req *api.UploadAttachmentRequest) error
}
