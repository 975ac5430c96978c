package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/jobdesk/messaging-service/internal/config"
	"github.com/jobdesk/messaging-service/internal/model"
)

type DBRepo interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
}

// Handler consumes notification events from the feed topic and persists
// them as feed rows.
type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("NotificationHandler")

	var event model.NotificationEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to decode notification event: %v", err))
		return fmt.Errorf("failed to decode notification event: %w", err)
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid user id in notification event: %v", err))
		return fmt.Errorf("invalid user id in notification event: %w", err)
	}

	notification := model.Notification{
		UserID:  userID,
		Message: event.Message,
	}

	if err := h.repository.CreateNotification(ctx, &notification); err != nil {
		logger.Error(fmt.Sprintf("failed to save notification: %v", err))
		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}
