package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/jobdesk/messaging-service/internal/api"
	"github.com/jobdesk/messaging-service/internal/config"
	"github.com/jobdesk/messaging-service/internal/model"
)

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetNotifications")

	subscriber, ok := h.userFromContext(r)
	if !ok {
		logger.Error("failed to get user actor")
		h.writeError(w, "failed to get user actor", http.StatusInternalServerError)
		return
	}

	notifications, err := h.repository.GetNotifications(r.Context(), subscriber.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get notifications: %v", err))
		h.writeError(w, "failed to get notifications", http.StatusInternalServerError)
		return
	}

	apiNotifications := make([]api.Notification, len(notifications))
	for i, notification := range notifications {
		var readAt *string
		if notification.ReadAt != nil {
			timestamp := notification.ReadAt.Format(time.RFC3339)
			readAt = &timestamp
		}

		apiNotifications[i] = api.Notification{
			ID:      notification.ID,
			Message: notification.Message,
			SentAt:  notification.SentAt.Format(time.RFC3339),
			ReadAt:  readAt,
		}
	}

	response := api.GetNotificationsResponse{
		Notifications: apiNotifications,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetNotificationsUnreadCount(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetNotificationsUnreadCount")

	subscriber, ok := h.userFromContext(r)
	if !ok {
		logger.Error("failed to get user actor")
		h.writeError(w, "failed to get user actor", http.StatusInternalServerError)
		return
	}

	count, err := h.repository.CountUnreadNotifications(r.Context(), subscriber.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count unread notifications: %v", err))
		h.writeError(w, "failed to count unread notifications", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.UnreadCountResponse{Count: count}, http.StatusOK)
}

func (h *Handler) ReadNotification(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ReadNotification")

	h.notificationAction(w, r, logger, h.repository.SetNotificationRead)
}

func (h *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteNotification")

	h.notificationAction(w, r, logger, h.repository.SetNotificationDeleted)
}

func (h *Handler) notificationAction(
	w http.ResponseWriter,
	r *http.Request,
	logger logger_lib.LoggerInterface,
	action func(ctx context.Context, userID uuid.UUID, notificationID int64) error,
) {
	subscriber, ok := h.userFromContext(r)
	if !ok {
		logger.Error("failed to get user actor")
		h.writeError(w, "failed to get user actor", http.StatusInternalServerError)
		return
	}

	notificationID, err := parseID(chi.URLParam(r, "notification_id"))
	if err != nil {
		h.writeError(w, "invalid notification id", http.StatusBadRequest)
		return
	}

	if err := action(r.Context(), subscriber.ID, notificationID); err != nil {
		logger.Error(fmt.Sprintf("failed to apply notification action: %v", err))
		h.writeError(w, "failed to apply notification action", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UploadAttachment(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UploadAttachment")

	subscriber, ok := h.userFromContext(r)
	if !ok {
		logger.Error("failed to get user actor")
		h.writeError(w, "failed to get user actor", http.StatusInternalServerError)
		return
	}

	var req api.UploadAttachmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateAttachment(&req); err != nil {
		logger.Error(fmt.Sprintf("attachment validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("attachment validation failed: %v", err), http.StatusBadRequest)
		return
	}

	attachment := model.MessageAttachment{
		UserID:     subscriber.ID,
		FileName:   req.FileName,
		StoredName: req.StoredName,
	}

	if err := h.repository.UpsertAttachment(r.Context(), &attachment); err != nil {
		logger.Error(fmt.Sprintf("failed to save attachment: %v", err))
		h.writeError(w, "failed to save attachment", http.StatusInternalServerError)
		return
	}

	response := api.UploadAttachmentResponse{
		FileName:   attachment.FileName,
		UploadedAt: time.Now().Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetAttachment(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetAttachment")

	subscriber, ok := h.userFromContext(r)
	if !ok {
		logger.Error("failed to get user actor")
		h.writeError(w, "failed to get user actor", http.StatusInternalServerError)
		return
	}

	attachment, err := h.repository.GetAttachment(r.Context(), subscriber.ID)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	response := api.GetAttachmentResponse{
		FileName:   attachment.FileName,
		StoredName: attachment.StoredName,
		UploadedAt: attachment.UploadedAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}
