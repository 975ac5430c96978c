package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/jobdesk/messaging-service/internal/api"
	"github.com/jobdesk/messaging-service/internal/config"
	"github.com/jobdesk/messaging-service/internal/model"
	"github.com/jobdesk/messaging-service/internal/pkg/thread"
	"github.com/jobdesk/messaging-service/internal/pkg/tx"
)

func (h *Handler) GetUserMailbox(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUserMailbox")

	subscriber, ok := h.userFromContext(r)
	if !ok {
		logger.Error("failed to get user actor")
		h.writeError(w, "failed to get user actor", http.StatusInternalServerError)
		return
	}

	h.renderFolder(w, r, logger, subscriber, nil)
}

func (h *Handler) GetEntityMailbox(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetEntityMailbox")

	subscriber, appTypes, err := h.entityScope(r)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	h.renderFolder(w, r, logger, subscriber, appTypes)
}

// renderFolder runs the raw folder query and collapses it to one row per
// conversation for the list screen.
func (h *Handler) renderFolder(
	w http.ResponseWriter,
	r *http.Request,
	logger logger_lib.LoggerInterface,
	subscriber model.ActorRef,
	appTypes []string,
) {
	query := model.FolderQuery{
		Subscriber: subscriber,
		Folder:     chi.URLParam(r, "folder"),
		AppTypes:   appTypes,
		Search:     r.URL.Query().Get("q"),
	}

	messages, err := h.repository.GetFolderMessages(r.Context(), query)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	collapsed := thread.CollapseLatest(messages)

	response := api.GetFolderResponse{
		Messages: toAPIMessages(collapsed),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetUserThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUserThread")

	subscriber, ok := h.userFromContext(r)
	if !ok {
		logger.Error("failed to get user actor")
		h.writeError(w, "failed to get user actor", http.StatusInternalServerError)
		return
	}

	h.renderThread(w, r, logger, subscriber)
}

func (h *Handler) GetEntityThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetEntityThread")

	subscriber, _, err := h.entityScope(r)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	h.renderThread(w, r, logger, subscriber)
}

// renderThread returns the whole conversation in chronological order and
// marks the opener's unread messages read. The read receipt is best effort:
// a failure is logged, the view still renders.
func (h *Handler) renderThread(
	w http.ResponseWriter,
	r *http.Request,
	logger logger_lib.LoggerInterface,
	subscriber model.ActorRef,
) {
	threadID, err := parseID(chi.URLParam(r, "thread_id"))
	if err != nil {
		h.writeError(w, "invalid thread id", http.StatusBadRequest)
		return
	}

	messages, err := h.repository.GetThreadMessages(r.Context(), subscriber, threadID)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	if len(messages) == 0 {
		h.writeError(w, "thread not found", http.StatusNotFound)
		return
	}

	if err := h.repository.SetRead(r.Context(), subscriber, threadID); err != nil {
		logger.Error(fmt.Sprintf("failed to mark thread read: %v", err))
	}

	response := api.GetThreadResponse{
		Messages: toAPIMessages(messages),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) UserArchiveThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UserArchiveThread")
	h.userThreadAction(w, r, logger, h.archive)
}

func (h *Handler) UserRestoreArchivedThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UserRestoreArchivedThread")
	h.userThreadAction(w, r, logger, h.restoreArchived)
}

func (h *Handler) UserDeleteThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UserDeleteThread")
	h.userThreadAction(w, r, logger, h.repository.SetDeleted)
}

func (h *Handler) UserRestoreDeletedThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UserRestoreDeletedThread")
	h.userThreadAction(w, r, logger, h.repository.RestoreDeleted)
}

func (h *Handler) EntityArchiveThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EntityArchiveThread")
	h.entityThreadAction(w, r, logger, h.archive)
}

func (h *Handler) EntityRestoreArchivedThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EntityRestoreArchivedThread")
	h.entityThreadAction(w, r, logger, h.restoreArchived)
}

func (h *Handler) EntityDeleteThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EntityDeleteThread")
	h.entityThreadAction(w, r, logger, h.repository.SetDeleted)
}

func (h *Handler) EntityRestoreDeletedThread(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EntityRestoreDeletedThread")
	h.entityThreadAction(w, r, logger, h.repository.RestoreDeleted)
}

type threadAction func(ctx context.Context, subscriber model.ActorRef, threadID int64) error

func (h *Handler) archive(ctx context.Context, subscriber model.ActorRef, threadID int64) error {
	return h.repository.SetArchived(ctx, subscriber, threadID, true)
}

func (h *Handler) restoreArchived(ctx context.Context, subscriber model.ActorRef, threadID int64) error {
	return h.repository.SetArchived(ctx, subscriber, threadID, false)
}

func (h *Handler) userThreadAction(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, action threadAction) {
	subscriber, ok := h.userFromContext(r)
	if !ok {
		logger.Error("failed to get user actor")
		h.writeError(w, "failed to get user actor", http.StatusInternalServerError)
		return
	}

	h.runThreadAction(w, r, logger, subscriber, action)
}

func (h *Handler) entityThreadAction(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, action threadAction) {
	subscriber, _, err := h.entityScope(r)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	h.runThreadAction(w, r, logger, subscriber, action)
}

func (h *Handler) runThreadAction(
	w http.ResponseWriter,
	r *http.Request,
	logger logger_lib.LoggerInterface,
	subscriber model.ActorRef,
	action threadAction,
) {
	threadID, err := parseID(chi.URLParam(r, "thread_id"))
	if err != nil {
		h.writeError(w, "invalid thread id", http.StatusBadRequest)
		return
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return action(ctx, subscriber, threadID)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to apply thread action: %v", err))
		h.writeError(w, "failed to apply thread action", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetUserUnreadCount(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetUserUnreadCount")

	subscriber, ok := h.userFromContext(r)
	if !ok {
		logger.Error("failed to get user actor")
		h.writeError(w, "failed to get user actor", http.StatusInternalServerError)
		return
	}

	h.renderUnreadCount(w, r, logger, subscriber)
}

func (h *Handler) GetEntityUnreadCount(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetEntityUnreadCount")

	subscriber, _, err := h.entityScope(r)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	h.renderUnreadCount(w, r, logger, subscriber)
}

func (h *Handler) renderUnreadCount(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, subscriber model.ActorRef) {
	count, err := h.repository.CountUnread(r.Context(), subscriber)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to count unread messages: %v", err))
		h.writeError(w, "failed to count unread messages", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.UnreadCountResponse{Count: count}, http.StatusOK)
}

// entityScope resolves the entity mailbox the caller acts on: the entity
// addressed by the path slug, viewed through the categories the caller is
// authorized for.
func (h *Handler) entityScope(r *http.Request) (model.ActorRef, []string, error) {
	caller, ok := h.actorFromContext(r)
	if !ok {
		return model.ActorRef{}, nil, fmt.Errorf("failed to get actor")
	}

	entity, err := h.repository.GetEntityBySlug(r.Context(), chi.URLParam(r, "entity_slug"))
	if err != nil {
		return model.ActorRef{}, nil, err
	}

	appTypes, err := h.gate.AllowedAppTypes(r.Context(), caller, entity.ID)
	if err != nil {
		return model.ActorRef{}, nil, err
	}

	if len(appTypes) == 0 {
		return model.ActorRef{}, nil, model.NewPermissionDenied("no messaging capability for entity")
	}

	return entity.Ref(), appTypes, nil
}

func toAPIMessages(messages model.MessageList) []api.Message {
	apiMessages := make([]api.Message, len(messages))
	for i, msg := range messages {
		var readAt *string
		if msg.ReadAt != nil {
			timestamp := msg.ReadAt.Format(time.RFC3339)
			readAt = &timestamp
		}

		apiMessages[i] = api.Message{
			ID:            msg.ID,
			ThreadID:      msg.ThreadKey(),
			ParentID:      msg.ParentID,
			Subject:       msg.Subject,
			Body:          msg.Body,
			Topic:         msg.Topic,
			AppType:       msg.AppType,
			SenderKind:    msg.SenderKind,
			SenderName:    msg.SenderName,
			RecipientKind: msg.RecipientKind,
			RecipientName: msg.RecipientName,
			SentAt:        msg.SentAt.Format(time.RFC3339),
			ReadAt:        readAt,
		}
	}
	return apiMessages
}
