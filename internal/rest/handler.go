package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/jobdesk/messaging-service/internal/api"
	"github.com/jobdesk/messaging-service/internal/config"
	"github.com/jobdesk/messaging-service/internal/model"
	"github.com/jobdesk/messaging-service/internal/pkg/tx"
)

type Handler struct {
	repository  DBRepo
	gate        PermissionGate
	emailClient EmailClient
	producer    NotificationProducer
	validator   Validator
}

func New(
	repo DBRepo,
	gate PermissionGate,
	emailClient EmailClient,
	producer NotificationProducer,
	validator Validator,
) *Handler {
	return &Handler{
		repository:  repo,
		gate:        gate,
		emailClient: emailClient,
		producer:    producer,
		validator:   validator,
	}
}

// ComposeMessage starts a new conversation from an entity to a user.
func (h *Handler) ComposeMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ComposeMessage")

	var req api.ComposeMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.composeThreadRoot(w, r, logger, &req, nil, false)
}

// ComposeNotifyMessage is the compose variant that appends job links to the
// body and dispatches an email to the recipient out-of-band.
func (h *Handler) ComposeNotifyMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ComposeNotifyMessage")

	var req api.ComposeNotifyMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	base := api.ComposeMessageRequest{
		Subject:       req.Subject,
		Body:          req.Body,
		Topic:         req.Topic,
		RecipientSlug: req.RecipientSlug,
		AppType:       req.AppType,
	}

	h.composeThreadRoot(w, r, logger, &base, req.OtherJobLinks, true)
}

func (h *Handler) composeThreadRoot(
	w http.ResponseWriter,
	r *http.Request,
	logger logger_lib.LoggerInterface,
	req *api.ComposeMessageRequest,
	jobLinks []string,
	notify bool,
) {
	caller, ok := h.actorFromContext(r)
	if !ok {
		logger.Error("failed to get actor")
		h.writeError(w, "failed to get actor", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCompose(req); err != nil {
		logger.Error(fmt.Sprintf("compose validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("compose validation failed: %v", err), http.StatusBadRequest)
		return
	}

	entity, err := h.repository.GetEntityBySlug(r.Context(), chi.URLParam(r, "entity_slug"))
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	recipient, err := h.repository.GetUserBySlug(r.Context(), req.RecipientSlug)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	if err := h.gate.CheckCompose(r.Context(), caller, entity.ID, req.AppType); err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	body := req.Body
	if len(jobLinks) > 0 {
		body = renderJobLinks(body, jobLinks)
	}

	var message model.Message
	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		message = model.Message{
			Subject:       req.Subject,
			Body:          body,
			Topic:         req.Topic,
			AppType:       req.AppType,
			SenderKind:    model.ActorKindEntity,
			SenderID:      entity.ID,
			SenderName:    entity.DisplayName,
			RecipientKind: model.ActorKindUser,
			RecipientID:   recipient.ID,
			RecipientName: recipient.DisplayName,
		}

		messageID, err := h.repository.CreateMessage(ctx, &message)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to create message: %v", err))
			return err
		}

		// The id is unknown before insert, so the root assignment is a
		// second step inside the same transaction.
		if err := h.repository.PromoteThreadRoot(ctx, messageID); err != nil {
			logger.Error(fmt.Sprintf("failed to assign thread root: %v", err))
			return err
		}

		threadID := messageID
		message.ThreadID = &threadID

		return nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete compose transaction: %v", err))
		h.writeError(w, "failed to compose message", http.StatusInternalServerError)
		return
	}

	h.notifyRecipient(r, logger, recipient, entity.DisplayName, message.Subject, message.Body, notify)

	response := api.ComposeMessageResponse{
		MessageID: message.ID,
		ThreadID:  *message.ThreadID,
		SentAt:    message.SentAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}

// UserReplyMessage answers an existing message as the user side of the
// conversation.
func (h *Handler) UserReplyMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UserReplyMessage")

	subscriber, ok := h.userFromContext(r)
	if !ok {
		logger.Error("failed to get user actor")
		h.writeError(w, "failed to get user actor", http.StatusInternalServerError)
		return
	}

	var req api.ReplyMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateReply(&req); err != nil {
		logger.Error(fmt.Sprintf("reply validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("reply validation failed: %v", err), http.StatusBadRequest)
		return
	}

	parent, err := h.parentMessage(r, logger)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	if !parent.IsParty(subscriber) {
		h.writeDomainError(w, logger, model.NewPermissionDenied("only thread participants may reply"))
		return
	}

	recipient, err := h.repository.GetEntityBySlug(r.Context(), req.RecipientSlug)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	h.createReply(w, r, logger, parent, subscriber, recipient.Ref(), req.Body, nil)
}

// EntityReplyMessage answers an existing message on behalf of an entity; the
// caller must hold the capability the thread's category demands.
func (h *Handler) EntityReplyMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("EntityReplyMessage")

	caller, ok := h.actorFromContext(r)
	if !ok {
		logger.Error("failed to get actor")
		h.writeError(w, "failed to get actor", http.StatusInternalServerError)
		return
	}

	var req api.ReplyMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateReply(&req); err != nil {
		logger.Error(fmt.Sprintf("reply validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("reply validation failed: %v", err), http.StatusBadRequest)
		return
	}

	entity, err := h.repository.GetEntityBySlug(r.Context(), chi.URLParam(r, "entity_slug"))
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	parent, err := h.parentMessage(r, logger)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	sender := entity.Ref()
	if !parent.IsParty(sender) {
		h.writeDomainError(w, logger, model.NewPermissionDenied("entity is not a participant of the thread"))
		return
	}

	if err := h.gate.CheckCompose(r.Context(), caller, entity.ID, parent.AppType); err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	recipient, err := h.repository.GetUserBySlug(r.Context(), req.RecipientSlug)
	if err != nil {
		h.writeDomainError(w, logger, err)
		return
	}

	h.createReply(w, r, logger, parent, sender, recipient.Ref(), req.Body, recipient)
}

// createReply writes the reply row, promoting the parent to thread root
// first when it has none. Subject, topic and category are inherited from the
// parent.
func (h *Handler) createReply(
	w http.ResponseWriter,
	r *http.Request,
	logger logger_lib.LoggerInterface,
	parent *model.Message,
	sender model.ActorRef,
	recipient model.ActorRef,
	body string,
	notifyUser *model.User,
) {
	var message model.Message
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		threadID := parent.ID
		if parent.ThreadID == nil {
			if err := h.repository.PromoteThreadRoot(ctx, parent.ID); err != nil {
				logger.Error(fmt.Sprintf("failed to promote thread root: %v", err))
				return err
			}
		} else {
			threadID = *parent.ThreadID
		}

		parentID := parent.ID
		message = model.Message{
			Subject:       parent.Subject,
			Body:          body,
			Topic:         parent.Topic,
			AppType:       parent.AppType,
			SenderKind:    sender.Kind,
			SenderID:      sender.ID,
			SenderName:    sender.DisplayName,
			RecipientKind: recipient.Kind,
			RecipientID:   recipient.ID,
			RecipientName: recipient.DisplayName,
			ParentID:      &parentID,
			ThreadID:      &threadID,
		}

		if _, err := h.repository.CreateMessage(ctx, &message); err != nil {
			logger.Error(fmt.Sprintf("failed to create reply: %v", err))
			return err
		}

		return nil
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to complete reply transaction: %v", err))
		h.writeError(w, "failed to create reply", http.StatusInternalServerError)
		return
	}

	if notifyUser != nil {
		h.notifyRecipient(r, logger, notifyUser, sender.DisplayName, message.Subject, message.Body, false)
	}

	response := api.ReplyMessageResponse{
		MessageID: message.ID,
		ThreadID:  *message.ThreadID,
		SentAt:    message.SentAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}

// notifyRecipient runs the out-of-band side effects of message creation:
// the feed event and, for the notify variant, the email. Failures are
// logged and swallowed, the message itself is already committed.
func (h *Handler) notifyRecipient(
	r *http.Request,
	logger logger_lib.LoggerInterface,
	recipient *model.User,
	senderName, subject, body string,
	sendEmail bool,
) {
	event := model.NotificationEvent{
		UserID:  recipient.ID.String(),
		Message: fmt.Sprintf("New message from %s: %s", senderName, subject),
	}
	if err := h.producer.ProduceMessage(r.Context(), event, recipient.ID.String()); err != nil {
		logger.Error(fmt.Sprintf("failed to publish notification event: %v", err))
	}

	if !sendEmail {
		return
	}

	letter := model.EmailLetter{
		To:      recipient.Slug,
		Subject: subject,
		Body:    body,
	}
	if err := h.emailClient.Send(r.Context(), letter); err != nil {
		logger.Error(fmt.Sprintf("failed to send email: %v", err))
	}
}

func (h *Handler) parentMessage(r *http.Request, logger logger_lib.LoggerInterface) (*model.Message, error) {
	messageID, err := parseID(chi.URLParam(r, "message_id"))
	if err != nil {
		return nil, model.NewInvalidInput("invalid message id")
	}

	parent, err := h.repository.GetMessage(r.Context(), messageID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get parent message: %v", err))
		return nil, err
	}

	return parent, nil
}

func renderJobLinks(body string, links []string) string {
	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n\nOther vacancies that may interest you:")
	for _, link := range links {
		b.WriteString("\n- ")
		b.WriteString(link)
	}
	return b.String()
}

// ----------------------------- helpers -----------------------------

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func (h *Handler) actorFromContext(r *http.Request) (model.ActorRef, bool) {
	actor, ok := r.Context().Value(config.KeyActor).(model.ActorRef)
	return actor, ok
}

func (h *Handler) userFromContext(r *http.Request) (model.ActorRef, bool) {
	actor, ok := h.actorFromContext(r)
	if !ok || actor.Kind != model.ActorKindUser {
		return model.ActorRef{}, false
	}
	return actor, true
}

func (h *Handler) writeDomainError(w http.ResponseWriter, logger logger_lib.LoggerInterface, err error) {
	logger.Error(err.Error())
	h.writeError(w, err.Error(), model.HTTPStatus(err))
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
