package rest

import "github.com/go-chi/chi/v5"

// AttachRoutes wires the messaging surface: a per-user and a per-entity
// variant of every folder and action route.
func AttachRoutes(router chi.Router, h *Handler) {
	router.Route("/api/messaging", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/mailbox/{folder}", h.GetUserMailbox)
			r.Get("/mailbox/unread-count", h.GetUserUnreadCount)
			r.Get("/mailbox/threads/{thread_id}", h.GetUserThread)
			r.Post("/mailbox/threads/{thread_id}/archive", h.UserArchiveThread)
			r.Post("/mailbox/threads/{thread_id}/restore-archive", h.UserRestoreArchivedThread)
			r.Post("/mailbox/threads/{thread_id}/delete", h.UserDeleteThread)
			r.Post("/mailbox/threads/{thread_id}/restore-delete", h.UserRestoreDeletedThread)
			r.Post("/mailbox/messages/{message_id}/reply", h.UserReplyMessage)

			r.Get("/notifications", h.GetNotifications)
			r.Get("/notifications/unread-count", h.GetNotificationsUnreadCount)
			r.Post("/notifications/{notification_id}/read", h.ReadNotification)
			r.Post("/notifications/{notification_id}/delete", h.DeleteNotification)

			r.Post("/attachment", h.UploadAttachment)
			r.Get("/attachment", h.GetAttachment)
		})

		r.Route("/entities/{entity_slug}", func(r chi.Router) {
			r.Get("/mailbox/{folder}", h.GetEntityMailbox)
			r.Get("/mailbox/unread-count", h.GetEntityUnreadCount)
			r.Get("/mailbox/threads/{thread_id}", h.GetEntityThread)
			r.Post("/mailbox/threads/{thread_id}/archive", h.EntityArchiveThread)
			r.Post("/mailbox/threads/{thread_id}/restore-archive", h.EntityRestoreArchivedThread)
			r.Post("/mailbox/threads/{thread_id}/delete", h.EntityDeleteThread)
			r.Post("/mailbox/threads/{thread_id}/restore-delete", h.EntityRestoreDeletedThread)
			r.Post("/mailbox/messages/{message_id}/reply", h.EntityReplyMessage)

			r.Post("/messages", h.ComposeMessage)
			r.Post("/messages/notify", h.ComposeNotifyMessage)
		})
	})
}
