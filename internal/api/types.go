// Package api holds the request and response bodies of the messaging HTTP
// surface.
package api

type Error struct {
	Error string `json:"error"`
}

type ComposeMessageRequest struct {
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	Topic         string `json:"topic"`
	RecipientSlug string `json:"recipient_slug"`
	AppType       string `json:"app_type"`
}

type ComposeNotifyMessageRequest struct {
	Subject       string   `json:"subject"`
	Body          string   `json:"body"`
	Topic         string   `json:"topic"`
	RecipientSlug string   `json:"recipient_slug"`
	AppType       string   `json:"app_type"`
	OtherJobLinks []string `json:"other_job_links"`
}

type ComposeMessageResponse struct {
	MessageID int64  `json:"message_id"`
	ThreadID  int64  `json:"thread_id"`
	SentAt    string `json:"sent_at"`
}

type ReplyMessageRequest struct {
	Body          string `json:"body"`
	RecipientSlug string `json:"recipient_slug"`
}

type ReplyMessageResponse struct {
	MessageID int64  `json:"message_id"`
	ThreadID  int64  `json:"thread_id"`
	SentAt    string `json:"sent_at"`
}

type Message struct {
	ID            int64   `json:"id"`
	ThreadID      int64   `json:"thread_id"`
	ParentID      *int64  `json:"parent_id,omitempty"`
	Subject       string  `json:"subject"`
	Body          string  `json:"body"`
	Topic         string  `json:"topic"`
	AppType       string  `json:"app_type"`
	SenderKind    string  `json:"sender_kind"`
	SenderName    string  `json:"sender_name"`
	RecipientKind string  `json:"recipient_kind"`
	RecipientName string  `json:"recipient_name"`
	SentAt        string  `json:"sent_at"`
	ReadAt        *string `json:"read_at,omitempty"`
}

type GetFolderResponse struct {
	Messages []Message `json:"messages"`
}

type GetThreadResponse struct {
	Messages []Message `json:"messages"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type Notification struct {
	ID      int64   `json:"id"`
	Message string  `json:"message"`
	SentAt  string  `json:"sent_at"`
	ReadAt  *string `json:"read_at,omitempty"`
}

type GetNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}

type UploadAttachmentRequest struct {
	FileName   string `json:"file_name"`
	StoredName string `json:"stored_name"`
}

type UploadAttachmentResponse struct {
	FileName   string `json:"file_name"`
	UploadedAt string `json:"uploaded_at"`
}

type GetAttachmentResponse struct {
	FileName   string `json:"file_name"`
	StoredName string `json:"stored_name"`
	UploadedAt string `json:"uploaded_at"`
}
