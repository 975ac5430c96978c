package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	FolderInbox    = "inbox"
	FolderSent     = "sent"
	FolderArchives = "archives"
	FolderTrash    = "trash"
)

const SubjectMaxLength = 120

type Visibility string

const (
	VisibilityActive   = Visibility("active")
	VisibilityArchived = Visibility("archived")
	VisibilityDeleted  = Visibility("deleted")
)

// PartyState is the folder state one party holds on a message row. Each row
// carries two of these, one per side, and they never influence each other.
type PartyState struct {
	Archived  bool
	DeletedAt *time.Time
}

// Visibility applies the folder precedence: a set delete timestamp wins over
// the archive flag, which wins over the active state.
func (s PartyState) Visibility() Visibility {
	if s.DeletedAt != nil {
		return VisibilityDeleted
	}
	if s.Archived {
		return VisibilityArchived
	}
	return VisibilityActive
}

type MessageList []Message

type Message struct {
	ID      int64  `db:"id" json:"id"`
	Subject string `db:"subject" json:"subject"`
	Body    string `db:"body" json:"body"`
	Topic   string `db:"topic" json:"topic"`
	AppType string `db:"app_type" json:"app_type"`

	SenderKind    string    `db:"sender_kind" json:"sender_kind"`
	SenderID      uuid.UUID `db:"sender_id" json:"sender_id"`
	SenderName    string    `db:"sender_name" json:"sender_name"`
	RecipientKind string    `db:"recipient_kind" json:"recipient_kind"`
	RecipientID   uuid.UUID `db:"recipient_id" json:"recipient_id"`
	RecipientName string    `db:"recipient_name" json:"recipient_name"`

	ParentID *int64 `db:"parent_id" json:"parent_id,omitempty"`
	ThreadID *int64 `db:"thread_id" json:"thread_id,omitempty"`

	SentAt time.Time  `db:"sent_at" json:"sent_at"`
	ReadAt *time.Time `db:"read_at" json:"read_at,omitempty"`
	// RepliedAt exists in the schema but no operation writes it.
	RepliedAt *time.Time `db:"replied_at" json:"-"`

	SenderArchived     bool       `db:"sender_archived" json:"-"`
	RecipientArchived  bool       `db:"recipient_archived" json:"-"`
	SenderDeletedAt    *time.Time `db:"sender_deleted_at" json:"-"`
	RecipientDeletedAt *time.Time `db:"recipient_deleted_at" json:"-"`
}

func (m *Message) Sender() ActorRef {
	return ActorRef{Kind: m.SenderKind, ID: m.SenderID, DisplayName: m.SenderName}
}

func (m *Message) Recipient() ActorRef {
	return ActorRef{Kind: m.RecipientKind, ID: m.RecipientID, DisplayName: m.RecipientName}
}

func (m *Message) SenderState() PartyState {
	return PartyState{Archived: m.SenderArchived, DeletedAt: m.SenderDeletedAt}
}

func (m *Message) RecipientState() PartyState {
	return PartyState{Archived: m.RecipientArchived, DeletedAt: m.RecipientDeletedAt}
}

// StateFor returns the party state the given actor holds on this row, and
// whether the actor is a party at all.
func (m *Message) StateFor(actor ActorRef) (PartyState, bool) {
	if m.Sender().Is(actor.Kind, actor.ID) {
		return m.SenderState(), true
	}
	if m.Recipient().Is(actor.Kind, actor.ID) {
		return m.RecipientState(), true
	}
	return PartyState{}, false
}

func (m *Message) IsParty(actor ActorRef) bool {
	_, ok := m.StateFor(actor)
	return ok
}

// ThreadKey resolves the conversation a message belongs to. A row whose
// thread id is still unset is treated as its own root.
func (m *Message) ThreadKey() int64 {
	if m.ThreadID != nil {
		return *m.ThreadID
	}
	return m.ID
}

// FolderQuery parametrizes the raw folder reads. AppTypes restricts an
// entity mailbox to the categories the caller is authorized for; empty means
// no restriction. Search is a case-insensitive substring matched against
// subject, body and both party names.
type FolderQuery struct {
	Subscriber ActorRef
	Folder     string
	AppTypes   []string
	Search     string
}
