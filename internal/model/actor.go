package model

import "github.com/google/uuid"

const (
	ActorKindUser   = "user"
	ActorKindEntity = "entity"
)

// ActorRef identifies one side of a message: a user (job seeker) or an
// entity (employer). DisplayName is a snapshot taken at send time so that
// history survives renames.
type ActorRef struct {
	Kind        string    `json:"kind"`
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
}

func (a ActorRef) Is(kind string, id uuid.UUID) bool {
	return a.Kind == kind && a.ID == id
}

type User struct {
	ID          uuid.UUID `db:"id"`
	Slug        string    `db:"slug"`
	DisplayName string    `db:"display_name"`
}

func (u *User) Ref() ActorRef {
	return ActorRef{Kind: ActorKindUser, ID: u.ID, DisplayName: u.DisplayName}
}

type Entity struct {
	ID          uuid.UUID `db:"id"`
	Slug        string    `db:"slug"`
	DisplayName string    `db:"display_name"`
}

func (e *Entity) Ref() ActorRef {
	return ActorRef{Kind: ActorKindEntity, ID: e.ID, DisplayName: e.DisplayName}
}
