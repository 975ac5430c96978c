package model

import "github.com/google/uuid"

// AppMessagePermission maps an application category to the capability an
// actor must hold on the target entity to originate threads in it.
// Configured by administrators, read-only at runtime.
type AppMessagePermission struct {
	AppType    string `db:"app_type"`
	Capability string `db:"capability"`
}

// CapabilityGrant is a staff permission: the user holds the capability with
// respect to the entity.
type CapabilityGrant struct {
	UserID     uuid.UUID `db:"user_id"`
	EntityID   uuid.UUID `db:"entity_id"`
	Capability string    `db:"capability"`
}
