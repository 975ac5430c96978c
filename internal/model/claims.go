package model

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ActorSessionClaims struct {
	jwt.RegisteredClaims

	ActorKind   string `json:"actor_kind"`
	ActorID     string `json:"actor_id"`
	DisplayName string `json:"display_name"`
}

func (c *ActorSessionClaims) Actor() (ActorRef, error) {
	if c.ActorKind != ActorKindUser && c.ActorKind != ActorKindEntity {
		return ActorRef{}, fmt.Errorf("unknown actor kind %q", c.ActorKind)
	}

	id, err := uuid.Parse(c.ActorID)
	if err != nil {
		return ActorRef{}, fmt.Errorf("invalid actor id: %w", err)
	}

	return ActorRef{Kind: c.ActorKind, ID: id, DisplayName: c.DisplayName}, nil
}
