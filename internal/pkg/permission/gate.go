package permission

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jobdesk/messaging-service/internal/model"
)

type Repo interface {
	GetAppMessagePermission(ctx context.Context, appType string) (*model.AppMessagePermission, error)
	GetAppMessagePermissions(ctx context.Context) ([]model.AppMessagePermission, error)
	GetCapabilities(ctx context.Context, userID, entityID uuid.UUID) ([]string, error)
}

// Gate resolves whether an actor may originate or answer messages of a
// category on behalf of an entity. The category mapping is administrator
// configured and read-only here.
type Gate struct {
	repo Repo
}

func New(repo Repo) *Gate {
	return &Gate{
		repo: repo,
	}
}

// RequiredCapability looks up the capability the category demands. A missing
// mapping is a configuration fault, not a permission failure.
func (g *Gate) RequiredCapability(ctx context.Context, appType string) (string, error) {
	permission, err := g.repo.GetAppMessagePermission(ctx, appType)
	if model.IsErrorCode(err, model.CodeNotFound) {
		return "", model.NewConfiguration(fmt.Sprintf("category %q has no permission mapping", appType), err)
	}
	if err != nil {
		return "", err
	}

	return permission.Capability, nil
}

// HasCapability reports whether the actor holds the capability on the
// entity. The entity itself holds every capability on its own mailbox; user
// actors go through their staff grants.
func (g *Gate) HasCapability(ctx context.Context, actor model.ActorRef, entityID uuid.UUID, capability string) (bool, error) {
	if actor.Kind == model.ActorKindEntity {
		return actor.ID == entityID, nil
	}

	if actor.Kind != model.ActorKindUser {
		return false, nil
	}

	capabilities, err := g.repo.GetCapabilities(ctx, actor.ID, entityID)
	if err != nil {
		return false, err
	}

	for _, held := range capabilities {
		if held == capability {
			return true, nil
		}
	}

	return false, nil
}

// CheckCompose gates originating (or answering) a message of the given
// category on behalf of the entity.
func (g *Gate) CheckCompose(ctx context.Context, actor model.ActorRef, entityID uuid.UUID, appType string) error {
	capability, err := g.RequiredCapability(ctx, appType)
	if err != nil {
		return err
	}

	ok, err := g.HasCapability(ctx, actor, entityID, capability)
	if err != nil {
		return err
	}
	if !ok {
		return model.NewPermissionDenied(fmt.Sprintf("actor lacks capability %q for category %q", capability, appType))
	}

	return nil
}

// AllowedAppTypes returns the categories the actor may see in the entity's
// aggregated mailbox. For the entity itself that is every configured
// category.
func (g *Gate) AllowedAppTypes(ctx context.Context, actor model.ActorRef, entityID uuid.UUID) ([]string, error) {
	permissions, err := g.repo.GetAppMessagePermissions(ctx)
	if err != nil {
		return nil, err
	}

	if actor.Kind == model.ActorKindEntity {
		if actor.ID != entityID {
			return nil, nil
		}
		appTypes := make([]string, 0, len(permissions))
		for _, permission := range permissions {
			appTypes = append(appTypes, permission.AppType)
		}
		return appTypes, nil
	}

	capabilities, err := g.repo.GetCapabilities(ctx, actor.ID, entityID)
	if err != nil {
		return nil, err
	}

	held := make(map[string]struct{}, len(capabilities))
	for _, capability := range capabilities {
		held[capability] = struct{}{}
	}

	var appTypes []string
	for _, permission := range permissions {
		if _, ok := held[permission.Capability]; ok {
			appTypes = append(appTypes, permission.AppType)
		}
	}

	return appTypes, nil
}
