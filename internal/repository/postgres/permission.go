package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/jobdesk/messaging-service/internal/model"
)

func (r *Repository) GetAppMessagePermission(ctx context.Context, appType string) (*model.AppMessagePermission, error) {
	query, args, err := sq.Select("app_type", "capability").
		From("app_message_permissions").
		Where(sq.Eq{"app_type": appType}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var permission model.AppMessagePermission
	err = r.Chk(ctx).GetContext(ctx, &permission, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewNotFound(fmt.Sprintf("category %q has no permission mapping", appType))
	}
	if err != nil {
		return nil, err
	}

	return &permission, nil
}

func (r *Repository) GetAppMessagePermissions(ctx context.Context) ([]model.AppMessagePermission, error) {
	query, args, err := sq.Select("app_type", "capability").
		From("app_message_permissions").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var permissions []model.AppMessagePermission
	err = r.Chk(ctx).SelectContext(ctx, &permissions, query, args...)
	if err != nil {
		return nil, err
	}

	return permissions, nil
}

func (r *Repository) GetCapabilities(ctx context.Context, userID, entityID uuid.UUID) ([]string, error) {
	query, args, err := sq.Select("capability").
		From("capability_grants").
		Where(sq.Eq{"user_id": userID, "entity_id": entityID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var capabilities []string
	err = r.Chk(ctx).SelectContext(ctx, &capabilities, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get capabilities: %v", err)
	}

	return capabilities, nil
}
