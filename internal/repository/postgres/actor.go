package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jobdesk/messaging-service/internal/model"
)

func (r *Repository) GetUserBySlug(ctx context.Context, slug string) (*model.User, error) {
	query, args, err := sq.Select("id", "slug", "display_name").
		From("users").
		Where(sq.Eq{"slug": slug}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewNotFound(fmt.Sprintf("user %q not found", slug))
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) GetEntityBySlug(ctx context.Context, slug string) (*model.Entity, error) {
	query, args, err := sq.Select("id", "slug", "display_name").
		From("entities").
		Where(sq.Eq{"slug": slug}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var entity model.Entity
	err = r.Chk(ctx).GetContext(ctx, &entity, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.NewNotFound(fmt.Sprintf("entity %q not found", slug))
	}
	if err != nil {
		return nil, err
	}

	return &entity, nil
}
