package readstore

import (
	"context"

	"newsletter-service/internal/infra"
	"newsletter-service/internal/infra/db"
	"newsletter-service/internal/pkg/pgconv"
	"newsletter-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: pool}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	view := &queries.AuthorizedUserView{}
	var lastLogin pgtype.Timestamptz

	err := s.db.QueryRow(ctx, `
		SELECT id, email, role, is_active, created_at, last_login_at
		FROM users
		WHERE id = $1`,
		id).Scan(&view.ID, &view.Email, &view.Role, &view.IsActive, &view.CreatedAt, &lastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	view.LastLoginAt = pgconv.TimePtrFromPgtype(lastLogin)

	return view, nil
}

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	view := &queries.AuthorizedUserView{}
	var (
		passwordHash string
		lastLogin    pgtype.Timestamptz
	)

	err := s.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, is_active, created_at, last_login_at
		FROM users
		WHERE email = $1`,
		email).Scan(&view.ID, &view.Email, &passwordHash, &view.Role, &view.IsActive, &view.CreatedAt, &lastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user", err)
	}

	view.LastLoginAt = pgconv.TimePtrFromPgtype(lastLogin)

	return view, passwordHash, nil
}
