package repository

import (
	"context"

	"newsletter-service/internal/infra"
	"newsletter-service/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		UPDATE users
		SET last_login_at = now()
		WHERE id = $1`,
		userID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}

	return nil
}
