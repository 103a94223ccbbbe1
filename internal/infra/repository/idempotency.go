package repository

import (
	"context"
	"encoding/json"
	"time"

	"newsletter-service/internal/domain/newsletter"
	"newsletter-service/internal/infra"
	"newsletter-service/internal/infra/db"
	"newsletter-service/internal/pkg/pgconv"
	"newsletter-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyRepository struct{}

func NewIdempotencyRepository() *IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryClaim inserts a placeholder row for (userID, key). An existing row is
// only taken over when it has expired; a live row (in flight or completed)
// leaves the insert a no-op, which is how a duplicate submission is detected.
func (r *IdempotencyRepository) TryClaim(ctx context.Context, tx db.DBTX, userID uuid.UUID, key newsletter.IdempotencyKey, now, expiresAt time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
		INSERT INTO idempotency (user_id, idempotency_key, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, idempotency_key) DO UPDATE
		SET created_at           = EXCLUDED.created_at,
		    expires_at           = EXCLUDED.expires_at,
		    response_status_code = NULL,
		    response_headers     = NULL,
		    response_body        = NULL
		WHERE idempotency.expires_at < EXCLUDED.created_at`,
		userID, key.Value(), now, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Find(ctx context.Context, tx db.DBTX, userID uuid.UUID, key newsletter.IdempotencyKey) (*shared.IdempotencyRecord, error) {
	var (
		createdAt  pgtype.Timestamptz
		expiresAt  pgtype.Timestamptz
		statusCode pgtype.Int2
		headers    []byte
		body       []byte
	)

	err := tx.QueryRow(ctx, `
		SELECT created_at, expires_at, response_status_code, response_headers, response_body
		FROM idempotency
		WHERE user_id = $1 AND idempotency_key = $2`,
		userID, key.Value()).Scan(&createdAt, &expiresAt, &statusCode, &headers, &body)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	record := &shared.IdempotencyRecord{
		UserID:    userID,
		Key:       key.Value(),
		CreatedAt: pgconv.TimeFromPgtype(createdAt),
		ExpiresAt: pgconv.TimeFromPgtype(expiresAt),
	}

	if statusCode.Valid {
		var headerPairs []shared.HeaderPair
		if len(headers) > 0 {
			if err := json.Unmarshal(headers, &headerPairs); err != nil {
				return nil, infra.WrapRepoErr("failed to decode saved response headers", err)
			}
		}
		record.Response = &shared.SavedResponse{
			StatusCode: int(statusCode.Int16),
			Headers:    headerPairs,
			Body:       body,
		}
	}

	return record, nil
}

// SaveResponse completes the placeholder. Running it inside the transaction
// that created the issue and queue entries guarantees a replayable response
// only ever exists for durably committed side effects.
func (r *IdempotencyRepository) SaveResponse(ctx context.Context, tx db.DBTX, userID uuid.UUID, key newsletter.IdempotencyKey, response shared.SavedResponse) error {
	headers, err := json.Marshal(response.Headers)
	if err != nil {
		return infra.WrapRepoErr("failed to encode response headers", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE idempotency
		SET response_status_code = $3,
		    response_headers     = $4,
		    response_body        = $5
		WHERE user_id = $1 AND idempotency_key = $2`,
		userID, key.Value(), int16(response.StatusCode), headers, response.Body)
	if err != nil {
		return infra.WrapRepoErr("failed to save idempotency response", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency placeholder disappeared before completion", nil, infra.KindNotFound)
	}

	return nil
}

func (r *IdempotencyRepository) Release(ctx context.Context, tx db.DBTX, userID uuid.UUID, key newsletter.IdempotencyKey) error {
	_, err := tx.Exec(ctx, `
		DELETE FROM idempotency
		WHERE user_id = $1 AND idempotency_key = $2 AND response_status_code IS NULL`,
		userID, key.Value())
	if err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}

	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx db.DBTX) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM idempotency WHERE expires_at < now()`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}

	return tag.RowsAffected(), nil
}
