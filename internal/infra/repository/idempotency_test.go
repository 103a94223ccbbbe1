//go:build e2e

package repository_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"newsletter-service/internal/domain/newsletter"
	"newsletter-service/internal/infra"
	"newsletter-service/internal/infra/repository"
	"newsletter-service/internal/usecase/shared"
	"newsletter-service/tests/common/dbtest"
	"newsletter-service/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type idempotencySuite struct {
	e2e.SharedSuite
	repo *repository.IdempotencyRepository
}

func TestIdempotencySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(idempotencySuite))
}

func (s *idempotencySuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.repo = repository.NewIdempotencyRepository()
}

func mustKey(t *testing.T, value string) newsletter.IdempotencyKey {
	t.Helper()
	key, err := newsletter.NewIdempotencyKey(value)
	require.NoError(t, err)
	return key
}

func savedResponse() shared.SavedResponse {
	return shared.SavedResponse{
		StatusCode: http.StatusSeeOther,
		Headers: []shared.HeaderPair{
			{Name: "Location", Value: "/admin/newsletters"},
			{Name: "Content-Type", Value: "application/json; charset=utf-8"},
		},
		Body: []byte(`{"message":"accepted"}`),
	}
}

func (s *idempotencySuite) newUser() uuid.UUID {
	return dbtest.CreateTestUser(s.T(), s.DB, "writer@example.com", "admin")
}

func (s *idempotencySuite) TestTryClaim() {
	ctx := context.Background()
	key := mustKey(s.T(), "abc-123")

	s.Run("a fresh key is claimed", func() {
		t := s.T()
		userID := s.newUser()
		now := time.Now().UTC()

		owned, err := s.repo.TryClaim(ctx, s.DB, userID, key, now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)

		record, err := s.repo.Find(ctx, s.DB, userID, key)
		require.NoError(t, err)
		require.False(t, record.IsCompleted(), "a fresh claim must be a placeholder")
	})

	s.Run("a live placeholder is not reclaimed", func() {
		t := s.T()
		userID := s.newUser()
		now := time.Now().UTC()

		owned, err := s.repo.TryClaim(ctx, s.DB, userID, key, now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)

		owned, err = s.repo.TryClaim(ctx, s.DB, userID, key, now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.False(t, owned, "a concurrent duplicate must lose the claim")
	})

	s.Run("a completed record is not reclaimed before expiry", func() {
		t := s.T()
		userID := s.newUser()
		now := time.Now().UTC()

		owned, err := s.repo.TryClaim(ctx, s.DB, userID, key, now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)
		require.NoError(t, s.repo.SaveResponse(ctx, s.DB, userID, key, savedResponse()))

		owned, err = s.repo.TryClaim(ctx, s.DB, userID, key, now.Add(time.Minute), now.Add(24*time.Hour))
		require.NoError(t, err)
		require.False(t, owned)

		record, err := s.repo.Find(ctx, s.DB, userID, key)
		require.NoError(t, err)
		require.True(t, record.IsCompleted(), "the stored response must survive the failed reclaim")
	})

	s.Run("an expired record is reclaimed and its response cleared", func() {
		t := s.T()
		userID := s.newUser()
		past := time.Now().UTC().Add(-48 * time.Hour)

		owned, err := s.repo.TryClaim(ctx, s.DB, userID, key, past, past.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)
		require.NoError(t, s.repo.SaveResponse(ctx, s.DB, userID, key, savedResponse()))

		now := time.Now().UTC()
		owned, err = s.repo.TryClaim(ctx, s.DB, userID, key, now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned, "an expired record must be claimable again")

		record, err := s.repo.Find(ctx, s.DB, userID, key)
		require.NoError(t, err)
		require.False(t, record.IsCompleted(), "reclaiming must scrub the stale response")
		require.WithinDuration(t, now, record.CreatedAt, time.Second)
	})

	s.Run("different keys for one user do not collide", func() {
		t := s.T()
		userID := s.newUser()
		now := time.Now().UTC()

		owned, err := s.repo.TryClaim(ctx, s.DB, userID, mustKey(t, "key-1"), now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)

		owned, err = s.repo.TryClaim(ctx, s.DB, userID, mustKey(t, "key-2"), now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)
	})
}

func (s *idempotencySuite) TestSaveAndFind() {
	ctx := context.Background()
	key := mustKey(s.T(), "abc-123")

	s.Run("an unknown key reports not found", func() {
		t := s.T()
		userID := s.newUser()

		_, err := s.repo.Find(ctx, s.DB, userID, key)
		require.Error(t, err)
		require.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	s.Run("a saved response round-trips with header order intact", func() {
		t := s.T()
		userID := s.newUser()
		now := time.Now().UTC()
		response := savedResponse()

		owned, err := s.repo.TryClaim(ctx, s.DB, userID, key, now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)
		require.NoError(t, s.repo.SaveResponse(ctx, s.DB, userID, key, response))

		record, err := s.repo.Find(ctx, s.DB, userID, key)
		require.NoError(t, err)
		require.True(t, record.IsCompleted())
		require.Equal(t, response.StatusCode, record.Response.StatusCode)
		require.Equal(t, response.Headers, record.Response.Headers)
		require.Equal(t, response.Body, record.Response.Body)
	})

	s.Run("saving without a placeholder reports not found", func() {
		t := s.T()
		userID := s.newUser()

		err := s.repo.SaveResponse(ctx, s.DB, userID, key, savedResponse())
		require.Error(t, err)
		require.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func (s *idempotencySuite) TestReleaseAndCleanup() {
	ctx := context.Background()
	key := mustKey(s.T(), "abc-123")

	s.Run("release drops a placeholder so the key can be retried", func() {
		t := s.T()
		userID := s.newUser()
		now := time.Now().UTC()

		owned, err := s.repo.TryClaim(ctx, s.DB, userID, key, now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)
		require.NoError(t, s.repo.Release(ctx, s.DB, userID, key))

		_, err = s.repo.Find(ctx, s.DB, userID, key)
		require.True(t, infra.IsKind(err, infra.KindNotFound))

		owned, err = s.repo.TryClaim(ctx, s.DB, userID, key, now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)
	})

	s.Run("release never touches a completed record", func() {
		t := s.T()
		userID := s.newUser()
		now := time.Now().UTC()

		owned, err := s.repo.TryClaim(ctx, s.DB, userID, key, now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)
		require.NoError(t, s.repo.SaveResponse(ctx, s.DB, userID, key, savedResponse()))

		require.NoError(t, s.repo.Release(ctx, s.DB, userID, key))

		record, err := s.repo.Find(ctx, s.DB, userID, key)
		require.NoError(t, err)
		require.True(t, record.IsCompleted())
	})

	s.Run("delete expired removes only expired rows", func() {
		t := s.T()
		userID := s.newUser()
		now := time.Now().UTC()
		past := now.Add(-48 * time.Hour)

		owned, err := s.repo.TryClaim(ctx, s.DB, userID, mustKey(t, "expired"), past, past.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)
		owned, err = s.repo.TryClaim(ctx, s.DB, userID, mustKey(t, "live"), now, now.Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, owned)

		deleted, err := s.repo.DeleteExpired(ctx, s.DB)
		require.NoError(t, err)
		require.EqualValues(t, 1, deleted)

		_, err = s.repo.Find(ctx, s.DB, userID, mustKey(t, "expired"))
		require.True(t, infra.IsKind(err, infra.KindNotFound))
		_, err = s.repo.Find(ctx, s.DB, userID, mustKey(t, "live"))
		require.NoError(t, err)
	})
}
