package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"content_manager/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepository_Upsert(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSessionRepository(mock)
	issued := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id) DO UPDATE")).
		WithArgs(5, "tok", issued).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Upsert(context.Background(), &model.Session{UserID: 5, Token: "tok", IssuedAt: issued})
	assert.NoError(t, err)
}

func TestSessionRepository_Upsert_Error(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSessionRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs(5, "tok", pgxmock.AnyArg()).
		WillReturnError(errors.New("boom"))

	err := repo.Upsert(context.Background(), &model.Session{UserID: 5, Token: "tok"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store session")
}

func TestSessionRepository_Clear(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSessionRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sessions SET token = '' WHERE user_id = $1")).
		WithArgs(5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.Clear(context.Background(), 5))
}

func TestSessionRepository_Clear_NoSession(t *testing.T) {
	mock := newMockPool(t)
	repo := NewSessionRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sessions")).
		WithArgs(6).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.NoError(t, repo.Clear(context.Background(), 6))
}
