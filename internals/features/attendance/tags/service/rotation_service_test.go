package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absensiku_backend/internals/features/attendance/tags/model"
)

func pendingRow(owner uuid.UUID, status model.PendingTagStatus, expiresAt time.Time) *model.PendingTagWriteModel {
	return &model.PendingTagWriteModel{
		PendingTagWritesID:             uuid.New(),
		PendingTagWritesUserID:         owner,
		PendingTagWritesCandidateTagID: uuid.New(),
		PendingTagWritesStatus:         status,
		PendingTagWritesExpiresAt:      expiresAt,
	}
}

func TestValidatePendingForConfirm(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	alive := now.Add(5 * time.Minute)

	t.Run("pending milik sendiri, belum kedaluwarsa → lolos", func(t *testing.T) {
		p := pendingRow(owner, model.PendingTagStatusPending, alive)
		assert.Nil(t, ValidatePendingForConfirm(p, owner, now))
	})

	t.Run("milik user lain → NOT_OWNER", func(t *testing.T) {
		p := pendingRow(owner, model.PendingTagStatusPending, alive)
		verr := ValidatePendingForConfirm(p, uuid.New(), now)
		require.NotNil(t, verr)
		assert.Equal(t, CodeNotOwner, verr.Code)
	})

	t.Run("sudah digantikan prepare baru → PENDING_SUPERSEDED", func(t *testing.T) {
		p := pendingRow(owner, model.PendingTagStatusSuperseded, alive)
		verr := ValidatePendingForConfirm(p, owner, now)
		require.NotNil(t, verr)
		assert.Equal(t, CodePendingSuperseded, verr.Code)
	})

	t.Run("sudah pernah dipakai → PENDING_NOT_FOUND", func(t *testing.T) {
		p := pendingRow(owner, model.PendingTagStatusConfirmed, alive)
		verr := ValidatePendingForConfirm(p, owner, now)
		require.NotNil(t, verr)
		assert.Equal(t, CodePendingNotFound, verr.Code)
	})

	t.Run("status expired → PENDING_EXPIRED", func(t *testing.T) {
		p := pendingRow(owner, model.PendingTagStatusExpired, alive)
		verr := ValidatePendingForConfirm(p, owner, now)
		require.NotNil(t, verr)
		assert.Equal(t, CodePendingExpired, verr.Code)
	})

	t.Run("status masih pending tapi lewat umur → tetap PENDING_EXPIRED", func(t *testing.T) {
		// sweep boleh telat — timestamp yang menentukan
		p := pendingRow(owner, model.PendingTagStatusPending, now.Add(-time.Second))
		verr := ValidatePendingForConfirm(p, owner, now)
		require.NotNil(t, verr)
		assert.Equal(t, CodePendingExpired, verr.Code)
	})

	t.Run("tepat di expires_at masih diterima", func(t *testing.T) {
		p := pendingRow(owner, model.PendingTagStatusPending, now)
		assert.Nil(t, ValidatePendingForConfirm(p, owner, now))
	})

	t.Run("owner dicek sebelum status", func(t *testing.T) {
		// pending superseded milik orang lain → NOT_OWNER, bukan SUPERSEDED
		p := pendingRow(owner, model.PendingTagStatusSuperseded, alive)
		verr := ValidatePendingForConfirm(p, uuid.New(), now)
		require.NotNil(t, verr)
		assert.Equal(t, CodeNotOwner, verr.Code)
	})
}
