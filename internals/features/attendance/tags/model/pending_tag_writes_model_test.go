// file: internals/features/attendance/tags/model/pending_tag_writes_model_test.go
package model

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Invariant skema: maksimal satu baris pending per user. Dijaga index
// unik parsial di kolom user_id — kalau deklarasinya hilang, dua prepare
// paralel bisa sama-sama commit baris pending dan dua-duanya bisa
// di-confirm (rotasi dobel dalam satu masa cooldown).
func TestPendingTagWritesDeclaresSingleActionableIndex(t *testing.T) {
	f, ok := reflect.TypeOf(PendingTagWriteModel{}).FieldByName("PendingTagWritesUserID")
	require.True(t, ok)

	tag := f.Tag.Get("gorm")
	assert.Contains(t, tag, "uniqueIndex:uq_pending_tag_writes_one_pending")
	assert.Contains(t, tag, "where:pending_tag_writes_status = 'pending'")
}

func TestPendingTagWriteExpiredAt(t *testing.T) {
	exp := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	p := PendingTagWriteModel{PendingTagWritesExpiresAt: exp}

	assert.False(t, p.ExpiredAt(exp.Add(-time.Second)))
	assert.False(t, p.ExpiredAt(exp)) // tepat di batas masih hidup
	assert.True(t, p.ExpiredAt(exp.Add(time.Second)))
}
