// file: internals/features/attendance/tags/dto/tags_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"absensiku_backend/internals/features/attendance/tags/model"
)

/* =========================
   REQUEST
   ========================= */

// Confirm dikirim setelah tulisan fisik ke tag NFC dilaporkan sukses
// oleh browser. device_info opsional (UA, serial reader).
type ConfirmRotationRequest struct {
	DeviceInfo datatypes.JSON `json:"device_info"`
}

/* =========================
   RESPONSE
   ========================= */

type TagWriteRecordResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TagID     uuid.UUID `json:"tag_id"`
	WrittenAt time.Time `json:"written_at"`
}

func FromTagWriteRecordModel(m *model.TagWriteRecordModel) TagWriteRecordResponse {
	return TagWriteRecordResponse{
		ID:        m.TagWriteRecordsID,
		UserID:    m.TagWriteRecordsUserID,
		TagID:     m.TagWriteRecordsTagID,
		WrittenAt: m.TagWriteRecordsWrittenAt,
	}
}

func FromTagWriteRecordModels(ms []model.TagWriteRecordModel) []TagWriteRecordResponse {
	out := make([]TagWriteRecordResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromTagWriteRecordModel(&ms[i]))
	}
	return out
}

type CurrentTagResponse struct {
	TagID *uuid.UUID `json:"tag_id"` // null = user belum punya tag
}
