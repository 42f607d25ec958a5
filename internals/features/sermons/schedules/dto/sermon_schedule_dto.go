// file: internals/features/sermons/schedules/dto/sermon_schedule_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"masjida_backend/internals/features/sermons/schedules/model"
)

type SermonScheduleRequest struct {
	SermonScheduleMosqueID    uuid.UUID  `json:"sermon_schedule_mosque_id" validate:"required"`
	SermonSchedulePreacherID  uuid.UUID  `json:"sermon_schedule_preacher_id" validate:"required"`
	SermonScheduleTopic       string     `json:"sermon_schedule_topic" validate:"required,max=255"`
	SermonScheduleDescription string     `json:"sermon_schedule_description"`
	SermonScheduleStartTime   time.Time  `json:"sermon_schedule_start_time" validate:"required"`
	SermonScheduleEndTime     *time.Time `json:"sermon_schedule_end_time"`
}

type SermonScheduleUpdateRequest struct {
	SermonScheduleTopic       *string    `json:"sermon_schedule_topic"`
	SermonScheduleDescription *string    `json:"sermon_schedule_description"`
	SermonScheduleStartTime   *time.Time `json:"sermon_schedule_start_time"`
	SermonScheduleEndTime     *time.Time `json:"sermon_schedule_end_time"`
}

type SermonScheduleResponse struct {
	SermonScheduleID          string     `json:"sermon_schedule_id"`
	SermonScheduleMosqueID    string     `json:"sermon_schedule_mosque_id"`
	SermonSchedulePreacherID  string     `json:"sermon_schedule_preacher_id"`
	SermonScheduleTopic       string     `json:"sermon_schedule_topic"`
	SermonScheduleDescription string     `json:"sermon_schedule_description"`
	SermonScheduleStartTime   time.Time  `json:"sermon_schedule_start_time"`
	SermonScheduleEndTime     *time.Time `json:"sermon_schedule_end_time,omitempty"`
	SermonScheduleState       string     `json:"sermon_schedule_state"`
}

// PublicScheduleRow: baris jadwal untuk API publik/mobile — nama masjid,
// area, dan pendakwah sudah di-flatten.
type PublicScheduleRow struct {
	ID           uuid.UUID `json:"id"`
	Topic        string    `json:"topic"`
	StartTime    time.Time `json:"start_time"`
	MosqueID     uuid.UUID `json:"mosque_id"`
	MosqueName   string    `json:"mosque_name"`
	Area         *string   `json:"area,omitempty"`
	PreacherID   uuid.UUID `json:"preacher_id"`
	PreacherName string    `json:"preacher_name"`
}

// PendingInvitationRow: undangan sent yang menunggu jawaban pendakwah.
type PendingInvitationRow struct {
	ID         uuid.UUID `json:"id"`
	Topic      string    `json:"topic"`
	StartTime  time.Time `json:"start_time"`
	MosqueID   uuid.UUID `json:"mosque_id"`
	MosqueName string    `json:"mosque_name"`
}

func FromModelSermonSchedule(m *model.SermonScheduleModel) SermonScheduleResponse {
	return SermonScheduleResponse{
		SermonScheduleID:          m.SermonScheduleID.String(),
		SermonScheduleMosqueID:    m.SermonScheduleMosqueID.String(),
		SermonSchedulePreacherID:  m.SermonSchedulePreacherID.String(),
		SermonScheduleTopic:       m.SermonScheduleTopic,
		SermonScheduleDescription: m.SermonScheduleDescription,
		SermonScheduleStartTime:   m.SermonScheduleStartTime,
		SermonScheduleEndTime:     m.SermonScheduleEndTime,
		SermonScheduleState:       m.SermonScheduleState,
	}
}

func ToModelSermonSchedule(req *SermonScheduleRequest) *model.SermonScheduleModel {
	return &model.SermonScheduleModel{
		SermonScheduleMosqueID:    req.SermonScheduleMosqueID,
		SermonSchedulePreacherID:  req.SermonSchedulePreacherID,
		SermonScheduleTopic:       req.SermonScheduleTopic,
		SermonScheduleDescription: req.SermonScheduleDescription,
		SermonScheduleStartTime:   req.SermonScheduleStartTime,
		SermonScheduleEndTime:     req.SermonScheduleEndTime,
		SermonScheduleState:       model.ScheduleStateDraft,
	}
}

func ApplySermonScheduleUpdate(m *model.SermonScheduleModel, req *SermonScheduleUpdateRequest) {
	if req.SermonScheduleTopic != nil {
		m.SermonScheduleTopic = *req.SermonScheduleTopic
	}
	if req.SermonScheduleDescription != nil {
		m.SermonScheduleDescription = *req.SermonScheduleDescription
	}
	if req.SermonScheduleStartTime != nil {
		m.SermonScheduleStartTime = *req.SermonScheduleStartTime
	}
	if req.SermonScheduleEndTime != nil {
		m.SermonScheduleEndTime = req.SermonScheduleEndTime
	}
}
