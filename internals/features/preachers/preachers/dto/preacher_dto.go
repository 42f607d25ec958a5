// file: internals/features/preachers/preachers/dto/preacher_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"masjida_backend/internals/features/preachers/preachers/model"
)

type PreacherRequest struct {
	PreacherCode             string     `json:"preacher_code" validate:"required,max=50"`
	PreacherName             string     `json:"preacher_name" validate:"required,max=100"`
	PreacherEmail            string     `json:"preacher_email" validate:"omitempty,email"`
	PreacherPhone            string     `json:"preacher_phone"`
	PreacherBio              string     `json:"preacher_bio"`
	PreacherEducation        string     `json:"preacher_education"`
	PreacherDateOfBirth      *time.Time `json:"preacher_date_of_birth"`
	PreacherGender           string     `json:"preacher_gender" validate:"omitempty,oneof=male female"`
	PreacherSpecializationID *uuid.UUID `json:"preacher_specialization_id"`
	PreacherAreaID           *uuid.UUID `json:"preacher_area_id"`
	PreacherUserID           *uuid.UUID `json:"preacher_user_id"`
	PreacherPeriod           float64    `json:"preacher_period"`
	PreacherImageURL         string     `json:"preacher_image_url"`
}

type PreacherUpdateRequest struct {
	PreacherCode             *string    `json:"preacher_code"`
	PreacherName             *string    `json:"preacher_name"`
	PreacherEmail            *string    `json:"preacher_email"`
	PreacherPhone            *string    `json:"preacher_phone"`
	PreacherBio              *string    `json:"preacher_bio"`
	PreacherEducation        *string    `json:"preacher_education"`
	PreacherDateOfBirth      *time.Time `json:"preacher_date_of_birth"`
	PreacherGender           *string    `json:"preacher_gender"`
	PreacherSpecializationID *uuid.UUID `json:"preacher_specialization_id"`
	PreacherAreaID           *uuid.UUID `json:"preacher_area_id"`
	PreacherPeriod           *float64   `json:"preacher_period"`
	PreacherImageURL         *string    `json:"preacher_image_url"`
	PreacherState            *string    `json:"preacher_state"`
}

// PreacherProfileUpdateRequest: field yang boleh diubah pendakwah sendiri lewat
// portal. Field di luar daftar ini diabaikan diam-diam oleh BodyParser.
type PreacherProfileUpdateRequest struct {
	PreacherName             *string    `json:"preacher_name"`
	PreacherPhone            *string    `json:"preacher_phone"`
	PreacherBio              *string    `json:"preacher_bio"`
	PreacherEducation        *string    `json:"preacher_education"`
	PreacherDateOfBirth      *time.Time `json:"preacher_date_of_birth"`
	PreacherGender           *string    `json:"preacher_gender"`
	PreacherAreaID           *uuid.UUID `json:"preacher_area_id"`
	PreacherSpecializationID *uuid.UUID `json:"preacher_specialization_id"`
	PreacherPeriod           *float64   `json:"preacher_period"`
	PreacherImageURL         *string    `json:"preacher_image_url"`
}

type PreacherResponse struct {
	PreacherID               string     `json:"preacher_id"`
	PreacherCode             string     `json:"preacher_code"`
	PreacherName             string     `json:"preacher_name"`
	PreacherEmail            string     `json:"preacher_email"`
	PreacherPhone            string     `json:"preacher_phone"`
	PreacherBio              string     `json:"preacher_bio"`
	PreacherEducation        string     `json:"preacher_education"`
	PreacherDateOfBirth      *time.Time `json:"preacher_date_of_birth,omitempty"`
	PreacherGender           string     `json:"preacher_gender"`
	PreacherSpecializationID *uuid.UUID `json:"preacher_specialization_id,omitempty"`
	PreacherAreaID           *uuid.UUID `json:"preacher_area_id,omitempty"`
	PreacherUserID           *uuid.UUID `json:"preacher_user_id,omitempty"`
	PreacherPeriod           float64    `json:"preacher_period"`
	PreacherImageURL         string     `json:"preacher_image_url"`
	PreacherState            string     `json:"preacher_state"`
	PreacherDisplayName      string     `json:"preacher_display_name"`
}

// PreacherListRow: baris daftar publik — nama area & spesialisasi di-flatten,
// id mentahnya ikut disertakan supaya klien bisa memfilter by id sambil
// menampilkan nama.
type PreacherListRow struct {
	ID               uuid.UUID  `json:"id"`
	Code             string     `json:"code"`
	Name             string     `json:"name"`
	DisplayName      string     `json:"display_name"`
	Area             *string    `json:"area,omitempty"`
	AreaID           *uuid.UUID `json:"area_id,omitempty"`
	Specialization   *string    `json:"specialization,omitempty"`
	SpecializationID *uuid.UUID `json:"specialization_id,omitempty"`
	ImageURL         *string    `json:"image_url,omitempty"`
}

// PreacherScheduleRow: jadwal confirmed milik seorang pendakwah (publik/portal).
type PreacherScheduleRow struct {
	ID         uuid.UUID `json:"id"`
	Topic      string    `json:"topic"`
	StartTime  time.Time `json:"start_time"`
	MosqueID   uuid.UUID `json:"mosque_id"`
	MosqueName string    `json:"mosque_name"`
}

type PreacherDetailResponse struct {
	PreacherResponse
	Area           string                `json:"area,omitempty"`
	Specialization string                `json:"specialization,omitempty"`
	Schedules      []PreacherScheduleRow `json:"schedules"`
}

func FromModelPreacher(m *model.PreacherModel) PreacherResponse {
	return PreacherResponse{
		PreacherID:               m.PreacherID.String(),
		PreacherCode:             m.PreacherCode,
		PreacherName:             m.PreacherName,
		PreacherEmail:            m.PreacherEmail,
		PreacherPhone:            m.PreacherPhone,
		PreacherBio:              m.PreacherBio,
		PreacherEducation:        m.PreacherEducation,
		PreacherDateOfBirth:      m.PreacherDateOfBirth,
		PreacherGender:           m.PreacherGender,
		PreacherSpecializationID: m.PreacherSpecializationID,
		PreacherAreaID:           m.PreacherAreaID,
		PreacherUserID:           m.PreacherUserID,
		PreacherPeriod:           m.PreacherPeriod,
		PreacherImageURL:         m.PreacherImageURL,
		PreacherState:            m.PreacherState,
		PreacherDisplayName:      m.PreacherDisplayName,
	}
}

func ToModelPreacher(req *PreacherRequest) *model.PreacherModel {
	gender := req.PreacherGender
	if gender == "" {
		gender = model.GenderMale
	}
	return &model.PreacherModel{
		PreacherCode:             req.PreacherCode,
		PreacherName:             req.PreacherName,
		PreacherEmail:            req.PreacherEmail,
		PreacherPhone:            req.PreacherPhone,
		PreacherBio:              req.PreacherBio,
		PreacherEducation:        req.PreacherEducation,
		PreacherDateOfBirth:      req.PreacherDateOfBirth,
		PreacherGender:           gender,
		PreacherSpecializationID: req.PreacherSpecializationID,
		PreacherAreaID:           req.PreacherAreaID,
		PreacherUserID:           req.PreacherUserID,
		PreacherPeriod:           req.PreacherPeriod,
		PreacherImageURL:         req.PreacherImageURL,
		PreacherState:            model.PreacherStateDraft,
	}
}

func ApplyPreacherUpdate(m *model.PreacherModel, req *PreacherUpdateRequest) {
	if req.PreacherCode != nil {
		m.PreacherCode = *req.PreacherCode
	}
	if req.PreacherName != nil {
		m.PreacherName = *req.PreacherName
	}
	if req.PreacherEmail != nil {
		m.PreacherEmail = *req.PreacherEmail
	}
	if req.PreacherPhone != nil {
		m.PreacherPhone = *req.PreacherPhone
	}
	if req.PreacherBio != nil {
		m.PreacherBio = *req.PreacherBio
	}
	if req.PreacherEducation != nil {
		m.PreacherEducation = *req.PreacherEducation
	}
	if req.PreacherDateOfBirth != nil {
		m.PreacherDateOfBirth = req.PreacherDateOfBirth
	}
	if req.PreacherGender != nil {
		m.PreacherGender = *req.PreacherGender
	}
	if req.PreacherSpecializationID != nil {
		m.PreacherSpecializationID = req.PreacherSpecializationID
	}
	if req.PreacherAreaID != nil {
		m.PreacherAreaID = req.PreacherAreaID
	}
	if req.PreacherPeriod != nil {
		m.PreacherPeriod = *req.PreacherPeriod
	}
	if req.PreacherImageURL != nil {
		m.PreacherImageURL = *req.PreacherImageURL
	}
	if req.PreacherState != nil {
		m.PreacherState = *req.PreacherState
	}
}

func ApplyPreacherProfileUpdate(m *model.PreacherModel, req *PreacherProfileUpdateRequest) {
	if req.PreacherName != nil {
		m.PreacherName = *req.PreacherName
	}
	if req.PreacherPhone != nil {
		m.PreacherPhone = *req.PreacherPhone
	}
	if req.PreacherBio != nil {
		m.PreacherBio = *req.PreacherBio
	}
	if req.PreacherEducation != nil {
		m.PreacherEducation = *req.PreacherEducation
	}
	if req.PreacherDateOfBirth != nil {
		m.PreacherDateOfBirth = req.PreacherDateOfBirth
	}
	if req.PreacherGender != nil {
		m.PreacherGender = *req.PreacherGender
	}
	if req.PreacherAreaID != nil {
		m.PreacherAreaID = req.PreacherAreaID
	}
	if req.PreacherSpecializationID != nil {
		m.PreacherSpecializationID = req.PreacherSpecializationID
	}
	if req.PreacherPeriod != nil {
		m.PreacherPeriod = *req.PreacherPeriod
	}
	if req.PreacherImageURL != nil {
		m.PreacherImageURL = *req.PreacherImageURL
	}
}
