// file: internals/features/mosques/mosques/dto/mosque_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"masjida_backend/internals/features/mosques/mosques/model"
)

/* =========================================================
   REQUEST DTO — CREATE (writable fields only)
========================================================= */

type MosqueRequest struct {
	MosqueCode        string     `json:"mosque_code" validate:"required,max=50"`
	MosqueName        string     `json:"mosque_name" validate:"required,max=100"`
	MosqueAreaID      uuid.UUID  `json:"mosque_area_id" validate:"required"`
	MosqueStreet      string     `json:"mosque_street"`
	MosqueCity        string     `json:"mosque_city"`
	MosqueProvince    string     `json:"mosque_province"`
	MosqueZipCode     string     `json:"mosque_zip_code"`
	MosqueCountry     string     `json:"mosque_country"`
	MosquePhone       string     `json:"mosque_phone"`
	MosqueEmail       string     `json:"mosque_email" validate:"omitempty,email"`
	MosqueWebsite     string     `json:"mosque_website"`
	MosqueDescription string     `json:"mosque_description"`
	MosqueLatitude    *float64   `json:"mosque_latitude,omitempty"`
	MosqueLongitude   *float64   `json:"mosque_longitude,omitempty"`
	MosqueImageURL    string     `json:"mosque_image_url"`
}

/* =========================================================
   PARTIAL UPDATE DTO — pointer semua writable fields
========================================================= */

type MosqueUpdateRequest struct {
	MosqueCode        *string    `json:"mosque_code"`
	MosqueName        *string    `json:"mosque_name"`
	MosqueAreaID      *uuid.UUID `json:"mosque_area_id"`
	MosqueStreet      *string    `json:"mosque_street"`
	MosqueCity        *string    `json:"mosque_city"`
	MosqueProvince    *string    `json:"mosque_province"`
	MosqueZipCode     *string    `json:"mosque_zip_code"`
	MosqueCountry     *string    `json:"mosque_country"`
	MosquePhone       *string    `json:"mosque_phone"`
	MosqueEmail       *string    `json:"mosque_email"`
	MosqueWebsite     *string    `json:"mosque_website"`
	MosqueDescription *string    `json:"mosque_description"`
	MosqueLatitude    *float64   `json:"mosque_latitude"`
	MosqueLongitude   *float64   `json:"mosque_longitude"`
	MosqueImageURL    *string    `json:"mosque_image_url"`
}

/* =========================================================
   RESPONSE DTO
========================================================= */

type MosqueResponse struct {
	MosqueID          string    `json:"mosque_id"`
	MosqueCode        string    `json:"mosque_code"`
	MosqueName        string    `json:"mosque_name"`
	MosqueAreaID      string    `json:"mosque_area_id"`
	MosqueStreet      string    `json:"mosque_street"`
	MosqueCity        string    `json:"mosque_city"`
	MosqueProvince    string    `json:"mosque_province"`
	MosqueZipCode     string    `json:"mosque_zip_code"`
	MosqueCountry     string    `json:"mosque_country"`
	MosquePhone       string    `json:"mosque_phone"`
	MosqueEmail       string    `json:"mosque_email"`
	MosqueWebsite     string    `json:"mosque_website"`
	MosqueDescription string    `json:"mosque_description"`
	MosqueLatitude    *float64  `json:"mosque_latitude,omitempty"`
	MosqueLongitude   *float64  `json:"mosque_longitude,omitempty"`
	MosqueImageURL    string    `json:"mosque_image_url"`
	MosqueFullAddress string    `json:"mosque_full_address"`
	MosqueDisplayName string    `json:"mosque_display_name"`
	MosqueCreatedAt   time.Time `json:"mosque_created_at"`
	MosqueUpdatedAt   time.Time `json:"mosque_updated_at"`
}

func FromModelMosque(m *model.MosqueModel) MosqueResponse {
	return MosqueResponse{
		MosqueID:          m.MosqueID.String(),
		MosqueCode:        m.MosqueCode,
		MosqueName:        m.MosqueName,
		MosqueAreaID:      m.MosqueAreaID.String(),
		MosqueStreet:      m.MosqueStreet,
		MosqueCity:        m.MosqueCity,
		MosqueProvince:    m.MosqueProvince,
		MosqueZipCode:     m.MosqueZipCode,
		MosqueCountry:     m.MosqueCountry,
		MosquePhone:       m.MosquePhone,
		MosqueEmail:       m.MosqueEmail,
		MosqueWebsite:     m.MosqueWebsite,
		MosqueDescription: m.MosqueDescription,
		MosqueLatitude:    m.MosqueLatitude,
		MosqueLongitude:   m.MosqueLongitude,
		MosqueImageURL:    m.MosqueImageURL,
		MosqueFullAddress: m.MosqueFullAddress,
		MosqueDisplayName: m.MosqueDisplayName,
		MosqueCreatedAt:   m.MosqueCreatedAt,
		MosqueUpdatedAt:   m.MosqueUpdatedAt,
	}
}

func ToModelMosque(in *MosqueRequest) *model.MosqueModel {
	return &model.MosqueModel{
		MosqueCode:        in.MosqueCode,
		MosqueName:        in.MosqueName,
		MosqueAreaID:      in.MosqueAreaID,
		MosqueStreet:      in.MosqueStreet,
		MosqueCity:        in.MosqueCity,
		MosqueProvince:    in.MosqueProvince,
		MosqueZipCode:     in.MosqueZipCode,
		MosqueCountry:     in.MosqueCountry,
		MosquePhone:       in.MosquePhone,
		MosqueEmail:       in.MosqueEmail,
		MosqueWebsite:     in.MosqueWebsite,
		MosqueDescription: in.MosqueDescription,
		MosqueLatitude:    in.MosqueLatitude,
		MosqueLongitude:   in.MosqueLongitude,
		MosqueImageURL:    in.MosqueImageURL,
	}
}

// ApplyMosqueUpdate: patch model dari MosqueUpdateRequest (sebelum Save).
// full_address & display_name dihitung ulang oleh hook model.
func ApplyMosqueUpdate(m *model.MosqueModel, u *MosqueUpdateRequest) {
	if u.MosqueCode != nil {
		m.MosqueCode = *u.MosqueCode
	}
	if u.MosqueName != nil {
		m.MosqueName = *u.MosqueName
	}
	if u.MosqueAreaID != nil {
		m.MosqueAreaID = *u.MosqueAreaID
	}
	if u.MosqueStreet != nil {
		m.MosqueStreet = *u.MosqueStreet
	}
	if u.MosqueCity != nil {
		m.MosqueCity = *u.MosqueCity
	}
	if u.MosqueProvince != nil {
		m.MosqueProvince = *u.MosqueProvince
	}
	if u.MosqueZipCode != nil {
		m.MosqueZipCode = *u.MosqueZipCode
	}
	if u.MosqueCountry != nil {
		m.MosqueCountry = *u.MosqueCountry
	}
	if u.MosquePhone != nil {
		m.MosquePhone = *u.MosquePhone
	}
	if u.MosqueEmail != nil {
		m.MosqueEmail = *u.MosqueEmail
	}
	if u.MosqueWebsite != nil {
		m.MosqueWebsite = *u.MosqueWebsite
	}
	if u.MosqueDescription != nil {
		m.MosqueDescription = *u.MosqueDescription
	}
	if u.MosqueLatitude != nil {
		m.MosqueLatitude = u.MosqueLatitude
	}
	if u.MosqueLongitude != nil {
		m.MosqueLongitude = u.MosqueLongitude
	}
	if u.MosqueImageURL != nil {
		m.MosqueImageURL = *u.MosqueImageURL
	}
}

/* =========================================================
   PUBLIC READ MODEL — baris datar untuk mobile
========================================================= */

type MosqueListRow struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Area     string  `json:"area"`
	ImageURL *string `json:"image_url"`
}

type MosqueScheduleRow struct {
	ID           string    `json:"id"`
	Topic        string    `json:"topic"`
	StartTime    time.Time `json:"start_time"`
	PreacherID   string    `json:"preacher_id"`
	PreacherName string    `json:"preacher_name"`
}

type MosqueDetailResponse struct {
	MosqueResponse
	Area      string              `json:"area"`
	Schedules []MosqueScheduleRow `json:"schedules"`
}
