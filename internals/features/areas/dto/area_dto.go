// file: internals/features/areas/dto/area_dto.go
package dto

import (
	"github.com/google/uuid"

	"masjida_backend/internals/features/areas/model"
)

type AreaRequest struct {
	AreaName      string     `json:"area_name" validate:"required,min=2,max=100"`
	AreaParentID  *uuid.UUID `json:"area_parent_id,omitempty"`
	AreaLatitude  *float64   `json:"area_latitude,omitempty"`
	AreaLongitude *float64   `json:"area_longitude,omitempty"`
}

type AreaUpdateRequest struct {
	AreaName      *string    `json:"area_name"`
	AreaParentID  *uuid.UUID `json:"area_parent_id"`
	AreaLatitude  *float64   `json:"area_latitude"`
	AreaLongitude *float64   `json:"area_longitude"`
}

type AreaResponse struct {
	AreaID        string     `json:"id"`
	AreaName      string     `json:"name"`
	AreaParentID  *uuid.UUID `json:"parent_id,omitempty"`
	AreaLatitude  *float64   `json:"latitude,omitempty"`
	AreaLongitude *float64   `json:"longitude,omitempty"`
}

func FromModelArea(m *model.AreaModel) AreaResponse {
	return AreaResponse{
		AreaID:        m.AreaID.String(),
		AreaName:      m.AreaName,
		AreaParentID:  m.AreaParentID,
		AreaLatitude:  m.AreaLatitude,
		AreaLongitude: m.AreaLongitude,
	}
}

func ToModelArea(in *AreaRequest) *model.AreaModel {
	return &model.AreaModel{
		AreaName:      in.AreaName,
		AreaParentID:  in.AreaParentID,
		AreaLatitude:  in.AreaLatitude,
		AreaLongitude: in.AreaLongitude,
	}
}

func ApplyAreaUpdate(m *model.AreaModel, u *AreaUpdateRequest) {
	if u.AreaName != nil {
		m.AreaName = *u.AreaName
	}
	if u.AreaParentID != nil {
		m.AreaParentID = u.AreaParentID
	}
	if u.AreaLatitude != nil {
		m.AreaLatitude = u.AreaLatitude
	}
	if u.AreaLongitude != nil {
		m.AreaLongitude = u.AreaLongitude
	}
}
