// file: internals/features/mosques/mosque_boards/dto/mosque_board_dto.go
package dto

import (
	"github.com/google/uuid"

	"masjida_backend/internals/features/mosques/mosque_boards/model"
)

type MosqueBoardRequest struct {
	MosqueBoardName     string     `json:"mosque_board_name" validate:"required,max=100"`
	MosqueBoardPosition string     `json:"mosque_board_position" validate:"omitempty,oneof=chairman secretary treasurer member"`
	MosqueBoardPhone    string     `json:"mosque_board_phone"`
	MosqueBoardEmail    string     `json:"mosque_board_email" validate:"required,email"`
	MosqueBoardMosqueID uuid.UUID  `json:"mosque_board_mosque_id" validate:"required"`
	MosqueBoardUserID   *uuid.UUID `json:"mosque_board_user_id,omitempty"` // opsional: kalau kosong, identity linker yang resolve
}

type MosqueBoardUpdateRequest struct {
	MosqueBoardName     *string `json:"mosque_board_name"`
	MosqueBoardPosition *string `json:"mosque_board_position"`
	MosqueBoardPhone    *string `json:"mosque_board_phone"`
	MosqueBoardEmail    *string `json:"mosque_board_email"`
}

type MosqueBoardResponse struct {
	MosqueBoardID       string `json:"mosque_board_id"`
	MosqueBoardName     string `json:"mosque_board_name"`
	MosqueBoardPosition string `json:"mosque_board_position"`
	MosqueBoardPhone    string `json:"mosque_board_phone"`
	MosqueBoardEmail    string `json:"mosque_board_email"`
	MosqueBoardMosqueID string `json:"mosque_board_mosque_id"`
	MosqueBoardUserID   string `json:"mosque_board_user_id"`
}

func FromModelMosqueBoard(m *model.MosqueBoardModel) MosqueBoardResponse {
	return MosqueBoardResponse{
		MosqueBoardID:       m.MosqueBoardID.String(),
		MosqueBoardName:     m.MosqueBoardName,
		MosqueBoardPosition: m.MosqueBoardPosition,
		MosqueBoardPhone:    m.MosqueBoardPhone,
		MosqueBoardEmail:    m.MosqueBoardEmail,
		MosqueBoardMosqueID: m.MosqueBoardMosqueID.String(),
		MosqueBoardUserID:   m.MosqueBoardUserID.String(),
	}
}
