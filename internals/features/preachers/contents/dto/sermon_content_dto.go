// file: internals/features/preachers/contents/dto/sermon_content_dto.go
package dto

import (
	"time"

	"masjida_backend/internals/features/preachers/contents/model"
)

type SermonContentRequest struct {
	SermonContentTitle    string `json:"sermon_content_title" validate:"required,max=255"`
	SermonContentType     string `json:"sermon_content_type" validate:"omitempty,oneof=text image video"`
	SermonContentText     string `json:"sermon_content_text"`
	SermonContentImageURL string `json:"sermon_content_image_url"`
	SermonContentVideoURL string `json:"sermon_content_video_url"`
}

type SermonContentUpdateRequest struct {
	SermonContentTitle    *string `json:"sermon_content_title"`
	SermonContentType     *string `json:"sermon_content_type"`
	SermonContentText     *string `json:"sermon_content_text"`
	SermonContentImageURL *string `json:"sermon_content_image_url"`
	SermonContentVideoURL *string `json:"sermon_content_video_url"`
}

type SermonContentResponse struct {
	SermonContentID          string     `json:"sermon_content_id"`
	SermonContentTitle       string     `json:"sermon_content_title"`
	SermonContentPreacherID  string     `json:"sermon_content_preacher_id"`
	SermonContentType        string     `json:"sermon_content_type"`
	SermonContentText        string     `json:"sermon_content_text"`
	SermonContentImageURL    string     `json:"sermon_content_image_url"`
	SermonContentVideoURL    string     `json:"sermon_content_video_url"`
	SermonContentPublishDate *time.Time `json:"sermon_content_publish_date,omitempty"`
	SermonContentState       string     `json:"sermon_content_state"`
}

func FromModelSermonContent(m *model.SermonContentModel) SermonContentResponse {
	return SermonContentResponse{
		SermonContentID:          m.SermonContentID.String(),
		SermonContentTitle:       m.SermonContentTitle,
		SermonContentPreacherID:  m.SermonContentPreacherID.String(),
		SermonContentType:        m.SermonContentType,
		SermonContentText:        m.SermonContentText,
		SermonContentImageURL:    m.SermonContentImageURL,
		SermonContentVideoURL:    m.SermonContentVideoURL,
		SermonContentPublishDate: m.SermonContentPublishDate,
		SermonContentState:       m.SermonContentState,
	}
}

func ApplySermonContentUpdate(m *model.SermonContentModel, req *SermonContentUpdateRequest) {
	if req.SermonContentTitle != nil {
		m.SermonContentTitle = *req.SermonContentTitle
	}
	if req.SermonContentType != nil {
		m.SermonContentType = *req.SermonContentType
	}
	if req.SermonContentText != nil {
		m.SermonContentText = *req.SermonContentText
	}
	if req.SermonContentImageURL != nil {
		m.SermonContentImageURL = *req.SermonContentImageURL
	}
	if req.SermonContentVideoURL != nil {
		m.SermonContentVideoURL = *req.SermonContentVideoURL
	}
}
