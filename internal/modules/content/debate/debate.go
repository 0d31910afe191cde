package debate

import (
	"github.com/minbarhq/core/internal/models"
	"github.com/minbarhq/core/internal/pkg/crud"
	"gorm.io/gorm"
)

type CreateDebateDTO struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoURL     string `json:"videoUrl"`
	Date         string `json:"date"`
	Speaker      string `json:"speaker"`
	Location     string `json:"location"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

type UpdateDebateDTO struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	VideoURL     *string `json:"videoUrl"`
	Date         *string `json:"date"`
	Speaker      *string `json:"speaker"`
	Location     *string `json:"location"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

// NewHandler binds the debates collection to the generic endpoint factory.
func NewHandler(db *gorm.DB) *crud.Handler[models.DebateModel, CreateDebateDTO, UpdateDebateDTO] {
	return crud.New(db, crud.Mapping[models.DebateModel, CreateDebateDTO, UpdateDebateDTO]{
		Build: func(dto *CreateDebateDTO) models.DebateModel {
			return models.DebateModel{
				Title:        dto.Title,
				Description:  dto.Description,
				VideoURL:     dto.VideoURL,
				Date:         dto.Date,
				Speaker:      dto.Speaker,
				Location:     dto.Location,
				ThumbnailURL: dto.ThumbnailURL,
			}
		},
		Apply: func(dto *UpdateDebateDTO, m *models.DebateModel) {
			if dto.Title != nil {
				m.Title = *dto.Title
			}
			if dto.Description != nil {
				m.Description = *dto.Description
			}
			if dto.VideoURL != nil {
				m.VideoURL = *dto.VideoURL
			}
			if dto.Date != nil {
				m.Date = *dto.Date
			}
			if dto.Speaker != nil {
				m.Speaker = *dto.Speaker
			}
			if dto.Location != nil {
				m.Location = *dto.Location
			}
			if dto.ThumbnailURL != nil {
				m.ThumbnailURL = *dto.ThumbnailURL
			}
		},
	})
}
