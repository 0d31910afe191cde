package conversion

import (
	"github.com/minbarhq/core/internal/models"
	"github.com/minbarhq/core/internal/pkg/crud"
	"gorm.io/gorm"
)

type CreateConversionDTO struct {
	Name     string `json:"name"`
	Story    string `json:"story"`
	Date     string `json:"date"`
	MediaURL string `json:"mediaUrl"`
}

type UpdateConversionDTO struct {
	Name     *string `json:"name"`
	Story    *string `json:"story"`
	Date     *string `json:"date"`
	MediaURL *string `json:"mediaUrl"`
}

// NewHandler binds the conversion stories collection to the generic endpoint factory.
func NewHandler(db *gorm.DB) *crud.Handler[models.ConversionModel, CreateConversionDTO, UpdateConversionDTO] {
	return crud.New(db, crud.Mapping[models.ConversionModel, CreateConversionDTO, UpdateConversionDTO]{
		Build: func(dto *CreateConversionDTO) models.ConversionModel {
			return models.ConversionModel{
				Name:     dto.Name,
				Story:    dto.Story,
				Date:     dto.Date,
				MediaURL: dto.MediaURL,
			}
		},
		Apply: func(dto *UpdateConversionDTO, m *models.ConversionModel) {
			if dto.Name != nil {
				m.Name = *dto.Name
			}
			if dto.Story != nil {
				m.Story = *dto.Story
			}
			if dto.Date != nil {
				m.Date = *dto.Date
			}
			if dto.MediaURL != nil {
				m.MediaURL = *dto.MediaURL
			}
		},
	})
}
