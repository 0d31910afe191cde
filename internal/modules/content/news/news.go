package news

import (
	"github.com/minbarhq/core/internal/models"
	"github.com/minbarhq/core/internal/pkg/crud"
	"gorm.io/gorm"
)

type CreateNewsDTO struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	ImageURL string   `json:"imageUrl"`
	Category string   `json:"category"`
	Author   string   `json:"author"`
	Tags     []string `json:"tags"`
}

type UpdateNewsDTO struct {
	Title    *string  `json:"title"`
	Content  *string  `json:"content"`
	ImageURL *string  `json:"imageUrl"`
	Category *string  `json:"category"`
	Author   *string  `json:"author"`
	Tags     []string `json:"tags"`
}

// NewHandler binds the news collection to the generic endpoint factory.
func NewHandler(db *gorm.DB) *crud.Handler[models.NewsModel, CreateNewsDTO, UpdateNewsDTO] {
	return crud.New(db, crud.Mapping[models.NewsModel, CreateNewsDTO, UpdateNewsDTO]{
		Build: func(dto *CreateNewsDTO) models.NewsModel {
			return models.NewsModel{
				Title:    dto.Title,
				Content:  dto.Content,
				ImageURL: dto.ImageURL,
				Category: dto.Category,
				Author:   dto.Author,
				Tags:     dto.Tags,
			}
		},
		Apply: func(dto *UpdateNewsDTO, m *models.NewsModel) {
			if dto.Title != nil {
				m.Title = *dto.Title
			}
			if dto.Content != nil {
				m.Content = *dto.Content
			}
			if dto.ImageURL != nil {
				m.ImageURL = *dto.ImageURL
			}
			if dto.Category != nil {
				m.Category = *dto.Category
			}
			if dto.Author != nil {
				m.Author = *dto.Author
			}
			if dto.Tags != nil {
				m.Tags = dto.Tags
			}
		},
	})
}
