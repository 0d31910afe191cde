// Package site holds the two singleton resources: site settings and the
// fundraising campaign. Both model "exactly one logical document" on top of
// a plain table: first read creates the defaults, upserts always address the
// oldest row. Two concurrent cold-start reads may insert twice; the duplicate
// row is inert because every later read picks the oldest. That race is part
// of the documented behavior and is deliberately not locked away here.
package site

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/minbarhq/core/internal/models"
	"github.com/minbarhq/core/internal/pkg/response"
	"gorm.io/gorm"
)

type UpdateSettingsDTO struct {
	MaintenanceMode *bool   `json:"maintenanceMode"`
	FlashMessage    *string `json:"flashMessage"`
	FlashActive     *bool   `json:"flashActive"`
}

// SettingsService manages the settings singleton.
type SettingsService struct{ db *gorm.DB }

func NewSettingsService(db *gorm.DB) *SettingsService { return &SettingsService{db: db} }

// GetOrCreate returns the oldest settings row, inserting the defaults when
// the table is empty. The first cold-start read writes to storage.
func (s *SettingsService) GetOrCreate() (*models.SettingsModel, error) {
	var m models.SettingsModel
	err := s.db.Order("created_at ASC").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = defaultSettings()
		return &m, s.db.Create(&m).Error
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert applies the present fields to the singleton, creating it from the
// defaults first when absent. No id is involved.
func (s *SettingsService) Upsert(dto *UpdateSettingsDTO) (*models.SettingsModel, error) {
	m, err := s.GetOrCreate()
	if err != nil {
		return nil, err
	}
	if dto.MaintenanceMode != nil {
		m.MaintenanceMode = *dto.MaintenanceMode
	}
	if dto.FlashMessage != nil {
		m.FlashMessage = *dto.FlashMessage
	}
	if dto.FlashActive != nil {
		m.FlashActive = *dto.FlashActive
	}
	return m, s.db.Save(m).Error
}

// SettingsHandler exposes GET and PUT /settings.
type SettingsHandler struct{ svc *SettingsService }

func NewSettingsHandler(svc *SettingsService) *SettingsHandler { return &SettingsHandler{svc: svc} }

func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.get)
	rg.PUT("/settings", h.upsert)
}

func (h *SettingsHandler) get(c *gin.Context) {
	m, err := h.svc.GetOrCreate()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

func (h *SettingsHandler) upsert(c *gin.Context) {
	var dto UpdateSettingsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Upsert(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}
