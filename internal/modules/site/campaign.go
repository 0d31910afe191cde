package site

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/minbarhq/core/internal/models"
	"github.com/minbarhq/core/internal/pkg/response"
	"gorm.io/gorm"
)

type UpdateCampaignDTO struct {
	Title           *string                 `json:"title"`
	Description     *string                 `json:"description"`
	TargetAmount    *float64                `json:"targetAmount"`
	CurrentAmount   *float64                `json:"currentAmount"`
	ImageURL        *string                 `json:"imageUrl"`
	TrustIndicators []models.TrustIndicator `json:"trustIndicators"`
}

// CampaignService manages the fundraising campaign singleton.
type CampaignService struct{ db *gorm.DB }

func NewCampaignService(db *gorm.DB) *CampaignService { return &CampaignService{db: db} }

// GetOrCreate returns the oldest campaign row, inserting the fixed default
// payload when the table is empty.
func (s *CampaignService) GetOrCreate() (*models.CampaignModel, error) {
	var m models.CampaignModel
	err := s.db.Order("created_at ASC").First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = defaultCampaign()
		return &m, s.db.Create(&m).Error
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert applies the present fields to the singleton, creating it from the
// defaults first when absent.
func (s *CampaignService) Upsert(dto *UpdateCampaignDTO) (*models.CampaignModel, error) {
	m, err := s.GetOrCreate()
	if err != nil {
		return nil, err
	}
	if dto.Title != nil {
		m.Title = *dto.Title
	}
	if dto.Description != nil {
		m.Description = *dto.Description
	}
	if dto.TargetAmount != nil {
		m.TargetAmount = *dto.TargetAmount
	}
	if dto.CurrentAmount != nil {
		m.CurrentAmount = *dto.CurrentAmount
	}
	if dto.ImageURL != nil {
		m.ImageURL = *dto.ImageURL
	}
	if dto.TrustIndicators != nil {
		m.TrustIndicators = dto.TrustIndicators
	}
	return m, s.db.Save(m).Error
}

// CampaignHandler exposes GET and PUT /campaign.
type CampaignHandler struct{ svc *CampaignService }

func NewCampaignHandler(svc *CampaignService) *CampaignHandler { return &CampaignHandler{svc: svc} }

func (h *CampaignHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/campaign", h.get)
	rg.PUT("/campaign", h.upsert)
}

func (h *CampaignHandler) get(c *gin.Context) {
	m, err := h.svc.GetOrCreate()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, m)
}

func (h *CampaignHandler) upsert(c *gin.Context) {
	var dto UpdateCampaignDTO
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
