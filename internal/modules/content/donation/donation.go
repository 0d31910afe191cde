package donation

import (
	"github.com/minbarhq/core/internal/models"
	"github.com/minbarhq/core/internal/pkg/crud"
	"gorm.io/gorm"
)

type CreateDonationDTO struct {
	Amount        float64 `json:"amount"`
	DonorName     string  `json:"donorName"`
	DonorPhone    string  `json:"donorPhone"`
	IsAnonymous   bool    `json:"isAnonymous"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transactionId"`
}

type UpdateDonationDTO struct {
	Amount        *float64 `json:"amount"`
	DonorName     *string  `json:"donorName"`
	DonorPhone    *string  `json:"donorPhone"`
	IsAnonymous   *bool    `json:"isAnonymous"`
	Method        *string  `json:"method"`
	Status        *string  `json:"status"`
	TransactionID *string  `json:"transactionId"`
}

// NewHandler binds the donations collection to the generic endpoint factory.
func NewHandler(db *gorm.DB) *crud.Handler[models.DonationModel, CreateDonationDTO, UpdateDonationDTO] {
	return crud.New(db, crud.Mapping[models.DonationModel, CreateDonationDTO, UpdateDonationDTO]{
		Build: func(dto *CreateDonationDTO) models.DonationModel {
			return models.DonationModel{
				Amount:        dto.Amount,
				DonorName:     dto.DonorName,
				DonorPhone:    dto.DonorPhone,
				IsAnonymous:   dto.IsAnonymous,
				Method:        dto.Method,
				Status:        dto.Status,
				TransactionID: dto.TransactionID,
			}
		},
		Apply: func(dto *UpdateDonationDTO, m *models.DonationModel) {
			if dto.Amount != nil {
				m.Amount = *dto.Amount
			}
			if dto.DonorName != nil {
				m.DonorName = *dto.DonorName
			}
			if dto.DonorPhone != nil {
				m.DonorPhone = *dto.DonorPhone
			}
			if dto.IsAnonymous != nil {
				m.IsAnonymous = *dto.IsAnonymous
			}
			if dto.Method != nil {
				m.Method = *dto.Method
			}
			if dto.Status != nil {
				m.Status = *dto.Status
			}
			if dto.TransactionID != nil {
				m.TransactionID = *dto.TransactionID
			}
		},
	})
}
