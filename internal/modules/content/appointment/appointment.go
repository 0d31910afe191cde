package appointment

import (
	"github.com/minbarhq/core/internal/models"
	"github.com/minbarhq/core/internal/pkg/crud"
	"gorm.io/gorm"
)

type CreateAppointmentDTO struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Subject       string `json:"subject"`
	OpponentName  string `json:"opponentName"`
	Topic         string `json:"topic"`
	RequestedDate string `json:"requestedDate"`
	Message       string `json:"message"`
	Status        string `json:"status"`
}

type UpdateAppointmentDTO struct {
	Type          *string `json:"type"`
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	Subject       *string `json:"subject"`
	OpponentName  *string `json:"opponentName"`
	Topic         *string `json:"topic"`
	RequestedDate *string `json:"requestedDate"`
	Message       *string `json:"message"`
	Status        *string `json:"status"`
}

// NewHandler binds the appointment requests collection to the generic
// endpoint factory. Type and status fall back to their defaults when the
// payload leaves them empty.
func NewHandler(db *gorm.DB) *crud.Handler[models.AppointmentModel, CreateAppointmentDTO, UpdateAppointmentDTO] {
	return crud.New(db, crud.Mapping[models.AppointmentModel, CreateAppointmentDTO, UpdateAppointmentDTO]{
		Build: func(dto *CreateAppointmentDTO) models.AppointmentModel {
			m := models.AppointmentModel{
				Type:          dto.Type,
				Name:          dto.Name,
				Phone:         dto.Phone,
				Subject:       dto.Subject,
				OpponentName:  dto.OpponentName,
				Topic:         dto.Topic,
				RequestedDate: dto.RequestedDate,
				Message:       dto.Message,
				Status:        dto.Status,
			}
			if m.Type == "" {
				m.Type = models.AppointmentDefaultType
			}
			if m.Status == "" {
				m.Status = models.AppointmentDefaultStatus
			}
			return m
		},
		Apply: func(dto *UpdateAppointmentDTO, m *models.AppointmentModel) {
			if dto.Type != nil {
				m.Type = *dto.Type
			}
			if dto.Name != nil {
				m.Name = *dto.Name
			}
			if dto.Phone != nil {
				m.Phone = *dto.Phone
			}
			if dto.Subject != nil {
				m.Subject = *dto.Subject
			}
			if dto.OpponentName != nil {
				m.OpponentName = *dto.OpponentName
			}
			if dto.Topic != nil {
				m.Topic = *dto.Topic
			}
			if dto.RequestedDate != nil {
				m.RequestedDate = *dto.RequestedDate
			}
			if dto.Message != nil {
				m.Message = *dto.Message
			}
			if dto.Status != nil {
				m.Status = *dto.Status
			}
		},
	})
}
