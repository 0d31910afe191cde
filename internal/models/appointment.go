package models

// Appointment defaults applied when the payload leaves them empty.
const (
	AppointmentDefaultType   = "contact"
	AppointmentDefaultStatus = "pending"
)

// AppointmentModel is an inbound appointment/contact request.
type AppointmentModel struct {
	Base
	Type          string `json:"type"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Subject       string `json:"subject"`
	OpponentName  string `json:"opponentName"`
	Topic         string `json:"topic"`
	RequestedDate string `json:"requestedDate"`
	Message       string `json:"message" gorm:"type:longtext"`
	Status        string `json:"status"`
}

func (AppointmentModel) TableName() string { return "appointments" }
