package models

// SettingsModel is the site-wide settings singleton. At most one row is
// expected to exist; the application addresses the oldest row only.
type SettingsModel struct {
	Base
	MaintenanceMode bool   `json:"maintenanceMode"`
	FlashMessage    string `json:"flashMessage"`
	FlashActive     bool   `json:"flashActive"`
}

func (SettingsModel) TableName() string { return "settings" }
