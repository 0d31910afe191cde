package models

// DebateModel is a recorded debate video entry.
type DebateModel struct {
	Base
	Title        string `json:"title"       gorm:"not null"`
	Description  string `json:"description" gorm:"type:longtext"`
	VideoURL     string `json:"videoUrl"`
	Date         string `json:"date"`
	Speaker      string `json:"speaker"`
	Location     string `json:"location"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

func (DebateModel) TableName() string { return "debates" }
