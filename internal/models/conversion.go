package models

// ConversionModel is a personal conversion story.
type ConversionModel struct {
	Base
	Name     string `json:"name"`
	Story    string `json:"story" gorm:"type:longtext"`
	Date     string `json:"date"`
	MediaURL string `json:"mediaUrl"`
}

func (ConversionModel) TableName() string { return "conversions" }
