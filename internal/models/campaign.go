package models

// TrustIndicator is an icon + copy pair shown under the donation widget.
type TrustIndicator struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// CampaignModel is the fundraising campaign singleton.
type CampaignModel struct {
	Base
	Title           string           `json:"title"`
	Description     string           `json:"description"     gorm:"type:longtext"`
	TargetAmount    float64          `json:"targetAmount"`
	CurrentAmount   float64          `json:"currentAmount"`
	ImageURL        string           `json:"imageUrl"`
	TrustIndicators []TrustIndicator `json:"trustIndicators" gorm:"type:longtext;serializer:json"`
}

func (CampaignModel) TableName() string { return "campaigns" }
