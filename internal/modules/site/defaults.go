package site

import "github.com/minbarhq/core/internal/models"

// defaultSettings is the document written on the first settings read.
func defaultSettings() models.SettingsModel {
	return models.SettingsModel{
		MaintenanceMode: false,
		FlashMessage:    "Welcome to our campaign. Follow the news section for the latest updates.",
		FlashActive:     false,
	}
}

// defaultCampaign is the document written on the first campaign read.
func defaultCampaign() models.CampaignModel {
	return models.CampaignModel{
		Title:         "Support the Dawah Campaign",
		Description:   "Your donation funds debates, publications and outreach work throughout the year.",
		TargetAmount:  100000000,
		CurrentAmount: 0,
		ImageURL:      "/images/campaign-banner.jpg",
		TrustIndicators: []models.TrustIndicator{
			{Icon: "shield", Title: "Secure donations", Text: "Payments are processed by a certified provider."},
			{Icon: "users", Title: "Community backed", Text: "Thousands of supporters fund this work."},
			{Icon: "file-text", Title: "Transparent reporting", Text: "Spending reports are published every quarter."},
		},
	}
}
