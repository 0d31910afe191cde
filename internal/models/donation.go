package models

// DonationModel is a single donation record.
type DonationModel struct {
	Base
	Amount        float64 `json:"amount"`
	DonorName     string  `json:"donorName"`
	DonorPhone    string  `json:"donorPhone"`
	IsAnonymous   bool    `json:"isAnonymous"`
	Method        string  `json:"method"`
	Status        string  `json:"status"`
	TransactionID string  `json:"transactionId"`
}

func (DonationModel) TableName() string { return "donations" }
