package models

// NewsModel is a published news post.
type NewsModel struct {
	Base
	Title    string   `json:"title"    gorm:"not null"`
	Content  string   `json:"content"  gorm:"type:longtext"`
	ImageURL string   `json:"imageUrl"`
	Category string   `json:"category"`
	Author   string   `json:"author"`
	Tags     []string `json:"tags"     gorm:"type:longtext;serializer:json"`
}

func (NewsModel) TableName() string { return "news" }
