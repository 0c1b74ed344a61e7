package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentItem is one presentable item in the gallery demo
type ContentItem struct {
	ID        string
	Title     string
	Subtitle  string
	Type      ContentType
	CreatedAt time.Time
}

// NewContentItem creates a content item with a fresh ID
func NewContentItem(title string, contentType ContentType) *ContentItem {
	return &ContentItem{
		ID:        uuid.New().String(),
		Title:     title,
		Type:      contentType,
		CreatedAt: time.Now(),
	}
}
