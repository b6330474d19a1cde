package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AdminSubscriber links a Telegram chat to the complaint categories it
// wants to be notified about. An empty category list means every category.
type AdminSubscriber struct {
	ID         string         `gorm:"primaryKey" json:"id"`
	ChatID     int64          `gorm:"uniqueIndex" json:"chat_id"`
	Categories pq.StringArray `gorm:"type:text[]" json:"categories"`
}

// BeforeCreate is a GORM hook generating the subscriber id when absent.
func (s *AdminSubscriber) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

// WantsCategory reports whether the subscriber should be notified about a
// complaint of the given category.
func (s *AdminSubscriber) WantsCategory(category string) bool {
	if len(s.Categories) == 0 {
		return true
	}
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}
