package model

import "time"

type Flashcard struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	DeckID    string    `gorm:"type:varchar(36);not null;index" json:"deck_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
