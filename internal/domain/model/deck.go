package model

import "time"

// 単語帳（デッキ）。公開デッキは誰でも閲覧できる
type Deck struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	IsPublic    bool      `gorm:"not null;default:false" json:"is_public"`
	OwnerID     string    `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	SharedWith  []User    `gorm:"many2many:deck_shares" json:"-"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
