package model

import "time"

// セッション内のカード1枚分の解答記録。
// EaseFactor/Intervalは間隔反復の将来拡張用で今は初期値のまま
type StudyRecord struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	SessionID   string    `gorm:"type:varchar(36);not null;index" json:"session_id"`
	FlashcardID string    `gorm:"type:varchar(36);not null" json:"flashcard_id"`
	IsCorrect   bool      `gorm:"not null" json:"is_correct"`
	EaseFactor  float64   `gorm:"not null;default:2.5" json:"ease_factor"`
	Interval    int       `gorm:"not null;default:0" json:"interval"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
