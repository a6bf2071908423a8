package model

import "time"

// 学習セッション1回分。EndedAtがnilの間は進行中
type StudySession struct {
	ID        string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string     `gorm:"type:varchar(36);not null;index" json:"user_id"`
	DeckID    string     `gorm:"type:varchar(36);not null;index" json:"deck_id"`
	StartedAt time.Time  `gorm:"not null;autoCreateTime" json:"started_at"`
	EndedAt   *time.Time `json:"ended_at"`
}

func (s *StudySession) Ended() bool {
	return s.EndedAt != nil
}
