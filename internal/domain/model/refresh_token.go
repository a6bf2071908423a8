package model

import "time"

// リフレッシュトークン1件。Revokedはfalse→trueの一方向のみ
type RefreshToken struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Token     string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"-"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"not null;default:false" json:"revoked"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// 期限切れ判定。保存状態は変えない（読み取り時に導出する）
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
