package model

import "time"

// User — участник ретроспективы.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Login    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt-хеш

	// Name — отображаемое имя; денормализуется в ответы API как author/voter.
	Name string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
