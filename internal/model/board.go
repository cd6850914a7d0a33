package model

import "time"

// Category — фиксированная колонка доски ретроспективы.
type Category string

const (
	CategoryGood   Category = "good"
	CategoryBad    Category = "bad"
	CategoryBetter Category = "better"
)

// Categories — полный набор колонок в порядке отображения.
var Categories = []Category{CategoryGood, CategoryBad, CategoryBetter}

// Valid сообщает, входит ли категория в фиксированный набор.
func (c Category) Valid() bool {
	switch c {
	case CategoryGood, CategoryBad, CategoryBetter:
		return true
	}
	return false
}

// Item — запись на доске. Записи создаются и удаляются, но не редактируются.
type Item struct {
	ID       string   `gorm:"primaryKey;type:uuid"`
	Category Category `gorm:"not null;index"`
	Content  string   `gorm:"not null"`

	UserID int64 `gorm:"not null;index"` // ссылка на users.id — автор записи
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	// Связи: голоса и комментарии удаляются каскадно вместе с записью.
	Votes    []Vote    `gorm:"constraint:OnDelete:CASCADE"`
	Comments []Comment `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Vote — голос пользователя за запись. Не более одного голоса на пару
// (item, user); повторное действие пользователя снимает голос.
type Vote struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	ItemID string `gorm:"type:uuid;not null;uniqueIndex:idx_votes_item_user"`
	UserID int64  `gorm:"not null;uniqueIndex:idx_votes_item_user"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Comment — комментарий к записи.
type Comment struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	ItemID  string `gorm:"type:uuid;not null;index"`
	Content string `gorm:"not null"`

	UserID int64 `gorm:"not null;index"` // автор комментария
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
