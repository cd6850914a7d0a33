package model

import "time"

// Category — колонка доски ретроспективы. Набор фиксирован.
type Category string

const (
	CategoryGood   Category = "good"
	CategoryBad    Category = "bad"
	CategoryBetter Category = "better"
)

// Categories — все колонки в порядке отображения.
var Categories = []Category{CategoryGood, CategoryBad, CategoryBetter}

// Valid сообщает, входит ли категория в фиксированный набор.
func (c Category) Valid() bool {
	switch c {
	case CategoryGood, CategoryBad, CategoryBetter:
		return true
	}
	return false
}

// Vote — голос за запись, как его отдаёт сервер.
type Vote struct {
	ID     string `json:"id"`
	UserID int64  `json:"user_id"`
	Voter  string `json:"voter"` // денормализованное имя голосовавшего
}

// Comment — комментарий к записи.
type Comment struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Item — запись доски с вложенными голосами и комментариями (результат join
// на сервере). Votes и Comments могут прийти как null — Normalize приводит
// их к пустым срезам.
type Item struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	Votes     []Vote    `json:"votes"`
	Comments  []Comment `json:"comments"`
}

// Normalize заменяет отсутствующие вложенные коллекции пустыми.
func (it *Item) Normalize() {
	if it.Votes == nil {
		it.Votes = []Vote{}
	}
	if it.Comments == nil {
		it.Comments = []Comment{}
	}
}

// BoardResponse — ответ сервера на запрос всех записей.
type BoardResponse struct {
	Items []Item `json:"items"`
}
