package repo

import (
	"RetroBoard/internal/model"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает подключение к PostgreSQL и выполняет миграции моделей.
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("empty database DSN")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Item{}, &model.Vote{}, &model.Comment{}); err != nil {
		return nil, err
	}
	return db, nil
}
