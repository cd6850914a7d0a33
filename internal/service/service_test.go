package service

import (
	"RetroBoard/internal/model"
	"RetroBoard/internal/repo"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB — in-memory SQLite с уникальным именем на тест.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:svc_" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Item{}, &model.Vote{}, &model.Comment{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db
}

func newBoardService(t *testing.T, db *gorm.DB) *BoardService {
	t.Helper()
	return NewBoardService(
		repo.NewItemRepository(db),
		repo.NewVoteRepository(db),
		repo.NewCommentRepository(db),
		zap.NewNop().Sugar(),
	)
}

func createUser(t *testing.T, db *gorm.DB, login string) *model.User {
	t.Helper()
	u := &model.User{Login: login, Password: "hash", Name: login}
	require.NoError(t, db.Create(u).Error)
	return u
}
