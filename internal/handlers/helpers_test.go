package handlers_test

import (
	"RetroBoard/internal/config"
	"RetroBoard/internal/handlers"
	"RetroBoard/internal/middleware"
	"RetroBoard/internal/model"
	"RetroBoard/internal/repo"
	"RetroBoard/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

// newTestDB — in-memory SQLite для хендлер-тестов, имя базы на тест.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:h_" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
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

// newTestRouter собирает полный стек поверх sqlite.
func newTestRouter(t *testing.T, db *gorm.DB) http.Handler {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret} // AnonKey пуст — проверка ключа выключена
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(repo.NewUserRepository(db))
	boardSvc := service.NewBoardService(
		repo.NewItemRepository(db),
		repo.NewVoteRepository(db),
		repo.NewCommentRepository(db),
		logger,
	)

	h := handlers.NewHandler(userSvc, boardSvc, logger, cfg)
	return h.Router
}

func newBoardUser(t *testing.T, db *gorm.DB, login string) *model.User {
	t.Helper()
	u := &model.User{Login: login, Password: "hash", Name: login}
	require.NoError(t, db.Create(u).Error)
	return u
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
