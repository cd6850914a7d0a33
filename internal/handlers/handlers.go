package handlers

import (
	"RetroBoard/internal/config"
	"RetroBoard/internal/middleware"
	"RetroBoard/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	boardService *service.BoardService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAPIKey(config.AnonKey))
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	boardHandler := NewBoardHandler(boardService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/test", userHandler.Status)

	// Board routes
	r.Get("/api/board/items", boardHandler.ListItems)
	r.Post("/api/board/items", boardHandler.AddItem)
	r.Delete("/api/board/items/{id}", boardHandler.DeleteItem)
	r.Post("/api/board/items/{id}/vote", boardHandler.ToggleVote)
	r.Post("/api/board/items/{id}/comments", boardHandler.AddComment)
	r.Delete("/api/board/comments/{id}", boardHandler.DeleteComment)

	return &Handler{Router: r}
}
