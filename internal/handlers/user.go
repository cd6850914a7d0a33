package handlers

import (
	"RetroBoard/internal/config"
	"RetroBoard/internal/middleware"
	"RetroBoard/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию и вход.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

// CredentialsRequest — тело запросов register/login.
type CredentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"` // отображаемое имя, только для register
}

// UserResponse — данные пользователя, возвращаемые после register/login.
type UserResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// Register регистрирует пользователя и сразу выдаёт auth-cookie.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	u, err := h.UserService.Register(r.Context(), req.Login, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLoginTaken):
			writeError(w, http.StatusConflict, "login already taken")
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusBadRequest, "login and password are required")
		default:
			h.Logger.Errorw("Register: service error", "login", req.Login, "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: failed to set cookie", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, UserResponse{UserID: u.ID, Name: u.Name})
}

// Login проверяет учётные данные и выдаёт auth-cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	u, err := h.UserService.Authenticate(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid login or password")
			return
		}
		h.Logger.Errorw("Login: service error", "login", req.Login, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: failed to set cookie", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, UserResponse{UserID: u.ID, Name: u.Name})
}

// Status отвечает, от чьего имени выполняется запрос.
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	if uid, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		writeJSON(w, http.StatusOK, map[string]string{"result": fmt.Sprintf("User ID = %d", uid)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": "anonymous"})
}
