package handlers

import (
	"RetroBoard/internal/middleware"
	"RetroBoard/internal/model"
	"RetroBoard/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BoardHandler обрабатывает записи доски, голоса и комментарии.
type BoardHandler struct {
	Board  *service.BoardService
	Logger *zap.SugaredLogger
}

// NewBoardHandler создаёт хендлер доски.
func NewBoardHandler(board *service.BoardService, logger *zap.SugaredLogger) *BoardHandler {
	return &BoardHandler{Board: board, Logger: logger}
}

// VoteDTO — голос в ответе API, с денормализованным именем голосовавшего.
type VoteDTO struct {
	ID     string `json:"id"`
	UserID int64  `json:"user_id"`
	Voter  string `json:"voter"`
}

// CommentDTO — комментарий в ответе API.
type CommentDTO struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemDTO — запись с вложенными голосами и комментариями.
// Вложенные коллекции всегда присутствуют (пустой массив, не null).
type ItemDTO struct {
	ID        string       `json:"id"`
	Category  string       `json:"category"`
	Content   string       `json:"content"`
	UserID    int64        `json:"user_id"`
	Author    string       `json:"author"`
	CreatedAt time.Time    `json:"created_at"`
	Votes     []VoteDTO    `json:"votes"`
	Comments  []CommentDTO `json:"comments"`
}

// ListResponse — ответ GET /api/board/items.
type ListResponse struct {
	Items []ItemDTO `json:"items"`
}

// AddItemRequest — тело POST /api/board/items.
type AddItemRequest struct {
	Category string `json:"category"`
	Content  string `json:"content"`
}

// AddCommentRequest — тело POST /api/board/items/{id}/comments.
type AddCommentRequest struct {
	Content string `json:"content"`
}

func userName(u *model.User) string {
	if u == nil {
		return ""
	}
	return u.Name
}

func toItemDTO(it model.Item) ItemDTO {
	dto := ItemDTO{
		ID:        it.ID,
		Category:  string(it.Category),
		Content:   it.Content,
		UserID:    it.UserID,
		Author:    userName(it.User),
		CreatedAt: it.CreatedAt.UTC(),
		Votes:     make([]VoteDTO, 0, len(it.Votes)),
		Comments:  make([]CommentDTO, 0, len(it.Comments)),
	}
	for _, v := range it.Votes {
		dto.Votes = append(dto.Votes, VoteDTO{ID: v.ID, UserID: v.UserID, Voter: userName(v.User)})
	}
	for _, c := range it.Comments {
		dto.Comments = append(dto.Comments, CommentDTO{
			ID:        c.ID,
			UserID:    c.UserID,
			Author:    userName(c.User),
			Content:   c.Content,
			CreatedAt: c.CreatedAt.UTC(),
		})
	}
	return dto
}

// ListItems отдаёт все записи доски с авторами, голосами и комментариями.
// Доступно только аутентифицированным участникам.
func (h *BoardHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	items, err := h.Board.ListItems(r.Context())
	if err != nil {
		h.Logger.Errorw("ListItems: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := ListResponse{Items: make([]ItemDTO, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, toItemDTO(it))
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddItem создаёт запись в указанной категории от имени текущего пользователя.
func (h *BoardHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("AddItem: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	it, err := h.Board.AddItem(r.Context(), userID, model.Category(req.Category), req.Content)
	if err != nil {
		h.writeBoardError(w, "AddItem", err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemDTO(*it))
}

// ToggleVote ставит или снимает голос текущего пользователя.
func (h *BoardHandler) ToggleVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	itemID := chi.URLParam(r, "id")
	voted, err := h.Board.ToggleVote(r.Context(), userID, itemID)
	if err != nil {
		h.writeBoardError(w, "ToggleVote", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"voted": voted})
}

// AddComment создаёт комментарий к записи.
func (h *BoardHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("AddComment: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	itemID := chi.URLParam(r, "id")
	c, err := h.Board.AddComment(r.Context(), userID, itemID, req.Content)
	if err != nil {
		h.writeBoardError(w, "AddComment", err)
		return
	}
	writeJSON(w, http.StatusCreated, CommentDTO{
		ID:        c.ID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt.UTC(),
	})
}

// DeleteItem удаляет запись текущего пользователя вместе с её голосами и комментариями.
func (h *BoardHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	itemID := chi.URLParam(r, "id")
	if err := h.Board.DeleteItem(r.Context(), userID, itemID); err != nil {
		h.writeBoardError(w, "DeleteItem", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteComment удаляет комментарий текущего пользователя.
func (h *BoardHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	commentID := chi.URLParam(r, "id")
	if err := h.Board.DeleteComment(r.Context(), userID, commentID); err != nil {
		h.writeBoardError(w, "DeleteComment", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeBoardError отображает доменные ошибки в HTTP-статусы.
func (h *BoardHandler) writeBoardError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrEmptyContent):
		writeError(w, http.StatusBadRequest, "content is empty")
	case errors.Is(err, service.ErrUnknownCategory):
		writeError(w, http.StatusBadRequest, "unknown category")
	default:
		h.Logger.Errorw(op+": service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// writeJSON пишет ответ с Content-Type application/json.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError пишет JSON-объект {"error": msg}: клиент показывает msg пользователю.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
