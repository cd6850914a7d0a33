package service

import (
	"RetroBoard/internal/cli/api"
	"RetroBoard/internal/cli/board"
	"RetroBoard/internal/cli/model"
	fsrepo "RetroBoard/internal/cli/repo/fs"
	"RetroBoard/internal/config"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Ошибки предусловий: до сервера такие действия не доходят.
var (
	// ErrNotSignedIn — нет сохранённого токена; нужен login/register.
	ErrNotSignedIn = errors.New("not signed in: run login or register first")

	// ErrEmptyDraft — черновик пуст после обрезки пробелов.
	ErrEmptyDraft = errors.New("nothing to send: text is empty")

	// ErrCancelled — пользователь не подтвердил разрушающее действие.
	ErrCancelled = errors.New("cancelled")
)

// Session владеет локальным состоянием клиента: моделью отображения и
// черновиками ввода. Каждая мутация — ровно один запрос к серверу, затем
// полная перезагрузка; инкрементальных обновлений модели нет.
type Session struct {
	cfg    *config.Config
	token  string
	user   fsrepo.UserContext
	loaded bool // есть ли сохранённый контекст пользователя

	view board.ViewModel
	// Ошибка последней перезагрузки после успешной мутации: мутацию она не
	// отменяет, но отображение могло устареть — о чём нужно предупредить.
	reloadErr error

	// Черновики ввода. Перезагрузка их не трогает; очищаются только
	// после успешной мутации, чтобы текст не терялся при ошибке.
	itemDrafts    map[model.Category]string
	commentDrafts map[string]string // по ID записи
}

// NewSession создаёт сессию, подхватывая сохранённые токен и пользователя.
func NewSession(cfg *config.Config) *Session {
	s := &Session{
		cfg:           cfg,
		view:          board.ViewModel{},
		itemDrafts:    make(map[model.Category]string),
		commentDrafts: make(map[string]string),
	}
	store := fsrepo.AuthFSStore{}
	if tok, err := store.Load(); err == nil {
		s.token = tok
	}
	if u, err := store.LoadUser(); err == nil {
		s.user = u
		s.loaded = true
	}
	api.SetAPIKey(cfg.AnonKey)
	return s
}

// CurrentUser возвращает контекст пользователя и признак "загружен".
// Пока не загружен, идентификатор не определён.
func (s *Session) CurrentUser() (fsrepo.UserContext, bool) {
	return s.user, s.loaded
}

// View возвращает текущую (возможно устаревшую) модель отображения.
func (s *Session) View() board.ViewModel {
	return s.view
}

// SetItemDraft сохраняет черновик новой записи для колонки.
func (s *Session) SetItemDraft(c model.Category, text string) {
	s.itemDrafts[c] = text
}

// ItemDraft возвращает черновик новой записи для колонки.
func (s *Session) ItemDraft(c model.Category) string {
	return s.itemDrafts[c]
}

// SetCommentDraft сохраняет черновик комментария к записи.
func (s *Session) SetCommentDraft(itemID, text string) {
	s.commentDrafts[itemID] = text
}

// CommentDraft возвращает черновик комментария к записи.
func (s *Session) CommentDraft(itemID string) string {
	return s.commentDrafts[itemID]
}

func (s *Session) endpoint(path string) string {
	return strings.TrimRight(s.cfg.ServerURL, "/") + path
}

// serverMessage достаёт сообщение об ошибке из тела ответа;
// если не вышло — возвращает fallback.
func serverMessage(body []byte, fallback string) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	if t := strings.TrimSpace(string(body)); t != "" {
		return t
	}
	return fallback
}

// Reload перезагружает доску целиком: запрашивает все записи и пересобирает
// модель отображения. При ошибке прежняя модель остаётся на месте
// (устаревшая, но согласованная), черновики не затрагиваются.
func (s *Session) Reload() error {
	resp, body, err := api.GetJSON(s.endpoint("/api/board/items"), s.token)
	if err != nil {
		return fmt.Errorf("fetch board: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.New(serverMessage(body, "failed to load the board"))
	}
	var br model.BoardResponse
	if err := json.Unmarshal(body, &br); err != nil {
		return fmt.Errorf("decode board: %w", err)
	}
	s.view = board.Assemble(br.Items)
	return nil
}

// reloadAfterMutation — перезагрузка после успешной мутации. Ошибка загрузки
// здесь не фатальна (мутация уже применена), но запоминается: вызывающий код
// обязан предупредить пользователя, что отображение могло устареть.
func (s *Session) reloadAfterMutation() {
	s.reloadErr = s.Reload()
}

// ReloadWarning возвращает ошибку перезагрузки после последней успешной
// мутации; nil, если перезагрузка прошла.
func (s *Session) ReloadWarning() error {
	return s.reloadErr
}

// AddItem отправляет черновик колонки как новую запись. Пустой после обрезки
// черновик — ErrEmptyDraft, запрос не выполняется. При успехе черновик
// очищается и доска перезагружается; при ошибке черновик сохраняется.
func (s *Session) AddItem(c model.Category) error {
	if s.token == "" {
		return ErrNotSignedIn
	}
	content := strings.TrimSpace(s.itemDrafts[c])
	if content == "" {
		return ErrEmptyDraft
	}
	payload := map[string]string{"category": string(c), "content": content}
	resp, body, err := api.PostJSON(s.endpoint("/api/board/items"), payload, s.token)
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return errors.New(serverMessage(body, "failed to add the item"))
	}
	delete(s.itemDrafts, c)
	s.reloadAfterMutation()
	return nil
}

// ToggleVote ставит или снимает голос за запись. Оптимистичных локальных
// обновлений нет: отображаемое состояние меняется только после перезагрузки.
func (s *Session) ToggleVote(itemID string) (bool, error) {
	if s.token == "" {
		return false, ErrNotSignedIn
	}
	resp, body, err := api.PostJSON(s.endpoint("/api/board/items/"+itemID+"/vote"), struct{}{}, s.token)
	if err != nil {
		return false, fmt.Errorf("toggle vote: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, errors.New(serverMessage(body, "failed to toggle the vote"))
	}
	var vr struct {
		Voted bool `json:"voted"`
	}
	_ = json.Unmarshal(body, &vr)
	s.reloadAfterMutation()
	return vr.Voted, nil
}

// AddComment отправляет черновик комментария к записи.
func (s *Session) AddComment(itemID string) error {
	if s.token == "" {
		return ErrNotSignedIn
	}
	content := strings.TrimSpace(s.commentDrafts[itemID])
	if content == "" {
		return ErrEmptyDraft
	}
	payload := map[string]string{"content": content}
	resp, body, err := api.PostJSON(s.endpoint("/api/board/items/"+itemID+"/comments"), payload, s.token)
	if err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return errors.New(serverMessage(body, "failed to add the comment"))
	}
	delete(s.commentDrafts, itemID)
	s.reloadAfterMutation()
	return nil
}

// DeleteItem удаляет запись (с голосами и комментариями). Требует
// подтверждения: отказ — ErrCancelled, никаких побочных эффектов.
func (s *Session) DeleteItem(itemID string, confirm func(prompt string) bool) error {
	if s.token == "" {
		return ErrNotSignedIn
	}
	if confirm != nil && !confirm("Delete the item with all its votes and comments?") {
		return ErrCancelled
	}
	resp, body, err := api.Delete(s.endpoint("/api/board/items/"+itemID), s.token)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return errors.New(serverMessage(body, "failed to delete the item"))
	}
	s.reloadAfterMutation()
	return nil
}

// DeleteComment удаляет комментарий. Требует подтверждения.
func (s *Session) DeleteComment(commentID string, confirm func(prompt string) bool) error {
	if s.token == "" {
		return ErrNotSignedIn
	}
	if confirm != nil && !confirm("Delete the comment?") {
		return ErrCancelled
	}
	resp, body, err := api.Delete(s.endpoint("/api/board/comments/"+commentID), s.token)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		return errors.New(serverMessage(body, "failed to delete the comment"))
	}
	s.reloadAfterMutation()
	return nil
}
