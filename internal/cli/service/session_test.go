package service

import (
	"RetroBoard/internal/cli/model"
	fsrepo "RetroBoard/internal/cli/repo/fs"
	"RetroBoard/internal/config"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withSignedIn переводит конфиг-каталог в temp и сохраняет токен и
// контекст пользователя, как после успешного login.
func withSignedIn(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	store := fsrepo.AuthFSStore{}
	require.NoError(t, store.Save("tok-test"))
	require.NoError(t, store.SaveUser(fsrepo.UserContext{ID: 7, Name: "alice"}))
}

const boardJSON = `{"items":[
  {"id":"i1","category":"good","content":"fast ci","user_id":7,"author":"alice",
   "created_at":"2025-06-01T10:00:00Z","votes":[{"id":"v1","user_id":9,"voter":"bob"}],"comments":[]},
  {"id":"i2","category":"bad","content":"late standup","user_id":9,"author":"bob",
   "created_at":"2025-06-01T11:00:00Z","votes":null,"comments":null}
]}`

// счётчики по методам, чтобы проверять "запрос не выполнялся"
type countingServer struct {
	*httptest.Server
	gets      atomic.Int64
	mutations atomic.Int64
}

func newBoardServer(t *testing.T, mutationStatus int, mutationBody string) *countingServer {
	t.Helper()
	cs := &countingServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			cs.gets.Add(1)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(boardJSON))
			return
		}
		cs.mutations.Add(1)
		if mutationBody != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(mutationStatus)
		_, _ = w.Write([]byte(mutationBody))
	}))
	t.Cleanup(cs.Close)
	return cs
}

func newTestSession(t *testing.T, serverURL string) *Session {
	t.Helper()
	return NewSession(&config.Config{ServerURL: serverURL, AnonKey: "dev-anon-key"})
}

func TestSession_ReloadAssemblesView(t *testing.T) {
	withSignedIn(t)
	srv := newBoardServer(t, http.StatusCreated, "")
	s := newTestSession(t, srv.URL)

	require.NoError(t, s.Reload())
	view := s.View()

	require.Len(t, view[model.CategoryGood], 1)
	assert.Equal(t, "i1", view[model.CategoryGood][0].ID)
	require.Len(t, view[model.CategoryBad], 1)
	// null-коллекции нормализованы
	assert.NotNil(t, view[model.CategoryBad][0].Votes)
	assert.NotNil(t, view[model.CategoryBad][0].Comments)
	// пустая колонка присутствует
	g, ok := view[model.CategoryBetter]
	require.True(t, ok)
	assert.Empty(t, g)
}

// Ошибка загрузки оставляет прежнюю модель на месте (устаревшую, но целую).
func TestSession_ReloadFailureKeepsStaleView(t *testing.T) {
	withSignedIn(t)
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			http.Error(w, `{"error":"db down"}`, http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(boardJSON))
	}))
	defer srv.Close()
	s := newTestSession(t, srv.URL)

	require.NoError(t, s.Reload())
	before := s.View()
	require.Len(t, before[model.CategoryGood], 1)

	fail = true
	err := s.Reload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Equal(t, before, s.View(), "stale view must survive a failed reload")
}

// Черновик из одних пробелов — запрос к серверу не выполняется вовсе.
func TestSession_AddItemWhitespaceIsNoop(t *testing.T) {
	withSignedIn(t)
	srv := newBoardServer(t, http.StatusCreated, "")
	s := newTestSession(t, srv.URL)

	s.SetItemDraft(model.CategoryGood, "   \t  ")
	err := s.AddItem(model.CategoryGood)
	assert.True(t, errors.Is(err, ErrEmptyDraft))
	assert.Zero(t, srv.mutations.Load(), "no backend call expected")
	assert.Zero(t, srv.gets.Load())
}

// Без токена мутации не доходят до сервера.
func TestSession_RequiresSignIn(t *testing.T) {
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	srv := newBoardServer(t, http.StatusCreated, "")
	s := newTestSession(t, srv.URL)

	s.SetItemDraft(model.CategoryGood, "text")
	assert.True(t, errors.Is(s.AddItem(model.CategoryGood), ErrNotSignedIn))
	_, err := s.ToggleVote("i1")
	assert.True(t, errors.Is(err, ErrNotSignedIn))
	assert.Zero(t, srv.mutations.Load())

	_, loaded := s.CurrentUser()
	assert.False(t, loaded)
}

// Успешная мутация очищает черновик и перезагружает доску.
func TestSession_AddItemSuccessClearsDraftAndReloads(t *testing.T) {
	withSignedIn(t)
	srv := newBoardServer(t, http.StatusCreated, `{"id":"i9"}`)
	s := newTestSession(t, srv.URL)

	s.SetItemDraft(model.CategoryGood, "  честное ревью  ")
	require.NoError(t, s.AddItem(model.CategoryGood))

	assert.Equal(t, "", s.ItemDraft(model.CategoryGood), "draft must be cleared on success")
	assert.Equal(t, int64(1), srv.mutations.Load())
	assert.Equal(t, int64(1), srv.gets.Load(), "a full reload must follow the mutation")
	assert.Len(t, s.View()[model.CategoryGood], 1)
	assert.NoError(t, s.ReloadWarning())
}

// Мутация прошла, но перезагрузка упала: действие считается успешным,
// черновик очищен, а ошибка перезагрузки доступна как предупреждение.
func TestSession_MutationSucceedsReloadFails(t *testing.T) {
	withSignedIn(t)
	srv := &countingServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			srv.gets.Add(1)
			http.Error(w, `{"error":"db down"}`, http.StatusInternalServerError)
			return
		}
		srv.mutations.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()
	s := newTestSession(t, srv.URL)

	s.SetItemDraft(model.CategoryGood, "текст записи")
	require.NoError(t, s.AddItem(model.CategoryGood), "mutation itself succeeded")
	assert.Equal(t, "", s.ItemDraft(model.CategoryGood), "draft cleared: the item was accepted")
	assert.Equal(t, int64(1), srv.gets.Load(), "reload was attempted")

	err := s.ReloadWarning()
	require.Error(t, err, "failed reload must not vanish silently")
	assert.Contains(t, err.Error(), "db down")
}

// Ошибка мутации: черновик сохраняется, перезагрузка не выполняется,
// сообщение сервера доносится до пользователя.
func TestSession_MutationFailureKeepsDraft(t *testing.T) {
	withSignedIn(t)
	srv := newBoardServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	s := newTestSession(t, srv.URL)

	s.SetItemDraft(model.CategoryBad, "важный текст")
	err := s.AddItem(model.CategoryBad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom", "server-provided message must surface")
	assert.Equal(t, "важный текст", s.ItemDraft(model.CategoryBad), "draft must survive the failure")
	assert.Zero(t, srv.gets.Load(), "no reload after a failed mutation")

	// то же для комментария
	s.SetCommentDraft("i1", "не потеряй меня")
	err = s.AddComment("i1")
	require.Error(t, err)
	assert.Equal(t, "не потеряй меня", s.CommentDraft("i1"))
}

// Фолбэк-сообщение, когда сервер не вернул текста ошибки.
func TestSession_MutationFailureFallbackMessage(t *testing.T) {
	withSignedIn(t)
	srv := newBoardServer(t, http.StatusBadGateway, "")
	s := newTestSession(t, srv.URL)

	s.SetItemDraft(model.CategoryGood, "text")
	err := s.AddItem(model.CategoryGood)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add the item")
}

func TestSession_ToggleVote(t *testing.T) {
	withSignedIn(t)
	srv := newBoardServer(t, http.StatusOK, `{"voted":true}`)
	s := newTestSession(t, srv.URL)

	voted, err := s.ToggleVote("i1")
	require.NoError(t, err)
	assert.True(t, voted)
	assert.Equal(t, int64(1), srv.mutations.Load())
	assert.Equal(t, int64(1), srv.gets.Load())
}

// Отказ от подтверждения: никаких запросов, ErrCancelled.
func TestSession_DeleteDeclinedHasNoSideEffects(t *testing.T) {
	withSignedIn(t)
	srv := newBoardServer(t, http.StatusNoContent, "")
	s := newTestSession(t, srv.URL)

	decline := func(string) bool { return false }
	assert.True(t, errors.Is(s.DeleteItem("i1", decline), ErrCancelled))
	assert.True(t, errors.Is(s.DeleteComment("c1", decline), ErrCancelled))
	assert.Zero(t, srv.mutations.Load())
	assert.Zero(t, srv.gets.Load())
}

func TestSession_DeleteConfirmed(t *testing.T) {
	withSignedIn(t)
	srv := &countingServer{}
	srv.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			srv.gets.Add(1)
			_, _ = w.Write([]byte(boardJSON))
		case http.MethodDelete:
			srv.mutations.Add(1)
			if !strings.Contains(r.Header.Get("Cookie"), "auth_token=tok-test") {
				t.Errorf("missing auth cookie")
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()
	s := newTestSession(t, srv.URL)

	accept := func(string) bool { return true }
	require.NoError(t, s.DeleteItem("i1", accept))
	require.NoError(t, s.DeleteComment("c1", accept))
	assert.Equal(t, int64(2), srv.mutations.Load())
	assert.Equal(t, int64(2), srv.gets.Load())
}
