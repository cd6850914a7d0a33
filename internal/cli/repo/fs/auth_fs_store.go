package fs

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// AuthFSStore — файловое хранилище токена и контекста пользователя для CLI.
type AuthFSStore struct{}

// UserContext — сохранённые после login/register данные пользователя.
type UserContext struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "RetroBoard")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func tokenPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "auth_token"), nil
}

func userPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "current_user"), nil
}

// Save сохраняет auth‑токен в файл.
func (AuthFSStore) Save(token string) error {
	p, err := tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает auth‑токен из файла.
func (AuthFSStore) Load() (string, error) {
	p, err := tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return string(b), nil
}

// SaveUser сохраняет контекст текущего пользователя.
func (AuthFSStore) SaveUser(u UserContext) error {
	if u.ID == 0 {
		return errors.New("empty user id")
	}
	p, err := userPath()
	if err != nil {
		return err
	}
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// LoadUser читает контекст текущего пользователя.
func (AuthFSStore) LoadUser() (UserContext, error) {
	var u UserContext
	p, err := userPath()
	if err != nil {
		return u, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return u, err
	}
	if err := json.Unmarshal(b, &u); err != nil {
		return u, err
	}
	if u.ID == 0 {
		return u, errors.New("no stored user")
	}
	return u, nil
}

// Clear удаляет сохранённые токен и контекст пользователя (logout).
func (AuthFSStore) Clear() error {
	tp, err := tokenPath()
	if err != nil {
		return err
	}
	up, err := userPath()
	if err != nil {
		return err
	}
	terr := os.Remove(tp)
	uerr := os.Remove(up)
	if terr != nil && !errors.Is(terr, os.ErrNotExist) {
		return terr
	}
	if uerr != nil && !errors.Is(uerr, os.ErrNotExist) {
		return uerr
	}
	return nil
}
