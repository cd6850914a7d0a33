package commands

import (
	"RetroBoard/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"RetroBoard/internal/cli/api"
	fsrepo "RetroBoard/internal/cli/repo/fs"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type userResponse struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store auth cookie" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	login := args[0]
	password := args[1]
	api.SetAPIKey(cfg.AnonKey)
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/login"
	req := LoginRequest{Login: login, Password: password}
	resp, body, err := api.PostJSON(endpoint, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		if err := api.PersistAuthFromResponse(resp); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		// сохраняем контекст пользователя для проекций "мой голос"/"моя запись"
		var ur userResponse
		if err := json.Unmarshal(body, &ur); err == nil && ur.UserID != 0 {
			if err := (fsrepo.AuthFSStore{}).SaveUser(fsrepo.UserContext{ID: ur.UserID, Name: ur.Name}); err != nil {
				return fmt.Errorf("saving user context: %w", err)
			}
		}
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid login or password")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(loginCmd{}) }
