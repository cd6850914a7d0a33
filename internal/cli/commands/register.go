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

type RegisterRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type registerCmd struct{}

func (registerCmd) Name() string { return "register" }
func (registerCmd) Description() string {
	return "Register a new participant and store auth cookie"
}
func (registerCmd) Usage() string { return "register <login> <password> [display-name]" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	req := RegisterRequest{Login: args[0], Password: args[1]}
	if len(args) >= 3 {
		req.Name = strings.Join(args[2:], " ")
	}
	api.SetAPIKey(cfg.AnonKey)
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/user/register"
	resp, body, err := api.PostJSON(endpoint, req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		if err := api.PersistAuthFromResponse(resp); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		var ur userResponse
		if err := json.Unmarshal(body, &ur); err == nil && ur.UserID != 0 {
			if err := (fsrepo.AuthFSStore{}).SaveUser(fsrepo.UserContext{ID: ur.UserID, Name: ur.Name}); err != nil {
				return fmt.Errorf("saving user context: %w", err)
			}
		}
		fmt.Fprintln(Out, "Registered successfully")
		return nil
	case http.StatusConflict:
		return errors.New("login already taken")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(registerCmd{}) }
