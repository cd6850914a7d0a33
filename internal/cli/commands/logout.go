package commands

import (
	"RetroBoard/internal/config"
	"context"
	"fmt"

	fsrepo "RetroBoard/internal/cli/repo/fs"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the stored auth token and user" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if err := (fsrepo.AuthFSStore{}).Clear(); err != nil {
		return fmt.Errorf("clearing auth: %w", err)
	}
	fmt.Fprintln(Out, "Logged out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
