package commands

import (
	"RetroBoard/internal/cli/service"
	"RetroBoard/internal/config"
	"context"
	"errors"
	"fmt"
)

type rmItemCmd struct{}

func (rmItemCmd) Name() string        { return "rm-item" }
func (rmItemCmd) Description() string { return "Delete your item with its votes and comments" }
func (rmItemCmd) Usage() string       { return "rm-item [-y] <item-id>" }

func (rmItemCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	skipConfirm := false
	if len(args) > 0 && args[0] == "-y" {
		skipConfirm = true
		args = args[1:]
	}
	if len(args) != 1 {
		return ErrUsage
	}
	confirm := confirmPrompt
	if skipConfirm {
		confirm = nil
	}
	s := service.NewSession(cfg)
	if err := s.DeleteItem(args[0], confirm); err != nil {
		if errors.Is(err, service.ErrCancelled) {
			fmt.Fprintln(Out, "Aborted")
			return nil
		}
		return err
	}
	fmt.Fprintln(Out, "Item deleted")
	renderBoard(s)
	return nil
}

func init() { RegisterCmd(rmItemCmd{}) }
