package commands

import (
	"RetroBoard/internal/cli/service"
	"RetroBoard/internal/config"
	"context"
	"errors"
	"fmt"
)

type rmCommentCmd struct{}

func (rmCommentCmd) Name() string        { return "rm-comment" }
func (rmCommentCmd) Description() string { return "Delete your comment" }
func (rmCommentCmd) Usage() string       { return "rm-comment [-y] <comment-id>" }

func (rmCommentCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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
	if err := s.DeleteComment(args[0], confirm); err != nil {
		if errors.Is(err, service.ErrCancelled) {
			fmt.Fprintln(Out, "Aborted")
			return nil
		}
		return err
	}
	fmt.Fprintln(Out, "Comment deleted")
	renderBoard(s)
	return nil
}

func init() { RegisterCmd(rmCommentCmd{}) }
