package commands

import (
	"RetroBoard/internal/cli/service"
	"RetroBoard/internal/config"
	"context"
	"fmt"
	"strings"
)

type commentCmd struct{}

func (commentCmd) Name() string        { return "comment" }
func (commentCmd) Description() string { return "Add a comment to an item" }
func (commentCmd) Usage() string       { return "comment <item-id> <text...>" }

func (commentCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	itemID := args[0]
	s := service.NewSession(cfg)
	s.SetCommentDraft(itemID, strings.Join(args[1:], " "))
	if err := s.AddComment(itemID); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Comment added")
	renderBoard(s)
	return nil
}

func init() { RegisterCmd(commentCmd{}) }
