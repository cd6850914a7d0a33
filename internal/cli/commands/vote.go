package commands

import (
	"RetroBoard/internal/cli/service"
	"RetroBoard/internal/config"
	"context"
	"fmt"
)

type voteCmd struct{}

func (voteCmd) Name() string        { return "vote" }
func (voteCmd) Description() string { return "Toggle your vote on an item" }
func (voteCmd) Usage() string       { return "vote <item-id>" }

func (voteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	s := service.NewSession(cfg)
	voted, err := s.ToggleVote(args[0])
	if err != nil {
		return err
	}
	if voted {
		fmt.Fprintln(Out, "Vote added")
	} else {
		fmt.Fprintln(Out, "Vote removed")
	}
	renderBoard(s)
	return nil
}

func init() { RegisterCmd(voteCmd{}) }
