package commands

import (
	"RetroBoard/internal/cli/model"
	"RetroBoard/internal/cli/service"
	"RetroBoard/internal/config"
	"context"
	"fmt"
	"strings"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Add an item to a category (good|bad|better)" }
func (addCmd) Usage() string       { return "add <good|bad|better> <text...>" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	category := model.Category(strings.ToLower(args[0]))
	if !category.Valid() {
		return ErrUsage
	}
	s := service.NewSession(cfg)
	s.SetItemDraft(category, strings.Join(args[1:], " "))
	if err := s.AddItem(category); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Added")
	renderBoard(s)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
