package commands

import (
	"RetroBoard/internal/cli/board"
	"RetroBoard/internal/cli/model"
	"RetroBoard/internal/cli/service"
	"RetroBoard/internal/config"
	"context"
	"fmt"
)

// Заголовки колонок для вывода.
var categoryTitles = map[model.Category]string{
	model.CategoryGood:   "Что было хорошо",
	model.CategoryBad:    "Что было плохо",
	model.CategoryBetter: "Что улучшить",
}

type boardCmd struct{}

func (boardCmd) Name() string        { return "board" }
func (boardCmd) Description() string { return "Show the retro board" }
func (boardCmd) Usage() string       { return "board" }

func (boardCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	s := service.NewSession(cfg)
	if err := s.Reload(); err != nil {
		return err
	}
	renderBoard(s)
	return nil
}

// renderBoard печатает собранную модель отображения. Чистое отображение:
// все производные значения вычисляются здесь, ничего не кешируется.
func renderBoard(s *service.Session) {
	if err := s.ReloadWarning(); err != nil {
		fmt.Fprintf(Out, "Warning: board reload failed, shown state may be stale: %v\n", err)
	}
	user, loaded := s.CurrentUser()
	view := s.View()
	for _, c := range model.Categories {
		fmt.Fprintf(Out, "== %s ==\n", categoryTitles[c])
		items := view[c]
		if len(items) == 0 {
			fmt.Fprintln(Out, "  (пусто)")
			continue
		}
		for _, it := range items {
			mark := " "
			if loaded && board.HasVoted(it, user.ID) {
				mark = "*"
			}
			fmt.Fprintf(Out, " %s [%d] %s — %s\n", mark, len(it.Votes), it.Content, it.Author)
			fmt.Fprintf(Out, "     id: %s\n", it.ID)
			if names := board.VoterNames(it); names != "" {
				fmt.Fprintf(Out, "     голоса: %s\n", names)
			}
			if n := board.CommentCount(it); n > 0 {
				fmt.Fprintf(Out, "     комментарии (%d):\n", n)
				for _, cm := range it.Comments {
					fmt.Fprintf(Out, "       %s — %s (id: %s)\n", cm.Content, cm.Author, cm.ID)
				}
			}
		}
	}
}

func init() { RegisterCmd(boardCmd{}) }
