package service

import (
	"RetroBoard/internal/model"
	"RetroBoard/internal/repo"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BoardService инкапсулирует бизнес-логику доски: записи, голоса, комментарии.
// Проверки владения здесь авторитетны — клиенту в этом вопросе не доверяем.
type BoardService struct {
	items    repo.ItemRepository
	votes    repo.VoteRepository
	comments repo.CommentRepository
	logger   *zap.SugaredLogger
}

// NewBoardService конструктор сервиса доски.
func NewBoardService(items repo.ItemRepository, votes repo.VoteRepository, comments repo.CommentRepository, logger *zap.SugaredLogger) *BoardService {
	return &BoardService{items: items, votes: votes, comments: comments, logger: logger}
}

// ListItems возвращает все записи доски с авторами, голосами и комментариями.
func (s *BoardService) ListItems(ctx context.Context) ([]model.Item, error) {
	return s.items.ListWithRelations(ctx)
}

// AddItem создаёт запись в указанной категории.
// Текст обрезается; пустой после обрезки текст — ошибка.
func (s *BoardService) AddItem(ctx context.Context, userID int64, category model.Category, content string) (*model.Item, error) {
	if !category.Valid() {
		return nil, ErrUnknownCategory
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	it := &model.Item{
		ID:       uuid.NewString(),
		Category: category,
		Content:  content,
		UserID:   userID,
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// ToggleVote снимает голос пользователя за запись, если он есть, иначе добавляет.
// Возвращает итоговое состояние: true — голос стоит, false — снят.
func (s *BoardService) ToggleVote(ctx context.Context, userID int64, itemID string) (bool, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	existing, err := s.votes.FindByItemAndUser(ctx, itemID, userID)
	switch {
	case err == nil:
		if err := s.votes.Delete(ctx, existing.ID); err != nil {
			return true, err
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		v := &model.Vote{ID: uuid.NewString(), ItemID: itemID, UserID: userID}
		if err := s.votes.Create(ctx, v); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

// AddComment создаёт комментарий к записи.
func (s *BoardService) AddComment(ctx context.Context, userID int64, itemID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	c := &model.Comment{
		ID:      uuid.NewString(),
		ItemID:  itemID,
		UserID:  userID,
		Content: content,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteItem удаляет запись вместе с голосами и комментариями.
// Разрешено только автору записи.
func (s *BoardService) DeleteItem(ctx context.Context, userID int64, itemID string) error {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if it.UserID != userID {
		s.logger.Warnw("DeleteItem: ownership check failed", "item_id", itemID, "owner_id", it.UserID, "user_id", userID)
		return ErrForbidden
	}
	return s.items.Delete(ctx, itemID)
}

// DeleteComment удаляет комментарий. Разрешено только его автору.
func (s *BoardService) DeleteComment(ctx context.Context, userID int64, commentID string) error {
	c, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if c.UserID != userID {
		s.logger.Warnw("DeleteComment: ownership check failed", "comment_id", commentID, "owner_id", c.UserID, "user_id", userID)
		return ErrForbidden
	}
	return s.comments.Delete(ctx, commentID)
}
