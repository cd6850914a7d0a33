package repo

import (
	"RetroBoard/internal/model"
	"context"

	"gorm.io/gorm"
)

// CommentRepository — контракт доступа к комментариям.
type CommentRepository interface {
	// Create сохраняет новый комментарий.
	Create(ctx context.Context, comment *model.Comment) error

	// GetByID возвращает комментарий по ID. Если нет — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Comment, error)

	// Delete удаляет комментарий по ID.
	Delete(ctx context.Context, id string) error
}

type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepository создаёт реализацию репозитория для Comment.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepo) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id).Error
}
