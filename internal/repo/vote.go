package repo

import (
	"RetroBoard/internal/model"
	"context"

	"gorm.io/gorm"
)

// VoteRepository — контракт доступа к голосам.
type VoteRepository interface {
	// FindByItemAndUser ищет голос пользователя за запись.
	// Если голоса нет — gorm.ErrRecordNotFound.
	FindByItemAndUser(ctx context.Context, itemID string, userID int64) (*model.Vote, error)

	// Create сохраняет новый голос.
	Create(ctx context.Context, vote *model.Vote) error

	// Delete удаляет голос по ID.
	Delete(ctx context.Context, id string) error
}

type voteRepo struct {
	db *gorm.DB
}

// NewVoteRepository создаёт реализацию репозитория для Vote.
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepo{db: db}
}

func (r *voteRepo) FindByItemAndUser(ctx context.Context, itemID string, userID int64) (*model.Vote, error) {
	var v model.Vote
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND user_id = ?", itemID, userID).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *voteRepo) Create(ctx context.Context, vote *model.Vote) error {
	return r.db.WithContext(ctx).Create(vote).Error
}

func (r *voteRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Vote{}, "id = ?", id).Error
}
