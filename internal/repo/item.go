package repo

import (
	"RetroBoard/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemRepository — контракт доступа к записям доски для слоя сервиса.
type ItemRepository interface {
	// ListWithRelations возвращает все записи вместе с автором, голосами
	// (и их пользователями) и комментариями (и их авторами) — то, что клиент
	// получает одним join-запросом.
	ListWithRelations(ctx context.Context) ([]model.Item, error)

	// Create сохраняет новую запись.
	Create(ctx context.Context, item *model.Item) error

	// GetByID возвращает запись по ID. Если нет — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Item, error)

	// Delete удаляет запись вместе с её голосами и комментариями.
	Delete(ctx context.Context, id string) error
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) ListWithRelations(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Votes").
		Preload("Votes.User").
		Preload("Comments").
		Preload("Comments.User").
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// Delete выполняет каскад в одной транзакции: сначала голоса и комментарии,
// затем сама запись. Не полагаемся на включённые foreign keys у драйвера.
func (r *itemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&model.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Item{}, "id = ?", id).Error
	})
}
