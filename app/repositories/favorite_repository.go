package repositories

import (
	"context"

	"oraculo/app/models/favorite"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository 收藏仓库
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository 创建仓库实例
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add 收藏卡牌，重复收藏不报错
func (r *FavoriteRepository) Add(ctx context.Context, ownerID string, cardID uint) error {
	fav := &favorite.Favorite{OwnerID: ownerID, CardID: cardID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fav).Error
}

// Remove 取消收藏
func (r *FavoriteRepository) Remove(ctx context.Context, ownerID string, cardID uint) error {
	return r.db.WithContext(ctx).
		Where("owner_id = ? AND card_id = ?", ownerID, cardID).
		Delete(&favorite.Favorite{}).Error
}

// ListByOwner 用户的收藏，最新的在前
func (r *FavoriteRepository) ListByOwner(ctx context.Context, ownerID string) ([]favorite.Favorite, error) {
	var favs []favorite.Favorite
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").Order("id DESC").
		Find(&favs).Error
	return favs, err
}
