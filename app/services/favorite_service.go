package services

import (
	"context"
	"fmt"
	"strings"

	"oraculo/app/models/card"
	"oraculo/app/models/favorite"
)

// FavoriteStore 收藏存储
type FavoriteStore interface {
	Add(ctx context.Context, ownerID string, cardID uint) error
	Remove(ctx context.Context, ownerID string, cardID uint) error
	ListByOwner(ctx context.Context, ownerID string) ([]favorite.Favorite, error)
}

// FavoriteCard 收藏的卡牌
type FavoriteCard struct {
	Favorite favorite.Favorite `json:"favorite"`
	Card     *card.Card        `json:"card"`
}

// FavoriteService 卡牌收藏
type FavoriteService struct {
	catalog   Catalog
	favorites FavoriteStore
}

// NewFavoriteService 创建收藏服务
func NewFavoriteService(catalog Catalog, favorites FavoriteStore) *FavoriteService {
	return &FavoriteService{catalog: catalog, favorites: favorites}
}

// AddFavorite 收藏卡牌，重复收藏视为成功
func (s *FavoriteService) AddFavorite(ctx context.Context, ownerID string, cardID uint) error {
	if strings.TrimSpace(ownerID) == "" {
		return invalidInput("owner is required")
	}
	if _, err := s.catalog.Get(ctx, cardID); err != nil {
		return err
	}
	if err := s.favorites.Add(ctx, ownerID, cardID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite 取消收藏
func (s *FavoriteService) RemoveFavorite(ctx context.Context, ownerID string, cardID uint) error {
	if strings.TrimSpace(ownerID) == "" {
		return invalidInput("owner is required")
	}
	if err := s.favorites.Remove(ctx, ownerID, cardID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// ListFavorites 用户收藏的卡牌，最新的在前；目录中已删除的牌不返回
func (s *FavoriteService) ListFavorites(ctx context.Context, ownerID string) ([]FavoriteCard, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, invalidInput("owner is required")
	}
	favs, err := s.favorites.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	cards, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	index := indexByID(cards)

	result := make([]FavoriteCard, 0, len(favs))
	for _, f := range favs {
		if c, ok := index[f.CardID]; ok {
			result = append(result, FavoriteCard{Favorite: f, Card: c})
		}
	}
	return result, nil
}
