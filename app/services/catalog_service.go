package services

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"oraculo/app/models/card"
	"oraculo/pkg/cache"
	"oraculo/pkg/logger"

	"go.uber.org/zap"
)

// snapshotKey 卡牌快照的缓存键
const snapshotKey = "catalog:snapshot"

// CardStore 卡牌目录存储
type CardStore interface {
	Get(ctx context.Context, id uint) (*card.Card, error)
	GetByShortCode(ctx context.Context, code string) (*card.Card, error)
	FindAll(ctx context.Context, filter card.Filter) ([]card.Card, error)
	GetMajorArcana(ctx context.Context) ([]card.Card, error)
	Upsert(ctx context.Context, c *card.Card) (bool, error)
}

// Catalog 抽牌引擎依赖的只读目录
type Catalog interface {
	Snapshot(ctx context.Context) ([]card.Card, error)
	Get(ctx context.Context, id uint) (*card.Card, error)
}

// ImportSummary 导入结果
type ImportSummary struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Total    int `json:"total"`
}

// CatalogService 卡牌目录服务
type CatalogService struct {
	cards CardStore
	cache cache.Store // 可为 nil，未启用 Redis 时直接读库
	ttl   time.Duration
}

// NewCatalogService 创建目录服务，store 为 nil 时不缓存快照
func NewCatalogService(cards CardStore, store cache.Store, ttl time.Duration) *CatalogService {
	return &CatalogService{
		cards: cards,
		cache: store,
		ttl:   ttl,
	}
}

// Get 根据 ID 获取卡牌
func (s *CatalogService) Get(ctx context.Context, id uint) (*card.Card, error) {
	c, err := s.cards.Get(ctx, id)
	if err != nil {
		return nil, notFound(fmt.Sprintf("card %d", id), err)
	}
	return c, nil
}

// GetByShortCode 根据短代码获取卡牌
func (s *CatalogService) GetByShortCode(ctx context.Context, code string) (*card.Card, error) {
	c, err := s.cards.GetByShortCode(ctx, code)
	if err != nil {
		return nil, notFound(fmt.Sprintf("card %q", code), err)
	}
	return c, nil
}

// FindAll 按名称/关键词或花色查询，按 ID 升序
func (s *CatalogService) FindAll(ctx context.Context, filter card.Filter) ([]card.Card, error) {
	filter.Suit = strings.ToLower(strings.TrimSpace(filter.Suit))
	if filter.Suit != "" && !slices.Contains(card.Suits, filter.Suit) {
		return nil, invalidInput("unknown suit %q", filter.Suit)
	}
	return s.cards.FindAll(ctx, filter)
}

// GetMajorArcana 大阿卡纳，按编号升序
func (s *CatalogService) GetMajorArcana(ctx context.Context) ([]card.Card, error) {
	return s.cards.GetMajorArcana(ctx)
}

// Snapshot 返回按 ID 升序的完整卡牌列表
// 每日一牌依赖这个顺序，缓存中的数据同样按 ID 升序
func (s *CatalogService) Snapshot(ctx context.Context) ([]card.Card, error) {
	if s.cache != nil {
		if raw := s.cache.Get(snapshotKey); raw != "" {
			var cards []card.Card
			if err := json.Unmarshal([]byte(raw), &cards); err == nil {
				return cards, nil
			}
			logger.WarnString("Catalog", "Snapshot", "缓存数据无法解析，回源数据库")
		}
	}
	return s.load(ctx)
}

// Refresh 从数据库重新加载快照并覆盖缓存，返回卡牌数量
func (s *CatalogService) Refresh(ctx context.Context) (int, error) {
	if s.cache != nil {
		s.cache.Forget(snapshotKey)
	}
	cards, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(cards), nil
}

func (s *CatalogService) load(ctx context.Context) ([]card.Card, error) {
	cards, err := s.cards.FindAll(ctx, card.Filter{})
	if err != nil {
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}
	slices.SortFunc(cards, func(a, b card.Card) int {
		return cmp.Compare(a.ID, b.ID)
	})

	if s.cache != nil && len(cards) > 0 {
		raw, err := json.Marshal(cards)
		if err != nil {
			logger.LogIf(err)
			return cards, nil
		}
		s.cache.Set(snapshotKey, string(raw), s.ttl)
	}
	return cards, nil
}

// Import 批量导入卡牌（按短代码或名称更新已有记录），完成后刷新快照
func (s *CatalogService) Import(ctx context.Context, cards []card.Card) (ImportSummary, error) {
	summary := ImportSummary{Total: len(cards)}
	for i := range cards {
		if err := cards[i].Validate(); err != nil {
			return summary, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
		}
		created, err := s.cards.Upsert(ctx, &cards[i])
		if err != nil {
			return summary, err
		}
		if created {
			summary.Inserted++
		} else {
			summary.Updated++
		}
	}

	if _, err := s.Refresh(ctx); err != nil {
		return summary, err
	}

	logger.Info("Catalog",
		zap.String("action", "import"),
		zap.Int("inserted", summary.Inserted),
		zap.Int("updated", summary.Updated),
	)
	return summary, nil
}

// indexByID 以 ID 建立卡牌索引
func indexByID(cards []card.Card) map[uint]*card.Card {
	index := make(map[uint]*card.Card, len(cards))
	for i := range cards {
		index[cards[i].ID] = &cards[i]
	}
	return index
}
