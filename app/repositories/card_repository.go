package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"oraculo/app/models/card"

	"gorm.io/gorm"
)

// CardRepository 卡牌目录仓库
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository 创建仓库实例
func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Get 根据 ID 获取卡牌
func (r *CardRepository) Get(ctx context.Context, id uint) (*card.Card, error) {
	var c card.Card
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// GetByShortCode 根据短代码获取卡牌
func (r *CardRepository) GetByShortCode(ctx context.Context, code string) (*card.Card, error) {
	var c card.Card
	if err := r.db.WithContext(ctx).Where("short_code = ?", code).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// FindAll 按条件查询卡牌，按 ID 升序
// 指定花色时忽略关键词条件
func (r *CardRepository) FindAll(ctx context.Context, filter card.Filter) ([]card.Card, error) {
	var cards []card.Card
	query := r.db.WithContext(ctx).Model(&card.Card{})

	switch {
	case filter.Suit != "":
		query = query.Where("suit = ?", strings.ToLower(filter.Suit))
	case filter.Query != "":
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(keywords) LIKE ?", pattern, pattern)
	}

	err := query.Order("id ASC").Find(&cards).Error
	return cards, err
}

// GetMajorArcana 获取大阿卡纳，按编号升序
func (r *CardRepository) GetMajorArcana(ctx context.Context) ([]card.Card, error) {
	var cards []card.Card
	err := r.db.WithContext(ctx).
		Where("arcana_type = ?", card.ArcanaMajor).
		Order("number ASC").
		Find(&cards).Error
	return cards, err
}

// Count 卡牌总数
func (r *CardRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&card.Card{}).Count(&total).Error
	return total, err
}

// Upsert 先按短代码、再按名称匹配已有卡牌，存在则更新，否则插入
func (r *CardRepository) Upsert(ctx context.Context, c *card.Card) (created bool, err error) {
	var existing card.Card
	tx := r.db.WithContext(ctx)

	found := false
	if c.ShortCode != nil {
		err = tx.Where("short_code = ?", *c.ShortCode).First(&existing).Error
		found = err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("lookup card %q: %w", *c.ShortCode, err)
		}
	}
	if !found {
		err = tx.Where("name = ?", c.Name).First(&existing).Error
		found = err == nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("lookup card %q: %w", c.Name, err)
	}

	if !found {
		c.ID = 0
		if err := tx.Create(c).Error; err != nil {
			return false, fmt.Errorf("create card %q: %w", c.Name, err)
		}
		return true, nil
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	if err := tx.Save(c).Error; err != nil {
		return false, fmt.Errorf("update card %q: %w", c.Name, err)
	}
	return false, nil
}
