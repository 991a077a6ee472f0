// Package favorite 用户收藏的卡牌
package favorite

import (
	"oraculo/app/models"
)

// Favorite 收藏模型，同一用户对同一张牌只保留一条
type Favorite struct {
	models.BaseModel

	OwnerID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_favorite_owner_card" json:"ownerId"`
	CardID  uint   `gorm:"not null;uniqueIndex:idx_favorite_owner_card" json:"cardId"`

	models.CreatedAtField
}

// TableName 指定表名
func (Favorite) TableName() string {
	return "favorites"
}
