// Package reading 塔罗牌解读记录
package reading

import (
	"oraculo/app/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 常用的解读类型，Type 字段本身是自由文本
const (
	TypeDaily  = "daily"
	TypeYesNo  = "yesno"
	TypeCustom = "custom"
)

// Reading 塔罗牌解读记录模型，创建后不可修改
type Reading struct {
	ID        string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	OwnerID   *string    `gorm:"type:varchar(64);index" json:"ownerId"`       // nil 表示匿名（公开演示）
	Type      string     `gorm:"type:varchar(32);index;not null" json:"type"` // daily | yesno | custom ...
	Cards     DrawnCards `gorm:"type:text;not null" json:"cards"`             // 有序卡牌引用
	Meta      *Meta      `gorm:"type:text" json:"meta,omitempty"`             // 附加信息，至少包含 spreadSize
	IsPrivate bool       `gorm:"index;not null" json:"isPrivate"`             // 可见性

	models.CreatedAtField
}

// TableName 指定表名
func (Reading) TableName() string {
	return "readings"
}

// BeforeCreate GORM 钩子
func (r *Reading) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return r.Validate()
}
