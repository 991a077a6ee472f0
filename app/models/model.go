// Package models 模型通用属性和方法
package models

import (
	"time"
)

// BaseModel 模型基类
type BaseModel struct {
	ID uint `gorm:"column:id;primaryKey;autoIncrement;" json:"id,omitempty"`
}

// CommonTimestampsField 时间戳
type CommonTimestampsField struct {
	CreatedAt time.Time `gorm:"column:created_at;index;" json:"created_at,omitempty"`
	UpdatedAt time.Time `gorm:"column:updated_at;index;" json:"updated_at,omitempty"`
}

// CreatedAtField 只写一次的创建时间，用于不可变记录
type CreatedAtField struct {
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index;" json:"createdAt"`
}
