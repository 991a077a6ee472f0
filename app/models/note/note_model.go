// Package note 用户对解读记录的笔记
package note

import (
	"errors"
	"strings"
	"unicode/utf8"

	"oraculo/app/models"
)

// MaxContentLength 笔记内容最大字符数
const MaxContentLength = 2000

// Note 笔记模型
type Note struct {
	models.BaseModel

	OwnerID   string `gorm:"type:varchar(64);not null;index" json:"ownerId"`
	ReadingID string `gorm:"type:varchar(36);not null;index" json:"readingId"`
	Content   string `gorm:"type:text;not null" json:"content"`

	models.CreatedAtField
}

// TableName 指定表名
func (Note) TableName() string {
	return "notes"
}

// Validate 校验笔记内容
func (n *Note) Validate() error {
	content := strings.TrimSpace(n.Content)
	if content == "" {
		return errors.New("note content is required")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return errors.New("note content is too long")
	}
	return nil
}
