// Package card 塔罗牌卡牌模型
package card

import (
	"oraculo/app/models"
)

// 阿卡纳类型
const (
	ArcanaMajor = "Major"
	ArcanaMinor = "Minor"
)

// Suits 小阿卡纳的四个花色
var Suits = []string{"cups", "wands", "swords", "pentacles"}

// Card 卡牌模型
// 可选字段使用指针，nil 表示未提供，不与空字符串混淆
type Card struct {
	models.BaseModel

	ShortCode       *string `gorm:"type:varchar(16);uniqueIndex" json:"nameShort,omitempty" toml:"short_code"` // 如 ar01、swac
	Name            string  `gorm:"type:varchar(100);not null;index" json:"name" toml:"name"`
	ArcanaType      string  `gorm:"type:varchar(10);not null;index" json:"arcanaType" toml:"arcana_type"` // Major | Minor
	Suit            *string `gorm:"type:varchar(20);index" json:"suit,omitempty" toml:"suit"`
	Number          *int    `gorm:"index" json:"number,omitempty" toml:"number"`
	Value           *string `gorm:"type:varchar(20)" json:"value,omitempty" toml:"value"` // ace、2、king 等
	UprightMeaning  string  `gorm:"type:text;not null" json:"uprightMeaning" toml:"upright_meaning"`
	ReversedMeaning *string `gorm:"type:text" json:"reversedMeaning,omitempty" toml:"reversed_meaning"`
	Description     *string `gorm:"type:text" json:"description,omitempty" toml:"description"`
	Keywords        *string `gorm:"type:text" json:"keywords,omitempty" toml:"keywords"`
	ImageURL        *string `gorm:"type:varchar(255)" json:"imageUrl,omitempty" toml:"image_url"`

	models.CommonTimestampsField
}

// TableName 指定表名
func (Card) TableName() string {
	return "cards"
}
