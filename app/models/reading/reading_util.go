package reading

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// DrawnCard 解读中的一张牌：卡牌引用 + 朝向
type DrawnCard struct {
	CardID   uint `json:"cardId"`
	Position *int `json:"position,omitempty"`
	Reversed bool `json:"reversed"`
}

// DrawnCards 有序卡牌引用，以 JSON 文本存储
type DrawnCards []DrawnCard

// Value 实现 driver.Valuer 接口
func (c DrawnCards) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (c *DrawnCards) Scan(value interface{}) error {
	bytes, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("invalid type for cards: %w", err)
	}
	if bytes == nil {
		*c = DrawnCards{}
		return nil
	}
	return json.Unmarshal(bytes, c)
}

// CardIDs 返回有序的卡牌 ID
func (c DrawnCards) CardIDs() []uint {
	ids := make([]uint, len(c))
	for i, dc := range c {
		ids[i] = dc.CardID
	}
	return ids
}

// Meta 解读附加信息
type Meta struct {
	SpreadSize int                    `json:"spreadSize"`
	Extra      map[string]interface{} `json:"extra,omitempty"`
}

// Value 实现 driver.Valuer 接口
func (m Meta) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner 接口
func (m *Meta) Scan(value interface{}) error {
	bytes, err := columnBytes(value)
	if err != nil {
		return fmt.Errorf("invalid type for meta: %w", err)
	}
	if bytes == nil {
		*m = Meta{}
		return nil
	}
	return json.Unmarshal(bytes, m)
}

// sqlite 驱动以 string 返回 text 列，postgres 返回 []byte
func columnBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", value)
	}
}

// Validate 验证记录
func (r *Reading) Validate() error {
	if r.Type == "" {
		return errors.New("reading type is required")
	}
	if len(r.Cards) == 0 {
		return errors.New("cards cannot be empty")
	}
	return nil
}

// SpreadSize 返回 meta 中的牌阵张数，缺失时返回 fallback
func (r *Reading) SpreadSize(fallback int) int {
	if r.Meta == nil || r.Meta.SpreadSize <= 0 {
		return fallback
	}
	return r.Meta.SpreadSize
}

// IsAnonymous 是否为匿名解读
func (r *Reading) IsAnonymous() bool {
	return r.OwnerID == nil
}

// OwnedBy 是否属于指定用户
func (r *Reading) OwnedBy(ownerID string) bool {
	return r.OwnerID != nil && *r.OwnerID == ownerID
}

// IsVisibleTo 公开解读对所有人可见，私有解读仅对所有者可见
func (r *Reading) IsVisibleTo(ownerID string) bool {
	return !r.IsPrivate || r.OwnedBy(ownerID)
}
