package card

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// Filter 卡牌列表查询条件
type Filter struct {
	Query string // 名称或关键词的模糊匹配
	Suit  string // 花色，优先于 Query
}

// Meaning 返回指定朝向下的牌义，逆位缺失时回退到正位牌义
func (c *Card) Meaning(reversed bool) string {
	if reversed && c.ReversedMeaning != nil {
		return *c.ReversedMeaning
	}
	return c.UprightMeaning
}

// IsMajor 是否为大阿卡纳
func (c *Card) IsMajor() bool {
	return c.ArcanaType == ArcanaMajor
}

// Validate 校验卡牌数据
func (c *Card) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("card name is required")
	}
	if c.ArcanaType != ArcanaMajor && c.ArcanaType != ArcanaMinor {
		return fmt.Errorf("card %q: invalid arcana type %q", c.Name, c.ArcanaType)
	}
	if c.UprightMeaning == "" {
		return fmt.Errorf("card %q: upright meaning is required", c.Name)
	}
	if c.Suit != nil && !slices.Contains(Suits, *c.Suit) {
		return fmt.Errorf("card %q: invalid suit %q", c.Name, *c.Suit)
	}
	return nil
}

// Deck 种子文件结构
//
//	[[cards]]
//	short_code = "ar00"
//	name = "The Fool"
//	arcana_type = "Major"
type Deck struct {
	Cards []Card `toml:"cards"`
}

// LoadFile 按扩展名读取 .toml 或 .json 种子文件
func LoadFile(path string) ([]Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return DecodeTOML(f)
	case ".json":
		return DecodeJSON(f)
	default:
		return nil, fmt.Errorf("unsupported seed file format: %s", path)
	}
}

// DecodeTOML 解析 TOML 牌组
func DecodeTOML(r io.Reader) ([]Card, error) {
	var deck Deck
	if _, err := toml.NewDecoder(r).Decode(&deck); err != nil {
		return nil, fmt.Errorf("error parsing deck toml: %w", err)
	}
	return validateAll(deck.Cards)
}

// DecodeJSON 解析 JSON 卡牌数组（catalog fetch 命令的输出格式）
func DecodeJSON(r io.Reader) ([]Card, error) {
	var cards []Card
	if err := json.NewDecoder(r).Decode(&cards); err != nil {
		return nil, fmt.Errorf("error parsing deck json: %w", err)
	}
	return validateAll(cards)
}

func validateAll(cards []Card) ([]Card, error) {
	for i := range cards {
		if err := cards[i].Validate(); err != nil {
			return nil, err
		}
	}
	return cards, nil
}
