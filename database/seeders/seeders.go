// Package seeders 内置的默认牌组
package seeders

import (
	"bytes"
	_ "embed"

	"oraculo/app/models/card"
)

//go:embed majors.toml
var majorsTOML []byte

// DefaultDeck 返回内置的 22 张大阿卡纳
func DefaultDeck() ([]card.Card, error) {
	return card.DecodeTOML(bytes.NewReader(majorsTOML))
}

// Load 读取种子文件，path 为空时使用内置牌组
func Load(path string) ([]card.Card, error) {
	if path == "" {
		return DefaultDeck()
	}
	return card.LoadFile(path)
}
