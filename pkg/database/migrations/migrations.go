package migrations

import (
	"oraculo/app/models/card"
	"oraculo/app/models/favorite"
	"oraculo/app/models/note"
	"oraculo/app/models/reading"
)

// RegisterTables 返回需要迁移的表的模型列表
func RegisterTables() []interface{} {
	return []interface{}{
		&card.Card{},
		&reading.Reading{},
		&favorite.Favorite{},
		&note.Note{},
	}
}
