package repositories

import (
	"context"

	"oraculo/app/models/note"

	"gorm.io/gorm"
)

// NoteRepository 笔记仓库
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository 创建仓库实例
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create 创建笔记
func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// ListByReading 用户在某次解读下的笔记，最新的在前
func (r *NoteRepository) ListByReading(ctx context.Context, ownerID, readingID string) ([]note.Note, error) {
	var notes []note.Note
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND reading_id = ?", ownerID, readingID).
		Order("created_at DESC").Order("id DESC").
		Find(&notes).Error
	return notes, err
}
