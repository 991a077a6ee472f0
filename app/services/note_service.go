package services

import (
	"context"
	"fmt"
	"strings"

	"oraculo/app/models/note"
	"oraculo/app/models/reading"
)

// NoteStore 笔记存储
type NoteStore interface {
	Create(ctx context.Context, n *note.Note) error
	ListByReading(ctx context.Context, ownerID, readingID string) ([]note.Note, error)
}

// ReadingFinder 按 ID 查询解读
type ReadingFinder interface {
	GetByID(ctx context.Context, id string) (*reading.Reading, error)
}

// NoteService 解读笔记
type NoteService struct {
	readings ReadingFinder
	notes    NoteStore
}

// NewNoteService 创建笔记服务
func NewNoteService(readings ReadingFinder, notes NoteStore) *NoteService {
	return &NoteService{readings: readings, notes: notes}
}

// AddNote 为解读添加笔记，私有解读只接受所有者的笔记
func (s *NoteService) AddNote(ctx context.Context, ownerID, readingID, content string) (*note.Note, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, invalidInput("owner is required")
	}
	if _, err := s.visibleReading(ctx, ownerID, readingID); err != nil {
		return nil, err
	}

	n := &note.Note{
		OwnerID:   ownerID,
		ReadingID: readingID,
		Content:   strings.TrimSpace(content),
	}
	if err := n.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if err := s.notes.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("add note: %w", err)
	}
	return n, nil
}

// ListNotes 用户在某次解读下的笔记，最新的在前
func (s *NoteService) ListNotes(ctx context.Context, ownerID, readingID string) ([]note.Note, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, invalidInput("owner is required")
	}
	if _, err := s.visibleReading(ctx, ownerID, readingID); err != nil {
		return nil, err
	}
	notes, err := s.notes.ListByReading(ctx, ownerID, readingID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// visibleReading 他人的私有解读按不存在处理
func (s *NoteService) visibleReading(ctx context.Context, ownerID, readingID string) (*reading.Reading, error) {
	what := fmt.Sprintf("reading %q", readingID)
	rd, err := s.readings.GetByID(ctx, readingID)
	if err != nil {
		return nil, notFound(what, err)
	}
	if !rd.IsVisibleTo(ownerID) {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return rd, nil
}
