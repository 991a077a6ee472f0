package repositories

import (
	"context"

	"oraculo/app/models/reading"

	"gorm.io/gorm"
)

// ReadingRepository 塔罗牌解读记录仓库
type ReadingRepository struct {
	db *gorm.DB
}

// NewReadingRepository 创建仓库实例
func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// Create 创建解读记录
func (r *ReadingRepository) Create(ctx context.Context, rd *reading.Reading) error {
	return r.db.WithContext(ctx).Create(rd).Error
}

// GetByID 获取单次解读
func (r *ReadingRepository) GetByID(ctx context.Context, id string) (*reading.Reading, error) {
	var rd reading.Reading
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rd).Error; err != nil {
		return nil, translate(err)
	}
	return &rd, nil
}

// ListByOwner 获取用户的历史记录，最新的在前
func (r *ReadingRepository) ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]reading.Reading, int64, error) {
	query := r.db.WithContext(ctx).Model(&reading.Reading{}).Where("owner_id = ?", ownerID)
	return r.list(query, page, pageSize)
}

// ListPublic 获取公开解读，最新的在前
func (r *ReadingRepository) ListPublic(ctx context.Context, page, pageSize int) ([]reading.Reading, int64, error) {
	query := r.db.WithContext(ctx).Model(&reading.Reading{}).Where("is_private = ?", false)
	return r.list(query, page, pageSize)
}

func (r *ReadingRepository) list(query *gorm.DB, page, pageSize int) ([]reading.Reading, int64, error) {
	var readings []reading.Reading
	var total int64

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	err := query.Order("created_at DESC").Order("id ASC").
		Scopes(paginate(page, pageSize)).
		Find(&readings).Error

	return readings, total, err
}
