// Package jobs 定时任务
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"oraculo/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher 可刷新的目录
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// CatalogRefresher 按 cron 表达式定时刷新卡牌快照缓存
type CatalogRefresher struct {
	catalog  Refresher
	schedule string
	timeout  time.Duration

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.Mutex
	isRunning bool
}

// NewCatalogRefresher 创建刷新任务，schedule 为标准 5 段 cron 表达式
func NewCatalogRefresher(catalog Refresher, schedule string) *CatalogRefresher {
	return &CatalogRefresher{
		catalog:  catalog,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start 启动调度，schedule 为空时不启动
func (r *CatalogRefresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return nil
	}
	if r.schedule == "" {
		logger.InfoString("Scheduler", "CatalogRefresh", "未配置刷新计划，跳过")
		return nil
	}

	entryID, err := r.cron.AddFunc(r.schedule, r.RunOnce)
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", r.schedule, err)
	}
	r.entryID = entryID
	r.cron.Start()
	r.isRunning = true

	logger.Info("Scheduler",
		zap.String("job", "catalog_refresh"),
		zap.String("schedule", r.schedule),
		zap.Time("next", r.cron.Entry(entryID).Next),
	)
	return nil
}

// Stop 停止调度并等待正在执行的任务结束
func (r *CatalogRefresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return
	}
	<-r.cron.Stop().Done()
	r.cron.Remove(r.entryID)
	r.isRunning = false

	logger.InfoString("Scheduler", "CatalogRefresh", "已停止")
}

// IsRunning 是否在运行
func (r *CatalogRefresher) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isRunning
}

// RunOnce 立即刷新一次
func (r *CatalogRefresher) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	n, err := r.catalog.Refresh(ctx)
	if err != nil {
		logger.ErrorString("Scheduler", "CatalogRefresh", err.Error())
		return
	}
	logger.Debug("Scheduler", zap.String("job", "catalog_refresh"), zap.Int("cards", n))
}
