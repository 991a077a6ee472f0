package bootstrap

import (
	"time"

	"oraculo/app/jobs"
	"oraculo/app/repositories"
	"oraculo/app/services"
	"oraculo/pkg/cache"
	"oraculo/pkg/config"
	"oraculo/pkg/database"
	"oraculo/pkg/redis"
	"oraculo/routes"
)

// Services 应用的业务服务
type Services struct {
	Catalog   *services.CatalogService
	Readings  *services.ReadingService
	Favorites *services.FavoriteService
	Notes     *services.NoteService
}

// SetupServices 基于已连接的数据库与 Redis 组装业务服务
func SetupServices() *Services {
	var store cache.Store
	if redis.Redis != nil {
		store = cache.NewRedisStore(redis.Redis, config.GetString("app.name"))
	}

	catalog := services.NewCatalogService(
		repositories.NewCardRepository(database.DB),
		store,
		time.Duration(config.GetInt("catalog.cache_ttl"))*time.Second,
	)
	readingRepo := repositories.NewReadingRepository(database.DB)

	return &Services{
		Catalog: catalog,
		Readings: services.NewReadingService(catalog, readingRepo,
			services.WithMaxHistoryLimit(config.GetInt("reading.max_history_limit")),
		),
		Favorites: services.NewFavoriteService(catalog, repositories.NewFavoriteRepository(database.DB)),
		Notes:     services.NewNoteService(readingRepo, repositories.NewNoteRepository(database.DB)),
	}
}

// RouteDependencies 路由注册所需的依赖
func (s *Services) RouteDependencies() routes.Dependencies {
	return routes.Dependencies{
		Catalog:             s.Catalog,
		Readings:            s.Readings,
		Favorites:           s.Favorites,
		Notes:               s.Notes,
		IdentityHeader:      config.GetString("reading.identity_header"),
		DefaultDrawCount:    config.GetInt("reading.default_count"),
		DefaultHistoryLimit: config.GetInt("reading.default_history_limit"),
	}
}

// SetupScheduler 启动卡牌快照定时刷新
func SetupScheduler(s *Services) (*jobs.CatalogRefresher, error) {
	refresher := jobs.NewCatalogRefresher(s.Catalog, config.GetString("catalog.refresh_schedule"))
	if err := refresher.Start(); err != nil {
		return nil, err
	}
	return refresher, nil
}
