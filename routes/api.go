package routes

import (
	"oraculo/app/http/controllers/api/v1/tarot"
	"oraculo/app/http/middlewares"
	"oraculo/app/services"

	"github.com/gin-gonic/gin"
)

// 路由限流配置
const (
	// 🌍 全局限流：每小时每IP 30000 请求
	GlobalRateLimit = "30000-H"
	// 🎴 抽牌与保存解读：每小时每IP 300 请求
	CreateReadingLimit = "300-H"
	// 🔍 查询：每分钟每IP 300 请求
	QueryLimit = "300-M"
)

// Dependencies 路由需要的服务
type Dependencies struct {
	Catalog   *services.CatalogService
	Readings  *services.ReadingService
	Favorites *services.FavoriteService
	Notes     *services.NoteService

	IdentityHeader      string // 用户标识请求头
	DefaultDrawCount    int
	DefaultHistoryLimit int
}

// RegisterAPIRoutes 注册所有 API 路由
func RegisterAPIRoutes(r *gin.Engine, deps Dependencies) {
	v1 := r.Group("/v1")

	v1.Use(
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
		middlewares.Cors(),
		middlewares.Identity(deps.IdentityHeader),
	)

	// 🃏 卡牌目录
	cardRoutes := v1.Group("/cards", middlewares.LimitPerRoute(QueryLimit))
	{
		cc := tarot.NewCardController(deps.Catalog)

		cardRoutes.GET("", cc.Index)                       // GET /v1/cards?q=&suit=
		cardRoutes.GET("/majors", cc.Majors)               // GET /v1/cards/majors
		cardRoutes.GET("/short/:code", cc.ShowByShortCode) // GET /v1/cards/short/ar01
		cardRoutes.GET("/:id", cc.Show)                    // GET /v1/cards/1
	}

	// 🎴 解读
	readingRoutes := v1.Group("/readings")
	{
		rc := tarot.NewReadingController(deps.Readings, deps.DefaultDrawCount, deps.DefaultHistoryLimit)
		nc := tarot.NewNoteController(deps.Notes)

		// 抽牌，需要用户身份
		readingRoutes.POST("/draw",
			middlewares.AuthRequired(),
			middlewares.LimitPerRoute(CreateReadingLimit),
			rc.Draw,
		)
		// 保存解读，匿名请求保存为公开演示记录
		readingRoutes.POST("",
			middlewares.LimitPerRoute(CreateReadingLimit),
			rc.Store,
		)

		readingRoutes.GET("/daily", middlewares.LimitPerRoute(QueryLimit), rc.Daily)
		readingRoutes.GET("/public", middlewares.LimitPerRoute(QueryLimit), rc.Public)
		readingRoutes.GET("/history", middlewares.AuthRequired(), middlewares.LimitPerRoute(QueryLimit), rc.History)
		readingRoutes.GET("/:id", middlewares.LimitPerRoute(QueryLimit), rc.Show)

		// 📝 笔记
		readingRoutes.GET("/:id/notes", middlewares.AuthRequired(), nc.Index)
		readingRoutes.POST("/:id/notes", middlewares.AuthRequired(), nc.Store)
	}

	// ⭐ 收藏
	favoriteRoutes := v1.Group("/favorites", middlewares.AuthRequired())
	{
		fc := tarot.NewFavoriteController(deps.Favorites)

		favoriteRoutes.GET("", fc.Index)
		favoriteRoutes.POST("/:card_id", fc.Store)
		favoriteRoutes.DELETE("/:card_id", fc.Destroy)
	}
}
