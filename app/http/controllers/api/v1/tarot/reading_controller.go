package tarot

import (
	v1 "oraculo/app/http/controllers/api/v1"
	"oraculo/app/requests"
	"oraculo/app/services"
	"oraculo/pkg/auth"
	"oraculo/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReadingController 抽牌与历史记录
type ReadingController struct {
	v1.BaseAPIController
	readings     *services.ReadingService
	defaultCount int
	defaultLimit int
}

// NewReadingController 创建控制器，defaultCount 为未指定张数时的抽牌数，defaultLimit 为历史记录默认条数
func NewReadingController(readings *services.ReadingService, defaultCount, defaultLimit int) *ReadingController {
	return &ReadingController{
		readings:     readings,
		defaultCount: defaultCount,
		defaultLimit: defaultLimit,
	}
}

// Draw 随机抽牌，结果保存为当前用户的私有解读
func (rc *ReadingController) Draw(c *gin.Context) {
	request, err := requests.ValidateDraw(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}
	count := request.Count
	if count == 0 {
		count = rc.defaultCount
	}

	result, err := rc.readings.Draw(c.Request.Context(), auth.CurrentOwnerPtr(c), request.Type, count)
	if err != nil {
		rc.AbortWithError(c, err)
		return
	}
	response.Created(c, result, "抽牌成功")
}

// Daily 每日一牌，user_id 缺省时使用请求头中的用户标识
func (rc *ReadingController) Daily(c *gin.Context) {
	owner := auth.CurrentOwnerPtr(c)
	if userID := c.Query("user_id"); userID != "" {
		owner = &userID
	}

	daily, err := rc.readings.DailyCard(c.Request.Context(), c.Query("date"), owner)
	if err != nil {
		rc.AbortWithError(c, err)
		return
	}
	response.Data(c, daily)
}

// Store 保存客户端给出的解读（公开）
func (rc *ReadingController) Store(c *gin.Context) {
	request, err := requests.ValidateSaveReading(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	view, err := rc.readings.SaveReading(c.Request.Context(), auth.CurrentOwnerPtr(c),
		request.Type, request.Cards, request.SpreadSize)
	if err != nil {
		rc.AbortWithError(c, err)
		return
	}
	response.Created(c, view)
}

// Show 单次解读详情
func (rc *ReadingController) Show(c *gin.Context) {
	view, err := rc.readings.GetReadingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		rc.AbortWithError(c, err)
		return
	}
	response.Data(c, view)
}

// Public 公开解读列表
func (rc *ReadingController) Public(c *gin.Context) {
	page, limit, ok := rc.pagination(c)
	if !ok {
		return
	}

	views, total, err := rc.readings.ListPublicHistory(c.Request.Context(), page, limit)
	if err != nil {
		rc.AbortWithError(c, err)
		return
	}
	response.Paginated(c, views, total, page, limit)
}

// History 当前用户的解读记录
func (rc *ReadingController) History(c *gin.Context) {
	page, limit, ok := rc.pagination(c)
	if !ok {
		return
	}
	owner, _ := auth.CurrentOwner(c)

	readings, total, err := rc.readings.ListOwnerHistory(c.Request.Context(), owner, page, limit)
	if err != nil {
		rc.AbortWithError(c, err)
		return
	}
	response.Paginated(c, readings, total, page, limit)
}

func (rc *ReadingController) pagination(c *gin.Context) (page, limit int, ok bool) {
	page, err := rc.QueryInt(c, "page", 1)
	if err != nil {
		response.BadRequest(c, err)
		return 0, 0, false
	}
	limit, err = rc.QueryInt(c, "limit", rc.defaultLimit)
	if err != nil {
		response.BadRequest(c, err)
		return 0, 0, false
	}
	return page, limit, true
}
