package tarot

import (
	v1 "oraculo/app/http/controllers/api/v1"
	"oraculo/app/models/card"
	"oraculo/app/services"
	"oraculo/pkg/response"

	"github.com/gin-gonic/gin"
)

// CardController 卡牌目录
type CardController struct {
	v1.BaseAPIController
	catalog *services.CatalogService
}

// NewCardController 创建控制器
func NewCardController(catalog *services.CatalogService) *CardController {
	return &CardController{catalog: catalog}
}

// Index 卡牌列表，支持 q（名称/关键词）与 suit（花色）筛选
func (cc *CardController) Index(c *gin.Context) {
	cards, err := cc.catalog.FindAll(c.Request.Context(), card.Filter{
		Query: c.Query("q"),
		Suit:  c.Query("suit"),
	})
	if err != nil {
		cc.AbortWithError(c, err)
		return
	}
	response.Data(c, cards)
}

// Majors 大阿卡纳
func (cc *CardController) Majors(c *gin.Context) {
	cards, err := cc.catalog.GetMajorArcana(c.Request.Context())
	if err != nil {
		cc.AbortWithError(c, err)
		return
	}
	response.Data(c, cards)
}

// Show 根据 ID 获取卡牌
func (cc *CardController) Show(c *gin.Context) {
	id, ok := cc.ParamUint(c, "id")
	if !ok {
		return
	}
	found, err := cc.catalog.Get(c.Request.Context(), id)
	if err != nil {
		cc.AbortWithError(c, err)
		return
	}
	response.Data(c, found)
}

// ShowByShortCode 根据短代码获取卡牌
func (cc *CardController) ShowByShortCode(c *gin.Context) {
	found, err := cc.catalog.GetByShortCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		cc.AbortWithError(c, err)
		return
	}
	response.Data(c, found)
}
