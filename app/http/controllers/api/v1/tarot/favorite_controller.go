package tarot

import (
	v1 "oraculo/app/http/controllers/api/v1"
	"oraculo/app/services"
	"oraculo/pkg/auth"
	"oraculo/pkg/response"

	"github.com/gin-gonic/gin"
)

// FavoriteController 卡牌收藏
type FavoriteController struct {
	v1.BaseAPIController
	favorites *services.FavoriteService
}

// NewFavoriteController 创建控制器
func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

// Index 当前用户的收藏
func (fc *FavoriteController) Index(c *gin.Context) {
	owner, _ := auth.CurrentOwner(c)
	favs, err := fc.favorites.ListFavorites(c.Request.Context(), owner)
	if err != nil {
		fc.AbortWithError(c, err)
		return
	}
	response.Data(c, favs)
}

// Store 收藏卡牌
func (fc *FavoriteController) Store(c *gin.Context) {
	cardID, ok := fc.ParamUint(c, "card_id")
	if !ok {
		return
	}
	owner, _ := auth.CurrentOwner(c)
	if err := fc.favorites.AddFavorite(c.Request.Context(), owner, cardID); err != nil {
		fc.AbortWithError(c, err)
		return
	}
	response.Created(c, gin.H{"cardId": cardID}, "收藏成功")
}

// Destroy 取消收藏
func (fc *FavoriteController) Destroy(c *gin.Context) {
	cardID, ok := fc.ParamUint(c, "card_id")
	if !ok {
		return
	}
	owner, _ := auth.CurrentOwner(c)
	if err := fc.favorites.RemoveFavorite(c.Request.Context(), owner, cardID); err != nil {
		fc.AbortWithError(c, err)
		return
	}
	response.Data(c, gin.H{"cardId": cardID})
}
