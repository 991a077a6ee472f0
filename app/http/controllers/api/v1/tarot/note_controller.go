package tarot

import (
	v1 "oraculo/app/http/controllers/api/v1"
	"oraculo/app/requests"
	"oraculo/app/services"
	"oraculo/pkg/auth"
	"oraculo/pkg/response"

	"github.com/gin-gonic/gin"
)

// NoteController 解读笔记
type NoteController struct {
	v1.BaseAPIController
	notes *services.NoteService
}

// NewNoteController 创建控制器
func NewNoteController(notes *services.NoteService) *NoteController {
	return &NoteController{notes: notes}
}

// Index 当前用户在该解读下的笔记
func (nc *NoteController) Index(c *gin.Context) {
	owner, _ := auth.CurrentOwner(c)
	notes, err := nc.notes.ListNotes(c.Request.Context(), owner, c.Param("id"))
	if err != nil {
		nc.AbortWithError(c, err)
		return
	}
	response.Data(c, notes)
}

// Store 添加笔记
func (nc *NoteController) Store(c *gin.Context) {
	request, err := requests.ValidateNote(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}
	owner, _ := auth.CurrentOwner(c)
	n, err := nc.notes.AddNote(c.Request.Context(), owner, c.Param("id"), request.Content)
	if err != nil {
		nc.AbortWithError(c, err)
		return
	}
	response.Created(c, n)
}
