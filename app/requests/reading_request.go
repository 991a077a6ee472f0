package requests

import (
	"fmt"

	"oraculo/app/models/reading"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// DrawRequest 抽牌请求，count 为 0 时使用默认张数
type DrawRequest struct {
	Count int    `json:"count"`
	Type  string `json:"type"`
}

// ValidateDraw 验证抽牌请求，允许空请求体
func ValidateDraw(c *gin.Context) (*DrawRequest, error) {
	var req DrawRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, fmt.Errorf("解析请求失败: %w", err)
		}
	}

	rules := govalidator.MapData{
		"type": []string{"max:32"},
	}
	messages := govalidator.MapData{
		"type": []string{"max:解读类型长度不能超过 32 个字符"},
	}
	if err := ValidateStruct(&req, rules, messages); err != nil {
		return nil, err
	}

	if req.Count < 0 {
		return nil, fmt.Errorf("抽牌张数不能为负数: %d", req.Count)
	}
	return &req, nil
}

// SaveReadingRequest 保存解读请求
type SaveReadingRequest struct {
	Type       string              `json:"type"`
	Cards      []reading.DrawnCard `json:"cards"`
	SpreadSize int                 `json:"spreadSize"`
}

// ValidateSaveReading 验证保存解读请求
func ValidateSaveReading(c *gin.Context) (*SaveReadingRequest, error) {
	rules := govalidator.MapData{
		"type": []string{"max:32"},
	}
	messages := govalidator.MapData{
		"type": []string{"max:解读类型长度不能超过 32 个字符"},
	}
	req, err := ValidateRequest[SaveReadingRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}

	// 卡牌验证
	if len(req.Cards) == 0 {
		return nil, fmt.Errorf("至少需要一张卡牌")
	}
	for _, dc := range req.Cards {
		if dc.CardID == 0 {
			return nil, fmt.Errorf("无效的卡牌编号: %d", dc.CardID)
		}
	}
	if req.SpreadSize < 0 {
		return nil, fmt.Errorf("牌阵张数不能为负数: %d", req.SpreadSize)
	}
	return &req, nil
}

// NoteRequest 添加笔记请求
type NoteRequest struct {
	Content string `json:"content"`
}

// ValidateNote 验证笔记请求
func ValidateNote(c *gin.Context) (*NoteRequest, error) {
	rules := govalidator.MapData{
		"content": []string{"required", "max:2000"},
	}
	messages := govalidator.MapData{
		"content": []string{
			"required:笔记内容不能为空",
			"max:笔记内容不能超过 2000 个字符",
		},
	}
	req, err := ValidateRequest[NoteRequest](c, rules, messages)
	if err != nil {
		return nil, err
	}
	return &req, nil
}
