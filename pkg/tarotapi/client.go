// Package tarotapi 从 tarotapi.dev 拉取完整牌组并转换为本地卡牌数据
package tarotapi

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"oraculo/app/models/card"
	"oraculo/pkg/logger"

	"github.com/go-resty/resty/v2"
)

// ImageBaseURL Rider-Waite 牌面图片地址
const ImageBaseURL = "https://www.sacred-texts.com/tarot/pkt/img/"

var digits = regexp.MustCompile(`\d+`)

// APICard 接口返回的卡牌
type APICard struct {
	Name       string `json:"name"`
	NameShort  string `json:"name_short"`
	Type       string `json:"type"`
	Suit       string `json:"suit"`
	Value      string `json:"value"`
	MeaningUp  string `json:"meaning_up"`
	MeaningRev string `json:"meaning_rev"`
	Desc       string `json:"desc"`
}

type cardsResponse struct {
	Cards []APICard `json:"cards"`
}

// Client tarotapi 客户端
type Client struct {
	baseURL string
	http    *resty.Client
}

// NewClient 创建客户端，失败请求最多重试 3 次
func NewClient(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetTimeout(timeout).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    rc,
	}
}

// FetchCards 获取全部卡牌
func (c *Client) FetchCards(ctx context.Context) ([]APICard, error) {
	url := c.baseURL + "/cards"
	resp, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch cards: %w", err)
	}

	logger.InfoString("TarotAPI", "Response", fmt.Sprintf(
		"请求完成 URL:%s 状态:%d 响应长度:%d", url, resp.StatusCode(), len(resp.Body())))

	if resp.IsError() {
		return nil, fmt.Errorf("tarot api returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var body cardsResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode tarot api response: %w", err)
	}
	return body.Cards, nil
}

// FetchDeck 获取并转换全部卡牌
func (c *Client) FetchDeck(ctx context.Context) ([]card.Card, error) {
	apiCards, err := c.FetchCards(ctx)
	if err != nil {
		return nil, err
	}
	cards := make([]card.Card, len(apiCards))
	for i, ac := range apiCards {
		cards[i] = MapCard(ac)
	}
	return cards, nil
}

// MapCard 转换为本地卡牌
// 大阿卡纳的编号取 value 中第一段数字，关键词为去掉 "the " 的小写名称
func MapCard(ac APICard) card.Card {
	c := card.Card{
		ShortCode:       optional(ac.NameShort),
		Name:            ac.Name,
		ArcanaType:      card.ArcanaMinor,
		Suit:            optional(strings.ToLower(ac.Suit)),
		Value:           optional(ac.Value),
		UprightMeaning:  ac.MeaningUp,
		ReversedMeaning: optional(ac.MeaningRev),
		Description:     optional(ac.Desc),
		Keywords:        optional(keywords(ac.Name)),
	}

	if ac.Type == "major" {
		c.ArcanaType = card.ArcanaMajor
		if m := digits.FindString(ac.Value); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				c.Number = &n
			}
		}
	}
	if ac.NameShort != "" {
		url := ImageBaseURL + ac.NameShort + ".jpg"
		c.ImageURL = &url
	}
	return c
}

func keywords(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToLower(name), "the ", ""))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
