package services

import (
	"context"
	"fmt"
	"strings"

	"oraculo/app/models/card"
	"oraculo/app/models/reading"
	"oraculo/pkg/app"
	"oraculo/pkg/logger"
	"oraculo/pkg/tarot"

	"go.uber.org/zap"
)

// DefaultMaxHistoryLimit 历史查询每页上限
const DefaultMaxHistoryLimit = 100

// ReadingStore 解读记录存储
type ReadingStore interface {
	Create(ctx context.Context, rd *reading.Reading) error
	GetByID(ctx context.Context, id string) (*reading.Reading, error)
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]reading.Reading, int64, error)
	ListPublic(ctx context.Context, page, pageSize int) ([]reading.Reading, int64, error)
}

// Interpretation 一张牌的解读
type Interpretation struct {
	Card     *card.Card `json:"card"`
	Reversed bool       `json:"reversed"`
	Meaning  string     `json:"meaning"`
	Position *int       `json:"position,omitempty"`
}

// DrawResult 抽牌结果
type DrawResult struct {
	Reading         *reading.Reading `json:"reading"`
	Interpretations []Interpretation `json:"interpretations"`
}

// DailyCard 每日一牌，不落库
type DailyCard struct {
	Date     string     `json:"date"`
	Card     *card.Card `json:"card"`
	Reversed bool       `json:"reversed"`
	Meaning  string     `json:"meaning"`
}

// ReadingView 带卡牌详情的解读记录
type ReadingView struct {
	Reading    *reading.Reading `json:"reading"`
	Cards      []Interpretation `json:"cards"`
	SpreadSize int              `json:"spreadSize"`
	CardCount  int              `json:"cardCount"`
}

// ReadingOption 服务选项
type ReadingOption func(*ReadingService)

// WithSource 指定随机源
func WithSource(src tarot.Source) ReadingOption {
	return func(s *ReadingService) {
		s.source = src
	}
}

// WithClock 指定"今天"的计算方式，返回 2006-01-02 格式
func WithClock(today func() string) ReadingOption {
	return func(s *ReadingService) {
		s.today = today
	}
}

// WithMaxHistoryLimit 指定历史查询每页上限
func WithMaxHistoryLimit(limit int) ReadingOption {
	return func(s *ReadingService) {
		if limit > 0 {
			s.maxLimit = limit
		}
	}
}

// ReadingService 抽牌引擎与历史回放
type ReadingService struct {
	catalog  Catalog
	readings ReadingStore
	source   tarot.Source
	today    func() string
	maxLimit int
}

// NewReadingService 创建解读服务
func NewReadingService(catalog Catalog, readings ReadingStore, opts ...ReadingOption) *ReadingService {
	s := &ReadingService{
		catalog:  catalog,
		readings: readings,
		source:   tarot.DefaultSource,
		today:    app.Today,
		maxLimit: DefaultMaxHistoryLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draw 随机抽取 count 张牌并保存为私有解读
func (s *ReadingService) Draw(ctx context.Context, ownerID *string, readingType string, count int) (*DrawResult, error) {
	if count < 1 {
		return nil, invalidInput("count must be at least 1, got %d", count)
	}

	cards, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	draws := tarot.Pick(s.source, len(cards), count)
	drawn := make(reading.DrawnCards, len(draws))
	interpretations := make([]Interpretation, len(draws))
	for i, d := range draws {
		c := &cards[d.Index]
		position := i + 1
		drawn[i] = reading.DrawnCard{
			CardID:   c.ID,
			Position: &position,
			Reversed: d.Reversed,
		}
		interpretations[i] = interpret(c, drawn[i])
	}

	rd := &reading.Reading{
		OwnerID:   ownerID,
		Type:      normalizeType(readingType),
		Cards:     drawn,
		Meta:      &reading.Meta{SpreadSize: len(drawn)},
		IsPrivate: true,
	}
	if err := s.readings.Create(ctx, rd); err != nil {
		return nil, fmt.Errorf("save reading: %w", err)
	}

	logger.Info("Reading",
		zap.String("action", "draw"),
		zap.String("id", rd.ID),
		zap.String("type", rd.Type),
		zap.Int("requested", count),
		zap.Int("drawn", len(drawn)),
	)

	return &DrawResult{
		Reading:         rd,
		Interpretations: interpretations,
	}, nil
}

// DailyCard 根据日期与用户确定当日的牌，同一输入总是得到同一张牌
// date 为空时取应用时区的今天
func (s *ReadingService) DailyCard(ctx context.Context, date string, ownerID *string) (*DailyCard, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = s.today()
	} else if err := tarot.ValidateDate(date); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	cards, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	owner := ""
	if ownerID != nil {
		owner = *ownerID
	}
	c := &cards[tarot.DailyIndex(date, owner, len(cards))]

	return &DailyCard{
		Date:     date,
		Card:     c,
		Reversed: false,
		Meaning:  c.Meaning(false),
	}, nil
}

// SaveReading 保存客户端给定的解读（公开），不涉及随机
// spreadSize 为 0 时取卡牌张数
func (s *ReadingService) SaveReading(ctx context.Context, ownerID *string, readingType string, cards []reading.DrawnCard, spreadSize int) (*ReadingView, error) {
	if len(cards) == 0 {
		return nil, invalidInput("cards cannot be empty")
	}
	if spreadSize < 0 {
		return nil, invalidInput("spreadSize cannot be negative, got %d", spreadSize)
	}
	if spreadSize == 0 {
		spreadSize = len(cards)
	}

	rd := &reading.Reading{
		OwnerID:   ownerID,
		Type:      normalizeType(readingType),
		Cards:     append(reading.DrawnCards(nil), cards...),
		Meta:      &reading.Meta{SpreadSize: spreadSize},
		IsPrivate: false,
	}
	if err := s.readings.Create(ctx, rd); err != nil {
		return nil, fmt.Errorf("save reading: %w", err)
	}

	logger.Info("Reading",
		zap.String("action", "save"),
		zap.String("id", rd.ID),
		zap.String("type", rd.Type),
		zap.Int("cards", len(cards)),
	)

	return s.view(ctx, rd)
}

// GetReadingByID 获取单次解读并补全卡牌信息
func (s *ReadingService) GetReadingByID(ctx context.Context, id string) (*ReadingView, error) {
	rd, err := s.readings.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(fmt.Sprintf("reading %q", id), err)
	}
	return s.view(ctx, rd)
}

// ListPublicHistory 公开解读，最新的在前，每条补全卡牌信息
func (s *ReadingService) ListPublicHistory(ctx context.Context, page, limit int) ([]ReadingView, int64, error) {
	limit, err := s.checkPage(page, limit)
	if err != nil {
		return nil, 0, err
	}

	readings, total, err := s.readings.ListPublic(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list public readings: %w", err)
	}

	cards, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}
	index := indexByID(cards)

	views := make([]ReadingView, len(readings))
	for i := range readings {
		views[i] = buildView(&readings[i], index)
	}
	return views, total, nil
}

// ListOwnerHistory 用户自己的解读记录（原始数据）及总数
func (s *ReadingService) ListOwnerHistory(ctx context.Context, ownerID string, page, limit int) ([]reading.Reading, int64, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, 0, invalidInput("owner is required")
	}
	limit, err := s.checkPage(page, limit)
	if err != nil {
		return nil, 0, err
	}

	readings, total, err := s.readings.ListByOwner(ctx, ownerID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list readings of %q: %w", ownerID, err)
	}
	return readings, total, nil
}

func (s *ReadingService) checkPage(page, limit int) (int, error) {
	if page < 1 {
		return 0, invalidInput("page must be at least 1, got %d", page)
	}
	if limit < 1 {
		return 0, invalidInput("limit must be at least 1, got %d", limit)
	}
	return min(limit, s.maxLimit), nil
}

func (s *ReadingService) snapshot(ctx context.Context) ([]card.Card, error) {
	cards, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, ErrEmptyCatalog
	}
	return cards, nil
}

func (s *ReadingService) view(ctx context.Context, rd *reading.Reading) (*ReadingView, error) {
	cards, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	v := buildView(rd, indexByID(cards))
	return &v, nil
}

// buildView 按保存顺序解析卡牌，目录中已不存在的牌直接略过
func buildView(rd *reading.Reading, index map[uint]*card.Card) ReadingView {
	resolved := make([]Interpretation, 0, len(rd.Cards))
	for _, dc := range rd.Cards {
		c, ok := index[dc.CardID]
		if !ok {
			continue
		}
		resolved = append(resolved, interpret(c, dc))
	}
	return ReadingView{
		Reading:    rd,
		Cards:      resolved,
		SpreadSize: rd.SpreadSize(len(resolved)),
		CardCount:  len(resolved),
	}
}

func interpret(c *card.Card, dc reading.DrawnCard) Interpretation {
	return Interpretation{
		Card:     c,
		Reversed: dc.Reversed,
		Meaning:  c.Meaning(dc.Reversed),
		Position: dc.Position,
	}
}

func normalizeType(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return reading.TypeCustom
	}
	return t
}

