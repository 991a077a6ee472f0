package services

import (
	"context"
	"testing"
	"time"

	"oraculo/app/models/reading"
	"oraculo/pkg/tarot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw_DistinctCardsFromCatalog(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 22, WithSource(tarot.NewSeededSource(1)))
	owner := ptr("user-1")

	for count := 1; count <= 22; count++ {
		result, err := f.readings.Draw(ctx, owner, "", count)
		require.NoError(t, err)
		require.Len(t, result.Interpretations, count)
		require.Len(t, result.Reading.Cards, count)

		seen := map[uint]bool{}
		for i, dc := range result.Reading.Cards {
			assert.False(t, seen[dc.CardID], "card %d drawn twice", dc.CardID)
			seen[dc.CardID] = true
			assert.GreaterOrEqual(t, dc.CardID, uint(1))
			assert.LessOrEqual(t, dc.CardID, uint(22))
			require.NotNil(t, dc.Position)
			assert.Equal(t, i+1, *dc.Position)

			in := result.Interpretations[i]
			assert.Equal(t, dc.CardID, in.Card.ID)
			assert.Equal(t, dc.Reversed, in.Reversed)
			assert.Equal(t, in.Card.Meaning(in.Reversed), in.Meaning)
		}

		assert.Equal(t, reading.TypeCustom, result.Reading.Type)
		assert.True(t, result.Reading.IsPrivate)
		assert.Equal(t, count, result.Reading.Meta.SpreadSize)
		assert.Equal(t, "user-1", *result.Reading.OwnerID)
	}
}

func TestDraw_ClampsToCatalogSize(t *testing.T) {
	f := newFixture(t, 5)

	result, err := f.readings.Draw(context.Background(), nil, reading.TypeYesNo, 12)
	require.NoError(t, err)
	assert.Len(t, result.Reading.Cards, 5)
	assert.Equal(t, 5, result.Reading.Meta.SpreadSize)
	assert.Equal(t, reading.TypeYesNo, result.Reading.Type)
}

func TestDraw_PersistsReading(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10)

	result, err := f.readings.Draw(ctx, ptr("u"), reading.TypeDaily, 3)
	require.NoError(t, err)

	stored, err := f.repo.GetByID(ctx, result.Reading.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Reading.Cards, stored.Cards)
	assert.True(t, stored.IsPrivate)
}

func TestDraw_InvalidCount(t *testing.T) {
	f := newFixture(t, 5)
	_, err := f.readings.Draw(context.Background(), nil, "", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDraw_EmptyCatalogPersistsNothing(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	_, err := f.readings.Draw(ctx, ptr("u"), "", 3)
	require.ErrorIs(t, err, ErrEmptyCatalog)

	var total int64
	require.NoError(t, f.db.Model(&reading.Reading{}).Count(&total).Error)
	assert.Zero(t, total)

	_, err = f.readings.DailyCard(ctx, "2024-01-01", nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestDailyCard_Deterministic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 78)

	first, err := f.readings.DailyCard(ctx, "2024-01-01", nil)
	require.NoError(t, err)
	second, err := f.readings.DailyCard(ctx, "2024-01-01", nil)
	require.NoError(t, err)

	assert.Equal(t, first.Card.ID, second.Card.ID)
	assert.False(t, first.Reversed)
	assert.Equal(t, first.Card.UprightMeaning, first.Meaning)
	// sha256("2024-01-01") 前 4 字节 = 1102458804，按 ID 升序取下标 18 的牌
	assert.EqualValues(t, 1102458804%78+1, first.Card.ID)

	var total int64
	require.NoError(t, f.db.Model(&reading.Reading{}).Count(&total).Error)
	assert.Zero(t, total)
}

func TestDailyCard_DefaultsToToday(t *testing.T) {
	f := newFixture(t, 78, WithClock(func() string { return "2024-01-01" }))

	daily, err := f.readings.DailyCard(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", daily.Date)
	assert.EqualValues(t, 1102458804%78+1, daily.Card.ID)
}

func TestDailyCard_InvalidDate(t *testing.T) {
	f := newFixture(t, 5)
	_, err := f.readings.DailyCard(context.Background(), "2024/01/01", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDailyCard_RoughlyUniform(t *testing.T) {
	ctx := context.Background()
	const size = 8
	f := newFixture(t, size)
	counts := map[uint]int{}
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	days := 4000

	for i := 0; i < days; i++ {
		daily, err := f.readings.DailyCard(ctx, start.AddDate(0, 0, i).Format(time.DateOnly), nil)
		require.NoError(t, err)
		counts[daily.Card.ID]++
	}

	require.Len(t, counts, size)
	expected := float64(days) / size
	for id, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*0.2, "card %d picked %d times", id, c)
	}
}

func TestSaveReading_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 10)

	cards := []reading.DrawnCard{
		{CardID: 7, Reversed: true},
		{CardID: 2},
		{CardID: 9, Reversed: true},
	}
	saved, err := f.readings.SaveReading(ctx, nil, "", cards, 5)
	require.NoError(t, err)
	assert.False(t, saved.Reading.IsPrivate)
	assert.Nil(t, saved.Reading.OwnerID)
	assert.Equal(t, 5, saved.SpreadSize)

	got, err := f.readings.GetReadingByID(ctx, saved.Reading.ID)
	require.NoError(t, err)
	require.Len(t, got.Cards, 3)
	assert.EqualValues(t, 7, got.Cards[0].Card.ID)
	assert.EqualValues(t, 2, got.Cards[1].Card.ID)
	assert.EqualValues(t, 9, got.Cards[2].Card.ID)
	assert.True(t, got.Cards[0].Reversed)
	assert.Equal(t, "reversed 6", got.Cards[0].Meaning)
	assert.Equal(t, 5, got.SpreadSize)
	assert.Equal(t, 3, got.CardCount)
}

func TestSaveReading_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3)

	_, err := f.readings.SaveReading(ctx, nil, "", nil, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.readings.SaveReading(ctx, nil, "", []reading.DrawnCard{{CardID: 1}}, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	view, err := f.readings.SaveReading(ctx, nil, "", []reading.DrawnCard{{CardID: 1}, {CardID: 2}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, view.SpreadSize)
}

func TestGetReadingByID_DropsUnknownCardsAndFallsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 3)

	saved, err := f.readings.SaveReading(ctx, nil, reading.TypeCustom, []reading.DrawnCard{
		{CardID: 1, Reversed: true},
		{CardID: 404},
		{CardID: 3},
	}, 0)
	require.NoError(t, err)

	got, err := f.readings.GetReadingByID(ctx, saved.Reading.ID)
	require.NoError(t, err)
	require.Len(t, got.Cards, 2)
	assert.EqualValues(t, 1, got.Cards[0].Card.ID)
	assert.EqualValues(t, 3, got.Cards[1].Card.ID)
	// 第一张牌没有逆位牌义，回退到正位
	assert.True(t, got.Cards[0].Reversed)
	assert.Equal(t, "upright 0", got.Cards[0].Meaning)
	assert.Equal(t, 3, got.SpreadSize)
	assert.Equal(t, 2, got.CardCount)

	_, err = f.readings.GetReadingByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPublicHistory_NewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 5)
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	ids := make([]string, 5)
	for i := 0; i < 5; i++ {
		rd := &reading.Reading{
			Type:  reading.TypeCustom,
			Cards: reading.DrawnCards{{CardID: uint(i + 1)}},
			Meta:  &reading.Meta{SpreadSize: 1},
		}
		rd.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, f.repo.Create(ctx, rd))
		ids[i] = rd.ID
	}
	// 私有解读不出现在公开列表
	_, err := f.readings.Draw(ctx, ptr("u"), "", 2)
	require.NoError(t, err)

	views, total, err := f.readings.ListPublicHistory(ctx, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, views, 2)
	assert.Equal(t, ids[4], views[0].Reading.ID)
	assert.Equal(t, ids[3], views[1].Reading.ID)
	assert.EqualValues(t, 5, views[0].Cards[0].Card.ID)
	assert.Equal(t, 1, views[0].CardCount)

	_, _, err = f.readings.ListPublicHistory(ctx, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, _, err = f.readings.ListPublicHistory(ctx, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListOwnerHistory(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 5, WithMaxHistoryLimit(2))

	for i := 0; i < 3; i++ {
		_, err := f.readings.Draw(ctx, ptr("alice"), "", 1)
		require.NoError(t, err)
	}
	_, err := f.readings.Draw(ctx, ptr("bob"), "", 1)
	require.NoError(t, err)

	readings, total, err := f.readings.ListOwnerHistory(ctx, "alice", 1, 50)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, readings, 2)
	for _, rd := range readings {
		assert.Equal(t, "alice", *rd.OwnerID)
	}

	_, _, err = f.readings.ListOwnerHistory(ctx, "", 1, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
