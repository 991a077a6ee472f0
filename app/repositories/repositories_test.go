package repositories

import (
	"context"
	"testing"
	"time"

	"oraculo/app/models/card"
	"oraculo/app/models/note"
	"oraculo/app/models/reading"
	"oraculo/pkg/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func seedCards(t *testing.T, repo *CardRepository) {
	t.Helper()
	cards := []card.Card{
		{ShortCode: ptr("ar01"), Name: "The Magician", ArcanaType: card.ArcanaMajor, Number: ptr(1),
			UprightMeaning: "skill", ReversedMeaning: ptr("trickery"), Keywords: ptr("magician")},
		{ShortCode: ptr("ar00"), Name: "The Fool", ArcanaType: card.ArcanaMajor, Number: ptr(0),
			UprightMeaning: "beginnings", Keywords: ptr("fool")},
		{ShortCode: ptr("cuac"), Name: "Ace of Cups", ArcanaType: card.ArcanaMinor, Suit: ptr("cups"),
			Value: ptr("ace"), UprightMeaning: "new love", Keywords: ptr("ace of cups")},
		{ShortCode: ptr("swki"), Name: "King of Swords", ArcanaType: card.ArcanaMinor, Suit: ptr("swords"),
			Value: ptr("king"), UprightMeaning: "authority", Keywords: ptr("king of swords")},
	}
	for i := range cards {
		created, err := repo.Upsert(context.Background(), &cards[i])
		require.NoError(t, err)
		require.True(t, created)
	}
}

func TestCardRepository_Lookup(t *testing.T) {
	ctx := context.Background()
	repo := NewCardRepository(dbtest.New(t))
	seedCards(t, repo)

	c, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "The Magician", c.Name)

	c, err = repo.GetByShortCode(ctx, "swki")
	require.NoError(t, err)
	assert.Equal(t, "King of Swords", c.Name)

	_, err = repo.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByShortCode(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCardRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	repo := NewCardRepository(dbtest.New(t))
	seedCards(t, repo)

	all, err := repo.FindAll(ctx, card.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	byQuery, err := repo.FindAll(ctx, card.Filter{Query: "KING"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "King of Swords", byQuery[0].Name)

	// 花色优先于关键词
	bySuit, err := repo.FindAll(ctx, card.Filter{Suit: "cups", Query: "king"})
	require.NoError(t, err)
	require.Len(t, bySuit, 1)
	assert.Equal(t, "Ace of Cups", bySuit[0].Name)

	majors, err := repo.GetMajorArcana(ctx)
	require.NoError(t, err)
	require.Len(t, majors, 2)
	assert.Equal(t, "The Fool", majors[0].Name)
	assert.Equal(t, "The Magician", majors[1].Name)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
}

func TestCardRepository_UpsertUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewCardRepository(dbtest.New(t))
	seedCards(t, repo)

	byCode := &card.Card{ShortCode: ptr("ar00"), Name: "The Fool", ArcanaType: card.ArcanaMajor,
		Number: ptr(0), UprightMeaning: "a leap of faith"}
	created, err := repo.Upsert(ctx, byCode)
	require.NoError(t, err)
	assert.False(t, created)
	assert.EqualValues(t, 2, byCode.ID)

	byName := &card.Card{Name: "Ace of Cups", ArcanaType: card.ArcanaMinor, Suit: ptr("cups"),
		UprightMeaning: "overflowing feelings"}
	created, err = repo.Upsert(ctx, byName)
	require.NoError(t, err)
	assert.False(t, created)
	assert.EqualValues(t, 3, byName.ID)

	c, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "a leap of faith", c.UprightMeaning)

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
}

func TestReadingRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewReadingRepository(dbtest.New(t))

	rd := &reading.Reading{
		OwnerID: ptr("user-1"),
		Type:    reading.TypeYesNo,
		Cards: reading.DrawnCards{
			{CardID: 3, Position: ptr(1), Reversed: true},
			{CardID: 1, Position: ptr(2)},
		},
		Meta:      &reading.Meta{SpreadSize: 2, Extra: map[string]interface{}{"question": "soon?"}},
		IsPrivate: false,
	}
	require.NoError(t, repo.Create(ctx, rd))
	require.Len(t, rd.ID, 36)
	assert.False(t, rd.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, rd.ID)
	require.NoError(t, err)
	assert.Equal(t, rd.Cards, got.Cards)
	assert.Equal(t, "user-1", *got.OwnerID)
	assert.Equal(t, 2, got.Meta.SpreadSize)
	assert.Equal(t, "soon?", got.Meta.Extra["question"])
	assert.False(t, got.IsPrivate)

	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadingRepository_RejectsEmptyCards(t *testing.T) {
	repo := NewReadingRepository(dbtest.New(t))
	err := repo.Create(context.Background(), &reading.Reading{Type: reading.TypeCustom})
	assert.Error(t, err)
}

func TestReadingRepository_Lists(t *testing.T) {
	ctx := context.Background()
	repo := NewReadingRepository(dbtest.New(t))
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 6; i++ {
		rd := &reading.Reading{
			OwnerID:   ptr("owner"),
			Type:      reading.TypeCustom,
			Cards:     reading.DrawnCards{{CardID: uint(i + 1)}},
			IsPrivate: i%2 == 0,
		}
		rd.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Create(ctx, rd))
	}

	public, total, err := repo.ListPublic(ctx, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, public, 2)
	assert.EqualValues(t, 6, public[0].Cards[0].CardID)
	assert.EqualValues(t, 4, public[1].Cards[0].CardID)

	page2, _, err := repo.ListPublic(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.EqualValues(t, 2, page2[0].Cards[0].CardID)

	owned, total, err := repo.ListByOwner(ctx, "owner", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 6, total)
	assert.Len(t, owned, 6)

	none, total, err := repo.ListByOwner(ctx, "someone-else", 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, none)
}

func TestFavoriteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFavoriteRepository(dbtest.New(t))

	require.NoError(t, repo.Add(ctx, "u1", 5))
	require.NoError(t, repo.Add(ctx, "u1", 5))
	require.NoError(t, repo.Add(ctx, "u1", 7))
	require.NoError(t, repo.Add(ctx, "u2", 5))

	favs, err := repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, favs, 2)

	require.NoError(t, repo.Remove(ctx, "u1", 5))
	favs, err = repo.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.EqualValues(t, 7, favs[0].CardID)
}

func TestNoteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository(dbtest.New(t))

	require.NoError(t, repo.Create(ctx, &note.Note{OwnerID: "u1", ReadingID: "r1", Content: "first"}))
	require.NoError(t, repo.Create(ctx, &note.Note{OwnerID: "u1", ReadingID: "r1", Content: "second"}))
	require.NoError(t, repo.Create(ctx, &note.Note{OwnerID: "u2", ReadingID: "r1", Content: "other"}))

	notes, err := repo.ListByReading(ctx, "u1", "r1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].Content)
}
