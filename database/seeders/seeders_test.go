package seeders

import (
	"os"
	"path/filepath"
	"testing"

	"oraculo/app/models/card"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeck(t *testing.T) {
	cards, err := DefaultDeck()
	require.NoError(t, err)
	require.Len(t, cards, 22)

	for i, c := range cards {
		assert.Equal(t, card.ArcanaMajor, c.ArcanaType)
		require.NotNil(t, c.Number)
		assert.Equal(t, i, *c.Number)
		require.NotNil(t, c.ShortCode)
		assert.NotNil(t, c.ReversedMeaning)
		assert.Nil(t, c.Suit)
	}
	assert.Equal(t, "The Fool", cards[0].Name)
	assert.Equal(t, "The World", cards[21].Name)
}

func TestLoad_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	content := `[{"name":"Ace of Cups","nameShort":"cuac","arcanaType":"Minor","suit":"cups","uprightMeaning":"new love"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cards, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "cuac", *cards[0].ShortCode)
	assert.Nil(t, cards[0].ReversedMeaning)
}

func TestLoad_RejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cards: []"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
