package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"oraculo/app/models/card"
	"oraculo/app/repositories"
	"oraculo/pkg/database/dbtest"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// memoryStore 测试用的内存缓存
type memoryStore struct {
	mu   sync.Mutex
	data map[string]string
	sets int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]string{}}
}

func (m *memoryStore) Set(key, value string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.data[key] = value
}

func (m *memoryStore) Get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

func (m *memoryStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memoryStore) Forget(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

// testDeck n 张牌，第一张没有逆位牌义
func testDeck(n int) []card.Card {
	cards := make([]card.Card, n)
	for i := range cards {
		cards[i] = card.Card{
			ShortCode:      ptr(fmt.Sprintf("ar%02d", i)),
			Name:           fmt.Sprintf("Card %d", i),
			ArcanaType:     card.ArcanaMajor,
			Number:         ptr(i),
			UprightMeaning: fmt.Sprintf("upright %d", i),
		}
		if i > 0 {
			cards[i].ReversedMeaning = ptr(fmt.Sprintf("reversed %d", i))
		}
	}
	return cards
}

type fixture struct {
	db       *gorm.DB
	catalog  *CatalogService
	readings *ReadingService
	repo     *repositories.ReadingRepository
}

func newFixture(t *testing.T, deckSize int, opts ...ReadingOption) *fixture {
	t.Helper()
	db := dbtest.New(t)
	catalog := NewCatalogService(repositories.NewCardRepository(db), nil, 0)
	if deckSize > 0 {
		_, err := catalog.Import(context.Background(), testDeck(deckSize))
		require.NoError(t, err)
	}
	repo := repositories.NewReadingRepository(db)
	return &fixture{
		db:       db,
		catalog:  catalog,
		readings: NewReadingService(catalog, repo, opts...),
		repo:     repo,
	}
}
