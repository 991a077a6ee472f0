package tarot

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPick_DistinctWithinRange(t *testing.T) {
	src := NewSeededSource(42)
	size := 22

	for count := 1; count <= size; count++ {
		draws := Pick(src, size, count)
		require.Len(t, draws, count)

		seen := make(map[int]bool, count)
		for _, d := range draws {
			assert.GreaterOrEqual(t, d.Index, 0)
			assert.Less(t, d.Index, size)
			assert.False(t, seen[d.Index], "duplicate index %d for count %d", d.Index, count)
			seen[d.Index] = true
		}
	}
}

func TestPick_ClampsOversizedCount(t *testing.T) {
	draws := Pick(NewSeededSource(7), 5, 40)
	require.Len(t, draws, 5)

	seen := map[int]bool{}
	for _, d := range draws {
		seen[d.Index] = true
	}
	assert.Len(t, seen, 5)
}

func TestPick_InvalidArguments(t *testing.T) {
	assert.Nil(t, Pick(DefaultSource, 0, 3))
	assert.Nil(t, Pick(DefaultSource, 10, 0))
	assert.Nil(t, Pick(DefaultSource, 10, -1))
}

func TestPick_SameSeedSameResult(t *testing.T) {
	a := Pick(NewSeededSource(2024), 78, 10)
	b := Pick(NewSeededSource(2024), 78, 10)
	assert.Equal(t, a, b)
}

func TestPick_FirstPositionRoughlyUniform(t *testing.T) {
	src := NewSeededSource(99)
	const size, trials = 6, 60000
	counts := make([]int, size)
	reversed := 0

	for i := 0; i < trials; i++ {
		d := Pick(src, size, 1)[0]
		counts[d.Index]++
		if d.Reversed {
			reversed++
		}
	}

	expected := float64(trials) / size
	for idx, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*0.1, "index %d drawn %d times", idx, c)
	}
	assert.InDelta(t, trials/2, reversed, trials*0.05)
}

func TestDailyIndex_Deterministic(t *testing.T) {
	first := DailyIndex("2024-01-01", "", 78)
	second := DailyIndex("2024-01-01", "", 78)
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 0)
	assert.Less(t, first, 78)
}

func TestDailyIndex_KnownDigest(t *testing.T) {
	// sha256("2024-01-01") = 41b62fb4... -> 1102458804
	assert.Equal(t, 1102458804%78, DailyIndex("2024-01-01", "", 78))
	// sha256("2024-01-01user-1") = e179bac7... -> 3782851271
	assert.Equal(t, 3782851271%22, DailyIndex("2024-01-01", "user-1", 22))

	assert.Equal(t, 0, DailyIndex("2024-01-01", "user-1", 1))
	assert.Equal(t, -1, DailyIndex("2024-01-01", "", 0))
}

func TestDailyIndex_OwnerChangesSeed(t *testing.T) {
	differs := false
	for day := 1; day <= 28 && !differs; day++ {
		date := fmt.Sprintf("2024-02-%02d", day)
		differs = DailyIndex(date, "", 78) != DailyIndex(date, "alice", 78)
	}
	assert.True(t, differs)
}

func TestDailyIndex_RoughlyUniformOverDates(t *testing.T) {
	const size = 10
	counts := make([]int, size)
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	days := 20000

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format(time.DateOnly)
		counts[DailyIndex(date, "", size)]++
	}

	expected := float64(days) / size
	for idx, c := range counts {
		assert.InDelta(t, expected, float64(c), expected*0.15, "index %d picked %d times", idx, c)
	}
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2024-01-01"))
	assert.ErrorIs(t, ValidateDate("2024-13-01"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("01/01/2024"), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate(""), ErrInvalidDate)
}
