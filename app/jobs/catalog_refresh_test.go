package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCatalog struct {
	calls atomic.Int32
	err   error
}

func (c *countingCatalog) Refresh(context.Context) (int, error) {
	c.calls.Add(1)
	return 78, c.err
}

func TestCatalogRefresher_StartStop(t *testing.T) {
	r := NewCatalogRefresher(&countingCatalog{}, "*/30 * * * *")

	require.NoError(t, r.Start())
	assert.True(t, r.IsRunning())
	require.NoError(t, r.Start())

	r.Stop()
	assert.False(t, r.IsRunning())
	r.Stop()
}

func TestCatalogRefresher_EmptyScheduleDisabled(t *testing.T) {
	r := NewCatalogRefresher(&countingCatalog{}, "")
	require.NoError(t, r.Start())
	assert.False(t, r.IsRunning())
}

func TestCatalogRefresher_InvalidSchedule(t *testing.T) {
	r := NewCatalogRefresher(&countingCatalog{}, "every thursday")
	assert.Error(t, r.Start())
	assert.False(t, r.IsRunning())
}

func TestCatalogRefresher_RunOnce(t *testing.T) {
	catalog := &countingCatalog{}
	r := NewCatalogRefresher(catalog, "")
	r.RunOnce()
	assert.EqualValues(t, 1, catalog.calls.Load())

	catalog.err = errors.New("db down")
	r.RunOnce()
	assert.EqualValues(t, 2, catalog.calls.Load())
}
