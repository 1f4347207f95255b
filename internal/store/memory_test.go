package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarangini/coastal-alerts-service/internal/domain"
)

func TestMemoryStore_ListOrderedByTimeDescending(t *testing.T) {
	st := NewMemoryStore()
	t0 := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

	err := st.ReplaceAll(context.Background(), []domain.Alert{
		{Title: "oldest", Time: t0},
		{Title: "newest", Time: t0.Add(2 * time.Hour)},
		{Title: "middle", Time: t0.Add(time.Hour)},
	})
	require.NoError(t, err)

	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, "newest", alerts[0].Title)
	assert.Equal(t, "middle", alerts[1].Title)
	assert.Equal(t, "oldest", alerts[2].Title)
}

func TestMemoryStore_EqualTimesKeepInputOrder(t *testing.T) {
	st := NewMemoryStore()
	ts := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

	err := st.ReplaceAll(context.Background(), []domain.Alert{
		{Title: "first", Time: ts},
		{Title: "second", Time: ts},
		{Title: "third", Time: ts},
	})
	require.NoError(t, err)

	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"},
		[]string{alerts[0].Title, alerts[1].Title, alerts[2].Title})
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.ReplaceAll(context.Background(), []domain.Alert{{Title: "a"}}))

	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	alerts[0].Title = "mutated"

	again, err := st.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Title)
}

func TestMemoryStore_Reset(t *testing.T) {
	st := NewMemoryStore()
	require.NoError(t, st.ReplaceAll(context.Background(), []domain.Alert{{Title: "a"}}))
	require.NoError(t, st.Reset(context.Background()))

	alerts, err := st.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
