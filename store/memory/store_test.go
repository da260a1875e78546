package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashton-hoops/Defense/clip"
)

func TestUpsertAndFetch(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, clip.Record{Id: "c1", Opponent: "Duke", Result: "Make"}))

	rec, err := st.Fetch(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Duke", rec.Opponent)
	assert.NotEmpty(t, rec.CreatedAt)
	assert.NotEmpty(t, rec.UpdatedAt)
}

func TestFetchMissing(t *testing.T) {
	st := NewStore()

	rec, err := st.Fetch(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestFetchAllNewestFirst(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, clip.Record{Id: "older"}))
	require.NoError(t, st.Upsert(ctx, clip.Record{Id: "newer"}))

	records, err := st.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "newer", records[0].Id)
	assert.Equal(t, "older", records[1].Id)
}

func TestUpsertAssignsId(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, clip.Record{Opponent: "Baylor"}))

	records, err := st.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0].Id)
}

func TestUpsertPreservesCreatedAt(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, clip.Record{Id: "c1", CreatedAt: "2025-01-01T00:00:00Z"}))
	require.NoError(t, st.Upsert(ctx, clip.Record{Id: "c1", Opponent: "Duke"}))

	rec, err := st.Fetch(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "2025-01-01T00:00:00Z", rec.CreatedAt)
	assert.Equal(t, "Duke", rec.Opponent)
}

func TestRemove(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, clip.Record{Id: "c1"}))
	require.NoError(t, st.Remove(ctx, "c1"))
	require.NoError(t, st.Remove(ctx, "c1")) // idempotent

	rec, err := st.Fetch(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, rec)

	records, err := st.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
