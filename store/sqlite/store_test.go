package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashton-hoops/Defense/clip"
	"github.com/ashton-hoops/Defense/store"
)

func newStore(t *testing.T) store.Store {
	t.Helper()

	st, err := NewStore(store.WithLocation(filepath.Join(t.TempDir(), "analytics.sqlite")))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	return st
}

func TestUpsertAndFetchRoundTrip(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	in := clip.Record{
		Id:             "c1",
		Filename:       "c1.mp4",
		Path:           "Clips/c1.mp4",
		GameId:         3,
		Opponent:       "Duke",
		Quarter:        4,
		Possession:     12,
		Situation:      "BLOB",
		Formation:      "Horns",
		PlayName:       "Horns Flare",
		PlayTrigger:    "DHO",
		ActionTypes:    "PNR",
		ActionSequence: "1-5 PNR",
		ScoutCoverage:  "Drop",
		Coverage:       "Switch",
		BallScreen:     "Drop",
		HelpRotation:   "Low man",
		Result:         "Make",
		Shooter:        "23",
		ShotLocation:   "Corner 3",
		ShotResult:     "Make",
		Points:         3,
		Rebound:        "None",
		Contest:        "Contested",
		PaintTouch:     "Yes",
		Notes:          "ATO",
	}

	require.NoError(t, st.Upsert(ctx, in))

	out, err := st.Fetch(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.CreatedAt)
	assert.NotEmpty(t, out.UpdatedAt)

	// timestamps are store-assigned; everything else round-trips exactly
	in.CreatedAt = out.CreatedAt
	in.UpdatedAt = out.UpdatedAt
	assert.Equal(t, in, *out)
}

func TestUpsertRequiresId(t *testing.T) {
	st := newStore(t)

	err := st.Upsert(context.Background(), clip.Record{Opponent: "Duke"})
	require.Error(t, err)
}

func TestFetchMissing(t *testing.T) {
	st := newStore(t)

	rec, err := st.Fetch(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestFetchAllNewestFirst(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, clip.Record{Id: "older", CreatedAt: "2025-01-01T00:00:00Z"}))
	require.NoError(t, st.Upsert(ctx, clip.Record{Id: "newer", CreatedAt: "2025-01-02T00:00:00Z"}))

	records, err := st.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "newer", records[0].Id)
	assert.Equal(t, "older", records[1].Id)
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, clip.Record{Id: "c1", CreatedAt: "2025-01-01T00:00:00Z", Result: "Miss"}))
	require.NoError(t, st.Upsert(ctx, clip.Record{Id: "c1", Result: "Make", Points: 3}))

	records, err := st.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Make", records[0].Result)
	assert.Equal(t, 3, records[0].Points)
	assert.Equal(t, "2025-01-01T00:00:00Z", records[0].CreatedAt)
}

func TestRemove(t *testing.T) {
	st := newStore(t)
	ctx := context.Background()

	require.NoError(t, st.Upsert(ctx, clip.Record{Id: "c1"}))
	require.NoError(t, st.Remove(ctx, "c1"))
	require.NoError(t, st.Remove(ctx, "c1")) // idempotent

	rec, err := st.Fetch(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, rec)
}
