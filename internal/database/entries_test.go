package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertEntry_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.UpsertEntry(ctx, "2025-01-01", 1500, 1800, 9000)
	require.NoError(t, err)

	entry, err := store.GetEntry(ctx, "2025-01-01")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "2025-01-01", entry.Date)
	assert.Equal(t, 1500, entry.WaterML)
	assert.Equal(t, 1800, entry.Calories)
	assert.Equal(t, 9000, entry.Steps)
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestUpsertEntry_OverwriteReplaces(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.UpsertEntry(ctx, "2025-01-01", 1000, 500, 2000)
	require.NoError(t, err)

	_, err = store.UpsertEntry(ctx, "2025-01-01", 2000, 1000, 4000)
	require.NoError(t, err)

	entry, err := store.GetEntry(ctx, "2025-01-01")
	require.NoError(t, err)
	require.NotNil(t, entry)

	// second values only: overwrite, not sum
	assert.Equal(t, 2000, entry.WaterML)
	assert.Equal(t, 1000, entry.Calories)
	assert.Equal(t, 4000, entry.Steps)
}

func TestUpsertEntry_DistinctIDsWithinSameMillisecond(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// Frozen clock: every write sees the same millisecond, as in a bulk
	// import loop.
	frozen := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return frozen }

	first, err := store.UpsertEntry(ctx, "2025-01-01", 1000, 500, 2000)
	require.NoError(t, err)

	second, err := store.UpsertEntry(ctx, "2025-01-02", 1500, 700, 3000)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Greater(t, second.ID, first.ID)
}

func TestUpsertEntry_BoundsViolations(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	cases := []struct {
		name                   string
		water, calories, steps int
	}{
		{"negative water", -1, 500, 500},
		{"water over bound", 10001, 500, 500},
		{"negative calories", 500, -1, 500},
		{"calories over bound", 500, 10001, 500},
		{"negative steps", 500, 500, -1},
		{"steps over bound", 500, 500, 100001},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.UpsertEntry(ctx, "2025-02-01", tc.water, tc.calories, tc.steps)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Violations)

			// nothing was written
			entry, err := store.GetEntry(ctx, "2025-02-01")
			require.NoError(t, err)
			assert.Nil(t, entry)
		})
	}
}

func TestUpsertEntry_RejectsBadDate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.UpsertEntry(ctx, "", 100, 100, 100)
	var ierr *InputError
	assert.ErrorAs(t, err, &ierr)

	_, err = store.UpsertEntry(ctx, "01/02/2025", 100, 100, 100)
	assert.ErrorAs(t, err, &ierr)
}

func TestGetEntry_Missing(t *testing.T) {
	store := setupTestStore(t)

	entry, err := store.GetEntry(context.Background(), "2025-03-01")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestGetEntriesInRange(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, date := range []string{"2025-01-05", "2025-01-01", "2025-01-03", "2025-02-01"} {
		_, err := store.UpsertEntry(ctx, date, 100, 100, 100)
		require.NoError(t, err)
	}

	entries, err := store.GetEntriesInRange(ctx, "2025-01-01", "2025-01-31")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// inclusive bounds, ascending by date
	assert.Equal(t, "2025-01-01", entries[0].Date)
	assert.Equal(t, "2025-01-03", entries[1].Date)
	assert.Equal(t, "2025-01-05", entries[2].Date)
}

func TestGetEntriesInRange_Empty(t *testing.T) {
	store := setupTestStore(t)

	entries, err := store.GetEntriesInRange(context.Background(), "2020-01-01", "2020-12-31")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpsertEntry_WriteFailurePropagates(t *testing.T) {
	store := New(&brokenAdapter{})

	_, err := store.UpsertEntry(context.Background(), "2025-01-01", 100, 100, 100)

	var serr *StorageUnavailableError
	require.ErrorAs(t, err, &serr)
}

func TestGetEntry_ReadFailureTreatedAsAbsent(t *testing.T) {
	store := New(&brokenAdapter{})

	// a failing medium degrades to "no data" on reads
	entry, err := store.GetEntry(context.Background(), "2025-01-01")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestInitialize_Idempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Initialize(ctx))

	profile, err := store.GetProfile(ctx)
	require.NoError(t, err)
	require.NotNil(t, profile)
	created := profile.CreatedAt

	_, err = store.UpsertEntry(ctx, "2025-01-01", 100, 100, 100)
	require.NoError(t, err)

	// second run must not reset entries or the profile
	require.NoError(t, store.Initialize(ctx))

	entry, err := store.GetEntry(ctx, "2025-01-01")
	require.NoError(t, err)
	assert.NotNil(t, entry)

	profile, err = store.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, profile.CreatedAt)
}

func TestInitialize_UnwritableMedium(t *testing.T) {
	store := New(&brokenAdapter{})

	err := store.Initialize(context.Background())

	var serr *StorageUnavailableError
	require.ErrorAs(t, err, &serr)
}
