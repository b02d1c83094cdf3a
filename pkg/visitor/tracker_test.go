package visitor

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ecoclub/entities"
)

func testTracker(t *testing.T) *Tracker {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Visit{}))
	return NewTracker(db)
}

func TestTrackerCounts(t *testing.T) {
	tr := testTracker(t)

	require.NoError(t, tr.Track("V_alpha"))
	require.NoError(t, tr.Track("V_alpha"))
	require.NoError(t, tr.Track("V_beta"))

	s, err := tr.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.TotalVisits)
	assert.Equal(t, int64(2), s.UniqueVisitors)
	assert.Equal(t, int64(2), s.ActiveNow)
}

func TestTrackerIgnoresEmptyID(t *testing.T) {
	tr := testTracker(t)
	require.NoError(t, tr.Track(""))

	s, err := tr.Stats()
	require.NoError(t, err)
	assert.Zero(t, s.TotalVisits)
	assert.Zero(t, s.UniqueVisitors)
}
