package tag

import (
	"fmt"
	"strings"
	"testing"

	"github.com/eunji-woo/my-website-go/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestFindOrCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	first, err := svc.FindOrCreate("some tag")
	require.NoError(t, err)
	assert.Equal(t, "some-tag", first.Slug)

	again, err := svc.FindOrCreate("some tag")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestFindOrCreateAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db)

	tags, err := svc.FindOrCreateAll([]string{"america", " korea ", "", "america"})
	require.NoError(t, err)
	require.Len(t, tags, 3, "blanks skipped, duplicates resolve to one row")
	assert.Equal(t, "america", tags[0].Name)
	assert.Equal(t, "korea", tags[1].Name)
	assert.Equal(t, tags[0].ID, tags[2].ID)
}
