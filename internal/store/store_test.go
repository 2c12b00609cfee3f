package store

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
)

// newTestDB opens a migrated in-memory database unique to the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Giphy{}, &models.Comment{}, &models.FriendRequest{}))
	return db
}

func mustCreateUser(t *testing.T, users *UserStore, username, email string) *models.User {
	t.Helper()
	user, err := users.Create(&models.User{Username: username, DisplayName: username, Email: email})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestNowISO(t *testing.T) {
	now := NowISO()
	require.True(t, strings.HasSuffix(now, "Z"))
	require.Len(t, now, len("2006-01-02T15:04:05.000000Z"))
}
