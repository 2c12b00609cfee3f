package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/store"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/wall"
)

// fixture wires the full core against a migrated in-memory database.
type fixture struct {
	db       *gorm.DB
	users    *store.UserStore
	identity *IdentityService
	friends  *FriendService
	walls    *WallService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Giphy{}, &models.Comment{}, &models.FriendRequest{}))

	log := zap.NewNop()
	users := store.NewUserStore(db, "")
	friendStore := store.NewFriendStore(db, users)
	gifs := store.NewGiphyStore(db)
	comments := store.NewCommentStore(db)
	registry := wall.NewRegistry()

	friends := NewFriendService(friendStore, users, log)
	return &fixture{
		db:       db,
		users:    users,
		identity: NewIdentityService(users, log),
		friends:  friends,
		walls:    NewWallService(gifs, comments, friends, registry, log),
	}
}

func (f *fixture) createUser(t *testing.T, username, email string) *models.User {
	t.Helper()
	user, err := f.users.Create(&models.User{Username: username, DisplayName: username, Email: email})
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

// makeFriends runs the mutual-request path to connect two users.
func (f *fixture) makeFriends(t *testing.T, a, b uint) {
	t.Helper()
	ok, _ := f.friends.CreateFriendRequest(a, b)
	require.True(t, ok)
	ok, _ = f.friends.CreateFriendRequest(b, a)
	require.True(t, ok)
}

func (f *fixture) requestRowCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&models.FriendRequest{}).Count(&count).Error)
	return count
}
