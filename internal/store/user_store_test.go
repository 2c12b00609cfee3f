package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
)

func TestUserStore_Create(t *testing.T) {
	t.Run("synthesizes identifier from username", func(t *testing.T) {
		users := NewUserStore(newTestDB(t), "")
		user := mustCreateUser(t, users, "doge", "doge@example.com")

		assert.Equal(t, "doge", user.LoginIdentifier)
		assert.NotEmpty(t, user.CreatedAt)
		assert.Equal(t, user.CreatedAt, user.LastLogin)
	})

	t.Run("synthesizes identifier from email when no username", func(t *testing.T) {
		users := NewUserStore(newTestDB(t), "")
		user, err := users.Create(&models.User{Email: "cate@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "cate@example.com", user.LoginIdentifier)
	})

	t.Run("random local identifier when nothing given", func(t *testing.T) {
		users := NewUserStore(newTestDB(t), "")
		user, err := users.Create(&models.User{DisplayName: "mystery"})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(user.LoginIdentifier, "local:"))
		assert.Greater(t, len(user.LoginIdentifier), len("local:"))
	})

	t.Run("duplicate identifier returns the existing row", func(t *testing.T) {
		users := NewUserStore(newTestDB(t), "")
		first := mustCreateUser(t, users, "doge", "doge@example.com")

		again, err := users.Create(&models.User{Username: "doge"})
		require.NoError(t, err)
		assert.Equal(t, first.ID, again.ID)
	})
}

func TestUserStore_Lookups(t *testing.T) {
	users := NewUserStore(newTestDB(t), "")
	doge := mustCreateUser(t, users, "doge", "doge@example.com")

	t.Run("by id", func(t *testing.T) {
		user, err := users.GetByID(doge.ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "doge", user.Username)
	})

	t.Run("missing id is nil not error", func(t *testing.T) {
		user, err := users.GetByID(999)
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("by username and email", func(t *testing.T) {
		byName, err := users.GetByUsername("doge")
		require.NoError(t, err)
		require.NotNil(t, byName)

		byEmail, err := users.GetByEmail("doge@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, byName.ID, byEmail.ID)
	})

	t.Run("empty keys are nil without querying", func(t *testing.T) {
		user, err := users.GetByUsername("")
		require.NoError(t, err)
		assert.Nil(t, user)

		user, err = users.GetByEmail("")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("by login identifier", func(t *testing.T) {
		user, err := users.GetByLoginIdentifier("doge")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, doge.ID, user.ID)
	})
}

func TestUserStore_FindByIdentifier(t *testing.T) {
	users := NewUserStore(newTestDB(t), "")
	doge := mustCreateUser(t, users, "doge", "doge@example.com")

	t.Run("case insensitive username", func(t *testing.T) {
		user, err := users.FindByIdentifier("DOGE")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, doge.ID, user.ID)
	})

	t.Run("matches email and display name", func(t *testing.T) {
		byEmail, err := users.FindByIdentifier("Doge@Example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)

		byDisplay, err := users.FindByIdentifier("doge")
		require.NoError(t, err)
		require.NotNil(t, byDisplay)
	})

	t.Run("blank input is nil", func(t *testing.T) {
		user, err := users.FindByIdentifier("   ")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("multiple matches resolve to lowest id", func(t *testing.T) {
		// Second record sharing doge's display name.
		other, err := users.Create(&models.User{Username: "doge2", DisplayName: "doge"})
		require.NoError(t, err)
		require.Greater(t, other.ID, doge.ID)

		user, err := users.FindByIdentifier("doge")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, doge.ID, user.ID)
	})
}

func TestUserStore_LegacyLoginColumn(t *testing.T) {
	db := newTestDB(t)
	// A deployment migrated from the kakao era keeps its original column.
	require.NoError(t, db.Exec(`CREATE TABLE legacy_users (
		id INTEGER PRIMARY KEY,
		kakao_id TEXT UNIQUE,
		username TEXT,
		display_name TEXT,
		profile_url TEXT,
		email TEXT,
		created_at TEXT,
		last_login TEXT
	)`).Error)
	require.NoError(t, db.Exec(`DROP TABLE users`).Error)
	require.NoError(t, db.Exec(`ALTER TABLE legacy_users RENAME TO users`).Error)

	users := NewUserStore(db, "kakao_id")
	assert.Equal(t, "kakao_id", users.LoginColumn())

	created, err := users.Create(&models.User{Username: "doge"})
	require.NoError(t, err)
	assert.Equal(t, "doge", created.LoginIdentifier)

	found, err := users.GetByLoginIdentifier("doge")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "doge", found.LoginIdentifier)
}

func TestUserStore_TouchAndBackfill(t *testing.T) {
	users := NewUserStore(newTestDB(t), "")
	doge := mustCreateUser(t, users, "doge", "")

	require.NoError(t, users.SetLoginIdentifier(doge.ID, "local:doge"))
	require.NoError(t, users.TouchLastLogin(doge.ID))

	reloaded, err := users.GetByID(doge.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, "local:doge", reloaded.LoginIdentifier)
	assert.GreaterOrEqual(t, reloaded.LastLogin, doge.LastLogin)
}
