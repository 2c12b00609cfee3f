package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
)

func TestFriendStore_InsertAndLatestBetween(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db, "")
	friends := NewFriendStore(db, users)

	a := mustCreateUser(t, users, "alpha", "a@example.com")
	b := mustCreateUser(t, users, "bravo", "b@example.com")

	t.Run("no row yet", func(t *testing.T) {
		latest, err := friends.LatestBetween(a.ID, b.ID)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	req, err := friends.Insert(a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, req.Status)
	assert.NotEmpty(t, req.CreatedAt)
	assert.Nil(t, req.RespondedAt)

	t.Run("found in either direction", func(t *testing.T) {
		forward, err := friends.LatestBetween(a.ID, b.ID)
		require.NoError(t, err)
		require.NotNil(t, forward)

		backward, err := friends.LatestBetween(b.ID, a.ID)
		require.NoError(t, err)
		require.NotNil(t, backward)
		assert.Equal(t, forward.ID, backward.ID)
	})

	t.Run("newest row wins", func(t *testing.T) {
		require.NoError(t, friends.SetStatus(req.ID, models.StatusDeclined))
		second, err := friends.Insert(b.ID, a.ID)
		require.NoError(t, err)

		latest, err := friends.LatestBetween(a.ID, b.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, second.ID, latest.ID)
		assert.Equal(t, models.StatusPending, latest.Status)
	})
}

func TestFriendStore_SetStatus(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db, "")
	friends := NewFriendStore(db, users)

	a := mustCreateUser(t, users, "alpha", "")
	b := mustCreateUser(t, users, "bravo", "")
	req, err := friends.Insert(a.ID, b.ID)
	require.NoError(t, err)

	require.NoError(t, friends.SetStatus(req.ID, models.StatusAccepted))

	reloaded, err := friends.GetByID(req.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, models.StatusAccepted, reloaded.Status)
	require.NotNil(t, reloaded.RespondedAt)
	assert.NotEmpty(t, *reloaded.RespondedAt)
}

func TestFriendStore_ListFriends(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db, "")
	friends := NewFriendStore(db, users)

	me := mustCreateUser(t, users, "me", "")
	zed := mustCreateUser(t, users, "zed", "")
	ann := mustCreateUser(t, users, "ann", "")
	stranger := mustCreateUser(t, users, "stranger", "")

	// me -> zed accepted, ann -> me accepted, stranger only pending.
	reqZed, err := friends.Insert(me.ID, zed.ID)
	require.NoError(t, err)
	require.NoError(t, friends.SetStatus(reqZed.ID, models.StatusAccepted))
	reqAnn, err := friends.Insert(ann.ID, me.ID)
	require.NoError(t, err)
	require.NoError(t, friends.SetStatus(reqAnn.ID, models.StatusAccepted))
	_, err = friends.Insert(stranger.ID, me.ID)
	require.NoError(t, err)

	list, err := friends.ListFriends(me.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Sorted by display key regardless of request direction.
	assert.Equal(t, "ann", list[0].Username)
	assert.Equal(t, "zed", list[1].Username)

	ok, err := friends.AreFriends(me.ID, zed.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = friends.AreFriends(me.ID, stranger.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFriendStore_ListFriendsLegacyColumn(t *testing.T) {
	db := newTestDB(t)
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
	friends := NewFriendStore(db, users)

	me := mustCreateUser(t, users, "me", "")
	// Friends with neither username nor email sort by login identifier.
	zed, err := users.Create(&models.User{LoginIdentifier: "zed-kakao"})
	require.NoError(t, err)
	ann, err := users.Create(&models.User{LoginIdentifier: "ann-kakao"})
	require.NoError(t, err)

	reqZed, err := friends.Insert(me.ID, zed.ID)
	require.NoError(t, err)
	require.NoError(t, friends.SetStatus(reqZed.ID, models.StatusAccepted))
	reqAnn, err := friends.Insert(ann.ID, me.ID)
	require.NoError(t, err)
	require.NoError(t, friends.SetStatus(reqAnn.ID, models.StatusAccepted))

	list, err := friends.ListFriends(me.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ann-kakao", list[0].LoginIdentifier)
	assert.Equal(t, "zed-kakao", list[1].LoginIdentifier)
}

func TestFriendStore_PendingLists(t *testing.T) {
	db := newTestDB(t)
	users := NewUserStore(db, "")
	friends := NewFriendStore(db, users)

	me := mustCreateUser(t, users, "me", "")
	first := mustCreateUser(t, users, "first", "first@example.com")
	second := mustCreateUser(t, users, "second", "second@example.com")
	target := mustCreateUser(t, users, "target", "")

	reqFirst, err := friends.Insert(first.ID, me.ID)
	require.NoError(t, err)
	reqSecond, err := friends.Insert(second.ID, me.ID)
	require.NoError(t, err)

	sentOld, err := friends.Insert(me.ID, target.ID)
	require.NoError(t, err)
	sentNew, err := friends.Insert(me.ID, second.ID)
	require.NoError(t, err)

	t.Run("incoming oldest first with counterpart fields", func(t *testing.T) {
		incoming, err := friends.ListPendingIncoming(me.ID)
		require.NoError(t, err)
		require.Len(t, incoming, 2)
		assert.Equal(t, reqFirst.ID, incoming[0].ID)
		assert.Equal(t, reqSecond.ID, incoming[1].ID)
		assert.Equal(t, "first", incoming[0].CounterpartUsername)
		assert.Equal(t, "first@example.com", incoming[0].CounterpartEmail)
	})

	t.Run("sent newest first", func(t *testing.T) {
		sent, err := friends.ListSentPending(me.ID)
		require.NoError(t, err)
		require.Len(t, sent, 2)
		assert.Equal(t, sentNew.ID, sent[0].ID)
		assert.Equal(t, sentOld.ID, sent[1].ID)
		assert.Equal(t, "second", sent[0].CounterpartUsername)
	})

	t.Run("resolved requests drop out", func(t *testing.T) {
		require.NoError(t, friends.SetStatus(reqFirst.ID, models.StatusDeclined))
		incoming, err := friends.ListPendingIncoming(me.ID)
		require.NoError(t, err)
		require.Len(t, incoming, 1)
		assert.Equal(t, reqSecond.ID, incoming[0].ID)
	})
}
