package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Toggle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	t.Run("First toggle follows", func(t *testing.T) {
		nowFollowing, err := repo.Toggle(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, nowFollowing)

		following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, following)
	})

	t.Run("Second toggle unfollows", func(t *testing.T) {
		nowFollowing, err := repo.Toggle(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, nowFollowing)

		following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, following)
	})

	t.Run("Double toggle returns to original state", func(t *testing.T) {
		_, err := repo.Toggle(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		_, err = repo.Toggle(ctx, alice.ID, bob.ID)
		require.NoError(t, err)

		following, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, following)
	})
}

func TestFollowRepository_EdgeIsDirected(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	_, err := repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	forward, err := repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, forward)

	reverse, err := repo.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestFollowRepository_DerivedViewsStayConsistent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	carol := createTestUser(t, db, "carol", "carol@example.com")

	// alice -> bob, alice -> carol, carol -> bob
	for _, pair := range [][2]uint{{alice.ID, bob.ID}, {alice.ID, carol.ID}, {carol.ID, bob.ID}} {
		_, err := repo.Toggle(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	following, err := repo.Following(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, following, 2)

	followers, err := repo.Followers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	// Each follower edge appears in both derived views.
	followerIDs, err := repo.FollowerIDs(ctx, bob.ID)
	require.NoError(t, err)
	assert.Contains(t, followerIDs, alice.ID)
	assert.Contains(t, followerIDs, carol.ID)

	followingIDs, err := repo.FollowingIDs(ctx, alice.ID)
	require.NoError(t, err)
	assert.Contains(t, followingIDs, bob.ID)
	assert.Contains(t, followingIDs, carol.ID)

	bobFollowers, bobFollowing, err := repo.Counts(ctx, bob.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, bobFollowers)
	assert.EqualValues(t, 0, bobFollowing)

	aliceFollowers, aliceFollowing, err := repo.Counts(ctx, alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, aliceFollowers)
	assert.EqualValues(t, 2, aliceFollowing)
}

func TestFollowRepository_UnfollowRemovesBothViews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	_, err := repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	followers, err := repo.Followers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)

	following, err := repo.Following(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, following)
}
