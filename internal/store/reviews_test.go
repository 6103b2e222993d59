package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewsListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	users := &UsersStore{db}
	reviews := &ReviewStore{db}
	ctx := context.Background()

	author := &User{Nickname: "carol"}
	require.NoError(t, author.Password.Set("pw"))
	require.NoError(t, users.Create(ctx, author))

	venueID := insertVenue(t, db, Venue{Name: "Sunny Meadow"})

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, reviews.Create(ctx, &Review{
			VenueID:   venueID,
			UserID:    author.ID,
			Text:      text,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := reviews.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "newest", got[0].Text)
	assert.Equal(t, "middle", got[1].Text)
	assert.Equal(t, "oldest", got[2].Text)

	assert.Equal(t, "carol", got[0].Nickname)
	assert.Equal(t, "Sunny Meadow", got[0].VenueName)
}

func TestReviewsCreateFillsTimestamp(t *testing.T) {
	db := newTestDB(t)
	users := &UsersStore{db}
	reviews := &ReviewStore{db}
	ctx := context.Background()

	author := &User{Nickname: "dave"}
	require.NoError(t, author.Password.Set("pw"))
	require.NoError(t, users.Create(ctx, author))
	venueID := insertVenue(t, db, Venue{Name: "River Hall"})

	review := &Review{VenueID: venueID, UserID: author.ID, Text: "nice"}
	require.NoError(t, reviews.Create(ctx, review))

	assert.NotZero(t, review.ID)
	assert.False(t, review.CreatedAt.IsZero())
}

func TestReviewsRejectDanglingReferences(t *testing.T) {
	db := newTestDB(t)
	reviews := &ReviewStore{db}

	err := reviews.Create(context.Background(), &Review{
		VenueID: 999,
		UserID:  999,
		Text:    "orphan",
	})
	assert.Error(t, err, "foreign keys keep reviews attached to real rows")
}
