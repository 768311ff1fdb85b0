package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubscription_Defaults(t *testing.T) {
	s, err := NewSubscription("user-1", "profesyonel", "", time.Time{}, nil)
	require.NoError(t, err)

	assert.Equal(t, StatusActive, s.Status())
	assert.False(t, s.StartsAt().IsZero())
	assert.True(t, s.IsActive())
}

func TestNewSubscription_Validation(t *testing.T) {
	_, err := NewSubscription("", "p", StatusActive, time.Now(), nil)
	assert.ErrorIs(t, err, ErrUserRequired)

	_, err = NewSubscription("u", "", StatusActive, time.Now(), nil)
	assert.ErrorIs(t, err, ErrPackageRequired)

	_, err = NewSubscription("u", "p", Status("active"), time.Now(), nil)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	start := time.Now()
	_, err = NewSubscription("u", "p", StatusActive, start, &start)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestSubscription_IsExpiredAt(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	s := ReconstructSubscription(1, "u", "p", StatusActive, now.Add(-48*time.Hour), &past, now, now)
	assert.True(t, s.IsExpiredAt(now))

	open := ReconstructSubscription(2, "u", "p", StatusActive, now, nil, now, now)
	assert.False(t, open.IsExpiredAt(now))

	pending := ReconstructSubscription(3, "u", "p", StatusPending, now, &past, now, now)
	assert.False(t, pending.IsExpiredAt(now))
}

func TestSubscription_ChangeStatus(t *testing.T) {
	now := time.Now()
	s := ReconstructSubscription(1, "u", "p", StatusPending, now, nil, now, now)

	require.NoError(t, s.ChangeStatus(StatusActive))
	assert.Equal(t, StatusActive, s.Status())

	require.NoError(t, s.ChangeStatus(StatusCancelled))
	assert.ErrorIs(t, s.ChangeStatus(StatusActive), ErrInvalidTransition)
	assert.ErrorIs(t, s.ChangeStatus(Status("PAUSED")), ErrInvalidStatus)
}
