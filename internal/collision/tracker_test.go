package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/opprof/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("slow_pow", 0x1111))
	require.NoError(t, tracker.Track("fast_pow", 0x2222))
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_EmptyName(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("", 0x1111)
	require.ErrorIs(t, err, errs.ErrInvalidSeriesName)

	// the rejected name left no trace behind
	require.NoError(t, tracker.Track("a", 0x1111))
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_Duplicate(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("factorial_iter", 0x1111))
	err := tracker.Track("factorial_iter", 0x1111)
	require.ErrorIs(t, err, errs.ErrSeriesAlreadyAdded)
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("factorial_iter", 0x1111))
	require.NoError(t, tracker.Track("factorial_rec", 0x1111))
	require.True(t, tracker.HasCollision())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("a", 1))
	require.NoError(t, tracker.Track("b", 1))

	tracker.Reset()

	require.False(t, tracker.HasCollision())
	require.NoError(t, tracker.Track("a", 1))
}
