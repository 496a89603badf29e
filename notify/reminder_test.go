package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverReminderSuccessKeepsClaim(t *testing.T) {
	released := false
	sent, err := deliverReminder(
		func() bool { return true },
		func() { released = true },
		func() error { return nil },
	)
	require.NoError(t, err)
	assert.True(t, sent)
	assert.False(t, released, "a successful send keeps the day's claim")
}

func TestDeliverReminderFailureReleasesClaim(t *testing.T) {
	released := false
	sent, err := deliverReminder(
		func() bool { return true },
		func() { released = true },
		func() error { return errors.New("vendor down") },
	)
	require.Error(t, err)
	assert.False(t, sent)
	assert.True(t, released, "a failed send must not lock the user out for the rest of the day")
}

func TestDeliverReminderSkipsWhenAlreadyClaimed(t *testing.T) {
	sendCalled := false
	sent, err := deliverReminder(
		func() bool { return false },
		func() { t.Fatal("release must not run without a claim") },
		func() error { sendCalled = true; return nil },
	)
	require.NoError(t, err)
	assert.False(t, sent)
	assert.False(t, sendCalled)
}

func TestUntilNext(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 8*time.Hour, untilNext(18, now))
	// Past today's slot: wait for tomorrow's.
	assert.Equal(t, 23*time.Hour, untilNext(9, now))
}
