package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 9, 30, 0, 0, time.UTC)
}

func TestAdvanceFirstCheckIn(t *testing.T) {
	res := Advance(State{}, day(2026, 3, 1))
	require.True(t, res.Applied)
	assert.Equal(t, 1, res.State.Current)
	assert.Equal(t, 1, res.State.Longest)
}

func TestAdvanceConsecutiveDays(t *testing.T) {
	s := State{}
	for i := 0; i < 10; i++ {
		res := Advance(s, day(2026, 3, 1+i))
		require.True(t, res.Applied)
		s = res.State
	}
	assert.Equal(t, 10, s.Current)
	assert.Equal(t, 10, s.Longest)
}

func TestAdvanceSameDayIsNoOp(t *testing.T) {
	res := Advance(State{}, day(2026, 3, 1))
	require.True(t, res.Applied)

	again := Advance(res.State, day(2026, 3, 1).Add(8*time.Hour))
	assert.False(t, again.Applied)
	assert.Equal(t, res.State, again.State)
}

func TestAdvanceAfterGapStartsOver(t *testing.T) {
	s := State{Current: 7, Longest: 7, LastCheckIn: day(2026, 3, 1)}

	res := Advance(s, day(2026, 3, 5))
	require.True(t, res.Applied)
	assert.Equal(t, 1, res.State.Current, "a missed day resets the streak to 1")
	assert.Equal(t, 7, res.State.Longest, "longest survives the reset")
}

func TestAdvanceLongestOnlyGrows(t *testing.T) {
	s := State{Current: 2, Longest: 9, LastCheckIn: day(2026, 3, 1)}
	res := Advance(s, day(2026, 3, 2))
	assert.Equal(t, 3, res.State.Current)
	assert.Equal(t, 9, res.State.Longest)
}

func TestSweepResetZeroesStaleStreak(t *testing.T) {
	s := State{Current: 12, Longest: 12, LastCheckIn: day(2026, 3, 1)}

	swept := SweepReset(s, day(2026, 3, 4))
	assert.Equal(t, 0, swept.Current, "the sweep zeroes, it does not restart")
	assert.Equal(t, 12, swept.Longest)
	assert.Equal(t, s.LastCheckIn, swept.LastCheckIn)
}

func TestSweepResetKeepsFreshStreak(t *testing.T) {
	s := State{Current: 5, Longest: 5, LastCheckIn: day(2026, 3, 1)}

	// Checked in yesterday: the streak is still alive.
	assert.Equal(t, 5, SweepReset(s, day(2026, 3, 2)).Current)
	// Checked in today.
	assert.Equal(t, 5, SweepReset(s, day(2026, 3, 1)).Current)
}

func TestSweepResetNoHistoryIsNoOp(t *testing.T) {
	assert.Equal(t, State{}, SweepReset(State{}, day(2026, 3, 1)))
}

func TestSweepThenAdvance(t *testing.T) {
	s := State{Current: 8, Longest: 8, LastCheckIn: day(2026, 3, 1)}
	s = SweepReset(s, day(2026, 3, 10))
	require.Equal(t, 0, s.Current)

	res := Advance(s, day(2026, 3, 10))
	require.True(t, res.Applied)
	assert.Equal(t, 1, res.State.Current, "the next check-in starts a fresh streak")
	assert.Equal(t, 8, res.State.Longest)
}

func TestAdvanceGapAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST starts Mar 8 2026, making it a 23-hour day: Mar 7 → Mar 9 is a
	// 2-day gap even though only 47 hours elapse.
	last := time.Date(2026, 3, 7, 22, 0, 0, 0, loc)
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, loc)

	s := State{Current: 7, Longest: 7, LastCheckIn: last}
	res := Advance(s, now)
	require.True(t, res.Applied)
	assert.Equal(t, 1, res.State.Current, "a missed calendar day resets the streak even across DST")
	assert.Equal(t, 7, res.State.Longest)

	assert.Equal(t, 0, SweepReset(s, now).Current)
}

func TestAdvanceConsecutiveAcrossFallBack(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST ends Nov 1 2026 (a 25-hour day); Oct 31 → Nov 1 is still
	// consecutive, not a gap.
	last := time.Date(2026, 10, 31, 9, 0, 0, 0, loc)
	now := time.Date(2026, 11, 1, 9, 0, 0, 0, loc)

	s := State{Current: 3, Longest: 3, LastCheckIn: last}
	res := Advance(s, now)
	require.True(t, res.Applied)
	assert.Equal(t, 4, res.State.Current)

	assert.Equal(t, 3, SweepReset(s, now).Current)
}

func TestGapExceeded(t *testing.T) {
	assert.False(t, GapExceeded(day(2026, 3, 1), day(2026, 3, 1)))
	assert.False(t, GapExceeded(day(2026, 3, 1), day(2026, 3, 2)))
	assert.True(t, GapExceeded(day(2026, 3, 1), day(2026, 3, 3)))
	assert.True(t, GapExceeded(day(2026, 3, 1), day(2026, 4, 1)))
}
