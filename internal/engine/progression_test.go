package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"taskquest/internal/storage"
)

func TestRequiredXP(t *testing.T) {
	require.Equal(t, 100, RequiredXP(1))
	require.Equal(t, 150, RequiredXP(2))
	require.Equal(t, 300, RequiredXP(5))
	require.Equal(t, 100, RequiredXP(0)) // clamped to level 1
}

func TestAwardXP(t *testing.T) {
	t.Run("no level up", func(t *testing.T) {
		p := storage.Profile{Level: 1, XP: 40}
		AwardXP(&p, 30)
		require.Equal(t, 1, p.Level)
		require.Equal(t, 70, p.XP)
	})

	t.Run("single level up with carry-over", func(t *testing.T) {
		p := storage.Profile{Level: 1, XP: 80}
		AwardXP(&p, 30)
		require.Equal(t, 2, p.Level)
		require.Equal(t, 10, p.XP)
	})

	t.Run("one grant spanning several levels", func(t *testing.T) {
		// 500 XP from scratch: 100 clears level 1, 150 clears 2,
		// 200 clears 3, leaving 50 into level 4.
		p := storage.Profile{Level: 1, XP: 0}
		AwardXP(&p, 500)
		require.Equal(t, 4, p.Level)
		require.Equal(t, 50, p.XP)
	})

	t.Run("exact boundary lands at zero", func(t *testing.T) {
		p := storage.Profile{Level: 1, XP: 0}
		AwardXP(&p, 100)
		require.Equal(t, 2, p.Level)
		require.Equal(t, 0, p.XP)
	})

	t.Run("non-positive amount is a no-op", func(t *testing.T) {
		p := storage.Profile{Level: 3, XP: 42}
		AwardXP(&p, 0)
		AwardXP(&p, -10)
		require.Equal(t, 3, p.Level)
		require.Equal(t, 42, p.XP)
	})
}

func TestDeductXP(t *testing.T) {
	t.Run("unwinds one level", func(t *testing.T) {
		p := storage.Profile{Level: 2, XP: 10}
		DeductXP(&p, 30)
		require.Equal(t, 1, p.Level)
		require.Equal(t, 80, p.XP)
	})

	t.Run("is the inverse of a multi-level award", func(t *testing.T) {
		p := storage.Profile{Level: 1, XP: 0}
		AwardXP(&p, 500)
		DeductXP(&p, 500)
		require.Equal(t, 1, p.Level)
		require.Equal(t, 0, p.XP)
	})

	t.Run("floors at level 1 with zero xp", func(t *testing.T) {
		p := storage.Profile{Level: 1, XP: 20}
		DeductXP(&p, 1000)
		require.Equal(t, 1, p.Level)
		require.Equal(t, 0, p.XP)
	})
}

func TestUpdateStreakOnActivity(t *testing.T) {
	day := func(y int, m time.Month, d, hour int) time.Time {
		return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
	}

	t.Run("same day is a no-op", func(t *testing.T) {
		p := storage.Profile{CurrentStreak: 3, LongestStreak: 5, LastActiveDate: day(2026, 3, 10, 9)}
		changed := UpdateStreakOnActivity(&p, day(2026, 3, 10, 23))
		require.False(t, changed)
		require.Equal(t, 3, p.CurrentStreak)
	})

	t.Run("consecutive day increments", func(t *testing.T) {
		p := storage.Profile{CurrentStreak: 5, LongestStreak: 5, LastActiveDate: day(2026, 3, 10, 23)}
		changed := UpdateStreakOnActivity(&p, day(2026, 3, 11, 0)) // just past midnight
		require.True(t, changed)
		require.Equal(t, 6, p.CurrentStreak)
		require.Equal(t, 6, p.LongestStreak)
	})

	t.Run("gap resets to one but keeps the record", func(t *testing.T) {
		p := storage.Profile{CurrentStreak: 9, LongestStreak: 9, LastActiveDate: day(2026, 3, 10, 12)}
		changed := UpdateStreakOnActivity(&p, day(2026, 3, 14, 12))
		require.True(t, changed)
		require.Equal(t, 1, p.CurrentStreak)
		require.Equal(t, 9, p.LongestStreak)
	})

	t.Run("clock moving backwards resets rather than corrupts", func(t *testing.T) {
		p := storage.Profile{CurrentStreak: 4, LongestStreak: 4, LastActiveDate: day(2026, 3, 10, 12)}
		changed := UpdateStreakOnActivity(&p, day(2026, 3, 5, 12))
		require.True(t, changed)
		require.Equal(t, 1, p.CurrentStreak)
	})

	t.Run("longest never trails current", func(t *testing.T) {
		p := storage.Profile{CurrentStreak: 2, LongestStreak: 0, LastActiveDate: day(2026, 3, 10, 12)}
		UpdateStreakOnActivity(&p, day(2026, 3, 11, 12))
		require.GreaterOrEqual(t, p.LongestStreak, p.CurrentStreak)

		UpdateStreakOnActivity(&p, day(2026, 3, 20, 12))
		require.GreaterOrEqual(t, p.LongestStreak, p.CurrentStreak)
	})
}
