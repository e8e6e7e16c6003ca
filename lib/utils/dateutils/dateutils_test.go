package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBusinessDays(t *testing.T) {
	// semana de referência: 02/06/2025 é segunda-feira
	monday := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	friday := time.Date(2025, 6, 6, 18, 30, 0, 0, time.UTC)
	saturday := time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)

	t.Run(`same weekday counts as one check`, func(t *testing.T) {
		require.Equal(t, 1, BusinessDaysBetween(monday, monday))
	})

	t.Run(`weekend day counts as zero check`, func(t *testing.T) {
		require.Equal(t, 0, BusinessDaysBetween(saturday, saturday))
	})

	t.Run(`monday to friday check`, func(t *testing.T) {
		require.Equal(t, 5, BusinessDaysBetween(monday, friday))
	})

	t.Run(`monday to next monday skips weekend check`, func(t *testing.T) {
		require.Equal(t, 6, BusinessDaysBetween(monday, nextMonday))
	})

	t.Run(`inverted interval check`, func(t *testing.T) {
		require.Equal(t, 0, BusinessDaysBetween(friday, monday))
	})

	t.Run(`time of day is ignored check`, func(t *testing.T) {
		lateMonday := time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC)
		earlyFriday := time.Date(2025, 6, 6, 0, 1, 0, 0, time.UTC)
		require.Equal(t, 5, BusinessDaysBetween(lateMonday, earlyFriday))
	})
}

func TestIsWithinDeadline(t *testing.T) {
	t.Run(`nil date is vacuously within deadline check`, func(t *testing.T) {
		require.Equal(t, true, IsWithinDeadline(nil, 30))
	})

	t.Run(`recent date within deadline check`, func(t *testing.T) {
		date := time.Now().AddDate(0, 0, -2)
		require.Equal(t, true, IsWithinDeadline(&date, 30))
	})

	t.Run(`old date past deadline check`, func(t *testing.T) {
		date := time.Now().AddDate(0, 0, -90)
		require.Equal(t, false, IsWithinDeadline(&date, 30))
	})
}
