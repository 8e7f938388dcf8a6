package entry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeClock(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"9:30", "09:30:00", true},
		{"09:30", "09:30:00", true},
		{"18:00:45", "18:00:45", true},
		{"0:00", "00:00:00", true},
		{"23:59:59", "23:59:59", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"12:00:60", "", false},
		{"noon", "", false},
		{"", "", false},
		{"12h30", "", false},
	}

	for _, tc := range cases {
		got, ok := normalizeClock(tc.in)
		require.Equal(t, tc.ok, ok, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestResolveInterval_Duration(t *testing.T) {
	bounds, clocks, minutes, err := resolveInterval("2024-03-06", "10:00", "12:00", time.UTC)
	require.NoError(t, err)
	require.Equal(t, 120, minutes)
	require.Equal(t, "10:00:00", clocks[0])
	require.Equal(t, "12:00:00", clocks[1])
	require.Equal(t, time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC), bounds[0])
	require.Equal(t, time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC), bounds[1])
}

func TestResolveInterval_RoundsSeconds(t *testing.T) {
	// 29 seconds rounds down to zero minutes and is rejected.
	_, _, _, err := resolveInterval("2024-03-06", "10:00:00", "10:00:29", time.UTC)
	require.ErrorIs(t, err, ErrInvalidDuration)

	// 30 seconds rounds up to one minute.
	_, _, minutes, err := resolveInterval("2024-03-06", "10:00:00", "10:00:30", time.UTC)
	require.NoError(t, err)
	require.Equal(t, 1, minutes)

	// 90 seconds rounds to two minutes.
	_, _, minutes, err = resolveInterval("2024-03-06", "10:00:00", "10:01:30", time.UTC)
	require.NoError(t, err)
	require.Equal(t, 2, minutes)
}

func TestResolveInterval_EndBeforeStart(t *testing.T) {
	_, _, _, err := resolveInterval("2024-03-06", "12:00", "10:00", time.UTC)
	require.ErrorIs(t, err, ErrEndBeforeStart)

	// Equal bounds are also rejected: the check is strict.
	_, _, _, err = resolveInterval("2024-03-06", "12:00", "12:00", time.UTC)
	require.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestResolveInterval_BadInputs(t *testing.T) {
	_, _, _, err := resolveInterval("06-03-2024", "10:00", "12:00", time.UTC)
	require.ErrorIs(t, err, ErrInvalidDate)

	_, _, _, err = resolveInterval("2024-13-40", "10:00", "12:00", time.UTC)
	require.ErrorIs(t, err, ErrInvalidDate)

	_, _, _, err = resolveInterval("2024-03-06", "", "12:00", time.UTC)
	require.ErrorIs(t, err, ErrTimeRequired)

	_, _, _, err = resolveInterval("2024-03-06", "10:00", "later", time.UTC)
	require.ErrorIs(t, err, ErrTimeRequired)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Animation":      "animation",
		"Camp d'été":     "camp-d-ete",
		"  Réunion CA  ": "reunion-ca",
		"Fête à l'œuvre": "fete-a-l-oeuvre",
		"2024 - budget":  "2024-budget",
		"---":            "",
		"":               "",
		"Straße":         "strasse",
		"double  espace": "double-espace",
	}

	for in, want := range cases {
		require.Equal(t, want, Slugify(in), "input %q", in)
	}
}
