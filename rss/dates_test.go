package rss

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateWithZone(t *testing.T) {
	got, err := ParseDate("Mon, 01 Jan 2024 00:00:00 GMT")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseDateNumericOffset(t *testing.T) {
	got, err := ParseDate("Mon, 01 Jan 2024 06:30:00 +0130")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC)))
}

func TestParseDateNamedZone(t *testing.T) {
	// Obsolete named zones carry real offsets, not the zero offset the
	// underlying parser attaches to them.
	cases := []struct {
		value string
		want  time.Time
	}{
		{"Mon, 01 Jan 2024 00:00:00 EST", time.Date(2024, 1, 1, 5, 0, 0, 0, time.UTC)},
		{"Mon, 01 Jan 2024 00:00:00 EDT", time.Date(2024, 1, 1, 4, 0, 0, 0, time.UTC)},
		{"Mon, 01 Jan 2024 12:00:00 CST", time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)},
		{"Mon, 01 Jan 2024 12:00:00 MDT", time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)},
		{"Mon, 01 Jan 2024 00:00:00 PST", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)},
		{"Mon, 01 Jan 2024 00:00:00 UT", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := ParseDate(c.value)
		require.NoError(t, err, c.value)
		assert.True(t, got.Equal(c.want), "%s parsed to %v, want %v", c.value, got, c.want)
	}
}

func TestParseDateUnknownNamedZoneDefaultsToUtc(t *testing.T) {
	got, err := ParseDate("Mon, 01 Jan 2024 00:00:00 XYZ")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseDateTwoDigitYear(t *testing.T) {
	got, err := ParseDate("Thu, 01 Jan 04 10:00:00 GMT")
	require.NoError(t, err)
	assert.Equal(t, 2004, got.Year())
}

func TestParseDateZonelessDefaultsToUtc(t *testing.T) {
	got, err := ParseDate("01 Jan 2024 00:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	got, err = ParseDate("Mon, 01 Jan 2024 08:15:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 8, 15, 0, 0, time.UTC)))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "   ", "not a date", "2024-01-01T00:00:00Z"} {
		_, err := ParseDate(value)
		var dateErr *DateError
		assert.True(t, errors.As(err, &dateErr), "expected DateError for %q", value)
	}
}

func TestParseDateOpt(t *testing.T) {
	got, err := ParseDateOpt("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseDateOpt("Mon, 01 Jan 2024 00:00:00 GMT")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	_, err = ParseDateOpt("never")
	var dateErr *DateError
	assert.True(t, errors.As(err, &dateErr))
}
