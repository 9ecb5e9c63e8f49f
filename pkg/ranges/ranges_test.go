package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYears(t *testing.T) {
	t.Run("hyphen range", func(t *testing.T) {
		got, err := Years("2019-2022")
		require.NoError(t, err)
		assert.Equal(t, []string{"2019", "2020", "2021", "2022"}, got)
	})

	t.Run("comma list preserves order", func(t *testing.T) {
		got, err := Years("2022,2019")
		require.NoError(t, err)
		assert.Equal(t, []string{"2022", "2019"}, got)
	})

	t.Run("single year", func(t *testing.T) {
		got, err := Years("2021")
		require.NoError(t, err)
		assert.Equal(t, []string{"2021"}, got)
	})

	t.Run("reversed range is empty, not an error", func(t *testing.T) {
		got, err := Years("2020-2019")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("non-4-digit tokens fail", func(t *testing.T) {
		for _, in := range []string{"219", "20190", "2019-22", "19,2020", "abcd", ""} {
			_, err := Years(in)
			assert.ErrorIs(t, err, ErrYearFormat, "input %q", in)
		}
	})
}

func TestMonths(t *testing.T) {
	t.Run("hyphen range zero-pads", func(t *testing.T) {
		got, err := Months("1-3")
		require.NoError(t, err)
		assert.Equal(t, []string{"01", "02", "03"}, got)
	})

	t.Run("comma list zero-pads", func(t *testing.T) {
		got, err := Months("2,12")
		require.NoError(t, err)
		assert.Equal(t, []string{"02", "12"}, got)
	})

	t.Run("already padded token", func(t *testing.T) {
		got, err := Months("02")
		require.NoError(t, err)
		assert.Equal(t, []string{"02"}, got)
	})

	t.Run("out of bounds fails", func(t *testing.T) {
		_, err := Months("13")
		assert.ErrorIs(t, err, ErrMonthFormat)
		_, err = Months("0,5")
		assert.ErrorIs(t, err, ErrMonthFormat)
		_, err = Months("1-13")
		assert.ErrorIs(t, err, ErrMonthFormat)
	})

	t.Run("reversed in-bounds range is empty", func(t *testing.T) {
		got, err := Months("5-3")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestDays(t *testing.T) {
	t.Run("day 31 accepted without month context", func(t *testing.T) {
		got, err := Days("31")
		require.NoError(t, err)
		assert.Equal(t, []string{"31"}, got)
	})

	t.Run("day 32 fails", func(t *testing.T) {
		_, err := Days("32")
		assert.ErrorIs(t, err, ErrDayFormat)
	})

	t.Run("range", func(t *testing.T) {
		got, err := Days("1-3")
		require.NoError(t, err)
		assert.Equal(t, []string{"01", "02", "03"}, got)
	})
}

func TestNumbers(t *testing.T) {
	t.Run("hyphen range, no padding", func(t *testing.T) {
		got, err := Numbers("8-11")
		require.NoError(t, err)
		assert.Equal(t, []string{"8", "9", "10", "11"}, got)
	})

	t.Run("comma list is verbatim, digits or not", func(t *testing.T) {
		got, err := Numbers("1,007,abc")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "007", "abc"}, got)
	})

	t.Run("bare value", func(t *testing.T) {
		got, err := Numbers("42")
		require.NoError(t, err)
		assert.Equal(t, []string{"42"}, got)
	})

	t.Run("reversed range silently empty", func(t *testing.T) {
		got, err := Numbers("3-1")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("bare hyphen silently empty", func(t *testing.T) {
		got, err := Numbers("-")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("non-integer hyphen endpoint fails", func(t *testing.T) {
		_, err := Numbers("a-3")
		assert.ErrorIs(t, err, ErrNumberFormat)
	})
}
