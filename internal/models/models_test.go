package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexDate_UnmarshalJSON(t *testing.T) {
	t.Run("PlainDate", func(t *testing.T) {
		var d FlexDate
		require.NoError(t, json.Unmarshal([]byte(`"2024-03-10"`), &d))
		assert.True(t, d.Valid())
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.March, d.Month())
		assert.Equal(t, 10, d.Day())
	})

	t.Run("RFC3339", func(t *testing.T) {
		var d FlexDate
		require.NoError(t, json.Unmarshal([]byte(`"2024-03-10T00:00:00Z"`), &d))
		assert.True(t, d.Valid())
	})

	t.Run("RFC3339Millis", func(t *testing.T) {
		var d FlexDate
		require.NoError(t, json.Unmarshal([]byte(`"2024-03-10T18:30:00.000Z"`), &d))
		assert.True(t, d.Valid())
	})

	t.Run("Garbage", func(t *testing.T) {
		for _, raw := range []string{`"not-a-date"`, `""`, `null`, `42`, `{}`} {
			var d FlexDate
			require.NoError(t, json.Unmarshal([]byte(raw), &d), raw)
			assert.False(t, d.Valid(), raw)
		}
	})

	t.Run("Roundtrip", func(t *testing.T) {
		var d FlexDate
		require.NoError(t, json.Unmarshal([]byte(`"2024-03-10"`), &d))
		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2024-03-10"`, string(out))
	})
}

func TestFlexDate_SameDay(t *testing.T) {
	var d FlexDate
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-10"`), &d))

	assert.True(t, d.SameDay(time.Date(2024, 3, 10, 23, 59, 0, 0, time.Local)))
	assert.False(t, d.SameDay(time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)))
	assert.False(t, FlexDate{}.SameDay(time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)))
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in     string
		hour   int
		minute int
		ok     bool
	}{
		{"09:30", 9, 30, true},
		{"18:00", 18, 0, true},
		{"18:00:45", 18, 0, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"noon", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tc := range cases {
		h, m, ok := ParseClock(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.hour, h, tc.in)
			assert.Equal(t, tc.minute, m, tc.in)
		}
	}
}

func TestBooking_EndInstant(t *testing.T) {
	var d FlexDate
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-01"`), &d))

	t.Run("Valid", func(t *testing.T) {
		b := Booking{Date: d, EndTime: "10:00"}
		end, ok := b.EndInstant()
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 1, 10, 0, 0, 0, time.Local), end)
	})

	t.Run("MissingDate", func(t *testing.T) {
		b := Booking{EndTime: "10:00"}
		_, ok := b.EndInstant()
		assert.False(t, ok)
	})

	t.Run("MissingEndTime", func(t *testing.T) {
		b := Booking{Date: d}
		_, ok := b.EndInstant()
		assert.False(t, ok)
	})

	t.Run("BadEndTime", func(t *testing.T) {
		b := Booking{Date: d, EndTime: "later"}
		_, ok := b.EndInstant()
		assert.False(t, ok)
	})
}

func TestRating_UnmarshalJSON(t *testing.T) {
	t.Run("Simple", func(t *testing.T) {
		var r Rating
		require.NoError(t, json.Unmarshal([]byte(`4.5`), &r))
		assert.Equal(t, 4.5, r.Average)
		assert.Equal(t, 0, r.Count)
	})

	t.Run("Aggregated", func(t *testing.T) {
		var r Rating
		require.NoError(t, json.Unmarshal([]byte(`{"average":4.2,"count":17}`), &r))
		assert.Equal(t, 4.2, r.Average)
		assert.Equal(t, 17, r.Count)
	})
}

func TestSlot_IsAvailable(t *testing.T) {
	f := false
	tr := true
	assert.True(t, Slot{}.IsAvailable())
	assert.True(t, Slot{Available: &tr}.IsAvailable())
	assert.False(t, Slot{Available: &f}.IsAvailable())
}

func TestAddress_Format(t *testing.T) {
	assert.Equal(t, "N/A", Address{}.Format())
	assert.Equal(t, "1 Main St, Pune, India", Address{Street: "1 Main St", City: "Pune", Country: "India"}.Format())
}
