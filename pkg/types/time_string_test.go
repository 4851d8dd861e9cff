package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid time", input: "18:30", want: "18:30"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "single digit hour", input: "9:05", want: "09:05"},
		{name: "single digit minute", input: "12:5", want: "12:05"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "missing colon", input: "1830", wantErr: true},
		{name: "too many parts", input: "18:30:00", wantErr: true},
		{name: "not a number", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromMinutes_MinutesRoundTrip(t *testing.T) {
	// Каждая минута суток должна переживать конвертацию туда и обратно
	for m := 0; m < MinutesPerDay; m++ {
		ts := FromMinutes(m)
		require.Equal(t, m, ts.Minutes(), "round trip failed for minute %d (%s)", m, ts)
		require.Len(t, string(ts), 5)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").Minutes())
	assert.Equal(t, 1110, TimeString("18:30").Minutes())
	assert.Equal(t, 1439, TimeString("23:59").Minutes())
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("18:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("19:30"), got)

	got, err = TimeString("23:30").AddMinutes(29)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), got)

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = TimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("18:00"))
	assert.True(t, TimeString("18:30").IsAfter("18:00"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("18:30"))
	assert.Equal(t, TimeString("18:30"), ts)

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("18:30:00"))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:00")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 8, 12, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("12:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.Equal(t, TimeString(""), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("18:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "18:30", v)
}
