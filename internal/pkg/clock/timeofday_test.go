package clock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		hour   int
		minute int
	}{
		{"09:00", 9, 0},
		{"00:00", 0, 0},
		{"23:59", 23, 59},
		{"9:5", 9, 5},
		{" 17:30 ", 17, 30},
	}

	for _, tt := range tests {
		parsed, err := Parse(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.hour, parsed.Hour)
		assert.Equal(t, tt.minute, parsed.Minute)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "9", "24:00", "09:60", "-1:00", "ab:cd", "09:00:00"} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestTimeOfDay_Ordering(t *testing.T) {
	t.Parallel()

	assert.True(t, MustParse("08:59").Before(MustParse("09:00")))
	assert.True(t, MustParse("09:00").Before(MustParse("10:00")))
	assert.False(t, MustParse("09:00").Before(MustParse("09:00")))
	// Hour comparison wins even when the minute is larger.
	assert.True(t, MustParse("09:59").Before(MustParse("10:00")))
}

func TestTimeOfDay_Sub(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 16, MustParse("09:16").Sub(MustParse("09:00")))
	assert.Equal(t, -30, MustParse("16:30").Sub(MustParse("17:00")))
	assert.Equal(t, 0, MustParse("09:00").Sub(MustParse("09:00")))
}

func TestTimeOfDay_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(MustParse("07:05"))
	require.NoError(t, err)
	assert.Equal(t, `"07:05"`, string(data))

	var parsed TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"18:45"`), &parsed))
	assert.Equal(t, TimeOfDay{Hour: 18, Minute: 45}, parsed)
}
