package appointment

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeSlots_ThirtyMinuteService(t *testing.T) {
	slots := GenerateTimeSlots("09:00", "11:00", 30)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestGenerateTimeSlots_LastSlotMayOverrunClosingTime(t *testing.T) {
	// 10:30 starts before 10:45 and is included even though the
	// service would end at 11:00.
	slots := GenerateTimeSlots("09:00", "10:45", 30)

	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestGenerateTimeSlots_EmptyWhenWindowInverted(t *testing.T) {
	assert.Empty(t, GenerateTimeSlots("11:00", "09:00", 30))
	assert.Empty(t, GenerateTimeSlots("09:00", "09:00", 30))
}

func TestGenerateTimeSlots_EmptyOnBadInput(t *testing.T) {
	assert.Empty(t, GenerateTimeSlots("09:00", "11:00", 0))
	assert.Empty(t, GenerateTimeSlots("09:00", "11:00", -15))
	assert.Empty(t, GenerateTimeSlots("late", "11:00", 30))
	assert.Empty(t, GenerateTimeSlots("09:00", "early", 30))
}

func TestGenerateTimeSlots_CountStartAndSpacing(t *testing.T) {
	cases := []struct {
		start    string
		end      string
		duration int
	}{
		{"09:00", "11:00", 30},
		{"08:00", "12:00", 45},
		{"10:15", "11:00", 20},
		{"00:00", "23:59", 60},
		{"09:00", "09:01", 30},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s-%s/%dmin", tc.start, tc.end, tc.duration), func(t *testing.T) {
			slots := GenerateTimeSlots(tc.start, tc.end, tc.duration)

			start, _ := time.Parse("15:04", tc.start)
			end, _ := time.Parse("15:04", tc.end)
			window := int(end.Sub(start).Minutes())

			// strict "<" stepping yields ceil(window/duration) slots
			want := (window + tc.duration - 1) / tc.duration
			require.Len(t, slots, want)

			assert.Equal(t, tc.start, slots[0])

			for i := 1; i < len(slots); i++ {
				prev, _ := time.Parse("15:04", slots[i-1])
				cur, _ := time.Parse("15:04", slots[i])
				assert.Equal(t, time.Duration(tc.duration)*time.Minute, cur.Sub(prev))
			}
		})
	}
}
