package appointment

import "time"

const clockLayout = "15:04"

// GenerateTimeSlots turns a working window into fixed-width candidate
// slot start times ("HH:MM"), stepping by durationMinutes from startTime.
//
// A slot is included whenever its start is strictly before endTime, so
// the last slot of the day may run past the nominal closing time. That
// matches the storefront's long-standing booking behavior and is kept
// on purpose.
func GenerateTimeSlots(startTime, endTime string, durationMinutes int) []string {
	if durationMinutes <= 0 {
		return []string{}
	}

	start, err := time.Parse(clockLayout, startTime)
	if err != nil {
		return []string{}
	}
	end, err := time.Parse(clockLayout, endTime)
	if err != nil {
		return []string{}
	}

	step := time.Duration(durationMinutes) * time.Minute

	slots := []string{}
	for cur := start; cur.Before(end); cur = cur.Add(step) {
		slots = append(slots, cur.Format(clockLayout))
	}
	return slots
}
