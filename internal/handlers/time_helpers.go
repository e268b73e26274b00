package handlers

import (
	"time"

	"github.com/petshopco/petshop-backend/internal/timezone"
)

// All dates and times on the wire are interpreted in the clinic's
// configured timezone.

func parseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}

func parseDateTime(tz string, dateStr string, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Location(tz),
	)
}
