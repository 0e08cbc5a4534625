package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ISODateFormat is the wire and storage format for record dates.
const ISODateFormat = "2006-01-02"

// ReportRangeStart is the lower bound applied when a report request carries
// no explicit start date.
const ReportRangeStart = "2001-01-01"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// Today returns the current date in ISO format.
func Today() string {
	return time.Now().Format(ISODateFormat)
}

// IsISODate reports whether the value parses as a YYYY-MM-DD date.
func IsISODate(value string) bool {
	_, err := time.Parse(ISODateFormat, value)
	return err == nil
}
