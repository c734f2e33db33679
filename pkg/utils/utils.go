package utils

import (
	"time"

	"github.com/benedict-erwin/agency-console/pkg/logger"
)

var appLocation = time.UTC

// InitTimezone sets the application timezone, falling back to UTC
func InitTimezone(timezone string) error {
	if timezone == "" {
		logger.Warn().Msg("No timezone configured, using UTC")
		appLocation = time.UTC
		return nil
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logger.Error().Err(err).Str("timezone", timezone).Msg("Failed to load timezone, using UTC")
		appLocation = time.UTC
		return err
	}

	appLocation = loc
	logger.Debug().Str("timezone", timezone).Msg("Timezone initialized")
	return nil
}

// Now returns current time in application timezone
func Now() time.Time {
	return time.Now().In(appLocation)
}

// NowFormatted returns current time formatted in RFC3339 with app timezone
func NowFormatted() string {
	return Now().Format(time.RFC3339)
}

// Today returns the current date in application timezone as YYYY-MM-DD
func Today() string {
	return Now().Format("2006-01-02")
}

// GetLocation returns the current application location
func GetLocation() *time.Location {
	return appLocation
}
