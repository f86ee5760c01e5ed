package utils

import "time"

// BrisbaneTZ is used when the zone database is unavailable, e.g. in a minimal lambda image.
var BrisbaneTZ = time.FixedZone("AEST", 10*60*60)

func MustParseDate(dateStr string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}
