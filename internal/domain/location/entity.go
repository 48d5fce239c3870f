package location

import (
	"strings"
	"time"
)

// ShiftWindow is a daily shift expressed as wall-clock "HH:MM" strings in the
// location's local day.
type ShiftWindow struct {
	Start string
	End   string
}

type Location struct {
	ID           string
	Code         string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	IsOffice     bool
	MorningShift ShiftWindow
	NightShift   ShiftWindow
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OfficeCodePrefix marks office locations when the explicit flag was never
// set by an administrator.
const OfficeCodePrefix = "OFC"

// Office reports whether the location counts as an office for the
// management self-clock rule: the explicit flag wins, with a code-prefix
// fallback for legacy records.
func (l *Location) Office() bool {
	return l.IsOffice || strings.HasPrefix(strings.ToUpper(l.Code), OfficeCodePrefix)
}

// ShiftStartFor picks the shift window a clock time belongs to and returns
// the shift's start on the same calendar day. Times before 15:00 local fall
// into the morning shift; everything later belongs to the night shift.
func (l *Location) ShiftStartFor(t time.Time) time.Time {
	window := l.MorningShift
	if t.Hour() >= 15 {
		window = l.NightShift
	}

	hh, mm := parseClock(window.Start)
	return time.Date(t.Year(), t.Month(), t.Day(), hh, mm, 0, 0, t.Location())
}

func parseClock(s string) (int, int) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0
	}
	return parsed.Hour(), parsed.Minute()
}
