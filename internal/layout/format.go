package layout

import (
	"fmt"

	"github.com/jonathan/resumetex/internal/types"
)

// FormatLocation returns "city, region". Callers must check that loc is present.
func FormatLocation(loc *types.Location) (string, error) {
	if loc == nil {
		return "", &InvariantViolation{Message: "cannot format an absent location"}
	}
	return fmt.Sprintf("%s, %s", loc.City, loc.Region), nil
}

// FormatTimeRange renders a date or date range using month and year only.
// An end date earlier than start is rendered as given.
func FormatTimeRange(start types.Date, end *types.Date, isInstant bool) string {
	switch {
	case isInstant:
		return start.MonthYear()
	case end == nil:
		return start.MonthYear() + " - present"
	default:
		return start.MonthYear() + " - " + end.MonthYear()
	}
}
