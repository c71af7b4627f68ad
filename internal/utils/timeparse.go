// Package utils provides small parsing helpers shared by handlers.
package utils

import (
    "errors"
    "strings"
    "time"
)

// ErrBadDate is returned for values that are not a YYYY-MM-DD calendar date.
var ErrBadDate = errors.New("invalid date, expected YYYY-MM-DD")

// ErrBadTime is returned for values that are not a HH:MM slot label.
var ErrBadTime = errors.New("invalid time, expected HH:MM")

// ParseDate validates a calendar date and returns it in canonical
// YYYY-MM-DD form. The engine places no lower or upper bound on the
// date range; callers that want "today .. +N days" restrict it
// themselves.
func ParseDate(s string) (string, error) {
    t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
    if err != nil {
        return "", ErrBadDate
    }
    return t.Format("2006-01-02"), nil
}

// ParseSlotLabel validates a time label and returns it in canonical
// HH:MM form. Whether the label is actually offered by a turf is a
// separate catalog-membership check.
func ParseSlotLabel(s string) (string, error) {
    t, err := time.Parse("15:04", strings.TrimSpace(s))
    if err != nil {
        return "", ErrBadTime
    }
    return t.Format("15:04"), nil
}
