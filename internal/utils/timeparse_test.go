package utils

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
    got, err := ParseDate(" 2025-06-01 ")
    assert.NoError(t, err)
    assert.Equal(t, "2025-06-01", got)

    for _, bad := range []string{"", "01-06-2025", "2025-13-01", "2025-06-32", "tomorrow"} {
        _, err := ParseDate(bad)
        assert.ErrorIs(t, err, ErrBadDate, "input %q", bad)
    }
}

func TestParseSlotLabel(t *testing.T) {
    got, err := ParseSlotLabel("09:00")
    assert.NoError(t, err)
    assert.Equal(t, "09:00", got)

    for _, bad := range []string{"", "25:00", "09:60", "9 am"} {
        _, err := ParseSlotLabel(bad)
        assert.ErrorIs(t, err, ErrBadTime, "input %q", bad)
    }
}
