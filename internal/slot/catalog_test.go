package slot

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
    tests := []struct {
        name string
        raw  string
        want []string
    }{
        {
            name: "native json array",
            raw:  `["09:00","10:00"]`,
            want: []string{"09:00", "10:00"},
        },
        {
            name: "json string wrapping an array",
            raw:  `"[\"09:00\",\"10:00\"]"`,
            want: []string{"09:00", "10:00"},
        },
        {
            name: "bare comma separated list",
            raw:  "09:00, 10:00 ,11:00",
            want: []string{"09:00", "10:00", "11:00"},
        },
        {
            name: "duplicates removed, order preserved",
            raw:  `["10:00","09:00","10:00"]`,
            want: []string{"10:00", "09:00"},
        },
        {
            name: "empty input",
            raw:  "",
            want: nil,
        },
        {
            name: "whitespace only",
            raw:  "   ",
            want: nil,
        },
        {
            name: "array with blank entries",
            raw:  `["09:00","","  "]`,
            want: []string{"09:00"},
        },
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            got := ParseList(tt.raw)
            if tt.want == nil {
                assert.Empty(t, got)
                return
            }
            assert.Equal(t, tt.want, got)
        })
    }
}

func TestNormalizeFallsBackToDefault(t *testing.T) {
    for _, raw := range []string{"", "   ", `""`} {
        got := Normalize(raw)
        assert.Equal(t, DefaultSlots(), got, "raw=%q", raw)
    }
}

func TestNormalizeSameResultForBothShapes(t *testing.T) {
    native := Normalize(`["09:00","10:00"]`)
    encoded := Normalize(`"[\"09:00\",\"10:00\"]"`)
    assert.Equal(t, native, encoded)
    assert.Equal(t, []string{"09:00", "10:00"}, native)
}

func TestAvailable(t *testing.T) {
    catalog := []string{"09:00", "10:00", "11:00"}

    t.Run("no bookings means full catalog", func(t *testing.T) {
        assert.Equal(t, catalog, Available(catalog, nil))
    })

    t.Run("booked labels removed in catalog order", func(t *testing.T) {
        got := Available(catalog, []string{"10:00"})
        assert.Equal(t, []string{"09:00", "11:00"}, got)
    })

    t.Run("booked arrival order does not leak into result", func(t *testing.T) {
        got := Available(catalog, []string{"11:00", "09:00"})
        assert.Equal(t, []string{"10:00"}, got)
    })

    t.Run("labels outside the catalog are ignored", func(t *testing.T) {
        got := Available(catalog, []string{"23:00"})
        assert.Equal(t, catalog, got)
    })

    t.Run("fully booked yields empty non-nil slice", func(t *testing.T) {
        got := Available(catalog, catalog)
        assert.NotNil(t, got)
        assert.Empty(t, got)
    })
}

func TestContains(t *testing.T) {
    catalog := []string{"09:00", "10:00"}
    assert.True(t, Contains(catalog, "09:00"))
    assert.True(t, Contains(catalog, " 09:00 "))
    assert.False(t, Contains(catalog, "12:00"))
    assert.False(t, Contains(nil, "09:00"))
}

func TestEncodeListRoundTrip(t *testing.T) {
    in := []string{"09:00", "10:00", "09:00"}
    encoded := EncodeList(in)
    assert.Equal(t, `["09:00","10:00"]`, encoded)
    assert.Equal(t, []string{"09:00", "10:00"}, ParseList(encoded))
}
