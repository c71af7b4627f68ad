// Package slot holds the slot-catalog logic: normalizing the persisted
// time-slot field into a clean ordered list and computing which labels
// remain free for a given set of booked labels.  The persisted column has
// historically held a native JSON array in some rows and a JSON-encoded
// string (or a bare comma-separated list) in others; the normalizer must
// accept every shape without raising.
package slot

import (
    "encoding/json"
    "strings"
)

// defaultCatalog is the fallback slot catalog used when a turf row has a
// missing or malformed time-slot field.  Daytime and evening hour labels,
// matching the catalogs the platform seeds new listings with.
var defaultCatalog = []string{
    "06:00", "07:00", "08:00", "09:00", "10:00",
    "16:00", "17:00", "18:00", "19:00", "20:00",
}

// DefaultSlots returns a copy of the fallback catalog.  Callers may
// mutate the result freely.
func DefaultSlots() []string {
    out := make([]string, len(defaultCatalog))
    copy(out, defaultCatalog)
    return out
}

// Normalize turns the raw persisted time-slot value into an ordered list
// of distinct, trimmed labels.  When the input yields no labels at all,
// the default catalog is returned instead of an error.
func Normalize(raw string) []string {
    labels := ParseList(raw)
    if len(labels) == 0 {
        return DefaultSlots()
    }
    return labels
}

// ParseList decodes a stored string-or-list value into a deduplicated,
// order-preserving slice of trimmed strings.  Accepted shapes:
//
//   `["09:00","10:00"]`       – native JSON array
//   `"[\"09:00\",\"10:00\"]"` – JSON string wrapping a JSON array
//   `09:00, 10:00`            – bare comma-separated list
//
// An empty or unparseable value yields an empty slice, never an error.
// The same decoder serves the images and amenities columns, which share
// the dynamic shape.
func ParseList(raw string) []string {
    s := strings.TrimSpace(raw)
    if s == "" {
        return nil
    }
    // Unwrap a JSON string, possibly containing an encoded array.
    if strings.HasPrefix(s, `"`) {
        var inner string
        if err := json.Unmarshal([]byte(s), &inner); err == nil {
            s = strings.TrimSpace(inner)
        }
    }
    if strings.HasPrefix(s, "[") {
        var arr []string
        if err := json.Unmarshal([]byte(s), &arr); err == nil {
            return dedupe(arr)
        }
        // fall through: malformed array text is treated as a bare list
    }
    return dedupe(strings.Split(s, ","))
}

// Available returns the catalog labels not present in booked, preserving
// catalog order so the UI renders slots in a stable sequence.  Labels in
// booked that are not part of the catalog are ignored.
func Available(catalog, booked []string) []string {
    taken := make(map[string]struct{}, len(booked))
    for _, b := range booked {
        taken[strings.TrimSpace(b)] = struct{}{}
    }
    free := make([]string, 0, len(catalog))
    for _, label := range catalog {
        if _, ok := taken[label]; !ok {
            free = append(free, label)
        }
    }
    return free
}

// Contains reports whether label is a member of the catalog after
// trimming.  The booking writer uses it to reject labels outside the
// turf's current catalog.
func Contains(catalog []string, label string) bool {
    label = strings.TrimSpace(label)
    for _, l := range catalog {
        if l == label {
            return true
        }
    }
    return false
}

// EncodeList serializes a normalized list back to the canonical storage
// shape (a JSON array).  Writes always use this shape; only reads must
// tolerate the legacy ones.
func EncodeList(list []string) string {
    b, err := json.Marshal(dedupe(list))
    if err != nil {
        return "[]"
    }
    return string(b)
}

func dedupe(in []string) []string {
    seen := make(map[string]struct{}, len(in))
    out := make([]string, 0, len(in))
    for _, v := range in {
        v = strings.TrimSpace(v)
        if v == "" {
            continue
        }
        if _, ok := seen[v]; ok {
            continue
        }
        seen[v] = struct{}{}
        out = append(out, v)
    }
    return out
}
