package model

import "time"

// Turf represents a bookable sports ground listed on the platform.
// Each turf belongs to exactly one owner, matched by email equality
// against OwnerEmail.  This struct corresponds to a row in the
// `turfs` table.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name of the ground.
//  Address       – free-text postal address.
//  Pincode       – 6-digit postal code used for coarse location filtering.
//  Images        – ordered list of image URLs.
//  PricePerHour  – hourly price as a currency-agnostic integer.
//  Amenities     – unordered set of amenity tags.
//  Rating        – display-only average rating, not recomputed here.
//  TimeSlots     – normalized, ordered catalog of bookable time labels.
//  OwnerEmail    – contact email of the owner, also the access-control key.
//  CreatedAt     – timestamp when the row was created.
//  UpdatedAt     – timestamp of last update.
type Turf struct {
    ID           uint64    // turfs.id
    Name         string    // turfs.name
    Address      string    // turfs.address
    Pincode      string    // turfs.pincode
    Images       []string  // turfs.images (stored as JSON text, normalized on read)
    PricePerHour uint32    // turfs.price_per_hour
    Amenities    []string  // turfs.amenities (stored as JSON text)
    Rating       float64   // turfs.rating
    TimeSlots    []string  // turfs.time_slots (stored as JSON text, normalized on read)
    OwnerEmail   string    // turfs.owner_email
    CreatedAt    time.Time // turfs.created_at
    UpdatedAt    time.Time // turfs.updated_at
}
