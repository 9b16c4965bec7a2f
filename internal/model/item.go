package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Item is a curated product record, keyed by its EAN barcode.
//
// Timestamps are ISO-8601 UTC strings. SrcData and SrcURL record
// provenance when the record was filled from an external catalog;
// both stay empty for manually entered records. Unknown fields in
// incoming JSON are ignored.
type Item struct {
	EAN      string `json:"ean"`
	Name     string `json:"name"`
	Detail   string `json:"detail"`
	Quantity *int   `json:"quantity"`
	Unit     string `json:"unit"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	SrcData map[string]any `json:"src_data"`
	SrcURL  string         `json:"src_url"`
}

// DefaultUnit is used when an item is stored without an explicit unit.
const DefaultUnit = "pcs"

// PlaceholderName is the name given to records auto-created for an
// unknown barcode.
const PlaceholderName = "Unknown Item"

// Normalize stamps updated_at with the current UTC time, stamps
// created_at only if it is not already set, and fills the default unit.
// Call it before every persist.
func (it *Item) Normalize() {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	it.UpdatedAt = now
	if it.CreatedAt == "" {
		it.CreatedAt = now
	}
	if it.Unit == "" {
		it.Unit = DefaultUnit
	}
}

// Merge overwrites every field of it with the corresponding field of
// other. Both records must describe the same barcode; callers are
// expected to guarantee this.
func (it *Item) Merge(other *Item) error {
	if it.EAN != other.EAN {
		return fmt.Errorf("merging item %q with item %q: ean mismatch", it.EAN, other.EAN)
	}
	*it = *other
	return nil
}

// Description derives a display string from detail and quantity,
// e.g. "2 litres of semi skimmed milk, 1bottle". It is never stored.
func (it *Item) Description() string {
	var parts []string
	if it.Detail != "" {
		parts = append(parts, it.Detail)
	}
	if it.Quantity != nil && *it.Quantity != 0 {
		parts = append(parts, fmt.Sprintf("%d%s", *it.Quantity, it.Unit))
	}
	return strings.Join(parts, ", ")
}

// CoerceQuantity converts raw form input into a nullable quantity.
// Empty input means no quantity, not zero; non-numeric input is an
// error so it fails the write instead of storing garbage.
func CoerceQuantity(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("coercing quantity %q: %w", raw, err)
	}
	return &n, nil
}
