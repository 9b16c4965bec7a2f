package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/preciserobot/shoppy/internal/db"
	"github.com/preciserobot/shoppy/internal/model"
)

// ItemKeyPrefix namespaces item records in the key-value store.
const ItemKeyPrefix = "item:"

// ItemKey returns the store key for a barcode.
func ItemKey(ean string) string {
	return ItemKeyPrefix + ean
}

// GetItem returns the item stored for ean, or nil if there is none.
// A value that no longer parses is treated as absent so one corrupted
// entry cannot break reads or listings.
func GetItem(ctx context.Context, d *db.DB, ean string) (*model.Item, error) {
	value, found, err := d.Get(ctx, ItemKey(ean))
	if err != nil {
		return nil, fmt.Errorf("getting item %q: %w", ean, err)
	}
	if !found {
		return nil, nil
	}

	var item model.Item
	if err := json.Unmarshal([]byte(value), &item); err != nil {
		slog.Warn("skipping unreadable item record", "ean", ean, "error", err)
		return nil, nil
	}
	return &item, nil
}

// SaveItem serializes the item and writes it at its barcode key.
func SaveItem(ctx context.Context, d *db.DB, item *model.Item) error {
	value, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encoding item %q: %w", item.EAN, err)
	}
	if err := d.Set(ctx, ItemKey(item.EAN), string(value)); err != nil {
		return fmt.Errorf("saving item %q: %w", item.EAN, err)
	}
	return nil
}

// DeleteItem removes the item stored for ean. The record is gone for
// good; there is no soft delete.
func DeleteItem(ctx context.Context, d *db.DB, ean string) error {
	if err := d.Delete(ctx, ItemKey(ean)); err != nil {
		return fmt.Errorf("deleting item %q: %w", ean, err)
	}
	return nil
}

// ListItems returns every stored item. Entries that fail to load are
// skipped rather than failing the whole listing.
func ListItems(ctx context.Context, d *db.DB) ([]model.Item, error) {
	keys, err := d.Keys(ctx, ItemKeyPrefix+"*")
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}

	items := make([]model.Item, 0, len(keys))
	for _, key := range keys {
		ean := strings.TrimPrefix(key, ItemKeyPrefix)
		item, err := GetItem(ctx, d, ean)
		if err != nil {
			slog.Warn("skipping item during listing", "key", key, "error", err)
			continue
		}
		if item != nil {
			items = append(items, *item)
		}
	}
	return items, nil
}
