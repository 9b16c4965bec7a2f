package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStampsTimestamps(t *testing.T) {
	item := &Item{EAN: "5000436508298", Name: "Milk"}
	item.Normalize()

	require.NotEmpty(t, item.CreatedAt)
	assert.Equal(t, item.CreatedAt, item.UpdatedAt)

	created, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, created.Location())
}

func TestNormalizePreservesCreatedAt(t *testing.T) {
	item := &Item{EAN: "5000436508298", Name: "Milk", CreatedAt: "2024-01-02T03:04:05Z"}
	item.Normalize()

	assert.Equal(t, "2024-01-02T03:04:05Z", item.CreatedAt)
	assert.GreaterOrEqual(t, item.UpdatedAt, item.CreatedAt)
}

func TestNormalizeDefaultsUnit(t *testing.T) {
	item := &Item{EAN: "5000436508298", Name: "Milk"}
	item.Normalize()
	assert.Equal(t, DefaultUnit, item.Unit)

	item = &Item{EAN: "5000436508298", Name: "Milk", Unit: "bottle"}
	item.Normalize()
	assert.Equal(t, "bottle", item.Unit)
}

func TestCoerceQuantity(t *testing.T) {
	qty, err := CoerceQuantity("3")
	require.NoError(t, err)
	require.NotNil(t, qty)
	assert.Equal(t, 3, *qty)

	qty, err = CoerceQuantity("")
	require.NoError(t, err)
	assert.Nil(t, qty)

	qty, err = CoerceQuantity("  ")
	require.NoError(t, err)
	assert.Nil(t, qty)

	_, err = CoerceQuantity("two")
	assert.Error(t, err)
}

func TestMergeReplacesEveryField(t *testing.T) {
	two := 2
	existing := &Item{
		EAN:       "5000436508298",
		Name:      "Tesco Semi Skimmed Milk 2L",
		Detail:    "2 litres of semi skimmed milk",
		Unit:      "bottle",
		CreatedAt: "2024-01-02T03:04:05Z",
		SrcURL:    "https://example.org/5000436508298",
	}
	incoming := &Item{
		EAN:       "5000436508298",
		Name:      "Milk",
		Quantity:  &two,
		Unit:      "pcs",
		CreatedAt: "2024-01-02T03:04:05Z",
		UpdatedAt: "2024-06-01T00:00:00Z",
	}

	require.NoError(t, existing.Merge(incoming))
	assert.Equal(t, "Milk", existing.Name)
	assert.Empty(t, existing.Detail)
	assert.Equal(t, 2, *existing.Quantity)
	assert.Equal(t, "pcs", existing.Unit)
	assert.Empty(t, existing.SrcURL)
	assert.Equal(t, "2024-01-02T03:04:05Z", existing.CreatedAt)
}

func TestMergeRejectsEANMismatch(t *testing.T) {
	a := &Item{EAN: "5000436508298", Name: "Milk"}
	b := &Item{EAN: "5051399182506", Name: "Chickpeas"}

	assert.Error(t, a.Merge(b))
	assert.Equal(t, "Milk", a.Name)
}

func TestDescription(t *testing.T) {
	one := 1
	item := &Item{Detail: "2 litres of semi skimmed milk", Quantity: &one, Unit: "bottle"}
	assert.Equal(t, "2 litres of semi skimmed milk, 1bottle", item.Description())

	item = &Item{Detail: "dried pasta"}
	assert.Equal(t, "dried pasta", item.Description())

	item = &Item{Quantity: &one, Unit: "pcs"}
	assert.Equal(t, "1pcs", item.Description())

	assert.Empty(t, (&Item{}).Description())
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	raw := `{"ean":"5000436508298","name":"Milk","flavour":"plain","quantity":1}`

	var item Item
	require.NoError(t, json.Unmarshal([]byte(raw), &item))
	assert.Equal(t, "5000436508298", item.EAN)
	assert.Equal(t, "Milk", item.Name)
	require.NotNil(t, item.Quantity)
	assert.Equal(t, 1, *item.Quantity)
}
