package db

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

// NewTestDB creates a fresh in-process Redis instance and connects to it.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	mr := miniredis.RunT(t)

	database, err := Open(mr.Addr(), 0)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := database.Flush(context.Background()); err != nil {
		database.Close()
		t.Fatalf("flushing test database: %v", err)
	}

	t.Cleanup(func() { database.Close() })

	return database
}
