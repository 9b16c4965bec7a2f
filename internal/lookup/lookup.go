// Package lookup is the extension point for prefilling item data from
// an external product catalog (e.g. opengtindb.org or
// openfoodfacts.org). No catalog integration ships yet; the service
// runs with the None source, which always reports absent.
package lookup

import (
	"context"

	"github.com/preciserobot/shoppy/internal/model"
)

// Source resolves product data for a barcode. Implementations return
// (nil, nil) when the catalog has no data; callers must degrade a
// lookup error to absent rather than failing the request.
type Source interface {
	LookupByBarcode(ctx context.Context, ean string) (*model.Item, error)
}

// None is a Source with no backing catalog.
type None struct{}

// LookupByBarcode always reports absent.
func (None) LookupByBarcode(ctx context.Context, ean string) (*model.Item, error) {
	return nil, nil
}
