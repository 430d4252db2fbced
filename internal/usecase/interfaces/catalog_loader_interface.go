package interfaces

import (
	"context"

	"newpay_simulator/internal/domain/entities"
)

// ICatalogLoader abstracts the three bootstrap data documents.
//
// The three loads are independent; bootstrap runs them in parallel and treats
// any single failure as a failure of the whole load (all-or-nothing).

type ICatalogLoader interface {
	LoadProductCatalog(ctx context.Context) ([]entities.Product, error)
	LoadClientCatalog(ctx context.Context) ([]entities.Client, error)
	LoadStrategyCatalog(ctx context.Context) ([]entities.Strategy, error)
}
