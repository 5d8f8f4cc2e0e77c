package interfaces

//go:generate mockgen -source=supplier_catalog_interface.go -destination=mocks/supplier_catalog_mock.go -package=mock_interfaces

import (
	"context"
	"supplymind/internal/domain/entities"
)

// ISupplierCatalog is the read-only view of the supplier/product store.
//
// Both lookups return a zero-value entity with nil error when the id is unknown.

type ISupplierCatalog interface {
	LookupSupplier(ctx context.Context, supplierID string) (entities.Supplier, error)
	LookupProduct(ctx context.Context, sku string) (entities.Product, error)
}
