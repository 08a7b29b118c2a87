package interfaces

import (
	"context"
	"grafica_xpto/internal/domain/entities"
)

// ICatalogRepository abstracts DynamoDB persistence for catalog entries
// (priced materials/products).

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_mock.go -package=mock_interfaces

type ICatalogRepository interface {
	Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
	GetByID(ctx context.Context, id string) (entities.CatalogEntry, error)
	List(ctx context.Context) ([]entities.CatalogEntry, error)
	Update(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
}
