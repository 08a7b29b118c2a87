package interfaces

import (
	"context"
	"grafica_xpto/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for priced documents
// (quotes and finalized sales).
//
// Update carries full-replace semantics: the caller supplies the whole
// document and the stored item is rewritten, never patched.

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, id string) error
}
