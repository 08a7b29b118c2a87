package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrSaleNotFound               = errors.New("sale not found")
	ErrInvalidSaleTotal           = errors.New("invalid sale total")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentGatewayNotAvailable = errors.New("payment gateway not configured")
)

// ISaleUseCase finalizes priced documents into sales.
//
//   - FinalizeFromQuote converts a saved quote: charges the quote total,
//     persists the sale with a back-reference to the originating quote and
//     flips the quote to its terminal status.
//   - FinalizeDirect is the counter (PDV) flow: price and charge in one step
//     with no prior saved quote.

type ISaleUseCase interface {
	FinalizeFromQuote(ctx context.Context, quoteID string, paymentPayload json.RawMessage) (entities.Quote, error)
	FinalizeDirect(ctx context.Context, in QuoteInput, paymentPayload json.RawMessage) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}

type SaleUseCase struct {
	quotes  *QuoteUseCase
	repo    interfaces.IQuoteRepository
	gateway interfaces.IPaymentGateway
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(quotes *QuoteUseCase, repo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *SaleUseCase {
	return &SaleUseCase{quotes: quotes, repo: repo, gateway: gateway}
}

// FinalizeFromQuote converts a saved quote into a paid sale. The charge and
// the sale write happen before the quote status flip; if only the flip
// fails, the created sale is returned together with the error so the caller
// can reconcile instead of re-charging. The sale's quote_id back-reference
// identifies the stuck quote.
func (u *SaleUseCase) FinalizeFromQuote(ctx context.Context, quoteID string, paymentPayload json.RawMessage) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	log.Printf("[sale][usecase] finalize-from-quote start quote_id=%s", quoteID)

	quote, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if quote.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if quote.Finalized() {
		return entities.Quote{}, ErrQuoteAlreadyFinalized
	}

	sale := quote
	sale.ID = uuid.NewString()
	sale.QuoteID = quote.ID

	created, err := u.finalize(ctx, sale, paymentPayload)
	if err != nil {
		return entities.Quote{}, err
	}

	// Conversion is terminal for the quote too: it can no longer be edited
	// or converted twice.
	if _, err := u.repo.UpdateStatusByID(ctx, quote.ID, entities.QuoteStatusVendaFinalizada); err != nil {
		log.Printf("[sale][usecase] quote status flip failed quote_id=%s sale_id=%s err=%v", quote.ID, created.ID, err)
		return created, err
	}
	log.Printf("[sale][usecase] finalize-from-quote success quote_id=%s sale_id=%s", quote.ID, created.ID)
	return created, nil
}

func (u *SaleUseCase) FinalizeDirect(ctx context.Context, in QuoteInput, paymentPayload json.RawMessage) (entities.Quote, error) {
	log.Printf("[sale][usecase] finalize-direct start customer=%q", in.Customer.Name)

	sale, err := u.quotes.assemble(ctx, in)
	if err != nil {
		return entities.Quote{}, err
	}
	sale.ID = uuid.NewString()

	created, err := u.finalize(ctx, sale, paymentPayload)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[sale][usecase] finalize-direct success sale_id=%s total=%.2f", created.ID, created.Total)
	return created, nil
}

// finalize charges the document total through the gateway and persists the
// sale. The gateway call happens first: on charge failure nothing is
// written, so the operator can retry with the same inputs.
func (u *SaleUseCase) finalize(ctx context.Context, sale entities.Quote, paymentPayload json.RawMessage) (entities.Quote, error) {
	if sale.Total <= 0 {
		return entities.Quote{}, ErrInvalidSaleTotal
	}
	if u.gateway == nil {
		return entities.Quote{}, ErrPaymentGatewayNotAvailable
	}

	payload, err := enrichPaymentPayload(paymentPayload, sale)
	if err != nil {
		return entities.Quote{}, err
	}

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[sale][usecase] payment gateway failed sale_id=%s err=%v", sale.ID, err)
		return entities.Quote{}, err
	}
	log.Printf("[sale][usecase] payment approved sale_id=%s provider_payment_id=%s provider_status=%s", sale.ID, providerPaymentID, providerStatus)

	now := time.Now().UTC()
	sale.Status = entities.QuoteStatusVendaFinalizada
	sale.PaymentID = providerPaymentID
	sale.CreatedAt = now
	sale.UpdatedAt = now

	return u.repo.Create(ctx, sale)
}

func (u *SaleUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" || !q.Finalized() {
		return entities.Quote{}, ErrSaleNotFound
	}
	return q, nil
}

// enrichPaymentPayload forces the charged amount to the document total (the
// persisted document is the source of truth, never the client) and links the
// charge back to the sale via external_reference.
func enrichPaymentPayload(payload json.RawMessage, sale entities.Quote) (json.RawMessage, error) {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return nil, ErrInvalidPaymentPayload
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return nil, ErrInvalidPaymentPayload
	}
	if reqMap == nil {
		reqMap = map[string]any{}
	}

	reqMap["transaction_amount"] = sale.Total
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = sale.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Venda %s", sale.ID)
	}

	return json.Marshal(reqMap)
}
