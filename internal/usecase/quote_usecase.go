package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/domain/pricing"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound         = errors.New("quote not found")
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrMissingCustomerName   = errors.New("missing customer name")
	ErrInvalidDiscount       = errors.New("invalid discount")
	ErrIncompleteDimensions  = errors.New("incomplete dimensions")
	ErrMaterialNotFound      = errors.New("material not found")
	ErrQuoteAlreadyFinalized = errors.New("quote already finalized")
)

// DocumentMode is the explicit create-vs-update switch threaded through the
// assembler. Callers never infer the mode from incidental payload shape: a
// new document and an edit of an existing one are distinct values.

type DocumentMode struct {
	existingID string
}

func NewDocument() DocumentMode {
	return DocumentMode{}
}

func EditingExisting(id string) DocumentMode {
	return DocumentMode{existingID: strings.TrimSpace(id)}
}

// ExistingID returns the id being edited and whether the mode is an edit.
func (m DocumentMode) ExistingID() (string, bool) {
	return m.existingID, m.existingID != ""
}

// QuoteInput is the command assembled from the operator's current
// selections: customer, material, dimensions, services, discount.
type QuoteInput struct {
	Name     string
	Customer entities.Customer

	MaterialID string
	ModeHint   entities.PricingMode

	ItemHeightCm float64
	ItemWidthCm  float64
	AreaHeightM  float64
	AreaWidthM   float64

	Services []entities.ServiceFee
	Discount entities.Discount
	Notes    string
}

// IQuoteUseCase exposes the document assembler operations:
//   - Preview: pure computation for the live calculator, never persists
//   - Save: create or full-replace update of a quote, mode-driven
//   - GetByID/List/Delete: reload-for-editing and saved-documents views

type IQuoteUseCase interface {
	Preview(ctx context.Context, in QuoteInput) (pricing.Result, error)
	Save(ctx context.Context, mode DocumentMode, in QuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	Delete(ctx context.Context, id string) error
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	catalogRepo interfaces.ICatalogRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, catalogRepo interfaces.ICatalogRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, catalogRepo: catalogRepo}
}

// Preview resolves the material and runs the pricing engine without touching
// storage. Incomplete dimensions come back inside the result, not as an
// error, so the caller can render the hint inline.
func (u *QuoteUseCase) Preview(ctx context.Context, in QuoteInput) (pricing.Result, error) {
	material, err := u.resolveMaterial(ctx, in.MaterialID)
	if err != nil {
		return pricing.Result{}, err
	}
	if err := validateDiscount(in.Discount); err != nil {
		return pricing.Result{}, err
	}
	return pricing.Compute(pricingInput(material, in))
}

// Save validates, prices and persists the document. Create and update share
// the same computation; update rewrites the stored item whole, keeping only
// identity and creation time, and refuses documents already finalized as
// sales. Nothing is persisted when any step fails.
func (u *QuoteUseCase) Save(ctx context.Context, mode DocumentMode, in QuoteInput) (entities.Quote, error) {
	q, err := u.assemble(ctx, in)
	if err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	if id, editing := mode.ExistingID(); editing {
		existing, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Quote{}, err
		}
		if existing.ID == "" {
			return entities.Quote{}, ErrQuoteNotFound
		}
		if existing.Finalized() {
			return entities.Quote{}, ErrQuoteAlreadyFinalized
		}
		q.ID = existing.ID
		q.Status = existing.Status
		q.CreatedAt = existing.CreatedAt
		q.UpdatedAt = now

		updated, err := u.repo.Update(ctx, q)
		if err != nil {
			return entities.Quote{}, err
		}
		// The write is conditional on the item still existing; a concurrent
		// delete surfaces as an empty result.
		if updated.ID == "" {
			return entities.Quote{}, ErrQuoteNotFound
		}
		return updated, nil
	}

	q.ID = uuid.NewString()
	q.Status = entities.QuoteStatusOrcamento
	q.CreatedAt = now
	q.UpdatedAt = now
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return ErrQuoteNotFound
	}
	if q.Finalized() {
		return ErrQuoteAlreadyFinalized
	}
	return u.repo.Delete(ctx, id)
}

// assemble runs all validations and the pricing engine and builds the
// document body (without identity or lifecycle fields).
func (u *QuoteUseCase) assemble(ctx context.Context, in QuoteInput) (entities.Quote, error) {
	if strings.TrimSpace(in.Customer.Name) == "" {
		return entities.Quote{}, ErrMissingCustomerName
	}
	if err := validateDiscount(in.Discount); err != nil {
		return entities.Quote{}, err
	}

	material, err := u.resolveMaterial(ctx, in.MaterialID)
	if err != nil {
		return entities.Quote{}, err
	}

	res, err := pricing.Compute(pricingInput(material, in))
	if err != nil {
		return entities.Quote{}, err
	}
	if res.Incomplete {
		return entities.Quote{}, ErrIncompleteDimensions
	}

	mode := in.ModeHint
	if mode == "" {
		mode = material.PricingMode
	}

	return entities.Quote{
		Name:     strings.TrimSpace(in.Name),
		Customer: in.Customer,
		Material: entities.MaterialSnapshot{
			ID:          material.ID,
			Name:        material.Name,
			UnitPrice:   res.UnitPrice,
			PricingMode: mode,
		},
		ItemHeightCm:  in.ItemHeightCm,
		ItemWidthCm:   in.ItemWidthCm,
		AreaHeightM:   in.AreaHeightM,
		AreaWidthM:    in.AreaWidthM,
		Services:      in.Services,
		Quantity:      res.Quantity,
		MaterialValue: res.MaterialValue,
		ServicesValue: res.ServicesValue,
		Subtotal:      res.Subtotal,
		Discount:      in.Discount,
		DiscountValue: res.DiscountValue,
		Total:         res.Total,
		UnitValue:     res.UnitValue,
		Notes:         strings.TrimSpace(in.Notes),
	}, nil
}

func (u *QuoteUseCase) resolveMaterial(ctx context.Context, materialID string) (*entities.CatalogEntry, error) {
	materialID = strings.TrimSpace(materialID)
	if materialID == "" {
		return nil, pricing.ErrNoMaterialSelected
	}

	material, err := u.catalogRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if material.ID == "" {
		return nil, ErrMaterialNotFound
	}
	return &material, nil
}

func pricingInput(material *entities.CatalogEntry, in QuoteInput) pricing.Input {
	return pricing.Input{
		Material:     material,
		ModeHint:     in.ModeHint,
		ItemHeightCm: in.ItemHeightCm,
		ItemWidthCm:  in.ItemWidthCm,
		AreaHeightM:  in.AreaHeightM,
		AreaWidthM:   in.AreaWidthM,
		Services:     in.Services,
		Discount:     in.Discount,
	}
}

func validateDiscount(d entities.Discount) error {
	switch d.Kind {
	case "":
		if d.Amount != 0 {
			return ErrInvalidDiscount
		}
	case entities.DiscountKindPercentage:
		if d.Amount < 0 || d.Amount > 100 {
			return ErrInvalidDiscount
		}
	case entities.DiscountKindFixed:
		if d.Amount < 0 {
			return ErrInvalidDiscount
		}
	default:
		return ErrInvalidDiscount
	}
	return nil
}
