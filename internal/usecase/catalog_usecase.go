package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"grafica_xpto/internal/domain/entities"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCatalogEntryNotFound  = errors.New("catalog entry not found")
	ErrInvalidCatalogEntryID = errors.New("invalid catalog entry id")
	ErrInvalidCatalogEntry   = errors.New("invalid catalog entry")
)

// CatalogInput carries the writable fields of a catalog entry.
type CatalogInput struct {
	Name            string
	UnitPriceByArea float64
	UnitPriceByUnit float64
	PricingMode     entities.PricingMode
}

// ICatalogUseCase manages the priced material/product catalog the pricing
// engine selects from.

type ICatalogUseCase interface {
	Create(ctx context.Context, in CatalogInput) (entities.CatalogEntry, error)
	Update(ctx context.Context, id string, in CatalogInput) (entities.CatalogEntry, error)
	GetByID(ctx context.Context, id string) (entities.CatalogEntry, error)
	List(ctx context.Context, onlyPriced bool) ([]entities.CatalogEntry, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) Create(ctx context.Context, in CatalogInput) (entities.CatalogEntry, error) {
	e, err := entryFromInput(in)
	if err != nil {
		return entities.CatalogEntry{}, err
	}

	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	return u.repo.Create(ctx, e)
}

func (u *CatalogUseCase) Update(ctx context.Context, id string, in CatalogInput) (entities.CatalogEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogEntry{}, ErrInvalidCatalogEntryID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if existing.ID == "" {
		return entities.CatalogEntry{}, ErrCatalogEntryNotFound
	}

	e, err := entryFromInput(in)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.CatalogEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogEntry{}, ErrInvalidCatalogEntryID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if e.ID == "" {
		return entities.CatalogEntry{}, ErrCatalogEntryNotFound
	}
	return e, nil
}

// List returns catalog entries; onlyPriced keeps only entries carrying a
// usable price, which is what the pricing pages consume.
func (u *CatalogUseCase) List(ctx context.Context, onlyPriced bool) ([]entities.CatalogEntry, error) {
	entries, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if !onlyPriced {
		return entries, nil
	}

	priced := make([]entities.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if e.HasUsablePrice() {
			priced = append(priced, e)
		}
	}
	return priced, nil
}

func entryFromInput(in CatalogInput) (entities.CatalogEntry, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.CatalogEntry{}, ErrInvalidCatalogEntry
	}
	if in.UnitPriceByArea < 0 || in.UnitPriceByUnit < 0 {
		return entities.CatalogEntry{}, ErrInvalidCatalogEntry
	}

	mode := in.PricingMode
	switch mode {
	case "":
		mode = entities.PricingModeArea
	case entities.PricingModeArea, entities.PricingModeUnit:
	default:
		return entities.CatalogEntry{}, ErrInvalidCatalogEntry
	}

	return entities.CatalogEntry{
		Name:            name,
		UnitPriceByArea: in.UnitPriceByArea,
		UnitPriceByUnit: in.UnitPriceByUnit,
		PricingMode:     mode,
	}, nil
}
