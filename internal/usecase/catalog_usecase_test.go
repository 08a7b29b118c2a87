package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"grafica_xpto/internal/domain/entities"
	mock_interfaces "grafica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.Create(context.Background(), CatalogInput{Name: "  "})
		if !errors.Is(err, ErrInvalidCatalogEntry) {
			t.Fatalf("expected ErrInvalidCatalogEntry, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.Create(context.Background(), CatalogInput{Name: "Lona", UnitPriceByArea: -1})
		if !errors.Is(err, ErrInvalidCatalogEntry) {
			t.Fatalf("expected ErrInvalidCatalogEntry, got %v", err)
		}
	})

	t.Run("unknown pricing mode", func(t *testing.T) {
		uc := NewCatalogUseCase(nil)
		_, err := uc.Create(context.Background(), CatalogInput{Name: "Lona", PricingMode: "litros"})
		if !errors.Is(err, ErrInvalidCatalogEntry) {
			t.Fatalf("expected ErrInvalidCatalogEntry, got %v", err)
		}
	})

	t.Run("success defaults to area mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CatalogEntry{})).DoAndReturn(
			func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
				if e.ID == "" || e.Name != "Lona 440g" || e.PricingMode != entities.PricingModeArea {
					t.Fatalf("unexpected entry: %+v", e)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)

		res, err := uc.Create(context.Background(), CatalogInput{Name: " Lona 440g ", UnitPriceByArea: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestCatalogUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "mat-404").Return(entities.CatalogEntry{}, nil)

		_, err := uc.Update(context.Background(), "mat-404", CatalogInput{Name: "Lona"})
		if !errors.Is(err, ErrCatalogEntryNotFound) {
			t.Fatalf("expected ErrCatalogEntryNotFound, got %v", err)
		}
	})

	t.Run("success keeps identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		createdAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "mat-1").Return(entities.CatalogEntry{ID: "mat-1", CreatedAt: createdAt}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.CatalogEntry{})).DoAndReturn(
			func(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
				if e.ID != "mat-1" || !e.CreatedAt.Equal(createdAt) {
					t.Fatalf("identity not preserved: %+v", e)
				}
				if e.UnitPriceByUnit != 7 {
					t.Fatalf("unexpected price: %+v", e)
				}
				return e, nil
			},
		)

		if _, err := uc.Update(context.Background(), "mat-1", CatalogInput{Name: "Vinil", UnitPriceByUnit: 7, PricingMode: entities.PricingModeUnit}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_List(t *testing.T) {
	entries := []entities.CatalogEntry{
		{ID: "a", Name: "Lona", UnitPriceByArea: 2},
		{ID: "b", Name: "Sem preço"},
		{ID: "c", Name: "Adesivo", UnitPriceByUnit: 5},
	}

	t.Run("all entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(entries, nil)

		got, err := uc.List(context.Background(), false)
		if err != nil || len(got) != 3 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})

	t.Run("only priced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(entries, nil)

		got, err := uc.List(context.Background(), true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
			t.Fatalf("unexpected filtered list: %+v", got)
		}
	})

	t.Run("empty list is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		got, err := uc.List(context.Background(), true)
		if err != nil || len(got) != 0 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}
