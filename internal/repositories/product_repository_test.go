package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"king_backend/internal/dbtest"
	"king_backend/internal/models"
)

func TestProductRepositoryFirstMatchWins(t *testing.T) {
	db := dbtest.New(t)
	repo := NewProductRepository()
	ctx := context.Background()

	first := &models.Product{Name: "Refri", SupplierCode: "10", StockQuantity: 3, SalePrice: decimal.NewFromInt(4)}
	second := &models.Product{Name: "Refri", SupplierCode: "10", StockQuantity: 9, SalePrice: decimal.NewFromInt(5)}
	for _, p := range []*models.Product{first, second} {
		if _, err := repo.CreateProduct(ctx, db, p); err != nil {
			t.Fatalf("CreateProduct: %v", err)
		}
	}

	got, err := repo.GetProductByName(ctx, db, "Refri")
	if err != nil {
		t.Fatalf("GetProductByName: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("got product %d, want the first inserted (%d)", got.ID, first.ID)
	}

	got, err = repo.GetProductByCode(ctx, db, "10")
	if err != nil {
		t.Fatalf("GetProductByCode: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("by code: got product %d, want %d", got.ID, first.ID)
	}

	stock, err := repo.GetStockByName(ctx, db, "Refri")
	if err != nil || stock != 3 {
		t.Errorf("GetStockByName = %d, %v; want 3", stock, err)
	}

	if _, err := repo.GetProductByName(ctx, db, "refri"); !errors.Is(err, ErrNotFound) {
		t.Errorf("name lookup is case sensitive on sqlite, got err %v", err)
	}
}

func TestAdjustStock(t *testing.T) {
	db := dbtest.New(t)
	repo := NewProductRepository()
	ctx := context.Background()

	p := &models.Product{Name: "Gelo", StockQuantity: 2}
	if _, err := repo.CreateProduct(ctx, db, p); err != nil {
		t.Fatal(err)
	}

	if err := repo.AdjustStock(ctx, db, p.ID, -5); err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	if stock, _ := repo.GetStockByName(ctx, db, "Gelo"); stock != -3 {
		t.Errorf("stock = %d, want -3", stock)
	}

	if err := repo.AdjustStock(ctx, db, p.ID+1, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing product: err = %v, want ErrNotFound", err)
	}
}

func TestForeignKeyViolationIsStorageError(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	item := &models.SaleItem{SaleID: 1, ProductID: 1, Quantity: 1}
	_, err := NewSaleRepository().CreateSaleItem(ctx, db, item)
	if !errors.Is(err, ErrStorage) || !errors.Is(err, ErrForeignKey) {
		t.Fatalf("err = %v, want ErrStorage and ErrForeignKey", err)
	}
}

func TestClientRepositoryRoundTrip(t *testing.T) {
	db := dbtest.New(t)
	repo := NewClientRepository()
	ctx := context.Background()

	in := &models.Client{Name: "Ana", NationalID: "999", Email: "ana@example.com", Phone: "55", Address: "Rua B, 10"}
	if _, err := repo.CreateClient(ctx, db, in); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	got, err := repo.GetClientByID(ctx, db, in.ID)
	if err != nil {
		t.Fatalf("GetClientByID: %v", err)
	}
	if *got != *in {
		t.Errorf("got %+v, want %+v", got, in)
	}
	if _, err := repo.GetClientByID(ctx, db, in.ID+1); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
