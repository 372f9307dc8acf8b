package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"king_backend/internal/models"
	"king_backend/internal/repositories"
	"king_backend/pkg/utils"
)

// CreateSaleItemRequest is one line of a sale.
type CreateSaleItemRequest struct {
	ProductID int64           `json:"produtoId"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"precoUnitario"`
}

// CreateSaleRequest is the body of the sale endpoint.
type CreateSaleRequest struct {
	ClientID   int64                   `json:"clienteId"`
	TotalValue decimal.Decimal         `json:"valorTotal"`
	Items      []CreateSaleItemRequest `json:"itens"`
}

// SaleService records sales and reads them back.
type SaleService interface {
	CreateSale(ctx context.Context, req CreateSaleRequest) (*models.Sale, error)
	GetSaleByID(ctx context.Context, saleID int64) (*models.Sale, error)
}

type saleService struct {
	saleRepo    repositories.SaleRepository
	productRepo repositories.ProductRepository
	db          *sqlx.DB
	now         func() time.Time
}

// NewSaleService creates a new instance of SaleService.
func NewSaleService(sr repositories.SaleRepository, pr repositories.ProductRepository, db *sqlx.DB) SaleService {
	return &saleService{
		saleRepo:    sr,
		productRepo: pr,
		db:          db,
		now:         time.Now,
	}
}

// CreateSale inserts the sale, then each item in order followed by its stock
// decrement, all in one transaction. Stock is not checked and may go negative.
// Any failure rolls back the whole sale.
func (s *saleService) CreateSale(ctx context.Context, req CreateSaleRequest) (*models.Sale, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: starting transaction: %w", ErrSaleFailed, err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			utils.LogError(rbErr, "CreateSale: rollback failed")
		}
	}()

	sale := models.Sale{
		SaleDate:   s.now(),
		ClientID:   req.ClientID,
		TotalValue: req.TotalValue,
		Items:      make([]models.SaleItem, 0, len(req.Items)),
	}
	if _, err := s.saleRepo.CreateSale(ctx, tx, &sale); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaleFailed, err)
	}

	for _, itemReq := range req.Items {
		item := models.SaleItem{
			SaleID:    sale.ID,
			ProductID: itemReq.ProductID,
			Quantity:  itemReq.Quantity,
			UnitPrice: itemReq.UnitPrice,
		}
		if _, err := s.saleRepo.CreateSaleItem(ctx, tx, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSaleFailed, err)
		}
		if err := s.productRepo.AdjustStock(ctx, tx, itemReq.ProductID, -itemReq.Quantity); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSaleFailed, err)
		}
		sale.Items = append(sale.Items, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: committing transaction: %w", ErrSaleFailed, err)
	}
	committed = true

	utils.LogDebug("Sale recorded", map[string]interface{}{"sale_id": sale.ID, "items": len(sale.Items)})
	return &sale, nil
}

func (s *saleService) GetSaleByID(ctx context.Context, saleID int64) (*models.Sale, error) {
	sale, err := s.saleRepo.GetSaleByID(ctx, s.db, saleID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale by ID: %w", err)
	}

	items, err := s.saleRepo.GetSaleItemsBySaleID(ctx, s.db, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items of sale %d: %w", saleID, err)
	}
	sale.Items = items
	return sale, nil
}
