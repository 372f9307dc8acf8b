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

// CreatePurchaseItemRequest is one line of a supplier purchase.
type CreatePurchaseItemRequest struct {
	ProductID int64           `json:"produtoId"`
	Quantity  int             `json:"quantidade"`
	UnitPrice decimal.Decimal `json:"precoUnitario"`
}

// CreatePurchaseRequest is the body of the purchase endpoint.
type CreatePurchaseRequest struct {
	PurchaseDate   *time.Time                  `json:"dataCompra"`
	Supplier       string                      `json:"fornecedor"`
	TotalValue     decimal.Decimal             `json:"valorTotal"`
	OrderReference string                      `json:"referenciaPedido"`
	PaymentID      string                      `json:"pagamentoId"`
	Items          []CreatePurchaseItemRequest `json:"itens"`
}

// PurchaseService records supplier purchases, which add to stock.
type PurchaseService interface {
	CreatePurchase(ctx context.Context, req CreatePurchaseRequest) (*models.Purchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID int64) (*models.Purchase, error)
}

type purchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	productRepo  repositories.ProductRepository
	db           *sqlx.DB
	now          func() time.Time
}

// NewPurchaseService creates a new instance of PurchaseService.
func NewPurchaseService(pur repositories.PurchaseRepository, pr repositories.ProductRepository, db *sqlx.DB) PurchaseService {
	return &purchaseService{
		purchaseRepo: pur,
		productRepo:  pr,
		db:           db,
		now:          time.Now,
	}
}

// CreatePurchase is the mirror of CreateSale: one transaction, items in
// order, each followed by a stock increment.
func (s *purchaseService) CreatePurchase(ctx context.Context, req CreatePurchaseRequest) (*models.Purchase, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: starting transaction: %w", ErrPurchaseFailed, err)
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			utils.LogError(rbErr, "CreatePurchase: rollback failed")
		}
	}()

	purchase := models.Purchase{
		PurchaseDate:   s.now(),
		Supplier:       req.Supplier,
		TotalValue:     req.TotalValue,
		OrderReference: req.OrderReference,
		PaymentID:      req.PaymentID,
		Items:          make([]models.PurchaseItem, 0, len(req.Items)),
	}
	if req.PurchaseDate != nil && !req.PurchaseDate.IsZero() {
		purchase.PurchaseDate = *req.PurchaseDate
	}
	if _, err := s.purchaseRepo.CreatePurchase(ctx, tx, &purchase); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPurchaseFailed, err)
	}

	for _, itemReq := range req.Items {
		item := models.PurchaseItem{
			PurchaseID: purchase.ID,
			ProductID:  itemReq.ProductID,
			Quantity:   itemReq.Quantity,
			UnitPrice:  itemReq.UnitPrice,
		}
		if _, err := s.purchaseRepo.CreatePurchaseItem(ctx, tx, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPurchaseFailed, err)
		}
		if err := s.productRepo.AdjustStock(ctx, tx, itemReq.ProductID, itemReq.Quantity); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPurchaseFailed, err)
		}
		purchase.Items = append(purchase.Items, item)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: committing transaction: %w", ErrPurchaseFailed, err)
	}
	committed = true

	utils.LogDebug("Purchase recorded", map[string]interface{}{"purchase_id": purchase.ID, "items": len(purchase.Items)})
	return &purchase, nil
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID int64) (*models.Purchase, error) {
	purchase, err := s.purchaseRepo.GetPurchaseByID(ctx, s.db, purchaseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to get purchase by ID: %w", err)
	}

	items, err := s.purchaseRepo.GetPurchaseItemsByPurchaseID(ctx, s.db, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items of purchase %d: %w", purchaseID, err)
	}
	purchase.Items = items
	return purchase, nil
}
