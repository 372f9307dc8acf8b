package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"king_backend/internal/models"
)

// PurchaseRepository defines the interface for purchase-related database operations.
type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, executor SQLExecutor, purchase *models.Purchase) (int64, error)
	CreatePurchaseItem(ctx context.Context, executor SQLExecutor, item *models.PurchaseItem) (int64, error)
	GetPurchaseByID(ctx context.Context, executor SQLExecutor, purchaseID int64) (*models.Purchase, error)
	GetPurchaseItemsByPurchaseID(ctx context.Context, executor SQLExecutor, purchaseID int64) ([]models.PurchaseItem, error)
}

type purchaseRepository struct{}

// NewPurchaseRepository creates a new instance of PurchaseRepository.
func NewPurchaseRepository() PurchaseRepository {
	return &purchaseRepository{}
}

func (r *purchaseRepository) CreatePurchase(ctx context.Context, executor SQLExecutor, purchase *models.Purchase) (int64, error) {
	query := executor.Rebind(`INSERT INTO compras (data_compra, fornecedor, valor_total, referencia_pedido, pagamento_id)
	          VALUES (?, ?, ?, ?, ?)
	          RETURNING id`)

	err := executor.QueryRowxContext(ctx, query,
		purchase.PurchaseDate, purchase.Supplier, purchase.TotalValue, purchase.OrderReference, purchase.PaymentID,
	).Scan(&purchase.ID)
	if err != nil {
		return 0, wrapStorageErr("creating purchase", err)
	}
	return purchase.ID, nil
}

func (r *purchaseRepository) CreatePurchaseItem(ctx context.Context, executor SQLExecutor, item *models.PurchaseItem) (int64, error) {
	query := executor.Rebind(`INSERT INTO itens_compra (compra_id, produto_id, quantidade, preco_unitario)
	          VALUES (?, ?, ?, ?)
	          RETURNING id`)

	err := executor.QueryRowxContext(ctx, query, item.PurchaseID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&item.ID)
	if err != nil {
		return 0, wrapStorageErr(fmt.Sprintf("creating purchase item (product_id: %d)", item.ProductID), err)
	}
	return item.ID, nil
}

func (r *purchaseRepository) GetPurchaseByID(ctx context.Context, executor SQLExecutor, purchaseID int64) (*models.Purchase, error) {
	purchase := &models.Purchase{}
	query := executor.Rebind(`SELECT id, data_compra, fornecedor, valor_total, referencia_pedido, pagamento_id FROM compras WHERE id = ?`)
	if err := executor.GetContext(ctx, purchase, query, purchaseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapStorageErr(fmt.Sprintf("getting purchase by ID %d", purchaseID), err)
	}
	return purchase, nil
}

func (r *purchaseRepository) GetPurchaseItemsByPurchaseID(ctx context.Context, executor SQLExecutor, purchaseID int64) ([]models.PurchaseItem, error) {
	items := []models.PurchaseItem{}
	query := executor.Rebind(`SELECT id, compra_id, produto_id, quantidade, preco_unitario
	          FROM itens_compra WHERE compra_id = ? ORDER BY id`)
	if err := executor.SelectContext(ctx, &items, query, purchaseID); err != nil {
		return nil, wrapStorageErr(fmt.Sprintf("querying items for purchase ID %d", purchaseID), err)
	}
	return items, nil
}
