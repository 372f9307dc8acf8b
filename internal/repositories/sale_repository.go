package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"king_backend/internal/models"
)

// SaleRepository defines the interface for sale-related database operations.
type SaleRepository interface {
	CreateSale(ctx context.Context, executor SQLExecutor, sale *models.Sale) (int64, error)
	CreateSaleItem(ctx context.Context, executor SQLExecutor, item *models.SaleItem) (int64, error)
	GetSaleByID(ctx context.Context, executor SQLExecutor, saleID int64) (*models.Sale, error)
	GetSaleItemsBySaleID(ctx context.Context, executor SQLExecutor, saleID int64) ([]models.SaleItem, error)
}

type saleRepository struct{}

// NewSaleRepository creates a new instance of SaleRepository.
func NewSaleRepository() SaleRepository {
	return &saleRepository{}
}

func (r *saleRepository) CreateSale(ctx context.Context, executor SQLExecutor, sale *models.Sale) (int64, error) {
	query := executor.Rebind(`INSERT INTO vendas (data_venda, cliente_id, valor_total)
	          VALUES (?, ?, ?)
	          RETURNING id`)

	err := executor.QueryRowxContext(ctx, query, sale.SaleDate, sale.ClientID, sale.TotalValue).Scan(&sale.ID)
	if err != nil {
		return 0, wrapStorageErr("creating sale", err)
	}
	return sale.ID, nil
}

func (r *saleRepository) CreateSaleItem(ctx context.Context, executor SQLExecutor, item *models.SaleItem) (int64, error) {
	query := executor.Rebind(`INSERT INTO itens_venda (venda_id, produto_id, quantidade, preco_unitario)
	          VALUES (?, ?, ?, ?)
	          RETURNING id`)

	err := executor.QueryRowxContext(ctx, query, item.SaleID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&item.ID)
	if err != nil {
		return 0, wrapStorageErr(fmt.Sprintf("creating sale item (product_id: %d)", item.ProductID), err)
	}
	return item.ID, nil
}

func (r *saleRepository) GetSaleByID(ctx context.Context, executor SQLExecutor, saleID int64) (*models.Sale, error) {
	sale := &models.Sale{}
	query := executor.Rebind(`SELECT id, data_venda, cliente_id, valor_total FROM vendas WHERE id = ?`)
	if err := executor.GetContext(ctx, sale, query, saleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapStorageErr(fmt.Sprintf("getting sale by ID %d", saleID), err)
	}
	return sale, nil
}

func (r *saleRepository) GetSaleItemsBySaleID(ctx context.Context, executor SQLExecutor, saleID int64) ([]models.SaleItem, error) {
	items := []models.SaleItem{}
	query := executor.Rebind(`SELECT id, venda_id, produto_id, quantidade, preco_unitario
	          FROM itens_venda WHERE venda_id = ? ORDER BY id`)
	if err := executor.SelectContext(ctx, &items, query, saleID); err != nil {
		return nil, wrapStorageErr(fmt.Sprintf("querying items for sale ID %d", saleID), err)
	}
	return items, nil
}
