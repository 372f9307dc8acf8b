package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"king_backend/internal/models"
)

const productColumns = `id, nome, descricao, codigo_fornecedor, preco_venda, preco_compra, quantidade_estoque`

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	CreateProduct(ctx context.Context, executor SQLExecutor, product *models.Product) (int64, error)
	GetProductByName(ctx context.Context, executor SQLExecutor, name string) (*models.Product, error)
	GetProductByCode(ctx context.Context, executor SQLExecutor, code string) (*models.Product, error)
	GetStockByName(ctx context.Context, executor SQLExecutor, name string) (int, error)
	AdjustStock(ctx context.Context, executor SQLExecutor, productID int64, delta int) error
}

type productRepository struct{}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository() ProductRepository {
	return &productRepository{}
}

// CreateProduct inserts a new product and returns its generated id.
func (r *productRepository) CreateProduct(ctx context.Context, executor SQLExecutor, product *models.Product) (int64, error) {
	query := executor.Rebind(`INSERT INTO produtos
	          (nome, descricao, codigo_fornecedor, preco_venda, preco_compra, quantidade_estoque)
	          VALUES (?, ?, ?, ?, ?, ?)
	          RETURNING id`)

	err := executor.QueryRowxContext(ctx, query,
		product.Name, product.Description, product.SupplierCode,
		product.SalePrice, product.PurchasePrice, product.StockQuantity,
	).Scan(&product.ID)
	if err != nil {
		return 0, wrapStorageErr("creating product", err)
	}
	return product.ID, nil
}

// GetProductByName returns the first product with the given name.
func (r *productRepository) GetProductByName(ctx context.Context, executor SQLExecutor, name string) (*models.Product, error) {
	query := executor.Rebind(`SELECT ` + productColumns + ` FROM produtos WHERE nome = ? ORDER BY id LIMIT 1`)
	return r.getOne(ctx, executor, query, name, fmt.Sprintf("getting product by name %q", name))
}

// GetProductByCode returns the first product with the given supplier code.
func (r *productRepository) GetProductByCode(ctx context.Context, executor SQLExecutor, code string) (*models.Product, error) {
	query := executor.Rebind(`SELECT ` + productColumns + ` FROM produtos WHERE codigo_fornecedor = ? ORDER BY id LIMIT 1`)
	return r.getOne(ctx, executor, query, code, fmt.Sprintf("getting product by code %q", code))
}

func (r *productRepository) getOne(ctx context.Context, executor SQLExecutor, query string, arg interface{}, op string) (*models.Product, error) {
	product := &models.Product{}
	if err := executor.GetContext(ctx, product, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapStorageErr(op, err)
	}
	return product, nil
}

// GetStockByName reads only the stock column of the first product with the given name.
func (r *productRepository) GetStockByName(ctx context.Context, executor SQLExecutor, name string) (int, error) {
	var stock int
	query := executor.Rebind(`SELECT quantidade_estoque FROM produtos WHERE nome = ? ORDER BY id LIMIT 1`)
	if err := executor.GetContext(ctx, &stock, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, wrapStorageErr(fmt.Sprintf("getting stock for %q", name), err)
	}
	return stock, nil
}

// AdjustStock adds delta (negative for sales) to the product's stock.
// There is no lower bound: stock may go negative.
func (r *productRepository) AdjustStock(ctx context.Context, executor SQLExecutor, productID int64, delta int) error {
	query := executor.Rebind(`UPDATE produtos SET quantidade_estoque = quantidade_estoque + ? WHERE id = ?`)
	result, err := executor.ExecContext(ctx, query, delta, productID)
	if err != nil {
		return wrapStorageErr(fmt.Sprintf("adjusting stock of product ID %d", productID), err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapStorageErr(fmt.Sprintf("getting rows affected for product ID %d", productID), err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: product ID %d", ErrNotFound, productID)
	}
	return nil
}
