package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"king_backend/internal/models"
	"king_backend/internal/repositories"
)

// ProductService covers product registration and point lookups.
type ProductService interface {
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	GetProductByName(ctx context.Context, name string) (*models.ProductView, error)
	GetStockByName(ctx context.Context, name string) (*models.StockView, error)
	GetProductByCode(ctx context.Context, code string) (*models.Product, error)
}

type productService struct {
	productRepo repositories.ProductRepository
	db          *sqlx.DB
}

// NewProductService creates a new instance of ProductService.
func NewProductService(repo repositories.ProductRepository, db *sqlx.DB) ProductService {
	return &productService{productRepo: repo, db: db}
}

// CreateProduct stores the product as given; the caller is trusted.
func (s *productService) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	product.ID = 0
	if _, err := s.productRepo.CreateProduct(ctx, s.db, &product); err != nil {
		return nil, fmt.Errorf("failed to create product in repository: %w", err)
	}
	return &product, nil
}

func (s *productService) GetProductByName(ctx context.Context, name string) (*models.ProductView, error) {
	product, err := s.productRepo.GetProductByName(ctx, s.db, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by name: %w", err)
	}
	view := product.View()
	return &view, nil
}

func (s *productService) GetStockByName(ctx context.Context, name string) (*models.StockView, error) {
	stock, err := s.productRepo.GetStockByName(ctx, s.db, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get stock by name: %w", err)
	}
	return &models.StockView{Name: name, Stock: stock}, nil
}

func (s *productService) GetProductByCode(ctx context.Context, code string) (*models.Product, error) {
	product, err := s.productRepo.GetProductByCode(ctx, s.db, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by code: %w", err)
	}
	return product, nil
}
