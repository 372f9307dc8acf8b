package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"king_backend/internal/intent"
	"king_backend/internal/models"
	"king_backend/internal/repositories"
)

// AssistantReply is the spoken outcome of a product lookup.
type AssistantReply struct {
	Text string
	Code string
}

// AssistantService answers voice-assistant questions about products.
type AssistantService interface {
	// CheckStock renders the stock sentence for a product looked up by name.
	CheckStock(ctx context.Context, name string) (string, error)
	// LookupProduct resolves the free-text field and code slot, then renders
	// the matching template. intent.ErrNotUnderstood is returned unwrapped
	// when no code can be determined.
	LookupProduct(ctx context.Context, field, codeSlot string) (*AssistantReply, error)
}

type assistantService struct {
	productRepo repositories.ProductRepository
	db          *sqlx.DB
}

// NewAssistantService creates a new instance of AssistantService.
func NewAssistantService(repo repositories.ProductRepository, db *sqlx.DB) AssistantService {
	return &assistantService{productRepo: repo, db: db}
}

func (s *assistantService) CheckStock(ctx context.Context, name string) (string, error) {
	product, err := s.productRepo.GetProductByName(ctx, s.db, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Sprintf("Não encontrei o produto %s no estoque.", name), nil
		}
		return "", fmt.Errorf("failed to check stock: %w", err)
	}
	return fmt.Sprintf("Voce tem %d unidades do produto %s.", product.StockQuantity, product.Name), nil
}

func (s *assistantService) LookupProduct(ctx context.Context, field, codeSlot string) (*AssistantReply, error) {
	res, err := intent.Resolve(field, codeSlot)
	if err != nil {
		return nil, err
	}

	var product *models.Product
	if res.Rule != nil {
		product, err = s.productRepo.GetProductByCode(ctx, s.db, res.Code)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up product %s: %w", res.Code, err)
		}
	}

	return &AssistantReply{Text: intent.Render(res, product), Code: res.Code}, nil
}
