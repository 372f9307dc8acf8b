package services

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"king_backend/internal/models"
	"king_backend/internal/repositories"
)

// ClientService registers clients.
type ClientService interface {
	CreateClient(ctx context.Context, client models.Client) (*models.Client, error)
}

type clientService struct {
	clientRepo repositories.ClientRepository
	db         *sqlx.DB
}

// NewClientService creates a new instance of ClientService.
func NewClientService(repo repositories.ClientRepository, db *sqlx.DB) ClientService {
	return &clientService{clientRepo: repo, db: db}
}

// CreateClient inserts the client without any duplicate check.
func (s *clientService) CreateClient(ctx context.Context, client models.Client) (*models.Client, error) {
	client.ID = 0
	if _, err := s.clientRepo.CreateClient(ctx, s.db, &client); err != nil {
		return nil, fmt.Errorf("failed to create client in repository: %w", err)
	}
	return &client, nil
}
