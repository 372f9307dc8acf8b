package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"king_backend/internal/models"
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(ctx context.Context, executor SQLExecutor, client *models.Client) (int64, error)
	GetClientByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Client, error)
}

type clientRepository struct{}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository() ClientRepository {
	return &clientRepository{}
}

// CreateClient inserts a new client into the database. Duplicates are allowed.
func (r *clientRepository) CreateClient(ctx context.Context, executor SQLExecutor, client *models.Client) (int64, error) {
	query := executor.Rebind(`INSERT INTO clientes (nome, cpf, email, telefone, endereco)
	          VALUES (?, ?, ?, ?, ?)
	          RETURNING id`)

	err := executor.QueryRowxContext(ctx, query,
		client.Name, client.NationalID, client.Email, client.Phone, client.Address,
	).Scan(&client.ID)
	if err != nil {
		return 0, wrapStorageErr("creating client", err)
	}
	return client.ID, nil
}

// GetClientByID retrieves a client by their ID.
func (r *clientRepository) GetClientByID(ctx context.Context, executor SQLExecutor, id int64) (*models.Client, error) {
	client := &models.Client{}
	query := executor.Rebind(`SELECT id, nome, cpf, email, telefone, endereco FROM clientes WHERE id = ?`)
	if err := executor.GetContext(ctx, client, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, wrapStorageErr(fmt.Sprintf("getting client by ID %d", id), err)
	}
	return client, nil
}
