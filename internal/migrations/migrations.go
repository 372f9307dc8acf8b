package migrations

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"king_backend/pkg/utils"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS produtos (
		id SERIAL PRIMARY KEY,
		nome VARCHAR(255) NOT NULL,
		descricao TEXT NOT NULL DEFAULT '',
		codigo_fornecedor VARCHAR(100) NOT NULL DEFAULT '',
		preco_venda NUMERIC(12,2) NOT NULL DEFAULT 0,
		preco_compra NUMERIC(12,2) NOT NULL DEFAULT 0,
		quantidade_estoque INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_produtos_nome ON produtos (nome)`,
	`CREATE INDEX IF NOT EXISTS idx_produtos_codigo_fornecedor ON produtos (codigo_fornecedor)`,
	`CREATE TABLE IF NOT EXISTS clientes (
		id SERIAL PRIMARY KEY,
		nome VARCHAR(255) NOT NULL,
		cpf VARCHAR(20) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		telefone VARCHAR(30) NOT NULL DEFAULT '',
		endereco TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS vendas (
		id SERIAL PRIMARY KEY,
		data_venda TIMESTAMP NOT NULL,
		cliente_id INTEGER NOT NULL REFERENCES clientes(id),
		valor_total NUMERIC(12,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS itens_venda (
		id SERIAL PRIMARY KEY,
		venda_id INTEGER NOT NULL REFERENCES vendas(id),
		produto_id INTEGER NOT NULL REFERENCES produtos(id),
		quantidade INTEGER NOT NULL,
		preco_unitario NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS compras (
		id SERIAL PRIMARY KEY,
		data_compra TIMESTAMP NOT NULL,
		fornecedor VARCHAR(255) NOT NULL DEFAULT '',
		valor_total NUMERIC(12,2) NOT NULL DEFAULT 0,
		referencia_pedido VARCHAR(100) NOT NULL DEFAULT '',
		pagamento_id VARCHAR(100) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS itens_compra (
		id SERIAL PRIMARY KEY,
		compra_id INTEGER NOT NULL REFERENCES compras(id),
		produto_id INTEGER NOT NULL REFERENCES produtos(id),
		quantidade INTEGER NOT NULL,
		preco_unitario NUMERIC(12,2) NOT NULL
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS produtos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL,
		descricao TEXT NOT NULL DEFAULT '',
		codigo_fornecedor TEXT NOT NULL DEFAULT '',
		preco_venda NUMERIC(12,2) NOT NULL DEFAULT 0,
		preco_compra NUMERIC(12,2) NOT NULL DEFAULT 0,
		quantidade_estoque INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_produtos_nome ON produtos (nome)`,
	`CREATE INDEX IF NOT EXISTS idx_produtos_codigo_fornecedor ON produtos (codigo_fornecedor)`,
	`CREATE TABLE IF NOT EXISTS clientes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nome TEXT NOT NULL,
		cpf TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		telefone TEXT NOT NULL DEFAULT '',
		endereco TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS vendas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		data_venda TIMESTAMP NOT NULL,
		cliente_id INTEGER NOT NULL REFERENCES clientes(id),
		valor_total NUMERIC(12,2) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS itens_venda (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		venda_id INTEGER NOT NULL REFERENCES vendas(id),
		produto_id INTEGER NOT NULL REFERENCES produtos(id),
		quantidade INTEGER NOT NULL,
		preco_unitario NUMERIC(12,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS compras (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		data_compra TIMESTAMP NOT NULL,
		fornecedor TEXT NOT NULL DEFAULT '',
		valor_total NUMERIC(12,2) NOT NULL DEFAULT 0,
		referencia_pedido TEXT NOT NULL DEFAULT '',
		pagamento_id TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS itens_compra (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		compra_id INTEGER NOT NULL REFERENCES compras(id),
		produto_id INTEGER NOT NULL REFERENCES produtos(id),
		quantidade INTEGER NOT NULL,
		preco_unitario NUMERIC(12,2) NOT NULL
	)`,
}

// Run creates the tables the API needs, using the dialect of the open pool.
func Run(ctx context.Context, db *sqlx.DB) error {
	var schema []string
	switch db.DriverName() {
	case "postgres":
		schema = postgresSchema
	case "sqlite":
		schema = sqliteSchema
	default:
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}

	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d failed: %w", i+1, err)
		}
	}
	utils.LogInfo("Database schema applied", map[string]interface{}{"driver": db.DriverName(), "statements": len(schema)})
	return nil
}
