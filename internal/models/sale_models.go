package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a row of vendas plus its line items.
type Sale struct {
	ID         int64           `json:"id" db:"id"`
	SaleDate   time.Time       `json:"dataVenda" db:"data_venda"`
	ClientID   int64           `json:"clienteId" db:"cliente_id"`
	TotalValue decimal.Decimal `json:"valorTotal" db:"valor_total"`
	Items      []SaleItem      `json:"itens" db:"-"`
}

// SaleItem is a row of itens_venda.
type SaleItem struct {
	ID        int64           `json:"id" db:"id"`
	SaleID    int64           `json:"vendaId" db:"venda_id"`
	ProductID int64           `json:"produtoId" db:"produto_id"`
	Quantity  int             `json:"quantidade" db:"quantidade"`
	UnitPrice decimal.Decimal `json:"precoUnitario" db:"preco_unitario"`
}
