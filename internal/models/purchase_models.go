package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a supplier order (compras) plus its line items.
type Purchase struct {
	ID             int64           `json:"id" db:"id"`
	PurchaseDate   time.Time       `json:"dataCompra" db:"data_compra"`
	Supplier       string          `json:"fornecedor" db:"fornecedor"`
	TotalValue     decimal.Decimal `json:"valorTotal" db:"valor_total"`
	OrderReference string          `json:"referenciaPedido" db:"referencia_pedido"`
	PaymentID      string          `json:"pagamentoId" db:"pagamento_id"`
	Items          []PurchaseItem  `json:"itens" db:"-"`
}

// PurchaseItem is a row of itens_compra.
type PurchaseItem struct {
	ID         int64           `json:"id" db:"id"`
	PurchaseID int64           `json:"compraId" db:"compra_id"`
	ProductID  int64           `json:"produtoId" db:"produto_id"`
	Quantity   int             `json:"quantidade" db:"quantidade"`
	UnitPrice  decimal.Decimal `json:"precoUnitario" db:"preco_unitario"`
}
