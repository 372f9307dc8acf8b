package models

import "github.com/shopspring/decimal"

// Product is a row of the produtos table.
type Product struct {
	ID            int64           `json:"id,omitempty" db:"id"`
	Name          string          `json:"nome" db:"nome"`
	Description   string          `json:"descricao" db:"descricao"`
	SupplierCode  string          `json:"codigoFornecedor" db:"codigo_fornecedor"`
	SalePrice     decimal.Decimal `json:"precoVenda" db:"preco_venda"`
	PurchasePrice decimal.Decimal `json:"precoCompra" db:"preco_compra"`
	StockQuantity int             `json:"quantidadeEstoque" db:"quantidade_estoque"`
}

// ProductView is the projection returned by the product lookup endpoint.
type ProductView struct {
	Name          string          `json:"nome"`
	SupplierCode  string          `json:"codigoFornecedor"`
	SalePrice     decimal.Decimal `json:"precoVenda"`
	PurchasePrice decimal.Decimal `json:"precoCompra"`
	StockQuantity int             `json:"quantidadeEstoque"`
}

// View projects the product for API responses.
func (p *Product) View() ProductView {
	return ProductView{
		Name:          p.Name,
		SupplierCode:  p.SupplierCode,
		SalePrice:     p.SalePrice,
		PurchasePrice: p.PurchasePrice,
		StockQuantity: p.StockQuantity,
	}
}

// StockView answers "how many units of <name> are there".
type StockView struct {
	Name  string `json:"nome"`
	Stock int    `json:"estoque"`
}
