package intent

import (
	"fmt"

	"github.com/shopspring/decimal"

	"king_backend/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Profit returns sale-purchase and the margin over the purchase price in
// percent, rounded to two places. ok is false when the purchase price is
// zero and no percentage can be computed.
func Profit(salePrice, purchasePrice decimal.Decimal) (amount, percent decimal.Decimal, ok bool) {
	amount = salePrice.Sub(purchasePrice)
	if purchasePrice.IsZero() {
		return amount, decimal.Zero, false
	}
	percent = amount.Div(purchasePrice).Mul(hundred).Round(2)
	return amount, percent, true
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Render produces the spoken text for a resolution. product is nil when the
// code matched nothing. An unmatched field renders as "".
func Render(res Resolution, product *models.Product) string {
	if res.Rule == nil {
		return ""
	}

	if product == nil {
		if res.Rule.Kind == KindStock {
			return fmt.Sprintf("Nao encontrei o produto %s no estoque.", res.Code)
		}
		return fmt.Sprintf("Nao encontrei o produto %s no cadastro.", res.Code)
	}

	subject := "este produto"
	if res.SpeakName {
		subject = "o produto " + product.Description
	}

	switch res.Rule.Kind {
	case KindStock:
		return fmt.Sprintf("Voce tem %d unidades d%s.", product.StockQuantity, subject)
	case KindPurchasePrice:
		return fmt.Sprintf("Voce comprou %s por %s.", subject, money(product.PurchasePrice))
	case KindSalePrice:
		return fmt.Sprintf("O valor de venda d%s e de %s.", subject, money(product.SalePrice))
	case KindDescription:
		if res.SpeakName {
			return fmt.Sprintf("A descricao do produto %s e %s.", product.SupplierCode, product.Description)
		}
		return fmt.Sprintf("A descricao deste produto e %s.", product.Description)
	case KindProfit:
		amount, percent, ok := Profit(product.SalePrice, product.PurchasePrice)
		if !ok {
			return fmt.Sprintf("Voce ganha %s em cada unidade d%s.", money(amount), subject)
		}
		return fmt.Sprintf("Voce ganha %s em cada unidade d%s, um lucro de %s por cento.",
			money(amount), subject, money(percent))
	}
	return ""
}
