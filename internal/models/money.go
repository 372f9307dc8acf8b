package models

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, e.g. 150.00 rather than "150".
	decimal.MarshalJSONWithoutQuotes = true
}
