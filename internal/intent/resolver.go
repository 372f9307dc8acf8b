// Package intent maps the free-text "informacao" slot of the voice assistant
// to a reply template about one product.
package intent

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNotUnderstood means no product code could be found in the request.
var ErrNotUnderstood = errors.New("could not determine the product code")

// Kind identifies which reply template applies.
type Kind int

const (
	KindStock Kind = iota + 1
	KindPurchasePrice
	KindSalePrice
	KindDescription
	KindProfit
)

func (k Kind) String() string {
	switch k {
	case KindStock:
		return "stock"
	case KindPurchasePrice:
		return "purchase_price"
	case KindSalePrice:
		return "sale_price"
	case KindDescription:
		return "description"
	case KindProfit:
		return "profit"
	default:
		return "unknown"
	}
}

// Rule routes a field to a template when the field contains any keyword.
type Rule struct {
	Kind     Kind
	Keywords []string
}

// Matches reports whether field contains one of the rule's keywords.
func (r Rule) Matches(field string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(field, kw) {
			return true
		}
	}
	return false
}

// Rules is evaluated in order and the first match wins.
var Rules = []Rule{
	{Kind: KindStock, Keywords: []string{"estoque", "quantidade"}},
	{Kind: KindPurchasePrice, Keywords: []string{"compra", "comprei", "paguei", "pago", "custou"}},
	{Kind: KindSalePrice, Keywords: []string{"venda", "vendo", "vendendo", "custa"}},
	{Kind: KindDescription, Keywords: []string{"descri", "nome"}},
	{Kind: KindProfit, Keywords: []string{"lucro", "ganhando"}},
}

var codePattern = regexp.MustCompile(`\d+`)

// Resolution is the outcome of routing one request.
type Resolution struct {
	// Code is the supplier code to look the product up by.
	Code string
	// SpeakName is false when the code came from the explicit slot; the
	// reply then says "este produto" instead of the product description.
	SpeakName bool
	// Rule is nil when the field matched no keyword group.
	Rule *Rule
}

// Classify returns the first rule matching field, or nil.
func Classify(field string) *Rule {
	lowered := strings.ToLower(field)
	for i := range Rules {
		if Rules[i].Matches(lowered) {
			return &Rules[i]
		}
	}
	return nil
}

// Resolve picks the product code and the template for a request.
// Digits spoken inside the field take precedence over the code slot.
func Resolve(field, codeSlot string) (Resolution, error) {
	res := Resolution{SpeakName: true}

	res.Code = codePattern.FindString(field)
	if res.Code == "" {
		res.Code = strings.TrimSpace(codeSlot)
		res.SpeakName = false
	}
	if res.Code == "" {
		return Resolution{}, ErrNotUnderstood
	}

	res.Rule = Classify(field)
	return res, nil
}
