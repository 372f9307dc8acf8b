package services

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrSaleNotFound     = errors.New("sale not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
	ErrSaleFailed       = errors.New("failed to record sale")
	ErrPurchaseFailed   = errors.New("failed to record purchase")
)
