package models

import "github.com/shopspring/decimal"

// Quote is a normalized point-in-time quote from the external provider.
type Quote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}
