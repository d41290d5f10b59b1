package models

import "github.com/shopspring/decimal"

// PortfolioRow is one currently held symbol with its live quote.
type PortfolioRow struct {
	Symbol string
	Name   string
	Shares int64
	Price  decimal.Decimal
	Value  decimal.Decimal // Price * Shares
}

// Portfolio is the rendered portfolio view: all held positions plus cash.
type Portfolio struct {
	Rows  []PortfolioRow
	Cash  decimal.Decimal
	Total decimal.Decimal // sum of row values plus cash
}
