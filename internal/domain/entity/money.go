package entity

import "github.com/shopspring/decimal"

// Prices, totals and subtotals travel as JSON numbers, both to the backend and
// in persisted client state.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
