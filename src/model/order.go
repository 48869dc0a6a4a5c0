package model

import "github.com/shopspring/decimal"

// TradeOrder is a resolved order ready for submission. The sign of
// Amount encodes the side: positive opens a long, negative a short.
// LimitOffset is the fraction applied to the current market price when
// deriving the resting limit price.
type TradeOrder struct {
	Amount      decimal.Decimal `json:"amount"`
	Leverage    int             `json:"leverage"`
	LimitOffset decimal.Decimal `json:"limit_offset"`
	Description string          `json:"description"`
}

func (o TradeOrder) IsLong() bool {
	return o.Amount.IsPositive()
}
