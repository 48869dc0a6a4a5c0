package trading

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	logger "github.com/sirupsen/logrus"

	"signaltrader/src/model"
)

// PriceQuote is the relevant slice of a derivative status response. Either
// price can be missing; the trader prefers the mark price and falls back
// to the last traded price.
type PriceQuote struct {
	Mark *decimal.Decimal
	Last *decimal.Decimal
}

// ExchangeClient is the exchange surface the trader needs.
type ExchangeClient interface {
	DerivativeStatus(ctx context.Context, symbol string) (*PriceQuote, error)
	SubmitLimitOrder(ctx context.Context, symbol string, amount, price decimal.Decimal, leverage int) error
}

// Trader turns a resolved trade order into a LIMIT order: it fetches the
// current derivative price, applies the configured offset and submits.
type Trader struct {
	client ExchangeClient
}

func NewTrader(client ExchangeClient) *Trader {
	logger.Info("[trading] trader initialized")
	return &Trader{client: client}
}

func (t *Trader) ExecuteOrder(ctx context.Context, symbol string, order *model.TradeOrder) error {
	logger.WithFields(map[string]interface{}{
		"symbol":   symbol,
		"amount":   order.Amount.String(),
		"leverage": order.Leverage,
		"offset":   order.LimitOffset.String(),
	}).Info("[trading] attempting to execute order")

	quote, err := t.client.DerivativeStatus(ctx, symbol)
	if err != nil {
		return fmt.Errorf("derivative status for %s: %w", symbol, err)
	}

	currentPrice, source, err := pickPrice(quote)
	if err != nil {
		return fmt.Errorf("price for %s: %w", symbol, err)
	}
	logger.WithFields(map[string]interface{}{
		"symbol": symbol,
		"price":  currentPrice.String(),
		"source": source,
	}).Debug("[trading] current price resolved")

	// Long limits sit above the market, short limits below, so the order
	// fills immediately at a bounded worst case price.
	one := decimal.NewFromInt(1)
	var limitPrice decimal.Decimal
	if order.IsLong() {
		limitPrice = currentPrice.Mul(one.Add(order.LimitOffset))
	} else {
		limitPrice = currentPrice.Mul(one.Sub(order.LimitOffset))
	}

	logger.WithFields(map[string]interface{}{
		"symbol":      symbol,
		"limit_price": limitPrice.String(),
		"from_price":  currentPrice.String(),
	}).Info("[trading] calculated limit price")

	if err := t.client.SubmitLimitOrder(ctx, symbol, order.Amount, limitPrice, order.Leverage); err != nil {
		logger.WithField("symbol", symbol).WithError(err).Error("[trading] order submission failed")
		return fmt.Errorf("submit order for %s: %w", symbol, err)
	}

	logger.WithField("symbol", symbol).Info("[trading] order submission successful")
	return nil
}

func pickPrice(quote *PriceQuote) (decimal.Decimal, string, error) {
	if quote == nil {
		return decimal.Zero, "", fmt.Errorf("empty quote")
	}
	if quote.Mark != nil && quote.Mark.IsPositive() {
		return *quote.Mark, "mark", nil
	}
	if quote.Last != nil && quote.Last.IsPositive() {
		return *quote.Last, "last", nil
	}
	return decimal.Zero, "", fmt.Errorf("neither mark nor last price available")
}
