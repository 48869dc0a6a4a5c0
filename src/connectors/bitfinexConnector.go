// REST API CLIENT FOR BITFINEX DERIVATIVES
// RESTY ONLY, LIMIT ORDERS WITH PER-ORDER LEVERAGE
package connectors

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	logger "github.com/sirupsen/logrus"

	"signaltrader/src/trading"
)

// Derivative status array indices, per the /status/deriv response layout:
// [SYMBOL, MTS, _, LAST_PRICE, ..., MARK_PRICE, ...]
const (
	derivStatusLastPriceIdx = 3
	derivStatusMarkPriceIdx = 15

	// notification array: [MTS, TYPE, MESSAGE_ID, _, ORDERS, CODE, STATUS, TEXT]
	notificationStatusIdx = 6
	notificationTextIdx   = 7
)

// BitfinexClient talks to the Bitfinex v2 REST API. Public market data and
// authenticated order submission use separate hosts, so the client holds
// one resty client per base URL.
type BitfinexClient struct {
	apiKey    string
	apiSecret string
	public    *resty.Client
	auth      *resty.Client
}

func NewBitfinexClient(config Config) (*BitfinexClient, error) {
	if config.APIKey == "" || config.APISecret == "" {
		return nil, fmt.Errorf("bitfinex api key and secret are required")
	}

	return &BitfinexClient{
		apiKey:    config.APIKey,
		apiSecret: config.APISecret,
		public: resty.New().
			SetBaseURL(config.PublicBaseURL).
			SetTimeout(config.Timeout),
		auth: resty.New().
			SetBaseURL(config.AuthBaseURL).
			SetTimeout(config.Timeout),
	}, nil
}

// DerivativeStatus fetches the current prices for a derivative symbol.
// Missing or non-numeric entries come back as nil pointers, the caller
// decides how to fall back.
func (c *BitfinexClient) DerivativeStatus(ctx context.Context, symbol string) (*trading.PriceQuote, error) {
	resp, err := c.public.R().
		SetContext(ctx).
		SetHeader("accept", "application/json").
		SetQueryParam("keys", symbol).
		Get("/v2/status/deriv")
	if err != nil {
		return nil, fmt.Errorf("fetch derivative status: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("derivative status HTTP %d: %s", resp.StatusCode(), resp.String())
	}

	var rows [][]json.RawMessage
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode derivative status: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("derivative status for %s is empty", symbol)
	}

	row := rows[0]
	if len(row) <= derivStatusMarkPriceIdx {
		return nil, fmt.Errorf("derivative status for %s is too short (%d fields)", symbol, len(row))
	}

	quote := &trading.PriceQuote{
		Mark: decodePrice(row[derivStatusMarkPriceIdx]),
		Last: decodePrice(row[derivStatusLastPriceIdx]),
	}
	return quote, nil
}

// SubmitLimitOrder places an authenticated LIMIT order with per-order
// leverage. Amount sign selects the side, positive for long.
func (c *BitfinexClient) SubmitLimitOrder(ctx context.Context, symbol string, amount, price decimal.Decimal, leverage int) error {
	body := map[string]interface{}{
		"type":   "LIMIT",
		"symbol": symbol,
		"amount": amount.String(),
		"price":  price.String(),
		"lev":    leverage,
	}

	logger.WithFields(map[string]interface{}{
		"symbol":   symbol,
		"amount":   amount.String(),
		"price":    price.String(),
		"leverage": leverage,
	}).Info("[connectors] submitting order")

	raw, err := c.doAuthRequest(ctx, "/v2/auth/w/order/submit", body)
	if err != nil {
		return err
	}

	status, text, err := parseNotification(raw)
	if err != nil {
		return fmt.Errorf("parse order notification: %w", err)
	}
	if status != "SUCCESS" {
		return fmt.Errorf("order rejected: %s (%s)", status, text)
	}

	logger.WithField("symbol", symbol).Info("[connectors] order accepted")
	return nil
}

func (c *BitfinexClient) doAuthRequest(ctx context.Context, path string, body interface{}) ([]byte, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	nonce := fmt.Sprintf("%d", time.Now().UnixMilli())
	signature := c.sign("/api" + path + nonce + string(raw))

	resp, err := c.auth.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("bfx-apikey", c.apiKey).
		SetHeader("bfx-nonce", nonce).
		SetHeader("bfx-signature", signature).
		SetBody(raw).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("auth request %s: %w", path, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("auth request %s HTTP %d: %s", path, resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}

func (c *BitfinexClient) sign(payload string) string {
	mac := hmac.New(sha512.New384, []byte(c.apiSecret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

func decodePrice(raw json.RawMessage) *decimal.Decimal {
	var value float64
	if err := json.Unmarshal(raw, &value); err != nil {
		// null or non-numeric field
		return nil
	}
	price := decimal.NewFromFloat(value)
	return &price
}

func parseNotification(raw []byte) (status, text string, err error) {
	var fields []json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", "", err
	}
	if len(fields) <= notificationStatusIdx {
		return "", "", fmt.Errorf("notification too short (%d fields)", len(fields))
	}

	if err := json.Unmarshal(fields[notificationStatusIdx], &status); err != nil {
		return "", "", fmt.Errorf("notification status: %w", err)
	}
	if len(fields) > notificationTextIdx {
		// text is informational, ignore decode failures
		_ = json.Unmarshal(fields[notificationTextIdx], &text)
	}
	return status, text, nil
}
