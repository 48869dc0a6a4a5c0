package trading

import (
	"testing"

	"github.com/shopspring/decimal"

	"signaltrader/src/model"
)

func defaultParams() Params {
	return ParamsFromConfig(defaultConfig())
}

// defaultConfig mirrors the documented env defaults without reading the
// environment.
func defaultConfig() Config {
	return Config{
		TradeSymbol: "tBTCF0:USTF0",

		OrderAmountFEDBuyHighConf:   decimal.RequireFromString("0.002"),
		OrderAmountFEDShortHighConf: decimal.RequireFromString("-0.002"),
		OrderAmountFEDBuyMedConf:    decimal.RequireFromString("0.001"),
		OrderAmountFEDShortMedConf:  decimal.RequireFromString("-0.001"),
		LeverageFEDBuyHighConf:      20,
		LeverageFEDShortHighConf:    20,
		LeverageFEDBuyMedConf:       10,
		LeverageFEDShortMedConf:     10,
		ConfidenceThresholdFEDHigh:  0.96,
		ConfidenceThresholdFEDMed:   0.92,

		TSOrderAmountBuyHighConf:   decimal.RequireFromString("0.001"),
		TSOrderAmountShortHighConf: decimal.RequireFromString("-0.001"),
		TSOrderAmountBuyMedConf:    decimal.RequireFromString("0.0005"),
		TSOrderAmountShortMedConf:  decimal.RequireFromString("-0.0005"),
		TSLeverageBuyHighConf:      10,
		TSLeverageShortHighConf:    10,
		TSLeverageBuyMedConf:       5,
		TSLeverageShortMedConf:     5,
		TSConfidenceThresholdHigh:  0.95,
		TSConfidenceThresholdMed:   0.9,

		TSOrderAmountBitcoinBuyHighConf:   decimal.RequireFromString("0.0015"),
		TSOrderAmountBitcoinShortHighConf: decimal.RequireFromString("-0.0015"),
		TSOrderAmountBitcoinBuyMedConf:    decimal.RequireFromString("0.00075"),
		TSOrderAmountBitcoinShortMedConf:  decimal.RequireFromString("-0.00075"),
		TSLeverageBitcoinBuyHighConf:      15,
		TSLeverageBitcoinShortHighConf:    15,
		TSLeverageBitcoinBuyMedConf:       7,
		TSLeverageBitcoinShortMedConf:     7,
		TSConfidenceThresholdBitcoinHigh:  0.93,
		TSConfidenceThresholdBitcoinMed:   0.88,

		LimitOffsetBuy:   decimal.RequireFromString("0.005"),
		LimitOffsetShort: decimal.RequireFromString("0.005"),
	}
}

func TestResolveFEDSignals(t *testing.T) {
	params := defaultParams()

	tests := []struct {
		name         string
		direction    model.Direction
		confidence   float64
		wantNil      bool
		wantAmount   string
		wantLeverage int
		wantDesc     string
	}{
		{name: "high positive", direction: model.DirectionPositive, confidence: 0.97, wantAmount: "0.002", wantLeverage: 20, wantDesc: "High-Confidence POSITIVE"},
		{name: "exactly at high threshold", direction: model.DirectionPositive, confidence: 0.96, wantAmount: "0.002", wantLeverage: 20, wantDesc: "High-Confidence POSITIVE"},
		{name: "medium positive", direction: model.DirectionPositive, confidence: 0.93, wantAmount: "0.001", wantLeverage: 10, wantDesc: "Medium-Confidence POSITIVE"},
		{name: "exactly at med threshold", direction: model.DirectionPositive, confidence: 0.92, wantAmount: "0.001", wantLeverage: 10, wantDesc: "Medium-Confidence POSITIVE"},
		{name: "high negative", direction: model.DirectionNegative, confidence: 0.99, wantAmount: "-0.002", wantLeverage: 20, wantDesc: "High-Confidence NEGATIVE"},
		{name: "medium negative", direction: model.DirectionNegative, confidence: 0.94, wantAmount: "-0.001", wantLeverage: 10, wantDesc: "Medium-Confidence NEGATIVE"},
		{name: "below threshold", direction: model.DirectionPositive, confidence: 0.91, wantNil: true},
		{name: "neutral never trades", direction: model.DirectionNeutral, confidence: 0.99, wantNil: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := params.Resolve(&model.ActionableSignal{
				Topic:      model.TopicFEDDecision,
				Direction:  test.direction,
				Confidence: test.confidence,
			})
			if test.wantNil {
				if order != nil {
					t.Fatalf("expected no order, got %+v", order)
				}
				return
			}
			if order == nil {
				t.Fatal("expected an order")
			}
			if order.Amount.String() != test.wantAmount {
				t.Fatalf("amount = %s, want %s", order.Amount.String(), test.wantAmount)
			}
			if order.Leverage != test.wantLeverage {
				t.Fatalf("leverage = %d, want %d", order.Leverage, test.wantLeverage)
			}
			if order.Description != test.wantDesc {
				t.Fatalf("description = %q, want %q", order.Description, test.wantDesc)
			}
		})
	}
}

func TestResolveSocialTopicBundles(t *testing.T) {
	params := defaultParams()

	tests := []struct {
		name         string
		topic        string
		direction    model.Direction
		confidence   float64
		wantNil      bool
		wantAmount   string
		wantLeverage int
	}{
		// bitcoin has its own lower thresholds and larger sizes
		{name: "bitcoin high up", topic: model.TopicBitcoin, direction: model.DirectionUp, confidence: 0.93, wantAmount: "0.0015", wantLeverage: 15},
		{name: "bitcoin med down", topic: model.TopicBitcoin, direction: model.DirectionDown, confidence: 0.9, wantAmount: "-0.00075", wantLeverage: 7},
		{name: "bitcoin below med", topic: model.TopicBitcoin, direction: model.DirectionUp, confidence: 0.87, wantNil: true},
		// market and tariffs share the generic bundle
		{name: "market high up", topic: model.TopicMarket, direction: model.DirectionUp, confidence: 0.95, wantAmount: "0.001", wantLeverage: 10},
		{name: "tariffs med down", topic: model.TopicTariffs, direction: model.DirectionDown, confidence: 0.9, wantAmount: "-0.0005", wantLeverage: 5},
		// 0.93 clears bitcoin's high tier but only the generic medium tier
		{name: "generic med at bitcoin high threshold", topic: model.TopicMarket, direction: model.DirectionUp, confidence: 0.93, wantAmount: "0.0005", wantLeverage: 5},
		{name: "unknown topic", topic: "weather", direction: model.DirectionUp, confidence: 0.99, wantNil: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := params.Resolve(&model.ActionableSignal{
				Topic:      test.topic,
				Direction:  test.direction,
				Confidence: test.confidence,
			})
			if test.wantNil {
				if order != nil {
					t.Fatalf("expected no order, got %+v", order)
				}
				return
			}
			if order == nil {
				t.Fatal("expected an order")
			}
			if order.Amount.String() != test.wantAmount {
				t.Fatalf("amount = %s, want %s", order.Amount.String(), test.wantAmount)
			}
			if order.Leverage != test.wantLeverage {
				t.Fatalf("leverage = %d, want %d", order.Leverage, test.wantLeverage)
			}
		})
	}
}

func TestResolveLimitOffsetFollowsSide(t *testing.T) {
	config := defaultConfig()
	config.LimitOffsetBuy = decimal.RequireFromString("0.004")
	config.LimitOffsetShort = decimal.RequireFromString("0.006")
	params := ParamsFromConfig(config)

	long := params.Resolve(&model.ActionableSignal{Topic: model.TopicBitcoin, Direction: model.DirectionUp, Confidence: 0.95})
	if long == nil || long.LimitOffset.String() != "0.004" {
		t.Fatalf("long order should use the buy offset, got %+v", long)
	}

	short := params.Resolve(&model.ActionableSignal{Topic: model.TopicBitcoin, Direction: model.DirectionDown, Confidence: 0.95})
	if short == nil || short.LimitOffset.String() != "0.006" {
		t.Fatalf("short order should use the short offset, got %+v", short)
	}
}

func TestResolveNilSignal(t *testing.T) {
	if order := defaultParams().Resolve(nil); order != nil {
		t.Fatalf("nil signal should resolve to nil, got %+v", order)
	}
}
