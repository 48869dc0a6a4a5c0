package trading

import (
	"strings"

	"github.com/shopspring/decimal"

	"signaltrader/src/model"
)

// SideParams holds the order size and leverage for both sides of one
// confidence tier.
type SideParams struct {
	BuyAmount     decimal.Decimal
	ShortAmount   decimal.Decimal
	BuyLeverage   int
	ShortLeverage int
}

// Bundle is the full parameter set for one topic family: two confidence
// thresholds and the side parameters for each tier.
type Bundle struct {
	HighThreshold float64
	MedThreshold  float64
	High          SideParams
	Med           SideParams
}

// Params maps analysis topics to their trade parameter bundles.
type Params struct {
	FED           Bundle
	Social        Bundle
	SocialBitcoin Bundle

	LimitOffsetBuy   decimal.Decimal
	LimitOffsetShort decimal.Decimal
}

func ParamsFromConfig(config Config) Params {
	return Params{
		FED: Bundle{
			HighThreshold: config.ConfidenceThresholdFEDHigh,
			MedThreshold:  config.ConfidenceThresholdFEDMed,
			High: SideParams{
				BuyAmount:     config.OrderAmountFEDBuyHighConf,
				ShortAmount:   config.OrderAmountFEDShortHighConf,
				BuyLeverage:   config.LeverageFEDBuyHighConf,
				ShortLeverage: config.LeverageFEDShortHighConf,
			},
			Med: SideParams{
				BuyAmount:     config.OrderAmountFEDBuyMedConf,
				ShortAmount:   config.OrderAmountFEDShortMedConf,
				BuyLeverage:   config.LeverageFEDBuyMedConf,
				ShortLeverage: config.LeverageFEDShortMedConf,
			},
		},
		Social: Bundle{
			HighThreshold: config.TSConfidenceThresholdHigh,
			MedThreshold:  config.TSConfidenceThresholdMed,
			High: SideParams{
				BuyAmount:     config.TSOrderAmountBuyHighConf,
				ShortAmount:   config.TSOrderAmountShortHighConf,
				BuyLeverage:   config.TSLeverageBuyHighConf,
				ShortLeverage: config.TSLeverageShortHighConf,
			},
			Med: SideParams{
				BuyAmount:     config.TSOrderAmountBuyMedConf,
				ShortAmount:   config.TSOrderAmountShortMedConf,
				BuyLeverage:   config.TSLeverageBuyMedConf,
				ShortLeverage: config.TSLeverageShortMedConf,
			},
		},
		SocialBitcoin: Bundle{
			HighThreshold: config.TSConfidenceThresholdBitcoinHigh,
			MedThreshold:  config.TSConfidenceThresholdBitcoinMed,
			High: SideParams{
				BuyAmount:     config.TSOrderAmountBitcoinBuyHighConf,
				ShortAmount:   config.TSOrderAmountBitcoinShortHighConf,
				BuyLeverage:   config.TSLeverageBitcoinBuyHighConf,
				ShortLeverage: config.TSLeverageBitcoinShortHighConf,
			},
			Med: SideParams{
				BuyAmount:     config.TSOrderAmountBitcoinBuyMedConf,
				ShortAmount:   config.TSOrderAmountBitcoinShortMedConf,
				BuyLeverage:   config.TSLeverageBitcoinBuyMedConf,
				ShortLeverage: config.TSLeverageBitcoinShortMedConf,
			},
		},
		LimitOffsetBuy:   config.LimitOffsetBuy,
		LimitOffsetShort: config.LimitOffsetShort,
	}
}

func (p Params) bundleFor(topic string) *Bundle {
	switch topic {
	case model.TopicFEDDecision:
		return &p.FED
	case model.TopicBitcoin:
		return &p.SocialBitcoin
	case model.TopicMarket, model.TopicTariffs:
		return &p.Social
	default:
		return nil
	}
}

// Resolve maps a signal to concrete trade parameters, or nil when the
// signal does not clear any threshold. The high tier is checked first and
// both thresholds are inclusive, so a confidence exactly at the high
// threshold lands in the high tier.
func (p Params) Resolve(signal *model.ActionableSignal) *model.TradeOrder {
	if signal == nil {
		return nil
	}

	bundle := p.bundleFor(strings.ToLower(signal.Topic))
	if bundle == nil {
		return nil
	}

	var tier *SideParams
	var tierName string
	switch {
	case signal.Confidence >= bundle.HighThreshold:
		tier = &bundle.High
		tierName = "High"
	case signal.Confidence >= bundle.MedThreshold:
		tier = &bundle.Med
		tierName = "Medium"
	default:
		return nil
	}

	order := &model.TradeOrder{
		Description: tierName + "-Confidence " + strings.ToUpper(string(signal.Direction)),
	}

	switch {
	case signal.Direction.Bullish():
		order.Amount = tier.BuyAmount
		order.Leverage = tier.BuyLeverage
	case signal.Direction.Bearish():
		order.Amount = tier.ShortAmount
		order.Leverage = tier.ShortLeverage
	default:
		return nil
	}

	if order.Amount.IsPositive() {
		order.LimitOffset = p.LimitOffsetBuy
	} else {
		order.LimitOffset = p.LimitOffsetShort
	}

	return order
}
