package trading

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

type Config struct {
	ProdExecution bool   `envconfig:"PROD_EXECUTION" default:"false"`
	TradeSymbol   string `envconfig:"TRADE_SYMBOL" default:"tBTCF0:USTF0"`

	// FED decision order amounts
	OrderAmountFEDBuyHighConf   decimal.Decimal `envconfig:"ORDER_AMOUNT_FED_BUY_HIGH_CONF" default:"0.002"`
	OrderAmountFEDShortHighConf decimal.Decimal `envconfig:"ORDER_AMOUNT_FED_SHORT_HIGH_CONF" default:"-0.002"`
	OrderAmountFEDBuyMedConf    decimal.Decimal `envconfig:"ORDER_AMOUNT_FED_BUY_MED_CONF" default:"0.001"`
	OrderAmountFEDShortMedConf  decimal.Decimal `envconfig:"ORDER_AMOUNT_FED_SHORT_MED_CONF" default:"-0.001"`

	// FED decision leverage settings
	LeverageFEDBuyHighConf   int `envconfig:"LEVERAGE_FED_BUY_HIGH_CONF" default:"20"`
	LeverageFEDShortHighConf int `envconfig:"LEVERAGE_FED_SHORT_HIGH_CONF" default:"20"`
	LeverageFEDBuyMedConf    int `envconfig:"LEVERAGE_FED_BUY_MED_CONF" default:"10"`
	LeverageFEDShortMedConf  int `envconfig:"LEVERAGE_FED_SHORT_MED_CONF" default:"10"`

	// FED decision confidence thresholds
	ConfidenceThresholdFEDHigh float64 `envconfig:"CONFIDENCE_THRESHOLD_FED_HIGH" default:"0.96"`
	ConfidenceThresholdFEDMed  float64 `envconfig:"CONFIDENCE_THRESHOLD_FED_MED" default:"0.92"`

	// Social generic order amounts
	TSOrderAmountBuyHighConf   decimal.Decimal `envconfig:"TS_ORDER_AMOUNT_BUY_HIGH_CONF" default:"0.001"`
	TSOrderAmountShortHighConf decimal.Decimal `envconfig:"TS_ORDER_AMOUNT_SHORT_HIGH_CONF" default:"-0.001"`
	TSOrderAmountBuyMedConf    decimal.Decimal `envconfig:"TS_ORDER_AMOUNT_BUY_MED_CONF" default:"0.0005"`
	TSOrderAmountShortMedConf  decimal.Decimal `envconfig:"TS_ORDER_AMOUNT_SHORT_MED_CONF" default:"-0.0005"`

	// Social generic leverage settings
	TSLeverageBuyHighConf   int `envconfig:"TS_LEVERAGE_BUY_HIGH_CONF" default:"10"`
	TSLeverageShortHighConf int `envconfig:"TS_LEVERAGE_SHORT_HIGH_CONF" default:"10"`
	TSLeverageBuyMedConf    int `envconfig:"TS_LEVERAGE_BUY_MED_CONF" default:"5"`
	TSLeverageShortMedConf  int `envconfig:"TS_LEVERAGE_SHORT_MED_CONF" default:"5"`

	// Social generic confidence thresholds
	TSConfidenceThresholdHigh float64 `envconfig:"TS_CONFIDENCE_THRESHOLD_HIGH" default:"0.95"`
	TSConfidenceThresholdMed  float64 `envconfig:"TS_CONFIDENCE_THRESHOLD_MED" default:"0.9"`

	// Social bitcoin specific order amounts
	TSOrderAmountBitcoinBuyHighConf   decimal.Decimal `envconfig:"TS_ORDER_AMOUNT_BITCOIN_BUY_HIGH_CONF" default:"0.0015"`
	TSOrderAmountBitcoinShortHighConf decimal.Decimal `envconfig:"TS_ORDER_AMOUNT_BITCOIN_SHORT_HIGH_CONF" default:"-0.0015"`
	TSOrderAmountBitcoinBuyMedConf    decimal.Decimal `envconfig:"TS_ORDER_AMOUNT_BITCOIN_BUY_MED_CONF" default:"0.00075"`
	TSOrderAmountBitcoinShortMedConf  decimal.Decimal `envconfig:"TS_ORDER_AMOUNT_BITCOIN_SHORT_MED_CONF" default:"-0.00075"`

	// Social bitcoin specific leverage settings
	TSLeverageBitcoinBuyHighConf   int `envconfig:"TS_LEVERAGE_BITCOIN_BUY_HIGH_CONF" default:"15"`
	TSLeverageBitcoinShortHighConf int `envconfig:"TS_LEVERAGE_BITCOIN_SHORT_HIGH_CONF" default:"15"`
	TSLeverageBitcoinBuyMedConf    int `envconfig:"TS_LEVERAGE_BITCOIN_BUY_MED_CONF" default:"7"`
	TSLeverageBitcoinShortMedConf  int `envconfig:"TS_LEVERAGE_BITCOIN_SHORT_MED_CONF" default:"7"`

	// Social bitcoin specific confidence thresholds
	TSConfidenceThresholdBitcoinHigh float64 `envconfig:"TS_CONFIDENCE_THRESHOLD_BITCOIN_HIGH" default:"0.93"`
	TSConfidenceThresholdBitcoinMed  float64 `envconfig:"TS_CONFIDENCE_THRESHOLD_BITCOIN_MED" default:"0.88"`

	// Limit offsets shared by all trades
	LimitOffsetBuy   decimal.Decimal `envconfig:"LIMIT_OFFSET_BUY" default:"0.005"`
	LimitOffsetShort decimal.Decimal `envconfig:"LIMIT_OFFSET_SHORT" default:"0.005"`
}

func GetConfig() Config {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		panic(fmt.Errorf("error processing env config: %w", err))
	}
	return config
}
