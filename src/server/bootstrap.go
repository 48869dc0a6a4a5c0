package server

import (
	"fmt"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"signaltrader/src/analyzer"
	"signaltrader/src/connectors"
	"signaltrader/src/dedup"
	"signaltrader/src/handler"
	"signaltrader/src/llm"
	"signaltrader/src/model"
	"signaltrader/src/notifier"
	"signaltrader/src/security"
	"signaltrader/src/trading"
)

// Bootstrap assembles the whole engine from env config. Missing exchange
// keys or a broken expectations file degrade the service instead of
// killing it: affected channels answer 503 or skip trading, mirroring
// how the rest of the pipeline treats partial failure.
func Bootstrap() (*chi.Mux, error) {
	store, err := dedup.OpenStore(dedup.GetConfig())
	if err != nil {
		return nil, fmt.Errorf("open dedup store: %w", err)
	}

	analyzers := buildAnalyzers()
	manager := buildTradeManager()

	notify := handler.NewNotifyHandler(store, analyzers, manager)
	return NewRouter(notify, security.GetConfig().NotifyTokenHash), nil
}

func buildAnalyzers() map[string]analyzer.Analyzer {
	analyzers := map[string]analyzer.Analyzer{}

	completer, err := llm.NewClient(llm.GetConfig())
	if err != nil {
		logger.WithError(err).Error("Failed to initialize LLM client, all analysis channels disabled")
		return analyzers
	}

	analyzers[model.PayloadTypeSocial] = analyzer.NewSocialMediaAnalyzer(completer)

	config := analyzer.GetConfig()
	expectation, err := model.LoadFEDExpectation(config.ExpectationsFile)
	if err != nil {
		logger.WithError(err).Error("Failed to load FED expectations, web-monitor channel disabled")
		return analyzers
	}
	fed, err := analyzer.NewFEDDecisionAnalyzer(completer, expectation)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize FED analyzer, web-monitor channel disabled")
		return analyzers
	}
	analyzers[model.PayloadTypeWebMonitor] = fed

	return analyzers
}

// buildTradeManager returns a nil interface when the exchange client
// cannot be built, so the handler sees trading as not configured.
func buildTradeManager() handler.TradeManager {
	tradingConfig := trading.GetConfig()

	exchange, err := connectors.NewBitfinexClient(connectors.GetConfig())
	if err != nil {
		logger.WithError(err).Warn("Bitfinex client could not be initialized, trading will be skipped")
		return nil
	}

	sms := notifier.NewSMSNotifier(notifier.GetConfig())

	var smsNotifier trading.Notifier
	if sms != nil {
		smsNotifier = sms
	}

	return trading.NewManager(trading.NewTrader(exchange), smsNotifier, tradingConfig)
}
