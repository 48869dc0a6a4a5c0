package trading

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"signaltrader/src/model"
)

// DecisionOutcome labels what the manager did with a signal.
type DecisionOutcome string

const (
	DecisionNoAction        DecisionOutcome = "no_action"
	DecisionExecuted        DecisionOutcome = "executed"
	DecisionSimulated       DecisionOutcome = "simulated"
	DecisionExecutionFailed DecisionOutcome = "execution_failed"
)

// Decision is the manager's verdict for one analyzed signal.
type Decision struct {
	Outcome DecisionOutcome
	Order   *model.TradeOrder
}

// Notifier delivers a short out-of-band message about an executed trade.
type Notifier interface {
	Send(body string) error
}

// Manager decides whether an analyzed signal becomes an order. With
// production execution disabled it resolves parameters and walks the full
// path but never touches the exchange.
type Manager struct {
	trader        *Trader
	notifier      Notifier
	params        Params
	prodExecution bool
	symbol        string
}

func NewManager(trader *Trader, notifier Notifier, config Config) *Manager {
	if config.ProdExecution {
		logger.Info("[trading] PROD_EXECUTION is ENABLED, orders will be sent to the exchange")
	} else {
		logger.Warn("[trading] PROD_EXECUTION is DISABLED, no real trades will be executed")
	}

	return &Manager{
		trader:        trader,
		notifier:      notifier,
		params:        ParamsFromConfig(config),
		prodExecution: config.ProdExecution,
		symbol:        config.TradeSymbol,
	}
}

func (m *Manager) ExecuteFromSignal(ctx context.Context, signal *model.ActionableSignal, contentID string) Decision {
	order := m.params.Resolve(signal)
	if order == nil {
		logger.WithField("content_id", contentID).Info("[trading] analysis did not meet confidence thresholds, no action")
		return Decision{Outcome: DecisionNoAction}
	}

	logger.WithFields(map[string]interface{}{
		"content_id": contentID,
		"action":     order.Description,
		"symbol":     m.symbol,
		"amount":     order.Amount.String(),
		"leverage":   order.Leverage,
	}).Info("[trading] preparing order")

	smsBody := fmt.Sprintf("signaltrader: %s for %s. Amt: %s, Lev: %d",
		order.Description, m.symbol, order.Amount.String(), order.Leverage)

	decision := Decision{Order: order}
	if m.prodExecution {
		if err := m.trader.ExecuteOrder(ctx, m.symbol, order); err != nil {
			logger.WithField("content_id", contentID).WithError(err).Error("[trading] order execution failed")
			decision.Outcome = DecisionExecutionFailed
		} else {
			decision.Outcome = DecisionExecuted
		}
	} else {
		logger.WithField("content_id", contentID).Info("[trading] simulating order execution")
		decision.Outcome = DecisionSimulated
	}

	m.notify(smsBody, decision.Outcome)
	return decision
}

func (m *Manager) notify(body string, outcome DecisionOutcome) {
	if m.notifier == nil {
		return
	}

	status := "Succeeded"
	if outcome == DecisionExecutionFailed {
		status = "Failed"
	}
	if err := m.notifier.Send(fmt.Sprintf("%s. Status: %s.", body, status)); err != nil {
		logger.WithError(err).Error("[trading] failed to send trade notification")
	}
}
