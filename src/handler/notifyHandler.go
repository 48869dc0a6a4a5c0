package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"signaltrader/src/analyzer"
	"signaltrader/src/dedup"
	"signaltrader/src/model"
	"signaltrader/src/trading"
)

// TradeManager is what the handler needs from the trading side. A nil
// manager means trading is not configured; notifications are still
// analyzed and deduplicated.
type TradeManager interface {
	ExecuteFromSignal(ctx context.Context, signal *model.ActionableSignal, contentID string) trading.Decision
}

// statusResponse is the body of every notification response.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const (
	StatusTradeExecuted  = "success_trade_executed"
	StatusTradeSimulated = "success_trade_simulated"
	StatusTradeFailed    = "success_trade_failed"
	StatusNoAction       = "success_no_action"
	StatusAnalysisFailed = "success_analysis_failed"
	StatusTradeSkipped   = "success_trade_skipped"
)

// NotifyHandler processes incoming notifications: dedup, analysis, then
// hand-off to the trade manager.
type NotifyHandler struct {
	store     dedup.Store
	analyzers map[string]analyzer.Analyzer
	manager   TradeManager
}

func NewNotifyHandler(store dedup.Store, analyzers map[string]analyzer.Analyzer, manager TradeManager) *NotifyHandler {
	return &NotifyHandler{
		store:     store,
		analyzers: analyzers,
		manager:   manager,
	}
}

// Liveness is the root health endpoint.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "signaltrader trade decision engine is running!",
		})
	}
}

// Channel returns the handler for one notification channel. payloadType
// is the normalized type the channel accepts, the handler rejects
// payloads whose declared type does not fold into it.
func (h *NotifyHandler) Channel(payloadType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload model.NotificationPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.WithError(err).Warn("[handler] malformed notification payload")
			http.Error(w, "malformed payload", http.StatusBadRequest)
			return
		}
		payload.EnsureUUID()

		logger.WithFields(map[string]interface{}{
			"uuid":    payload.UUID,
			"type":    payload.Type,
			"channel": payloadType,
		}).Info("[handler] received notification")

		if err := payload.Validate(); err != nil {
			logger.WithField("uuid", payload.UUID).WithError(err).Warn("[handler] invalid payload")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if got := payload.NormalizedType(); got != payloadType {
			logger.WithFields(map[string]interface{}{
				"uuid":     payload.UUID,
				"type":     payload.Type,
				"expected": payloadType,
			}).Warn("[handler] payload type does not match channel")
			http.Error(w, fmt.Sprintf("payload type %q not accepted on this channel", payload.Type), http.StatusBadRequest)
			return
		}

		dedupKey, err := payload.DedupKey()
		if err != nil {
			logger.WithField("uuid", payload.UUID).WithError(err).Warn("[handler] cannot derive dedup key")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Resolve the analyzer before admitting the key. A notification
		// rejected for a missing analyzer must stay replayable.
		channelAnalyzer := h.analyzers[payloadType]
		if channelAnalyzer == nil {
			logger.WithField("uuid", payload.UUID).Error("[handler] analyzer not available for channel")
			http.Error(w, "analyzer is not available, cannot process notification", http.StatusServiceUnavailable)
			return
		}

		if err := h.store.Admit(r.Context(), dedupKey, payloadType); err != nil {
			if errors.Is(err, dedup.ErrAlreadySeen) {
				logger.WithFields(map[string]interface{}{
					"uuid": payload.UUID,
					"key":  dedupKey,
				}).Info("[handler] duplicate notification, skipping")
				http.Error(w, "notification already processed", http.StatusConflict)
				return
			}
			logger.WithField("uuid", payload.UUID).WithError(err).Error("[handler] dedup store failure")
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		logID := payload.LogID()
		result := channelAnalyzer.Analyze(r.Context(), payload.Content, logID)

		switch result.Outcome {
		case model.OutcomeFailed:
			logger.WithFields(map[string]interface{}{
				"uuid":  payload.UUID,
				"error": result.ErrorMessage,
			}).Error("[handler] analysis failed")
			writeJSON(w, http.StatusOK, statusResponse{
				Status:  StatusAnalysisFailed,
				Message: "analysis failed: " + result.ErrorMessage,
			})
			return

		case model.OutcomeIrrelevant:
			writeJSON(w, http.StatusOK, statusResponse{
				Status:  StatusNoAction,
				Message: "content not actionable: " + result.Reason,
			})
			return
		}

		if h.manager == nil {
			logger.WithField("uuid", payload.UUID).Warn("[handler] trade manager not available, skipping trade")
			writeJSON(w, http.StatusOK, statusResponse{
				Status:  StatusTradeSkipped,
				Message: "notification analyzed, trading is not configured",
			})
			return
		}

		decision := h.manager.ExecuteFromSignal(r.Context(), result.Signal, logID)
		writeJSON(w, http.StatusOK, decisionResponse(decision))
	}
}

func decisionResponse(decision trading.Decision) statusResponse {
	switch decision.Outcome {
	case trading.DecisionExecuted:
		return statusResponse{Status: StatusTradeExecuted, Message: "trade executed: " + decision.Order.Description}
	case trading.DecisionSimulated:
		return statusResponse{Status: StatusTradeSimulated, Message: "trade simulated: " + decision.Order.Description}
	case trading.DecisionExecutionFailed:
		return statusResponse{Status: StatusTradeFailed, Message: "trade execution failed: " + decision.Order.Description}
	default:
		return statusResponse{Status: StatusNoAction, Message: "signal did not meet confidence thresholds"}
	}
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("[handler] failed to encode response")
	}
}
