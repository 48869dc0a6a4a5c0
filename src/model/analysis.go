package model

import (
	"fmt"
	"strings"
)

// Outcome tags the analysis result union.
type Outcome string

const (
	OutcomeSignal     Outcome = "signal"
	OutcomeIrrelevant Outcome = "irrelevant"
	OutcomeFailed     Outcome = "failed"
)

// Direction is the predicted market move. Social analysis uses up/down,
// the FED analyzer uses positive/negative; both sides of each pair are
// treated the same when resolving a trade.
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPositive Direction = "positive"
	DirectionNegative Direction = "negative"
	DirectionNeutral  Direction = "neutral"
)

func ParseDirection(s string) Direction {
	return Direction(strings.ToLower(strings.TrimSpace(s)))
}

func (d Direction) Bullish() bool {
	return d == DirectionUp || d == DirectionPositive
}

func (d Direction) Bearish() bool {
	return d == DirectionDown || d == DirectionNegative
}

// Topic classifications that can carry a trade.
const (
	TopicBitcoin     = "bitcoin"
	TopicMarket      = "market"
	TopicTariffs     = "tariffs"
	TopicFEDDecision = "fed_decision"
)

// ActionableSignal is the payload of a successful, potentially tradeable
// analysis: a topic, a direction and the model's confidence in it.
type ActionableSignal struct {
	Topic      string    `json:"topic"`
	Direction  Direction `json:"direction"`
	Confidence float64   `json:"confidence"`
	Reasoning  string    `json:"reasoning,omitempty"`

	// Topic-classification stage detail, social analysis only.
	TopicConfidence float64 `json:"topic_confidence,omitempty"`
	TopicReasoning  string  `json:"topic_reasoning,omitempty"`

	// FED decision detail.
	DecisionSummary  string `json:"decision_summary,omitempty"`
	RateChangeType   string `json:"rate_change_type,omitempty"`
	RateChangeAmount string `json:"rate_change_amount,omitempty"`
	Narrative        string `json:"narrative,omitempty"`
	ChairEvent       string `json:"chair_event,omitempty"`
}

// AnalysisResult is an explicit sum type over the three analysis
// outcomes. Exactly one of Signal, Reason and ErrorMessage is
// meaningful, selected by Outcome.
type AnalysisResult struct {
	Outcome      Outcome           `json:"outcome"`
	Signal       *ActionableSignal `json:"signal,omitempty"`
	Reason       string            `json:"reason,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

func SignalResult(s *ActionableSignal) AnalysisResult {
	return AnalysisResult{Outcome: OutcomeSignal, Signal: s}
}

func IrrelevantResult(reason string) AnalysisResult {
	return AnalysisResult{Outcome: OutcomeIrrelevant, Reason: reason}
}

func FailedResult(format string, args ...interface{}) AnalysisResult {
	return AnalysisResult{Outcome: OutcomeFailed, ErrorMessage: fmt.Sprintf(format, args...)}
}
