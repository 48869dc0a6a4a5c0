package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"signaltrader/src/llm"
	"signaltrader/src/model"
)

const fedSystemPromptTemplate = `Analyze the provided text regarding the Federal Reserve's latest interest rate decision and accompanying statement from the Federal Open Market Committee (FOMC).
1. Identify the Actual Decision: Extract the actual interest rate change (e.g., "hold", "increase", "decrease" by "X%%"), and determine the overall narrative tone (e.g., "hawkish", "dovish", "neutral", "mixed"). Summarize this as "decision_summary".
2. Compare with Expectations: Compare the actual decision and narrative with the following provided expectations:
%s
3. Predict Bitcoin Impact: Based on this comparison, predict the likely impact on Bitcoin's price:
- "positive": The actual decision is more dovish/less hawkish than expected, or a surprise easing/more accommodative stance.
- "negative": The actual decision is more hawkish/less dovish than expected, or a surprise tightening/more restrictive stance.
- "neutral": The actual decision is broadly in line with expectations or has no clear dominant sentiment for Bitcoin.
4. Handle Irrelevant Content: If the text is clearly NOT about a Federal Reserve interest rate decision (e.g., it is about a different topic like a census, or a report on banking supervision), respond with {"outcome": "irrelevant", "reason": "<brief explanation>"} instead.
5. Detect FED Chair Changes: If the text mentions that the Federal Reserve Chair has been fired, resigned, or replaced, set "chair_event" to a short description of that change.
Respond with a single JSON object:
{"outcome": "impact", "impact_on_bitcoin": "positive"|"negative"|"neutral", "confidence": <float 0.0-1.0>, "reasoning": "<brief reasoning>", "decision_summary": "<summary>", "rate_change_type": "increase"|"decrease"|"hold"|null, "rate_change_amount": "<e.g. 0.25%%>"|null, "narrative": "hawkish"|"dovish"|"neutral"|"mixed"|null, "chair_event": "<description>"|null}`

type fedModelOutput struct {
	Outcome          string  `json:"outcome"`
	ImpactOnBitcoin  string  `json:"impact_on_bitcoin"`
	Confidence       float64 `json:"confidence"`
	Reasoning        string  `json:"reasoning"`
	DecisionSummary  string  `json:"decision_summary"`
	RateChangeType   string  `json:"rate_change_type"`
	RateChangeAmount string  `json:"rate_change_amount"`
	Narrative        string  `json:"narrative"`
	ChairEvent       string  `json:"chair_event"`
	Reason           string  `json:"reason"`
}

// FEDDecisionAnalyzer compares an FOMC announcement against the loaded
// expectation and predicts the impact on the Bitcoin price.
type FEDDecisionAnalyzer struct {
	completer    llm.Completer
	systemPrompt string
}

func NewFEDDecisionAnalyzer(completer llm.Completer, expectation *model.FEDExpectation) (*FEDDecisionAnalyzer, error) {
	if expectation == nil {
		return nil, fmt.Errorf("fed expectation is required")
	}

	encoded, err := json.MarshalIndent(expectation, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode fed expectation: %w", err)
	}

	logger.WithFields(map[string]interface{}{
		"rate_change_type": expectation.ExpectedRateChangeType,
		"narrative":        expectation.ExpectedNarrative,
	}).Info("[analyzer] FED decision analyzer initialized")

	return &FEDDecisionAnalyzer{
		completer:    completer,
		systemPrompt: fmt.Sprintf(fedSystemPromptTemplate, string(encoded)),
	}, nil
}

func (a *FEDDecisionAnalyzer) Analyze(ctx context.Context, content, logID string) model.AnalysisResult {
	logger.WithFields(map[string]interface{}{
		"content_id": logID,
		"preview":    preview(content),
	}).Info("[analyzer] starting FED decision analysis")

	raw, err := a.completer.CompleteJSON(ctx, a.systemPrompt, content)
	if err != nil {
		logger.WithField("content_id", logID).WithError(err).Error("[analyzer] FED completion failed")
		return model.FailedResult("fed completion failed: %v", err)
	}

	var output fedModelOutput
	if err := json.Unmarshal([]byte(raw), &output); err != nil {
		logger.WithField("content_id", logID).WithError(err).Error("[analyzer] FED output is not valid JSON")
		return model.FailedResult("fed output is not valid JSON: %v", err)
	}

	if output.Outcome == "irrelevant" {
		logger.WithFields(map[string]interface{}{
			"content_id": logID,
			"reason":     output.Reason,
		}).Info("[analyzer] content analyzed as irrelevant")
		return model.IrrelevantResult(output.Reason)
	}

	direction := model.ParseDirection(output.ImpactOnBitcoin)
	switch direction {
	case model.DirectionPositive, model.DirectionNegative, model.DirectionNeutral:
	default:
		return model.FailedResult("fed output has invalid impact %q", output.ImpactOnBitcoin)
	}
	if output.Confidence < 0 || output.Confidence > 1 {
		return model.FailedResult("fed output has confidence %v outside [0,1]", output.Confidence)
	}

	signal := &model.ActionableSignal{
		Topic:            model.TopicFEDDecision,
		Direction:        direction,
		Confidence:       output.Confidence,
		Reasoning:        output.Reasoning,
		DecisionSummary:  output.DecisionSummary,
		RateChangeType:   output.RateChangeType,
		RateChangeAmount: output.RateChangeAmount,
		Narrative:        output.Narrative,
		ChairEvent:       output.ChairEvent,
	}

	logger.WithFields(map[string]interface{}{
		"content_id": logID,
		"impact":     string(direction),
		"confidence": fmt.Sprintf("%.2f", output.Confidence),
		"summary":    output.DecisionSummary,
	}).Info("[analyzer] FED analysis result")

	if output.ChairEvent != "" {
		logger.WithFields(map[string]interface{}{
			"content_id":  logID,
			"chair_event": output.ChairEvent,
		}).Info("[analyzer] detected FED chair event")
	}

	return model.SignalResult(signal)
}

func preview(content string) string {
	const max = 100
	if len(content) <= max {
		return content
	}
	return content[:max] + "..."
}
