package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"signaltrader/src/llm"
	"signaltrader/src/model"
	"signaltrader/src/utils"
)

const topicClassificationPrompt = `Classify this social media post from a major political figure into one of the following categories: "market", "bitcoin", "tariffs", or "others".
Definitions:
- market: General financial market news, economic indicators, or company news not specifically related to Bitcoin or tariffs.
- bitcoin: Anything directly mentioning or clearly impacting Bitcoin or cryptocurrencies.
- tariffs: News related to import/export duties, trade agreements, or taxes on goods/services between nations or for specific companies.
- others: All other topics (e.g., private matters, general politics, non-economic announcements).
Respond with a single JSON object: {"classification": "<category>", "confidence": <float 0.0-1.0>, "reasoning": "<brief reasoning>"}`

var directionPrompts = map[string]string{
	model.TopicMarket: `This social media post has been classified as "market" related. Based on its content:
1. Predict whether the general market sentiment or relevant asset prices are more likely to go "up", "down", or remain "neutral".
2. Provide a confidence level (float 0.0-1.0) and a brief reasoning.
Respond with a single JSON object: {"direction": "up"|"down"|"neutral", "confidence": <float>, "reasoning": "<brief reasoning>"}`,

	model.TopicBitcoin: `This social media post has been classified as "bitcoin" related. Based on its content:
1. Predict whether the Bitcoin price is more likely to go "up", "down", or remain "neutral".
2. Provide a confidence level (float 0.0-1.0) and a brief reasoning.
Respond with a single JSON object: {"direction": "up"|"down"|"neutral", "confidence": <float>, "reasoning": "<brief reasoning>"}`,

	model.TopicTariffs: `This social media post has been classified as "tariffs" related. Based on its content:
1. Predict the likely impact direction on affected markets or the general economy. Use "up" if the impact is generally positive/easing (e.g., tariffs lowered), "down" if generally negative/constricting (e.g., tariffs increased or new ones imposed), or "neutral".
   Consider: Higher tariffs/new duties usually mean "down" for overall trade/importer costs. Lowered tariffs/duties usually mean "up".
2. Provide a confidence level (float 0.0-1.0) and a brief reasoning.
Respond with a single JSON object: {"direction": "up"|"down"|"neutral", "confidence": <float>, "reasoning": "<brief reasoning>"}`,
}

type topicOutput struct {
	Classification string  `json:"classification"`
	Confidence     float64 `json:"confidence"`
	Reasoning      string  `json:"reasoning"`
}

type directionOutput struct {
	Direction  string  `json:"direction"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// SocialMediaAnalyzer runs a two stage pipeline over a post: first classify
// the topic, then ask a topic specific prompt for the price direction.
// Posts classified as "others" never reach the second stage.
type SocialMediaAnalyzer struct {
	completer llm.Completer
}

func NewSocialMediaAnalyzer(completer llm.Completer) *SocialMediaAnalyzer {
	logger.Info("[analyzer] social media analyzer initialized")
	return &SocialMediaAnalyzer{completer: completer}
}

func (a *SocialMediaAnalyzer) Analyze(ctx context.Context, content, logID string) model.AnalysisResult {
	text := utils.StripHTML(content)

	logger.WithFields(map[string]interface{}{
		"content_id": logID,
		"preview":    preview(text),
	}).Info("[analyzer] starting social media analysis pipeline")

	raw, err := a.completer.CompleteJSON(ctx, topicClassificationPrompt, text)
	if err != nil {
		logger.WithField("content_id", logID).WithError(err).Error("[analyzer] topic classification failed")
		return model.FailedResult("topic classification failed: %v", err)
	}

	var topic topicOutput
	if err := json.Unmarshal([]byte(raw), &topic); err != nil {
		return model.FailedResult("topic classification output is not valid JSON: %v", err)
	}
	if topic.Confidence < 0 || topic.Confidence > 1 {
		return model.FailedResult("topic classification confidence %v outside [0,1]", topic.Confidence)
	}

	logger.WithFields(map[string]interface{}{
		"content_id":     logID,
		"classification": topic.Classification,
		"confidence":     fmt.Sprintf("%.2f", topic.Confidence),
	}).Info("[analyzer] topic classification result")

	if topic.Classification == "others" {
		return model.IrrelevantResult("topic classified as others, no further analysis")
	}

	prompt, ok := directionPrompts[topic.Classification]
	if !ok {
		logger.WithFields(map[string]interface{}{
			"content_id":     logID,
			"classification": topic.Classification,
		}).Warn("[analyzer] unknown topic classification")
		return model.IrrelevantResult(fmt.Sprintf("unknown topic classification %q", topic.Classification))
	}

	raw, err = a.completer.CompleteJSON(ctx, prompt, text)
	if err != nil {
		logger.WithField("content_id", logID).WithError(err).Error("[analyzer] direction analysis failed")
		return model.FailedResult("%s direction analysis failed: %v", topic.Classification, err)
	}

	var dir directionOutput
	if err := json.Unmarshal([]byte(raw), &dir); err != nil {
		return model.FailedResult("direction output is not valid JSON: %v", err)
	}

	direction := model.ParseDirection(dir.Direction)
	switch direction {
	case model.DirectionUp, model.DirectionDown, model.DirectionNeutral:
	default:
		return model.FailedResult("direction output has invalid direction %q", dir.Direction)
	}
	if dir.Confidence < 0 || dir.Confidence > 1 {
		return model.FailedResult("direction confidence %v outside [0,1]", dir.Confidence)
	}

	logger.WithFields(map[string]interface{}{
		"content_id": logID,
		"topic":      topic.Classification,
		"direction":  string(direction),
		"confidence": fmt.Sprintf("%.2f", dir.Confidence),
	}).Info("[analyzer] direction analysis result")

	return model.SignalResult(&model.ActionableSignal{
		Topic:           topic.Classification,
		Direction:       direction,
		Confidence:      dir.Confidence,
		Reasoning:       dir.Reasoning,
		TopicConfidence: topic.Confidence,
		TopicReasoning:  topic.Reasoning,
	})
}
