package analyzer

import (
	"context"

	"signaltrader/src/model"
)

// Analyzer turns raw notification content into an analysis result. The
// result carries its own failure state so callers never branch on an error
// value, every outcome flows through model.AnalysisResult.
type Analyzer interface {
	Analyze(ctx context.Context, content, logID string) model.AnalysisResult
}
