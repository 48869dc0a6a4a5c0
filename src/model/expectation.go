package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// FEDExpectation is the expected FOMC outcome the FED analyzer compares
// the actual announcement against. It is loaded from a read-only JSON
// file maintained by the operator ahead of each meeting.
type FEDExpectation struct {
	ExpectedRateChangeType   string `json:"expected_interest_rate_change_type"`
	ExpectedRateChangeAmount string `json:"expected_interest_rate_change_amount,omitempty"`
	ExpectedNarrative        string `json:"expected_narrative"`
	Notes                    string `json:"notes,omitempty"`
}

var (
	validRateChangeTypes = map[string]bool{"increase": true, "decrease": true, "hold": true, "uncertain": true}
	validNarratives      = map[string]bool{"hawkish": true, "dovish": true, "neutral": true, "mixed": true}
)

func (e *FEDExpectation) Validate() error {
	if !validRateChangeTypes[e.ExpectedRateChangeType] {
		return fmt.Errorf("invalid expected_interest_rate_change_type: %q", e.ExpectedRateChangeType)
	}
	if !validNarratives[e.ExpectedNarrative] {
		return fmt.Errorf("invalid expected_narrative: %q", e.ExpectedNarrative)
	}
	return nil
}

// LoadFEDExpectation reads and validates the expectations file.
func LoadFEDExpectation(path string) (*FEDExpectation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read expectations file %s: %w", path, err)
	}

	var exp FEDExpectation
	if err := json.Unmarshal(raw, &exp); err != nil {
		return nil, fmt.Errorf("decode expectations file %s: %w", path, err)
	}
	if err := exp.Validate(); err != nil {
		return nil, fmt.Errorf("expectations file %s: %w", path, err)
	}
	return &exp, nil
}
