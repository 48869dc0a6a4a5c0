package model

import (
	"os"
	"path/filepath"
	"testing"
)

func writeExpectationFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "expectations.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write expectations file: %v", err)
	}
	return path
}

func TestLoadFEDExpectation(t *testing.T) {
	path := writeExpectationFile(t, `{
		"expected_interest_rate_change_type": "hold",
		"expected_interest_rate_change_amount": "0.00%",
		"expected_narrative": "neutral",
		"notes": "consensus expects no change"
	}`)

	exp, err := LoadFEDExpectation(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exp.ExpectedRateChangeType != "hold" || exp.ExpectedNarrative != "neutral" {
		t.Fatalf("unexpected expectation %+v", exp)
	}
}

func TestLoadFEDExpectationErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
		},
		{
			name: "invalid json",
			path: func(t *testing.T) string { return writeExpectationFile(t, "{") },
		},
		{
			name: "invalid change type",
			path: func(t *testing.T) string {
				return writeExpectationFile(t, `{"expected_interest_rate_change_type":"skyrocket","expected_narrative":"neutral"}`)
			},
		},
		{
			name: "invalid narrative",
			path: func(t *testing.T) string {
				return writeExpectationFile(t, `{"expected_interest_rate_change_type":"hold","expected_narrative":"spicy"}`)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := LoadFEDExpectation(test.path(t)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
