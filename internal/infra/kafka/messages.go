package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ziuteczek/Turbo-Tester-3000/internal/domain/execution"
)

const (
	messageTypeCase    = "case"
	messageTypeSummary = "summary"
)

type caseEnvelope struct {
	Type           string           `json:"type"`
	RunID          string           `json:"run_id"`
	Index          int              `json:"index"`
	Name           string           `json:"name"`
	Status         execution.Status `json:"status"`
	Success        bool             `json:"success"`
	DurationMs     int64            `json:"duration_ms"`
	ExitCode       int64            `json:"exit_code"`
	Input          string           `json:"input,omitempty"`
	ExpectedOutput string           `json:"expected_output,omitempty"`
	Stdout         string           `json:"stdout,omitempty"`
	Stderr         string           `json:"stderr,omitempty"`
	Error          string           `json:"error,omitempty"`
	Timestamp      time.Time        `json:"timestamp"`
}

type summaryEnvelope struct {
	Type       string    `json:"type"`
	RunID      string    `json:"run_id"`
	Executable string    `json:"executable"`
	Total      int       `json:"total"`
	Success    int       `json:"success"`
	Fail       int       `json:"fail"`
	Timestamp  time.Time `json:"timestamp"`
}

func encodeTestResult(runID string, result execution.TestResult, at time.Time) ([]byte, error) {
	payload, err := json.Marshal(caseEnvelope{
		Type:           messageTypeCase,
		RunID:          runID,
		Index:          result.Case.Index,
		Name:           result.Case.Name,
		Status:         result.Status,
		Success:        result.Success(),
		DurationMs:     result.ElapsedMillis(),
		ExitCode:       result.ExitCode,
		Input:          result.Case.Input,
		ExpectedOutput: result.Expected,
		Stdout:         result.Stdout,
		Stderr:         result.Stderr,
		Error:          result.Error,
		Timestamp:      at.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal case result: %w", err)
	}
	return payload, nil
}

func encodeRunReport(report execution.RunReport, at time.Time) ([]byte, error) {
	payload, err := json.Marshal(summaryEnvelope{
		Type:       messageTypeSummary,
		RunID:      report.RunID,
		Executable: report.Executable,
		Total:      report.Summary.Total,
		Success:    report.Summary.Success,
		Fail:       report.Summary.Fail,
		Timestamp:  at.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal run summary: %w", err)
	}
	return payload, nil
}
