package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Summarize prompts the model for a structured summary of text and returns a
// schema-valid Result on every path. The session summary file is overwritten
// before returning, so the file and the returned value never diverge.
func (s *implSummarizer) Summarize(ctx context.Context, text string) *Result {
	res := s.summarize(ctx, text)

	if err := s.sess.WriteSummary(res.Summary); err != nil {
		s.logger.Error(ctx, "Failed to save summary: %v", err)
	} else {
		s.logger.Debug(ctx, "Summary saved to %s (%s)", s.sess.SummaryPath, res.Status)
	}

	return res
}

func (s *implSummarizer) summarize(ctx context.Context, text string) *Result {
	if strings.TrimSpace(text) == "" {
		return &Result{Summary: placeholderSummary(), Status: StatusEmpty}
	}

	s.logger.Debug(ctx, "Sending request to model %s (%d chars of transcript)", s.model, len(text))

	response, err := s.client.Generate(ctx, s.model, buildPrompt(text))
	if err != nil {
		s.logger.Error(ctx, "Error during summarization: %v", err)
		return &Result{Summary: s.transportDegraded(err), Status: StatusTransportDegraded}
	}
	response = strings.TrimSpace(response)

	candidate, err := extractJSON(response)
	if err != nil {
		s.logger.Error(ctx, "No JSON object in response: %v", err)
		return &Result{Summary: parseDegraded(err, response), Status: StatusParseDegraded}
	}

	var probe interface{}
	if err := json.Unmarshal([]byte(candidate), &probe); err != nil {
		s.logger.Error(ctx, "JSON parsing error: %v", err)
		return &Result{Summary: parseDegraded(err, response), Status: StatusParseDegraded}
	}

	summary, err := validateSummary(candidate)
	if err != nil {
		s.logger.Error(ctx, "Schema validation error: %v", err)
		return &Result{Summary: parseDegraded(err, response), Status: StatusValidationDegraded}
	}

	return &Result{Summary: summary, Status: StatusOK}
}

// extractJSON returns the substring between the first '{' and the last '}'.
// Models tend to pad valid JSON with prose on either side.
func extractJSON(response string) (string, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return response[start : end+1], nil
}

// validateSummary decodes candidate against the Summary schema. Unknown
// fields and wrong types are rejected; title and tldr must be non-empty;
// communications is required.
func validateSummary(candidate string) (*Summary, error) {
	var summary Summary
	dec := json.NewDecoder(bytes.NewReader([]byte(candidate)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}

	if strings.TrimSpace(summary.Title) == "" {
		return nil, fmt.Errorf("title is required and must be non-empty")
	}
	if strings.TrimSpace(summary.Tldr) == "" {
		return nil, fmt.Errorf("tldr is required and must be non-empty")
	}
	if summary.Communications == nil {
		return nil, fmt.Errorf("communications is required")
	}

	return &summary, nil
}

func placeholderSummary() *Summary {
	return &Summary{
		Title:          "No content yet",
		Tldr:           "Waiting for content...",
		Communications: []Communication{},
		Details:        strptr("Start speaking to see the summary."),
	}
}

func parseDegraded(cause error, response string) *Summary {
	return &Summary{
		Title:          "Parsing Error",
		Tldr:           "Failed to parse LLM response",
		Communications: []Communication{},
		Details:        strptr(fmt.Sprintf("Error: %v\nRaw response: %s", cause, response)),
	}
}

func (s *implSummarizer) transportDegraded(cause error) *Summary {
	details := fmt.Sprintf(`Please check:
1. The generation endpoint is reachable
2. The server is running (e.g. "ollama serve")
3. Model %s is available (e.g. "ollama list")

Full error: %v`, s.model, cause)

	return &Summary{
		Title: "Error in summarization",
		Tldr:  fmt.Sprintf("Error: %v", cause),
		Communications: []Communication{
			{
				Speaker: strptr("System"),
				Action:  strptr("Error occurred while summarizing"),
			},
		},
		Details: strptr(details),
	}
}
