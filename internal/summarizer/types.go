package summarizer

// Communication is one structured fact extracted from a transcript segment.
// Every field is optional because a short radio exchange may be too sparse to
// populate them; identities guessed by the model carry an "[Inferred]" prefix
// in Speaker.
type Communication struct {
	Speaker     *string `json:"speaker"`
	Recipient   *string `json:"recipient"`
	Instruction *string `json:"instruction"`
	Location    *string `json:"location"`
	Altitude    *string `json:"altitude"`
	Heading     *string `json:"heading"`
	Action      *string `json:"action"`
}

// Summary is the structured record derived from one cumulative transcript.
// Title and Tldr are non-empty on every path, including degraded ones, so a
// consumer can always render something.
type Summary struct {
	Title          string          `json:"title"`
	Tldr           string          `json:"tldr"`
	Communications []Communication `json:"communications"`
	Details        *string         `json:"details"`
}

// Status tags how a Summary was produced. The persisted schema is identical
// on every path; the tag exists for logging and tests.
type Status int

const (
	// StatusOK: the model returned schema-valid JSON.
	StatusOK Status = iota
	// StatusEmpty: input was empty, the placeholder was returned without a
	// model call.
	StatusEmpty
	// StatusParseDegraded: no JSON object found or the payload was malformed.
	StatusParseDegraded
	// StatusValidationDegraded: well-formed JSON that failed the schema.
	StatusValidationDegraded
	// StatusTransportDegraded: the generation endpoint could not be reached
	// or errored.
	StatusTransportDegraded
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusParseDegraded:
		return "parse-degraded"
	case StatusValidationDegraded:
		return "validation-degraded"
	case StatusTransportDegraded:
		return "transport-degraded"
	default:
		return "unknown"
	}
}

// Result pairs a Summary with its production status. Summarize never fails
// from the caller's perspective; degraded outcomes are still valid summaries.
type Result struct {
	Summary *Summary
	Status  Status
}

func strptr(s string) *string {
	return &s
}
