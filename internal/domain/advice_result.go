package domain

// ErrorKind classifies a recoverable per-request pipeline failure.
type ErrorKind string

const (
	ErrorKind_TransportError ErrorKind = "TransportError"
	ErrorKind_EmptyResponse  ErrorKind = "EmptyResponse"
	ErrorKind_ParseError     ErrorKind = "ParseError"
	ErrorKind_SchemaMismatch ErrorKind = "SchemaMismatch"
)

// ErrorPayload is the structured, non-fatal failure result of a request.
// Raw keeps the model output for ParseError and SchemaMismatch.
type ErrorPayload struct {
	Kind    ErrorKind
	Message string
	Raw     string
}

// NewErrorPayload creates an ErrorPayload.
func NewErrorPayload(kind ErrorKind, message, raw string) *ErrorPayload {
	return &ErrorPayload{Kind: kind, Message: message, Raw: raw}
}

// AdviceResult is the outcome of one advice request.
// Exactly one of Advice and Error is set.
type AdviceResult struct {
	RequestID string
	Topic     string
	Sentiment SentimentResult
	Advice    *StructuredAdvice
	Error     *ErrorPayload
}

// Succeeded reports whether the request produced advice.
func (r AdviceResult) Succeeded() bool {
	return r.Advice != nil && r.Error == nil
}

// Outcome returns the error kind, or "VALID" when advice was produced.
func (r AdviceResult) Outcome() string {
	if r.Error != nil {
		return string(r.Error.Kind)
	}
	return "VALID"
}
