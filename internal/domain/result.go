package domain

// ResultKind tags the outcome of one operation.
type ResultKind int

const (
	// ResultSuccess means the operation happened; Message confirms it.
	ResultSuccess ResultKind = iota
	// ResultFailure means nothing changed; Err names the reason.
	ResultFailure
	// ResultClarification means the assistant needs one more detail
	// before it can act; Message carries the question.
	ResultClarification
)

// String returns a human-readable result kind.
func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	case ResultClarification:
		return "needs_clarification"
	default:
		return "unknown"
	}
}

// Result is what every engine operation hands back to the intent layer.
// Absence of a match, an empty order, a missing size -- all of these are
// ordinary results, not faults; the session always keeps running.
type Result struct {
	Kind    ResultKind
	Message string
	// Err carries the taxonomy sentinel on failures, nil otherwise.
	Err error
}

// Success builds a success result with a confirmation message.
func Success(message string) Result {
	return Result{Kind: ResultSuccess, Message: message}
}

// Failure builds a failure result carrying the reason sentinel.
func Failure(err error, message string) Result {
	return Result{Kind: ResultFailure, Message: message, Err: err}
}

// Clarify builds a clarification result carrying the question to ask.
func Clarify(prompt string) Result {
	return Result{Kind: ResultClarification, Message: prompt}
}
