package generation

import (
	"errors"
	"fmt"

	"github.com/abhisek/quizkid/internal/llm"
)

// FailureKind classifies why a generation attempt failed. All kinds collapse
// to the same recovery action (deterministic fallback); they exist for
// logging and diagnostics only and are never surfaced to the session flow.
type FailureKind string

const (
	// FailureUnavailable means no credential or provider was configured.
	FailureUnavailable FailureKind = "generation_unavailable"

	// FailureTransport means a network error, timeout, or non-2xx reply.
	FailureTransport FailureKind = "generation_transport_error"

	// FailureParse means the reply was not parseable as JSON after
	// fence stripping.
	FailureParse FailureKind = "generation_parse_error"

	// FailureValidation means the reply parsed but failed schema or
	// per-item validation, including the zero-survivors case.
	FailureValidation FailureKind = "generation_validation_error"
)

// Failure wraps an upstream error with its classification.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Kind)
	}
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// classify maps a provider error into the failure taxonomy.
func classify(err error) *Failure {
	var invResp *llm.ErrInvalidResponse
	if errors.As(err, &invResp) {
		return &Failure{Kind: FailureValidation, Err: err}
	}

	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return &Failure{Kind: FailureTransport, Err: err}
	}

	var unavail *llm.ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return &Failure{Kind: FailureTransport, Err: err}
	}

	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return &Failure{Kind: FailureValidation, Err: err}
	}

	return &Failure{Kind: FailureTransport, Err: err}
}
