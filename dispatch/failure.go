package dispatch

import "fmt"

// FailureKind classifies why a request could not be answered.
type FailureKind int

const (
	// FailureUsage covers unknown operations and missing or illegal arguments.
	FailureUsage FailureKind = iota
	// FailureDataIntegrity means an enumerated key has no backing document.
	FailureDataIntegrity
	// FailureValidator means the validation engine itself failed.
	FailureValidator
)

func (k FailureKind) String() string {
	switch k {
	case FailureUsage:
		return "usage"
	case FailureDataIntegrity:
		return "data_integrity"
	case FailureValidator:
		return "validator"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure is the typed reason a resolution step did not produce an answer.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Err }

func usageFailure(format string, args ...any) *Failure {
	return &Failure{Kind: FailureUsage, Message: fmt.Sprintf(format, args...)}
}
