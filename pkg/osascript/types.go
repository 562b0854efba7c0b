// pkg/osascript/types.go

package osascript

// Package osascript drives the Notes application through the osascript
// command-line interpreter. It owns command escaping, subprocess execution
// with enforced timeouts, failure classification, and bounded retry with
// exponential backoff. Callers build a script, hand it over as a Command,
// and always get an Outcome back - this layer never returns a Go error for
// an automation failure.

const (
	// DefaultTimeoutMs is the wall-clock budget for one osascript run.
	DefaultTimeoutMs = 30000

	// DefaultMaxAttempts means no retry unless the caller asks for it.
	DefaultMaxAttempts = 1

	// DefaultRetryBaseDelayMs is the first backoff delay; later attempts
	// double it.
	DefaultRetryBaseDelayMs = 1000
)

// Command is one automation request plus its execution configuration.
// Zero values are filled in with the package defaults before execution.
type Command struct {
	Script           string
	TimeoutMs        int
	MaxAttempts      int
	RetryBaseDelayMs int
}

func (c Command) withDefaults() Command {
	if c.TimeoutMs <= 0 {
		c.TimeoutMs = DefaultTimeoutMs
	}
	if c.MaxAttempts < 1 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.RetryBaseDelayMs <= 0 {
		c.RetryBaseDelayMs = DefaultRetryBaseDelayMs
	}
	return c
}

// Outcome is the result of one Execute or ExecuteWithRetry call. Output is
// the trimmed stdout on success and empty otherwise.
type Outcome struct {
	Success bool
	Output  string
	Err     *ErrorInfo
}

// ErrorKind classifies an automation failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindPermission
	KindNotFound
	KindTimeout
	KindTransientBusy
	KindConnectionLost
	KindAlreadyExists
	KindLocked
	KindSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case KindPermission:
		return "permission"
	case KindNotFound:
		return "not_found"
	case KindTimeout:
		return "timeout"
	case KindTransientBusy:
		return "transient_busy"
	case KindConnectionLost:
		return "connection_lost"
	case KindAlreadyExists:
		return "already_exists"
	case KindLocked:
		return "locked"
	case KindSyntax:
		return "syntax"
	default:
		return "unknown"
	}
}

// ErrorInfo carries a classified failure with a ready-to-display message.
// Entity names the kind of object a not-found failure refers to ("note",
// "folder", "account") and is empty for other kinds.
type ErrorInfo struct {
	Kind      ErrorKind
	Entity    string
	Message   string
	Retryable bool
}

// newErrorInfo derives Retryable from the kind so the two can never
// disagree.
func newErrorInfo(kind ErrorKind, entity, message string) *ErrorInfo {
	return &ErrorInfo{
		Kind:      kind,
		Entity:    entity,
		Message:   message,
		Retryable: kindRetryable(kind),
	}
}

func kindRetryable(kind ErrorKind) bool {
	switch kind {
	case KindTimeout, KindTransientBusy, KindConnectionLost:
		return true
	default:
		return false
	}
}

func failure(info *ErrorInfo) Outcome {
	return Outcome{Success: false, Err: info}
}
