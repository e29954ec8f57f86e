package fault

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a failure into a flat, machine-readable category.
// Kinds form an open tag set: the constants below cover the built-in
// categories, and callers may define their own following the
// UPPER_SNAKE_CASE convention. There is no hierarchy between kinds;
// the only special member is KindAny, the wildcard used in handler
// declarations.
type Kind string

const (
	// KindInvalidArgument indicates a caller-supplied value failed validation.
	KindInvalidArgument Kind = "INVALID_ARGUMENT"

	// KindDivisionByZero indicates an arithmetic operation with a zero divisor.
	KindDivisionByZero Kind = "DIVISION_BY_ZERO"

	// KindResourceNotFound indicates a requested resource does not exist.
	KindResourceNotFound Kind = "RESOURCE_NOT_FOUND"

	// KindParseFailure indicates input could not be parsed into the expected form.
	KindParseFailure Kind = "PARSE_FAILURE"

	// KindOutOfRange indicates an index or value outside its valid range.
	KindOutOfRange Kind = "OUT_OF_RANGE"

	// KindUnclassified is the fallback category for failures that carry
	// no more specific kind.
	KindUnclassified Kind = "UNCLASSIFIED"

	// KindAny is the wildcard. It is valid only in handler declarations
	// and never appears on a Fault itself.
	KindAny Kind = "*"
)

// Fault is the concrete error type for the whole project. It pairs a
// Kind with operation context and an optional wrapped cause, and
// integrates with errors.Is/errors.As so faults survive arbitrary
// wrapping on their way up the call stack.
type Fault struct {
	// Kind is the failure category. Never KindAny; Adopt assigns
	// KindUnclassified when nothing more specific is known.
	Kind Kind

	// Op is the operation being performed when the failure occurred.
	// Use short verb phrases like "divide", "validate", "read".
	Op string

	// Message is brief, human-readable context for the failure.
	Message string

	// Err is the underlying cause. Nil for leaf faults.
	Err error

	// Context holds optional structured metadata. Initialized lazily;
	// use WithContext to add fields.
	Context map[string]interface{}
}

// Error implements the error interface.
// Format: [KIND] op: message: cause
func (f *Fault) Error() string {
	var parts []string
	if f.Kind != "" {
		parts = append(parts, "["+string(f.Kind)+"]")
	}
	if f.Op != "" {
		parts = append(parts, f.Op)
	}
	if f.Message != "" {
		parts = append(parts, f.Message)
	}

	result := strings.Join(parts, ": ")
	if f.Err != nil {
		if result != "" {
			result += ": " + f.Err.Error()
		} else {
			result = f.Err.Error()
		}
	}
	return result
}

// Unwrap returns the underlying cause for errors.Is/errors.As traversal.
func (f *Fault) Unwrap() error {
	return f.Err
}

// Is reports kind equality, so errors.Is(err, &Fault{Kind: k}) matches
// any fault of kind k regardless of message or cause.
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok {
		return false
	}
	return f.Kind != "" && f.Kind == t.Kind
}

// WithContext adds a key-value pair to the fault's context.
// Returns the fault for chaining.
func (f *Fault) WithContext(key string, value interface{}) *Fault {
	if f.Context == nil {
		f.Context = make(map[string]interface{})
	}
	f.Context[key] = value
	return f
}

// GetContext retrieves a context value, or nil if the key is absent.
func (f *Fault) GetContext(key string) interface{} {
	if f.Context == nil {
		return nil
	}
	return f.Context[key]
}

// New creates a leaf fault of the given kind.
func New(kind Kind, op, message string) *Fault {
	return &Fault{Kind: kind, Op: op, Message: message}
}

// Errorf creates a leaf fault with a formatted message.
func Errorf(kind Kind, op, format string, args ...interface{}) *Fault {
	return &Fault{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an existing error under the given kind and operation.
// Returns nil if err is nil.
func Wrap(err error, kind Kind, op string) error {
	if err == nil {
		return nil
	}
	return &Fault{Kind: kind, Op: op, Err: err}
}

// Adopt coerces any error into a *Fault. An error that already carries
// a fault anywhere in its chain keeps that fault's classification;
// anything else becomes KindUnclassified with the original error as
// its cause. Adopt(nil) returns nil.
func Adopt(err error) *Fault {
	if err == nil {
		return nil
	}
	var f *Fault
	if errors.As(err, &f) {
		return f
	}
	return &Fault{Kind: KindUnclassified, Err: err}
}

// KindOf extracts the kind from an error, looking through wrapping.
// Returns the empty kind if no fault is present in the chain.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return ""
}

// IsKind reports whether an error carries a fault of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
