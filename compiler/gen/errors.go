package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adehad/plotlygen/schema"
)

// Sentinel errors for common failure cases.
var (
	// ErrUnknownType indicates a declared value type outside the closed set.
	ErrUnknownType = errors.New("plotlygen: unknown value type")
	// ErrNotCompound indicates emission was requested for a non-compound node.
	ErrNotCompound = errors.New("plotlygen: not a compound node")
	// ErrInvalidSchema indicates a schema tree invariant violation.
	ErrInvalidSchema = errors.New("plotlygen: invalid schema")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("plotlygen: missing configuration")
)

// UnknownTypeError reports a declared type tag outside the closed set.
// The schema is malformed; emission of the node is aborted.
type UnknownTypeError struct {
	Node string // property name, if known
	Type schema.ValType
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("plotlygen: unknown value type %q on property %q", e.Type, e.Node)
	}
	return fmt.Sprintf("plotlygen: unknown value type %q", e.Type)
}

// Is reports whether the target matches the sentinel error for UnknownTypeError.
func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// NewUnknownTypeError creates a new UnknownTypeError.
func NewUnknownTypeError(node string, t schema.ValType) *UnknownTypeError {
	return &UnknownTypeError{Node: node, Type: t}
}

// NotCompoundError reports that Emit was invoked on a non-compound node.
// This is a contract error at the call site, not a recoverable condition.
type NotCompoundError struct {
	Node string
	Kind schema.Kind
}

// Error implements the error interface.
func (e *NotCompoundError) Error() string {
	var b strings.Builder
	b.WriteString("plotlygen: cannot emit")
	if e.Node != "" {
		b.WriteString(" node ")
		b.WriteString(e.Node)
	}
	fmt.Fprintf(&b, ": kind is %s, want compound", e.Kind)
	return b.String()
}

// Is reports whether the target matches the sentinel error for NotCompoundError.
func (e *NotCompoundError) Is(target error) bool {
	return target == ErrNotCompound
}

// NewNotCompoundError creates a new NotCompoundError.
func NewNotCompoundError(node string, kind schema.Kind) *NotCompoundError {
	return &NotCompoundError{Node: node, Kind: kind}
}

// SchemaInvariantError reports a malformed tree detected at the point it
// was dereferenced: duplicate child names, or an array-element node that
// does not reference its compound element type.
type SchemaInvariantError struct {
	Node    string // compound node being emitted
	Child   string // offending child, if applicable
	Message string
}

// Error implements the error interface.
func (e *SchemaInvariantError) Error() string {
	var b strings.Builder
	b.WriteString("plotlygen: schema invariant violated")
	if e.Node != "" {
		b.WriteString(" on node ")
		b.WriteString(e.Node)
	}
	if e.Child != "" {
		b.WriteString(" child ")
		b.WriteString(e.Child)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for SchemaInvariantError.
func (e *SchemaInvariantError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaInvariantError creates a new SchemaInvariantError.
func NewSchemaInvariantError(node, child, message string) *SchemaInvariantError {
	return &SchemaInvariantError{Node: node, Child: child, Message: message}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("plotlygen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("plotlygen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// IsUnknownTypeError reports whether the error is an UnknownTypeError.
func IsUnknownTypeError(err error) bool {
	var typeErr *UnknownTypeError
	return errors.As(err, &typeErr)
}

// IsNotCompoundError reports whether the error is a NotCompoundError.
func IsNotCompoundError(err error) bool {
	var compoundErr *NotCompoundError
	return errors.As(err, &compoundErr)
}

// IsSchemaInvariantError reports whether the error is a SchemaInvariantError.
func IsSchemaInvariantError(err error) bool {
	var schemaErr *SchemaInvariantError
	return errors.As(err, &schemaErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}
