package schema

import "fmt"

// SchemaError reports a configuration document whose shape matches
// neither the current nor the legacy schema. Key names the offending
// document entry when one can be identified.
type SchemaError struct {
	Key    string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config schema: %s", e.Reason)
	}
	return fmt.Sprintf("config schema: %s: %s", e.Key, e.Reason)
}

func schemaErrf(key, format string, args ...any) error {
	return &SchemaError{Key: key, Reason: fmt.Sprintf(format, args...)}
}

// ValidationError reports a structurally parseable but semantically
// invalid configuration. Only the first violation found is reported.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// ParseError wraps a syntax failure in a configuration document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse config: %v", e.Err)
	}
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
