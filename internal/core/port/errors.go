package port

import "fmt"

// DataSourceError reports a failed read from the store. Msg describes which
// read failed and Err holds the cause.
type DataSourceError struct {
	Msg string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// ValidationError reports a malformed request parameter.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid %s format: %s", e.Field, e.Value)
}
