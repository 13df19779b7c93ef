package sqlite

import "fmt"

// Sentinel errors for the error kinds a caller needs to distinguish.
var (
	ErrMissingArgument = fmt.Errorf("missing argument")
	ErrUnknownCommand  = fmt.Errorf("unknown command")
	ErrMalformedPage   = fmt.Errorf("malformed page")
	ErrUnknownTable    = fmt.Errorf("unknown table")
	ErrCorruptSchema   = fmt.Errorf("corrupt schema")
	ErrParse           = fmt.Errorf("parse error")
)

// Error wraps a sentinel with the operation that failed and whatever
// context helps a caller understand it (file path, page number, column
// name, ...). errors.Is/As see through to Err.
type Error struct {
	Operation string
	Err       error
	Context   map[string]interface{}
}

func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("%s: %v (%+v)", e.Operation, e.Err, e.Context)
}

func (e *Error) Unwrap() error { return e.Err }

func wrapErr(operation string, err error, context map[string]interface{}) *Error {
	return &Error{Operation: operation, Err: err, Context: context}
}
