package gateway

import "fmt"

// ConnectionError means the database could not be reached at startup.
// It is fatal: the caller is expected to print the diagnostic and exit.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("unable to connect to database: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError is the failure of a single statement. It is recovered at the
// operation boundary: the menu action aborts, the session continues.
type QueryError struct {
	Stmt string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
