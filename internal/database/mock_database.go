package database

import (
	"context"
	"database/sql"
	"errors"
)

// ErrMockNotConfigured is returned by MockDatabase methods whose Fn hook is not set.
var ErrMockNotConfigured = errors.New("mock database: no hook configured for call")

// MockDatabase is a mock implementation of the Database interface for testing.
// Every call is recorded in Calls before the matching Fn hook runs.
type MockDatabase struct {
	ExecContextFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContextFn func(ctx context.Context, query string, args ...any) (*sql.Row, error)
	QueryContextFn    func(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	CloseFn           func() error

	Calls []MockCall
}

// MockCall is a single recorded query.
type MockCall struct {
	Query string
	Args  []any
}

// NewMockDatabase creates a new instance of MockDatabase.
func NewMockDatabase() *MockDatabase {
	return &MockDatabase{}
}

func (mdb *MockDatabase) record(query string, args []any) {
	mdb.Calls = append(mdb.Calls, MockCall{Query: query, Args: args})
}

func (mdb *MockDatabase) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	mdb.record(query, args)
	if mdb.ExecContextFn != nil {
		return mdb.ExecContextFn(ctx, query, args...)
	}
	return nil, ErrMockNotConfigured
}

func (mdb *MockDatabase) QueryRowContext(ctx context.Context, query string, args ...any) (*sql.Row, error) {
	mdb.record(query, args)
	if mdb.QueryRowContextFn != nil {
		return mdb.QueryRowContextFn(ctx, query, args...)
	}
	return nil, ErrMockNotConfigured
}

func (mdb *MockDatabase) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	mdb.record(query, args)
	if mdb.QueryContextFn != nil {
		return mdb.QueryContextFn(ctx, query, args...)
	}
	return nil, ErrMockNotConfigured
}

func (mdb *MockDatabase) Close() error {
	if mdb.CloseFn != nil {
		return mdb.CloseFn()
	}
	return nil
}
