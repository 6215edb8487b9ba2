package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MSSkowron/registrar/internal/database"
	"github.com/MSSkowron/registrar/internal/model"
	"github.com/stretchr/testify/require"
)

// newSQLMockDatabase routes the mock's row queries to a sqlmock-backed *sql.DB.
func newSQLMockDatabase(t *testing.T) (*database.MockDatabase, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := database.NewMockDatabase()
	db.QueryRowContextFn = func(ctx context.Context, query string, args ...any) (*sql.Row, error) {
		return sqlDB.QueryRowContext(ctx, query, args...), nil
	}

	return db, mock
}

func TestPostgresUserRepositoryAddUser(t *testing.T) {
	db, mock := newSQLMockDatabase(t)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", "secret").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	repo := NewPostgresUserRepository(db)
	user, err := repo.AddUser(context.Background(), &model.User{Username: "john", Password: "secret"})
	require.NoError(t, err)

	require.Equal(t, "7", user.ID)
	require.Equal(t, "john", user.Username)
	require.Equal(t, "secret", user.Password)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepositoryAddUserTwice(t *testing.T) {
	db, mock := newSQLMockDatabase(t)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", "secret").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", "secret").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	repo := NewPostgresUserRepository(db)
	first, err := repo.AddUser(context.Background(), &model.User{Username: "john", Password: "secret"})
	require.NoError(t, err)
	second, err := repo.AddUser(context.Background(), &model.User{Username: "john", Password: "secret"})
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepositoryAddUserScanError(t *testing.T) {
	db, mock := newSQLMockDatabase(t)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", "secret").
		WillReturnError(errors.New("relation \"users\" does not exist"))

	repo := NewPostgresUserRepository(db)
	_, err := repo.AddUser(context.Background(), &model.User{Username: "john", Password: "secret"})
	require.EqualError(t, err, `failed to add user: relation "users" does not exist`)
}

func TestPostgresUserRepositoryAddUserQueryError(t *testing.T) {
	db := database.NewMockDatabase()
	db.QueryRowContextFn = func(ctx context.Context, query string, args ...any) (*sql.Row, error) {
		return nil, errors.New("connection refused")
	}

	repo := NewPostgresUserRepository(db)
	_, err := repo.AddUser(context.Background(), &model.User{Username: "john", Password: "secret"})
	require.EqualError(t, err, "failed to add user: connection refused")

	require.Len(t, db.Calls, 1)
	require.Contains(t, db.Calls[0].Query, "INSERT INTO users")
	require.Equal(t, []any{"john", "secret"}, db.Calls[0].Args)
}

func TestPostgresUserRepositoryAddUserUnconfiguredDatabase(t *testing.T) {
	repo := NewPostgresUserRepository(database.NewMockDatabase())

	_, err := repo.AddUser(context.Background(), &model.User{Username: "john", Password: "secret"})
	require.ErrorIs(t, err, database.ErrMockNotConfigured)
}

func TestPostgresUserRepositoryAddUserValidation(t *testing.T) {
	db := database.NewMockDatabase()

	repo := NewPostgresUserRepository(db)
	_, err := repo.AddUser(context.Background(), &model.User{Username: "john"})
	require.ErrorIs(t, err, model.ErrValidation)
	require.Empty(t, db.Calls)
}
