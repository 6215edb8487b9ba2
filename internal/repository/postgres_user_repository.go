package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MSSkowron/registrar/internal/database"
	"github.com/MSSkowron/registrar/internal/model"
)

// PostgresUserRepository implements the UserRepository interface on a PostgreSQL users table.
type PostgresUserRepository struct {
	db database.Database
}

// NewPostgresUserRepository creates a new PostgresUserRepository instance with the provided database.
func NewPostgresUserRepository(db database.Database) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (ur *PostgresUserRepository) AddUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	query := "INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id"

	row, err := ur.db.QueryRowContext(ctx, query, user.Username, user.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	var id int64
	if err = row.Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	return &model.User{
		ID:       strconv.FormatInt(id, 10),
		Username: user.Username,
		Password: user.Password,
	}, nil
}
