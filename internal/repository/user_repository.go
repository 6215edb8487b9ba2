package repository

import (
	"context"

	"github.com/MSSkowron/registrar/internal/model"
)

// UserRepository is an interface that defines the methods required for user data management.
type UserRepository interface {
	// AddUser validates the user and stores it as a new record.
	// The returned user carries the identifier assigned by the store.
	AddUser(ctx context.Context, user *model.User) (addedUser *model.User, err error)
}
