package repository

import (
	"context"
	"strconv"
	"sync"

	"github.com/MSSkowron/registrar/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository for testing purposes.
// It validates users the same way the real stores do.
type MockUserRepository struct {
	mu sync.Mutex

	Users          []*model.User // Stored users in insertion order
	LastInsertedID int           // To simulate auto-increment behavior
	Err            error         // When set, AddUser fails with it and stores nothing
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// AddUser is a mock implementation of AddUser method.
func (m *MockUserRepository) AddUser(ctx context.Context, user *model.User) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	m.LastInsertedID++
	stored := &model.User{
		ID:       strconv.Itoa(m.LastInsertedID),
		Username: user.Username,
		Password: user.Password,
	}
	m.Users = append(m.Users, stored)

	return stored, nil
}
