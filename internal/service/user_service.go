package service

import (
	"context"

	"github.com/MSSkowron/registrar/internal/dto"
	"github.com/MSSkowron/registrar/internal/model"
	"github.com/MSSkowron/registrar/internal/repository"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	// RegisterUser stores a new user built from the registration form.
	RegisterUser(context.Context, *dto.UserRegisterDTO) (*dto.UserDTO, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userRepository repository.UserRepository
}

// NewUserService creates a new UserServiceImpl instance with the provided userRepository.
func NewUserService(userRepository repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{
		userRepository: userRepository,
	}
}

// RegisterUser does not hash the password or check for an existing user name;
// every call adds a new record.
func (us *UserServiceImpl) RegisterUser(ctx context.Context, userRegister *dto.UserRegisterDTO) (*dto.UserDTO, error) {
	newUser := &model.User{
		Username: userRegister.Username,
		Password: userRegister.Password,
	}

	user, err := us.userRepository.AddUser(ctx, newUser)
	if err != nil {
		return nil, err
	}

	return &dto.UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}
