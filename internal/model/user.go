package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MSSkowron/registrar/pkg/validation"
)

// ErrValidation is returned when a user record is missing required fields.
var ErrValidation = errors.New("User validation failed")

// User represents a model for a user.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate reports every required field that is empty.
// Stores call it before writing a record.
func (u *User) Validate() error {
	var msgs []string
	for _, err := range []error{
		validation.Required("username", u.Username),
		validation.Required("password", u.Password),
	} {
		if err != nil {
			msgs = append(msgs, err.Error())
		}
	}

	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, ", "))
	}

	return nil
}
