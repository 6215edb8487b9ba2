package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserValidate(t *testing.T) {
	data := []struct {
		name string
		user User
		err  string
	}{
		{"complete", User{Username: "john", Password: "secret"}, ""},
		{"missing username", User{Password: "secret"}, "User validation failed: username: Path `username` is required."},
		{"missing password", User{Username: "john"}, "User validation failed: password: Path `password` is required."},
		{"missing both", User{}, "User validation failed: username: Path `username` is required., password: Path `password` is required."},
	}

	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			err := d.user.Validate()
			if d.err == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
			require.EqualError(t, err, d.err)
		})
	}
}
