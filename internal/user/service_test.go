package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	users []*User
}

func (m *mockRepository) createUser(user *User) error {
	user.ID = "user-1"
	m.users = append(m.users, user)
	return nil
}

func (m *mockRepository) getUserByEmail(email string) (*User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(id string) (*User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func TestRegister_HashesPassword(t *testing.T) {
	service := NewUserService(&mockRepository{})

	newUser, err := service.Register("Test User", "test@test.com", "password123")
	require.NoError(t, err)

	assert.NotEmpty(t, newUser.ID)
	assert.NotEqual(t, "password123", newUser.PasswordHash, "plaintext password must never be stored")
	assert.True(t, DoPasswordsMatch(newUser.PasswordHash, "password123"))
	assert.False(t, DoPasswordsMatch(newUser.PasswordHash, "wrongpassword"))
}

func TestRegister_MissingFields(t *testing.T) {
	service := NewUserService(&mockRepository{})

	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"no name", "", "test@test.com", "password123"},
		{"no email", "Test User", "", "password123"},
		{"no password", "Test User", "test@test.com", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Register(tc.userName, tc.email, tc.password)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestRegister_InvalidEmailFormat(t *testing.T) {
	service := NewUserService(&mockRepository{})

	_, err := service.Register("Test User", "invalid-email", "password123")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &mockRepository{}
	service := NewUserService(repo)

	_, err := service.Register("Test User", "test@test.com", "password123")
	require.NoError(t, err)

	// Same email, different name and password.
	_, err = service.Register("Another User", "test@test.com", "password456")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Len(t, repo.users, 1)
}
