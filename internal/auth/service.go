package auth

import (
	"errors"
	"net/http"

	"github.com/dipesh2508/expense-tracker-backend/internal/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternalError      = errors.New("internal server error")
)

type Service interface {
	Register(name, email, password string) (string, error)
	Login(email, password string) (string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Register creates the account and signs a token for it, so signup logs the
// user straight in.
func (s *service) Register(name, email, password string) (string, error) {
	newUser, err := s.userService.Register(name, email, password)
	if err != nil {
		return "", err
	}

	token, err := s.jwtManager.GenerateAccessJWT(newUser.ID, defaultJWTDuration)
	if err != nil {
		return "", ErrInternalError
	}
	return token, nil
}

// Login returns the same ErrInvalidCredentials whether the email is unknown
// or the password is wrong, so callers cannot enumerate accounts.
func (s *service) Login(email, password string) (string, error) {
	existingUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", ErrInternalError
	}

	if !user.DoPasswordsMatch(existingUser.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessJWT(existingUser.ID, defaultJWTDuration)
	if err != nil {
		return "", ErrInternalError
	}
	return token, nil
}
