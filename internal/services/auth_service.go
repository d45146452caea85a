package services

import (
	"database/sql"
	"errors"

	"wearline/internal/domain"
	"wearline/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds         = errors.New("wrong username or password")
	ErrUserExists       = errors.New("user already exists")
	ErrPasswordMismatch = errors.New("passwords don't match")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

type AuthService struct {
	Users *repos.UserRepo
}

// SignUp creates a regular (non-admin) account. The store admin is seeded,
// never self-registered.
func (s *AuthService) SignUp(username, password, confirmation string) (*domain.User, error) {
	if _, err := s.Users.ByUsername(username); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if password != confirmation {
		return nil, ErrPasswordMismatch
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, err
	}
	id, err := s.Users.Create(username, string(h), false)
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Username: username, Hash: string(h)}, nil
}

func (s *AuthService) SignIn(sid, username, password string) (*domain.User, error) {
	u, err := s.Users.ByUsername(username)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) SignOut(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}
