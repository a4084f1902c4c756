package services

import (
	"database/sql"
	"errors"

	"github.com/MedProgramer24/inventory-project/internal/domain"
	"github.com/MedProgramer24/inventory-project/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCreds covers both unknown accounts and wrong passwords, so the login
// response never reveals which one it was.
var ErrBadCreds = errors.New("invalid email or password")

// AuthService binds sid cookies to accounts. Sessions live in the store, so
// a restart does not log anyone out.
type AuthService struct {
	Users *repos.UserRepo
}

func NewAuthService(users *repos.UserRepo) *AuthService {
	return &AuthService{Users: users}
}

// Login verifies the credentials and binds the session id to the account.
func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBadCreds
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Logout unbinds the session; the row stays behind for audit.
func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

// CurrentUser resolves a session id to its account and refreshes the
// session's last_seen stamp. A dead or unknown session yields a nil user,
// not an error.
func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	u, err := s.Users.SessionUser(sid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	_ = s.Users.TouchSession(sid)
	return u, nil
}
