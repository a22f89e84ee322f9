package services

import (
	"errors"
	"strings"
	"sync"

	"aradamart/internal/auth"
	"aradamart/internal/domain"
	"aradamart/internal/store"
)

const (
	MsgBadCreds    = "Invalid email or password"
	MsgEmailExists = "Email already exists"
)

// AuthService is the authentication view over the account table. It keeps a
// single current session and the last error message.
type AuthService struct {
	Users *store.Accounts

	mu      sync.RWMutex
	current *domain.Account
	errMsg  string
}

func NewAuthService(users *store.Accounts) *AuthService {
	return &AuthService{Users: users}
}

// Login matches email case-insensitively and the password exactly. On
// success the account becomes the current session and the error clears.
// The returned account is the one this call matched, whatever the session
// holds by the time the caller reads it.
func (s *AuthService) Login(email, password string) (domain.Account, bool) {
	u, ok := s.Users.ByEmail(email)
	if !ok || !auth.CheckPassword(u.Hash, password) {
		s.setErr(MsgBadCreds)
		return domain.Account{}, false
	}
	s.signIn(u)
	return u, true
}

// Register creates a user-role account and signs it in. A taken email fails
// without touching the current session.
func (s *AuthService) Register(name, email, password string) (domain.Account, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "User"
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		s.setErr(err.Error())
		return domain.Account{}, false
	}
	u, err := s.Users.Add(domain.Account{Email: email, Name: name, Role: domain.RoleUser, Hash: hash})
	if err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			s.setErr(MsgEmailExists)
		} else {
			s.setErr(err.Error())
		}
		return domain.Account{}, false
	}
	s.signIn(u)
	return u, true
}

func (s *AuthService) signIn(u domain.Account) {
	s.mu.Lock()
	s.current = &u
	s.errMsg = ""
	s.mu.Unlock()
}

// Logout ends the session. The last error is left as is.
func (s *AuthService) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current returns the signed-in account as it was at login.
func (s *AuthService) Current() (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return domain.Account{}, false
	}
	return *s.current, true
}

func (s *AuthService) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *AuthService) ClearError() { s.setErr("") }

func (s *AuthService) setErr(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}
