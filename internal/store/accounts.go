package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"aradamart/internal/auth"
	"aradamart/internal/domain"
)

// Accounts is the single identity table. Authentication and user
// administration are views over it, so credentials, profile and role
// cannot drift apart. Emails are stored lower-cased and unique.
type Accounts struct {
	mu       sync.RWMutex
	accounts []domain.Account
	now      func() time.Time
}

func NewAccounts(seed ...domain.Account) *Accounts {
	a := &Accounts{now: time.Now}
	for _, acc := range seed {
		acc.Email = normalizeEmail(acc.Email)
		a.accounts = append(a.accounts, acc)
	}
	return a
}

// SeedAccounts returns the demo admin and user with hashed passwords.
func SeedAccounts() ([]domain.Account, error) {
	type seed struct{ id, email, name, role, password string }
	seeds := []seed{
		{"1", "admin@aradamart.com", "Chala Abebe", domain.RoleAdmin, "admin123"},
		{"2", "user@aradamart.com", "Tizazab Ayana", domain.RoleUser, "user123"},
	}
	now := time.Now().UTC()
	out := make([]domain.Account, 0, len(seeds))
	for _, s := range seeds {
		hash, err := auth.HashPassword(s.password)
		if err != nil {
			return nil, fmt.Errorf("hashing seed password for %s: %w", s.email, err)
		}
		out = append(out, domain.Account{ID: s.id, Email: s.email, Name: s.name, Role: s.role, CreatedAt: now, Hash: hash})
	}
	return out, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Accounts) emailTaken(email, exceptID string) bool {
	for _, a := range s.accounts {
		if a.Email == email && a.ID != exceptID {
			return true
		}
	}
	return false
}

func (s *Accounts) indexOf(id string) int {
	for i, a := range s.accounts {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// Add appends acc, assigning an id and creation time when they are unset.
func (s *Accounts) Add(acc domain.Account) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc.Email = normalizeEmail(acc.Email)
	if s.emailTaken(acc.Email, "") {
		return domain.Account{}, domain.ErrEmailExists
	}
	if acc.ID == "" {
		acc.ID = uuid.NewString()
	}
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = s.now().UTC()
	}
	s.accounts = append(s.accounts, acc)
	return acc, nil
}

// Update replaces the profile fields of id, keeping its credentials.
func (s *Accounts) Update(id, email, name, role string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	email = normalizeEmail(email)
	if s.emailTaken(email, id) {
		return domain.Account{}, domain.ErrEmailExists
	}
	a := &s.accounts[i]
	a.Email, a.Name, a.Role = email, name, role
	return *a, nil
}

// SetHash replaces the password hash of id and returns the updated account.
func (s *Accounts) SetHash(id, hash string) (domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Account{}, domain.ErrRecordNotFound
	}
	s.accounts[i].Hash = hash
	return s.accounts[i], nil
}

// Delete removes id and returns the removed account. An unknown id is a
// no-op that reports false.
func (s *Accounts) Delete(id string) (domain.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Account{}, false
	}
	acc := s.accounts[i]
	s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
	return acc, true
}

func (s *Accounts) Get(id string) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.accounts[i], true
	}
	return domain.Account{}, false
}

// ByEmail looks an account up case-insensitively.
func (s *Accounts) ByEmail(email string) (domain.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = normalizeEmail(email)
	for _, a := range s.accounts {
		if a.Email == email {
			return a, true
		}
	}
	return domain.Account{}, false
}

func (s *Accounts) List() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}
