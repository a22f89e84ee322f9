package services

import (
	"context"
	"fmt"
	"strings"

	"aradamart/internal/auth"
	"aradamart/internal/domain"
	"aradamart/internal/store"
)

// UserService is the administration view over the account table.
type UserService struct {
	Users *store.Accounts
	Log   *store.ActivityLog
}

func NewUserService(users *store.Accounts, log *store.ActivityLog) *UserService {
	return &UserService{Users: users, Log: log}
}

func userDetails(a domain.Account) string {
	return fmt.Sprintf("%s (%s) - %s", a.Name, a.Email, strings.ToUpper(a.Role))
}

// Create adds a profile. With an empty password the account exists but
// cannot log in until SetPassword is called.
func (s *UserService) Create(ctx context.Context, email, name, role, password string) (domain.Account, error) {
	acc := domain.Account{Email: email, Name: name, Role: role}
	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return domain.Account{}, err
		}
		acc.Hash = hash
	}
	acc, err := s.Users.Add(acc)
	if err != nil {
		return domain.Account{}, err
	}
	s.Log.Record(ctx, "User Created", domain.ActivityUser, userDetails(acc))
	return acc, nil
}

func (s *UserService) Update(ctx context.Context, id, email, name, role string) (domain.Account, error) {
	acc, err := s.Users.Update(id, email, name, role)
	if err != nil {
		return domain.Account{}, err
	}
	s.Log.Record(ctx, "User Updated", domain.ActivityUser, userDetails(acc))
	return acc, nil
}

func (s *UserService) SetPassword(ctx context.Context, id, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	acc, err := s.Users.SetHash(id, hash)
	if err != nil {
		return err
	}
	s.Log.Record(ctx, "Password Reset", domain.ActivityUser, userDetails(acc))
	return nil
}

// Delete removes id. Only the call that actually removed the account logs it.
func (s *UserService) Delete(ctx context.Context, id string) {
	if acc, ok := s.Users.Delete(id); ok {
		s.Log.Record(ctx, "User Deleted", domain.ActivityUser, userDetails(acc))
	}
}

func (s *UserService) ByEmail(email string) (domain.Account, bool) { return s.Users.ByEmail(email) }

func (s *UserService) Get(id string) (domain.Account, bool) { return s.Users.Get(id) }

func (s *UserService) List() []domain.Account { return s.Users.List() }
