package app

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

const bcryptCost = 10

type AuthService struct {
	accounts domain.AccountRepository
	signer   domain.TokenSigner
}

func NewAuthService(accounts domain.AccountRepository, signer domain.TokenSigner) *AuthService {
	return &AuthService{accounts: accounts, signer: signer}
}

type RegisterInput struct {
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Password     string              `json:"password"`
	Role         domain.Role         `json:"role"`
	Country      string              `json:"country"`
	City         string              `json:"city"`
	Phone        string              `json:"phone"`
	Bio          string              `json:"bio"`
	ProfileImage string              `json:"profileImage"`
	Preferences  *domain.Preferences `json:"preferences"`
}

// Register stores a new account with a salted one-way password hash.
// The plaintext is never persisted or echoed.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return err
	}

	prefs := domain.Preferences{PreferredCountries: []string{}}
	if in.Preferences != nil {
		prefs = *in.Preferences
		if prefs.PreferredCountries == nil {
			prefs.PreferredCountries = []string{}
		}
	}

	return s.accounts.CreateAccount(ctx, domain.Account{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Country:      in.Country,
		City:         in.City,
		Phone:        in.Phone,
		Bio:          in.Bio,
		ProfileImage: in.ProfileImage,
		Preferences:  prefs,
	})
}

// Login returns a session token and the account's public projection.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.Account, error) {
	acc, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.Account{}, domain.ErrInvalidCredentials
		}
		return "", domain.Account{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return "", domain.Account{}, domain.ErrInvalidCredentials
	}

	tok, err := s.signer.Issue(acc.ID, acc.Role)
	if err != nil {
		return "", domain.Account{}, err
	}
	return tok, acc, nil
}

// DeleteAccount removes the account; owned listings cascade at the store.
func (s *AuthService) DeleteAccount(ctx context.Context, id string) error {
	return s.accounts.DeleteAccount(ctx, id)
}
