package app_test

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Akarsh-2004/Bagragi/internal/app"
	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

// ---- fakes ----

type fakeAccounts struct {
	byEmail map[string]domain.Account
}

func (f *fakeAccounts) CreateAccount(ctx context.Context, a domain.Account) error {
	if f.byEmail == nil {
		f.byEmail = map[string]domain.Account{}
	}
	if _, ok := f.byEmail[a.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.byEmail[a.Email] = a
	return nil
}

func (f *fakeAccounts) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return domain.Account{}, domain.ErrNotFound
	}
	return a, nil
}

func (f *fakeAccounts) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Account{}, domain.ErrNotFound
}

func (f *fakeAccounts) DeleteAccount(ctx context.Context, id string) error {
	for email, a := range f.byEmail {
		if a.ID == id {
			delete(f.byEmail, email)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeSigner struct{}

func (fakeSigner) Issue(accountID string, role domain.Role) (string, error) {
	return "tok:" + accountID + ":" + string(role), nil
}

func (fakeSigner) Verify(token string) (domain.Claims, error) {
	return domain.Claims{}, errors.New("not used")
}

// ---- tests ----

func TestRegister_HashesPasswordAndDefaultsPreferences(t *testing.T) {
	repo := &fakeAccounts{}
	svc := app.NewAuthService(repo, fakeSigner{})

	err := svc.Register(context.Background(), app.RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "s3cret",
		Role:     domain.RoleGuest,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	acc := repo.byEmail["asha@example.com"]
	if acc.PasswordHash == "s3cret" || acc.PasswordHash == "" {
		t.Fatalf("password stored in the clear or empty: %q", acc.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if acc.Preferences.PreferredCountries == nil {
		t.Fatal("expected non-nil default preferredCountries")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeAccounts{}
	svc := app.NewAuthService(repo, fakeSigner{})

	in := app.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "x", Role: domain.RoleGuest}
	if err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestLogin_UnknownEmailAndWrongPasswordLookIdentical(t *testing.T) {
	repo := &fakeAccounts{}
	svc := app.NewAuthService(repo, fakeSigner{})

	if err := svc.Register(context.Background(), app.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Password: "right", Role: domain.RoleGuest,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "whatever")
	_, _, errWrong := svc.Login(context.Background(), "asha@example.com", "wrong")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrong, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrong)
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Fatalf("errors distinguishable: %q vs %q", errUnknown, errWrong)
	}
}

func TestLogin_IssuesTokenForAccount(t *testing.T) {
	repo := &fakeAccounts{}
	svc := app.NewAuthService(repo, fakeSigner{})

	if err := svc.Register(context.Background(), app.RegisterInput{
		Name: "Hana", Email: "hana@example.com", Password: "pw", Role: domain.RoleHost,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	tok, acc, err := svc.Login(context.Background(), "hana@example.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tok != "tok:"+acc.ID+":host" {
		t.Fatalf("unexpected token %q for account %q", tok, acc.ID)
	}
	if acc.Role != domain.RoleHost {
		t.Fatalf("unexpected role: %s", acc.Role)
	}
}
