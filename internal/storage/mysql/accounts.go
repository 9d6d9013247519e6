package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	mysqldrv "github.com/go-sql-driver/mysql"

	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

const dupEntryErrNo = 1062

func (r *Repo) CreateAccount(ctx context.Context, a domain.Account) error {
	countries, _ := json.Marshal(a.Preferences.PreferredCountries)
	_, err := r.db.ExecContext(ctx, insertAccountSQL,
		a.ID,
		a.Name,
		a.Email,
		a.PasswordHash,
		string(a.Role),
		a.Country,
		nullStr(a.City),
		nullStr(a.Phone),
		nullStr(a.Bio),
		nullStr(a.ProfileImage),
		nullStr(a.Preferences.TravelStyle),
		nullStr(a.Preferences.Budget),
		string(countries),
	)
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) && me.Number == dupEntryErrNo {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *Repo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.scanAccount(r.db.QueryRowContext(ctx, getAccountByEmailSQL, email))
}

func (r *Repo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	return r.scanAccount(r.db.QueryRowContext(ctx, getAccountByIDSQL, id))
}

func (r *Repo) DeleteAccount(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteAccountSQL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	var city, phone, bio, img, style, budget sql.NullString
	var countriesJSON []byte

	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role, &a.Country,
		&city, &phone, &bio, &img, &style, &budget, &countriesJSON, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Account{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Account{}, err
	}

	a.City = city.String
	a.Phone = phone.String
	a.Bio = bio.String
	a.ProfileImage = img.String
	a.Preferences.TravelStyle = style.String
	a.Preferences.Budget = budget.String
	_ = json.Unmarshal(countriesJSON, &a.Preferences.PreferredCountries)
	return a, nil
}
