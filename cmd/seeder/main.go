package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/Akarsh-2004/Bagragi/internal/adapters/observability"
	"github.com/Akarsh-2004/Bagragi/internal/app"
	"github.com/Akarsh-2004/Bagragi/internal/domain"
	"github.com/Akarsh-2004/Bagragi/internal/shared"
	mysqlrepo "github.com/Akarsh-2004/Bagragi/internal/storage/mysql"
)

// Every seeded listing is owned by this system account so ownership checks
// stay uniform for catalog rows.
const (
	catalogHostName  = "Bagragi Catalog"
	catalogHostEmail = "catalog@bagragi.app"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	rows, err := loadRows(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.SeedFile).Msg("failed to load seed file")
	}
	log.Info().Int("rows", len(rows)).Msg("seed file loaded")

	hostID, err := ensureCatalogHost(ctx, repo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to ensure catalog host account")
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, row := range rows {
		row := row

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(r app.SeedRow) {
			defer wg.Done()
			defer sem.Release(int64(1))

			l := app.ListingFromSeed(r, hostID)
			if err := repo.CreateListing(ctx, l); err != nil {
				log.Warn().Str("name", r.Name).Err(err).Msg("seed insert failed")
				return
			}
			log.Info().Str("name", r.Name).Str("id", l.ID).Msg("seed ok")
		}(row)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}

func loadRows(path string) ([]app.SeedRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []app.SeedRow
	if err := json.NewDecoder(f).Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ensureCatalogHost returns the catalog host's id, creating the account on
// first run. The account gets a random password; nobody logs in as it.
func ensureCatalogHost(ctx context.Context, repo *mysqlrepo.Repo) (string, error) {
	acc, err := repo.GetAccountByEmail(ctx, catalogHostEmail)
	if err == nil {
		return acc.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	err = repo.CreateAccount(ctx, domain.Account{
		ID:           id,
		Name:         catalogHostName,
		Email:        catalogHostEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleHost,
		Preferences:  domain.Preferences{PreferredCountries: []string{}},
	})
	if err != nil {
		return "", err
	}
	return id, nil
}
