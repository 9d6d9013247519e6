//go:build integration || !unit

package mysql_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/Akarsh-2004/Bagragi/internal/domain"
	mysqlrepo "github.com/Akarsh-2004/Bagragi/internal/storage/mysql"
)

// ---------- small helpers ----------

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=bagragi",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "bagragi")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func seedAccount(t *testing.T, repo *mysqlrepo.Repo, email string, role domain.Role) string {
	t.Helper()
	id := uuid.NewString()
	err := repo.CreateAccount(context.Background(), domain.Account{
		ID:           id,
		Name:         "IT " + email,
		Email:        email,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhashnotarealha",
		Role:         role,
		Preferences:  domain.Preferences{PreferredCountries: []string{}},
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return id
}

func seedListing(t *testing.T, repo *mysqlrepo.Repo, hostID, country, city string, stars int, price float64) string {
	t.Helper()
	id := uuid.NewString()
	err := repo.CreateListing(context.Background(), domain.Listing{
		ID:     id,
		HostID: hostID,
		Name:   "IT Hotel " + city,
		Location: domain.Location{
			Country:     country,
			City:        city,
			Coordinates: domain.Coordinates{Lat: 1, Long: 2},
		},
		Images:             []string{},
		PricePerNight:      price,
		Amenities:          []string{"wifi"},
		IsAvailable:        true,
		CheckInTime:        "14:00",
		CheckOutTime:       "11:00",
		CancellationPolicy: "none",
		Stars:              stars,
	})
	if err != nil {
		t.Fatalf("seed listing: %v", err)
	}
	return id
}

// ---------- the tests ----------

func TestMySQL_AccountRoundTripAndDuplicateEmail(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	id := seedAccount(t, repo, "it@example.com", domain.RoleHost)

	got, err := repo.GetAccountByEmail(ctx, "it@example.com")
	if err != nil {
		t.Fatalf("GetAccountByEmail: %v", err)
	}
	if got.ID != id || got.Role != domain.RoleHost {
		t.Fatalf("unexpected account: %+v", got)
	}

	err = repo.CreateAccount(ctx, domain.Account{
		ID:           uuid.NewString(),
		Name:         "Dup",
		Email:        "it@example.com",
		PasswordHash: "x",
		Role:         domain.RoleGuest,
		Preferences:  domain.Preferences{PreferredCountries: []string{}},
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestMySQL_ListingJoinCarriesHostProjection(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	hostID := seedAccount(t, repo, "owner@example.com", domain.RoleHost)
	lid := seedListing(t, repo, hostID, "Portugal", "Lisbon", 4, 120)

	got, err := repo.GetListing(ctx, lid)
	if err != nil {
		t.Fatalf("GetListing: %v", err)
	}
	if got.HostID != hostID || got.HostEmail != "owner@example.com" {
		t.Fatalf("host projection missing: %+v", got)
	}
	if len(got.Amenities) != 1 || got.Amenities[0] != "wifi" {
		t.Fatalf("json column round trip: %+v", got.Amenities)
	}
}

func TestMySQL_SearchFilters(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	hostID := seedAccount(t, repo, "search@example.com", domain.RoleHost)
	seedListing(t, repo, hostID, "India", "Jaipur", 3, 50)
	seedListing(t, repo, hostID, "India", "Delhi", 5, 150)
	seedListing(t, repo, hostID, "France", "Paris", 4, 400)

	got, err := repo.SearchListings(ctx, domain.SearchQuery{Country: "india"})
	if err != nil {
		t.Fatalf("SearchListings: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("country filter should be case-insensitive, got %d rows", len(got))
	}

	got, err = repo.SearchListings(ctx, domain.SearchQuery{Country: "India", MinStars: 4})
	if err != nil {
		t.Fatalf("SearchListings stars: %v", err)
	}
	if len(got) != 1 || got[0].Location.City != "Delhi" {
		t.Fatalf("stars lower bound: %+v", got)
	}
}

func TestMySQL_DeleteAccountCascadesListings(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	hostID := seedAccount(t, repo, "cascade@example.com", domain.RoleHost)
	lid := seedListing(t, repo, hostID, "Japan", "Kyoto", 5, 300)

	if err := repo.DeleteAccount(ctx, hostID); err != nil {
		t.Fatalf("DeleteAccount: %v", err)
	}
	if _, err := repo.GetListing(ctx, lid); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected listing gone with its host, got %v", err)
	}
}
