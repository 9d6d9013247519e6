package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"github.com/Akarsh-2004/Bagragi/internal/adapters/costapi"
	"github.com/Akarsh-2004/Bagragi/internal/adapters/groq"
	server "github.com/Akarsh-2004/Bagragi/internal/adapters/http_server"
	"github.com/Akarsh-2004/Bagragi/internal/adapters/observability"
	"github.com/Akarsh-2004/Bagragi/internal/adapters/pexels"
	redisad "github.com/Akarsh-2004/Bagragi/internal/adapters/redis"
	"github.com/Akarsh-2004/Bagragi/internal/adapters/restcountries"
	"github.com/Akarsh-2004/Bagragi/internal/adapters/token"
	"github.com/Akarsh-2004/Bagragi/internal/adapters/wiki"
	"github.com/Akarsh-2004/Bagragi/internal/adapters/worldbank"
	"github.com/Akarsh-2004/Bagragi/internal/app"
	"github.com/Akarsh-2004/Bagragi/internal/shared"
	mysqlrepo "github.com/Akarsh-2004/Bagragi/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	signer := token.NewSigner(cfg.JWTSecret, cfg.TokenTTL)

	auth := app.NewAuthService(repo, signer)
	hotels := app.NewHotelService(repo, cache, cfg.CacheTTL)
	planner := app.NewPlanner()
	enrich := app.NewEnrichmentService(
		pexels.New(cfg.PexelsBase, cfg.PexelsKey, 5),
		restcountries.New(cfg.CountriesBase, 2),
		wiki.New(cfg.WikiBase, 5),
		worldbank.New(cfg.WorldBankBase, 5),
		costapi.New(cfg.CostBase, cfg.CostHost, cfg.CostKey, 2),
		cache, cfg.CacheTTL,
	)
	chat := app.NewChatService(groq.New(cfg.GroqBase, cfg.GroqKey, cfg.GroqModel))

	// http
	srv := server.New(cfg.CORSOrigin)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Auth:    auth,
		Hotels:  hotels,
		Planner: planner,
		Enrich:  enrich,
		Chat:    chat,
	}, signer)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
