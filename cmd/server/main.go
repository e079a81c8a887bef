package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/bandstandhq/bandstand/internal/config"
	"github.com/bandstandhq/bandstand/internal/database"
	"github.com/bandstandhq/bandstand/internal/handler"
	"github.com/bandstandhq/bandstand/internal/middleware"
	"github.com/bandstandhq/bandstand/internal/repository"
	"github.com/bandstandhq/bandstand/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	genres := repository.NewGenreRepo(db)
	h := handler.New(
		repository.NewVenueRepo(db, genres),
		repository.NewArtistRepo(db, genres),
		repository.NewShowRepo(db),
		genres,
	)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unreachable, rate limiting disabled")
	}
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	e.Use(echomw.Logger(), echomw.Recover())
	router.RegisterRoutes(e, h, limit)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
