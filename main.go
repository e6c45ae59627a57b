package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/popguess/internal/cli"
	"github.com/robalobadob/popguess/internal/country"
	"github.com/robalobadob/popguess/internal/httpserver"
	"github.com/robalobadob/popguess/internal/scores"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve()
		return
	}
	play()
}

// play runs one interactive session on the terminal.
func play() {
	ctx := context.Background()

	provider := country.NewProvider(
		country.NewClient(getEnv("COUNTRIES_URL", country.DefaultURL)),
		country.NewCache(getEnv("COUNTRIES_CACHE", "./data/countries.json"), cacheTTL()),
	)

	var store cli.ScoreStore
	st, err := scores.Open(getEnv("DATABASE_PATH", "./data/scores.db"), getEnvInt("SCORES_MAX", scores.DefaultMax))
	if err != nil {
		// Played without persistence; the CLI warns the player.
		log.Warn().Err(err).Msg("score store unavailable")
	} else {
		store = st
		defer st.Close()
	}

	g := cli.New(os.Stdin, os.Stdout, provider, store, getEnvInt("LEADERBOARD_SIZE", 5))
	if err := g.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("session failed")
	}
}

// serve exposes the leaderboard read-only over HTTP.
func serve() {
	st, err := scores.Open(getEnv("DATABASE_PATH", "./data/scores.db"), getEnvInt("SCORES_MAX", scores.DefaultMax))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open score store")
	}
	defer st.Close()

	srv := httpserver.New(st, getEnvInt("LEADERBOARD_SIZE", 5))
	port := getEnv("PORT", "5176")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func cacheTTL() time.Duration {
	hours := getEnvInt("CACHE_TTL_HOURS", 24)
	return time.Duration(hours) * time.Hour
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Warn().Str("var", k).Str("value", v).Msg("ignoring non-integer env value")
	}
	return def
}
