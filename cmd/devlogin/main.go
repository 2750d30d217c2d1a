// Command devlogin serves the backend login endpoint for local development
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/tollway-portal/devlogin"
	"github.com/jrsteele09/tollway-portal/login"
	"github.com/jrsteele09/tollway-portal/token"
	fakeuserrepo "github.com/jrsteele09/tollway-portal/users/repofake"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type devConfig struct {
	Port        string        `env:"DEVLOGIN_PORT" envDefault:"5000"`
	Users       string        `env:"DEVLOGIN_USERS" envDefault:"user@example.com:Password1:user"`
	Secret      string        `env:"TOKEN_SIGNING_SECRET" envDefault:"dev-secret"`
	TokenExpiry time.Duration `env:"DEVLOGIN_TOKEN_EXPIRY" envDefault:"1h"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Error running devlogin")
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	var c devConfig
	if err := env.Parse(&c); err != nil {
		return fmt.Errorf("env.Parse: %w", err)
	}

	figure.NewFigure("devlogin", "cybermedium", true).Print()
	fmt.Println()

	users := fakeuserrepo.NewFakeUserRepo()
	n, err := devlogin.Seed(users, c.Users)
	if err != nil {
		return err
	}
	log.Info().Int("users", n).Msg("Seeded accounts")

	issuer := token.NewIssuer(token.NewHMACSigner(c.Secret), "devlogin", c.TokenExpiry)
	mux := http.NewServeMux()
	mux.Handle(login.EndpointPath, devlogin.NewHandler(users, issuer))

	httpServer := &http.Server{
		Addr:              ":" + c.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", httpServer.Addr).Str("path", login.EndpointPath).Msg("devlogin listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
