package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/tollway-portal/internal/config"
	"github.com/jrsteele09/tollway-portal/login"
	"github.com/jrsteele09/tollway-portal/server"
	"github.com/jrsteele09/tollway-portal/sessions"
	"github.com/jrsteele09/tollway-portal/token"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Error running server")
	}
	log.Info().Msg("Server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("Recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	c, err := config.New()
	if err != nil {
		return fmt.Errorf("config.New: %w", err)
	}
	setupLogging(c)
	displayAppname(c.GetAppName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newSessionRepo(ctx, c)
	if err != nil {
		return err
	}
	defer closeRepo()

	flow := login.NewFlow(
		login.NewAdminAuthenticator(c.GetAdminLoginEnabled(), c.GetAdminLoginDelay()),
		login.NewClient(c.GetLoginEndpointBase(), c.GetLoginTimeout()),
		roleVerifier(c),
	)

	portal, err := server.New(c, sessions.NewStore(repo), flow)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}
	defer portal.Close()

	httpServer := &http.Server{
		Addr:              c.GetPort(),
		Handler:           portal,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return listenAndServe(httpServer)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return shutdown(httpServer)
	})
	return g.Wait()
}

func setupLogging(c config.Config) {
	if c.IsDev() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// roleVerifier returns nil unless a signing secret is configured
func roleVerifier(c config.Config) login.RoleVerifier {
	secret := c.GetTokenSigningSecret()
	if secret == "" {
		return nil
	}
	log.Info().Msg("Verifying the role claim of user tokens")
	return token.NewVerifier(token.NewHMACSigner(secret))
}

func listenAndServe(server *http.Server) error {
	log.Info().Str("addr", server.Addr).Msg("Server listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
