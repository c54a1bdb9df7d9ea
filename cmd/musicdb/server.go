package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"musicdb/internal/app/albums"
	"musicdb/internal/app/artists"
	"musicdb/internal/app/labels"
	"musicdb/internal/app/links"
	"musicdb/internal/app/playlists"
	"musicdb/internal/app/songs"
	"musicdb/internal/app/users"
	"musicdb/internal/config"
	"musicdb/internal/http/middleware"
	"musicdb/internal/httpapi"
	"musicdb/internal/store"
)

const shutdownTimeout = 30 * time.Second

func newHTTPHandler(cfg *config.Config, dataStore *store.Store) http.Handler {
	api := httpapi.New(httpapi.Services{
		Artists:   artists.New(dataStore),
		Users:     users.New(dataStore),
		Labels:    labels.New(dataStore),
		Albums:    albums.New(dataStore),
		Songs:     songs.New(dataStore),
		Playlists: playlists.New(dataStore),

		Collaborations: links.Collaborations(dataStore),
		Follows:        links.Follows(dataStore),
		Affiliations:   links.Affiliations(dataStore),
		Shares:         links.Shares(dataStore),
		Holdings:       links.Holdings(dataStore),
	})

	return middleware.Chain(api.Routes(),
		middleware.RequestLogging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	)
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests.
func serve(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("musicdb API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
