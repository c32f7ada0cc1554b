package main

import (
	"context"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/tschmitz/bookmarkd/internal/api"
	"github.com/tschmitz/bookmarkd/internal/auth"
	"github.com/tschmitz/bookmarkd/internal/config"
	"github.com/tschmitz/bookmarkd/internal/db"
	"github.com/tschmitz/bookmarkd/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			bookmarkStore := store.NewBookmarkStore(database)
			tagStore := store.NewTagStore(database)
			ownership := store.NewOwnershipPolicy(bookmarkStore)
			tokenStore := auth.NewSQLTokenStore(database)

			// The OIDC verifier hits the issuer's discovery endpoint, so it
			// is only built when the auth mode actually needs it.
			var oidcVerifier *auth.OIDCVerifier
			if cfg.Auth.Mode == "oidc" || cfg.Auth.Mode == "both" {
				oidcVerifier, err = auth.NewOIDCVerifier(context.Background(), cfg)
				if err != nil {
					return err
				}
			}

			// Mode "oidc" must not accept local API tokens, so the token
			// store only reaches the middleware in modes that allow it.
			var localTokens auth.TokenStore
			if cfg.Auth.Mode == "token" || cfg.Auth.Mode == "both" {
				localTokens = tokenStore
			}
			bearer := auth.NewBearerMiddleware(localTokens, oidcVerifier)

			router := api.NewRouter(api.Deps{
				BearerAuth:    bearer,
				BookmarkStore: bookmarkStore,
				TagStore:      tagStore,
				Ownership:     ownership,
				TokenStore:    tokenStore,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
