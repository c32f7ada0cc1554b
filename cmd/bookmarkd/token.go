package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tschmitz/bookmarkd/internal/auth"
	"github.com/tschmitz/bookmarkd/internal/config"
	"github.com/tschmitz/bookmarkd/internal/db"
)

// newTokenCmd mints an API token for a user without going through the HTTP
// API. Useful for bootstrapping: the first token has to come from somewhere.
func newTokenCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Mint an API token for a user",
		Args:  cobra.ExactArgs(1),
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

			plaintext, hash, err := auth.GenerateToken()
			if err != nil {
				return err
			}

			tokens := auth.NewSQLTokenStore(database)
			rec, err := tokens.Create(context.Background(), args[0], name, hash, nil)
			if err != nil {
				return err
			}

			// Shown once; only the hash is stored.
			fmt.Printf("token id: %s\n", rec.ID)
			fmt.Printf("token:    %s\n", plaintext)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "cli", "display name for the token")
	return cmd
}
